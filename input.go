package inputmask

// Input is the text a host hands the engine on each edit: either a plain
// string (Text) or an event carrying it (ChangeEvent). The set is closed.
type Input interface {
	inputText() string
}

// Text is a plain string edit, as delivered by text-change callbacks.
type Text string

func (t Text) inputText() string { return string(t) }

// EventTarget is the element that raised a ChangeEvent.
type EventTarget struct {
	Value string `json:"value"`
}

// ChangeEvent is an event-shaped edit that carries the text in Target.Value.
type ChangeEvent struct {
	Target EventTarget `json:"target"`
}

func (e ChangeEvent) inputText() string { return e.Target.Value }

// NewChangeEvent wraps value in a ChangeEvent.
func NewChangeEvent(value string) ChangeEvent {
	return ChangeEvent{Target: EventTarget{Value: value}}
}

// TextOf extracts the edited text from in. A nil Input yields "".
func TextOf(in Input) string {
	switch v := in.(type) {
	case Text:
		return string(v)
	case ChangeEvent:
		return v.Target.Value
	case *ChangeEvent:
		if v == nil {
			return ""
		}
		return v.Target.Value
	case nil:
		return ""
	default:
		return v.inputText()
	}
}
