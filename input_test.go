package inputmask

import "testing"

func TestTextOf(t *testing.T) {
	event := NewChangeEvent("from event")

	tests := []struct {
		name     string
		input    Input
		expected string
	}{
		{"text", Text("plain"), "plain"},
		{"event", event, "from event"},
		{"event pointer", &event, "from event"},
		{"nil event pointer", (*ChangeEvent)(nil), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TextOf(tt.input); got != tt.expected {
				t.Errorf("TextOf() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEdit_EventAndTextAgree(t *testing.T) {
	a := New(WithMaskType(MaskDate))
	b := New(WithMaskType(MaskDate))

	if a.Edit(Text("12312024")) != b.Edit(NewChangeEvent("12312024")) {
		t.Errorf("Text and ChangeEvent edits diverged: %+v vs %+v", a.State(), b.State())
	}
}
