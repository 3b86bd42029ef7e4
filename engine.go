package inputmask

import (
	"context"
	"time"
)

// State is the paired raw and masked value of an input.
type State struct {
	Raw    string `json:"raw" xml:"raw" yaml:"raw" msgpack:"raw" bson:"raw"`
	Masked string `json:"masked" xml:"masked" yaml:"masked" msgpack:"masked" bson:"masked"`
}

// Reconcile computes the state an input reaches when text is entered
// under cfg. It is pure apart from calling cfg.Custom.
//
// MaskNone keeps text verbatim. Other types clamp text, then mask it. For
// MaskMoney the raw value is re-derived from the masked output as a
// two-decimal number ("1234.5" -> raw "1234.50", masked "1,234.50"); for the
// rest the raw value is the clamped text.
func Reconcile(cfg Config, text string) State {
	if cfg.MaskType == MaskNone {
		return State{Raw: text, Masked: text}
	}

	clamped := Clamp(cfg.MaskType, text)
	masked := MaskerFor(cfg.MaskType, cfg.Custom).Mask(clamped)

	raw := clamped
	if cfg.MaskType == MaskMoney {
		raw = toFixed2(ParseCurrencyToNumber(masked))
	}

	return State{Raw: raw, Masked: masked}
}

// Engine keeps an input's raw and masked values consistent across edits.
//
// An Engine is not safe for concurrent use. Hosts deliver edits serially,
// one keystroke or programmatic set at a time.
type Engine struct {
	cfg   Config
	state State
}

// New creates an Engine from options and seeds it with the initial value.
// Seeding does not call OnChange.
func New(opts ...Option) *Engine {
	return FromConfig(NewConfig(opts...))
}

// FromConfig creates an Engine from cfg and seeds it with cfg.InitialValue.
// Seeding does not call OnChange.
func FromConfig(cfg Config) *Engine {
	e := &Engine{
		cfg:   cfg,
		state: Reconcile(cfg, cfg.InitialValue),
	}
	emitEngineCreated(context.Background(), cfg.MaskType, e.state)
	return e
}

// Edit applies a host edit, given as Text or ChangeEvent, and returns the
// new state. OnChange receives the new raw value.
//
// A panicking custom formatter propagates to the caller and leaves the
// state as it was.
func (e *Engine) Edit(in Input) State {
	start := time.Now()
	e.state = Reconcile(e.cfg, TextOf(in))
	emitEditApplied(context.Background(), e.cfg.MaskType, e.state, time.Since(start))
	e.notify()
	return e.state
}

// EditText is shorthand for Edit(Text(text)).
func (e *Engine) EditText(text string) State {
	return e.Edit(Text(text))
}

// SetValue replaces the value programmatically and returns the new state.
// It computes exactly what Edit does and also calls OnChange.
func (e *Engine) SetValue(raw string) State {
	start := time.Now()
	e.state = Reconcile(e.cfg, raw)
	emitValueSet(context.Background(), e.cfg.MaskType, e.state, time.Since(start))
	e.notify()
	return e.state
}

// Raw returns the current raw value.
func (e *Engine) Raw() string {
	return e.state.Raw
}

// Masked returns the current display value.
func (e *Engine) Masked() string {
	return e.state.Masked
}

// State returns the current raw and masked pair.
func (e *Engine) State() State {
	return e.state
}

// MaskType returns the mask type the engine was built with.
func (e *Engine) MaskType() MaskType {
	return e.cfg.MaskType
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// seed replaces the state as construction does, without notifying.
func (e *Engine) seed(value string) {
	e.state = Reconcile(e.cfg, value)
}

func (e *Engine) notify() {
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(e.state.Raw)
	}
}
