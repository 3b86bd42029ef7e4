// Package testing provides test utilities for inputmask.
package testing

import (
	"testing"

	"github.com/zoobzio/inputmask"
)

// Recorder captures the raw values an engine reports through OnChange.
type Recorder struct {
	values []string
}

// OnChange records raw. Pass it to inputmask.WithOnChange.
func (r *Recorder) OnChange(raw string) {
	r.values = append(r.values, raw)
}

// Values returns every recorded raw value in order.
func (r *Recorder) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Last returns the most recent raw value, or "" when nothing was recorded.
func (r *Recorder) Last() string {
	if len(r.values) == 0 {
		return ""
	}
	return r.values[len(r.values)-1]
}

// Count returns the number of notifications received.
func (r *Recorder) Count() int {
	return len(r.values)
}

// Scenario is an end-to-end edit with its expected state.
type Scenario struct {
	Name   string
	Opts   []inputmask.Option
	Input  inputmask.Input
	Raw    string
	Masked string
}

// Scenarios returns the reference edits every host adapter should reproduce.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:   "phone",
			Opts:   []inputmask.Option{inputmask.WithMaskType(inputmask.MaskPhone)},
			Input:  inputmask.Text("9876543210"),
			Raw:    "9876543210",
			Masked: "(987) 654-3210",
		},
		{
			Name:   "date",
			Opts:   []inputmask.Option{inputmask.WithMaskType(inputmask.MaskDate)},
			Input:  inputmask.NewChangeEvent("12345678"),
			Raw:    "12345678",
			Masked: "12/34/5678",
		},
		{
			Name:   "money",
			Opts:   []inputmask.Option{inputmask.WithMaskType(inputmask.MaskMoney)},
			Input:  inputmask.Text("1234.5"),
			Raw:    "1234.50",
			Masked: "1,234.50",
		},
		{
			Name:   "date clamped",
			Opts:   []inputmask.Option{inputmask.WithMaskType(inputmask.MaskDate)},
			Input:  inputmask.Text("12345678901234567"),
			Raw:    "12345678",
			Masked: "12/34/5678",
		},
		{
			Name:   "monthDay",
			Opts:   []inputmask.Option{inputmask.WithMaskType(inputmask.MaskMonthDay)},
			Input:  inputmask.Text("12345"),
			Raw:    "1234",
			Masked: "12/34",
		},
		{
			Name: "custom",
			Opts: []inputmask.Option{
				inputmask.WithMaskType(inputmask.MaskCustom),
				inputmask.WithCustomMask(func(v string) string { return "PREFIX-" + v }),
			},
			Input:  inputmask.NewChangeEvent("Hello"),
			Raw:    "Hello",
			Masked: "PREFIX-Hello",
		},
	}
}

// AssertState fails t when got differs from the expected raw and masked values.
func AssertState(t testing.TB, got inputmask.State, raw, masked string) {
	t.Helper()
	if got.Raw != raw {
		t.Errorf("raw = %q, want %q", got.Raw, raw)
	}
	if got.Masked != masked {
		t.Errorf("masked = %q, want %q", got.Masked, masked)
	}
}

// ContactForm is a test type with masked fields across every builtin mask.
type ContactForm struct {
	Name     string `json:"name" xml:"name" yaml:"name" msgpack:"name" bson:"name"`
	Phone    string `json:"phone" xml:"phone" yaml:"phone" msgpack:"phone" bson:"phone" mask:"phone"`
	Amount   string `json:"amount" xml:"amount" yaml:"amount" msgpack:"amount" bson:"amount" mask:"money"`
	Card     string `json:"card" xml:"card" yaml:"card" msgpack:"card" bson:"card" mask:"card"`
	Zip      string `json:"zip" xml:"zip" yaml:"zip" msgpack:"zip" bson:"zip" mask:"zip"`
	Birthday string `json:"birthday" xml:"birthday" yaml:"birthday" msgpack:"birthday" bson:"birthday" mask:"date"`
	Renewal  string `json:"renewal" xml:"renewal" yaml:"renewal" msgpack:"renewal" bson:"renewal" mask:"monthDay"`
}

// Clone implements inputmask.Cloner[ContactForm].
func (c ContactForm) Clone() ContactForm { return c }
