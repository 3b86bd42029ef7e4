// Package inputmask keeps a text input's displayed value in sync with its
// raw value as the user types.
//
// An Engine owns the paired state of one input: the raw value (what the
// input means) and the masked value (what the user sees). Every edit is
// clamped to the length the mask type allows, then formatted by the mask.
//
// # Mask Types
//
//   - phone: 9876543210 → (987) 654-3210, capped at 10 digits
//   - money: 1234.5 → 1,234.50, raw normalised to 1234.50
//   - card: 4111111111111111 → 4111 1111 1111 1111, capped at 16 digits
//   - zip: 123456789 → 12345-6789, capped at 9 digits
//   - date: 12312024 → 12/31/2024, capped at 8 digits
//   - monthDay: 1231 → 12/31, capped at 4 digits
//   - custom: a caller-supplied FormatFunc, identity when absent
//   - unset (MaskNone): raw and masked both equal the input
//
// Punctuation is revealed progressively: a phone input holding "12" shows
// "(12", a date holding "123" shows "12/3".
//
// # Basic Usage
//
//	e := inputmask.New(
//	    inputmask.WithMaskType(inputmask.MaskPhone),
//	    inputmask.WithOnChange(func(raw string) { save(raw) }),
//	)
//
//	// From a text-change callback
//	e.Edit(inputmask.Text("9876543210"))
//
//	// From an event carrying the text in Target.Value
//	e.Edit(inputmask.NewChangeEvent("9876543210"))
//
//	e.Raw()    // "9876543210"
//	e.Masked() // "(987) 654-3210"
//
// Reconcile exposes the same transition as a pure function of a Config
// and the entered text.
//
// # Forms
//
// NewForm binds a struct type to one engine per string field tagged
// mask:"<type>". Custom fields take their formatter from WithFieldMask or
// from the type's CustomMasker implementation.
//
// # Snapshots
//
// Engine state and configs can be persisted with any Codec. The following
// codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Signals
//
// Engines, forms and restores emit capitan signals. Raw values are never
// emitted; events carry lengths and a Digest instead.
package inputmask
