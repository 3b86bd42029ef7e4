package inputmask

import (
	"errors"
	"strings"
	"testing"
)

// Address is a nested masked struct.
type Address struct {
	Street string
	Zip    string `mask:"zip"`
}

// Checkout has masked, unmasked and nested fields.
type Checkout struct {
	Name    string
	Phone   string `mask:"phone"`
	Amount  string `mask:"money"`
	Card    string `mask:"card"`
	Expiry  string `mask:"monthDay"`
	Handle  string `mask:"custom"`
	Note    string
	Count   int    `mask:"phone"`
	Billing Address
}

func (c Checkout) Clone() Checkout { return c }

func (c Checkout) CustomMask(field string) FormatFunc {
	if field == "Handle" {
		return func(v string) string { return "@" + strings.ToLower(v) }
	}
	return nil
}

// BadTag names an unknown mask type.
type BadTag struct {
	Account string `mask:"iban"`
}

func (b BadTag) Clone() BadTag { return b }

// Plain has a custom field and no CustomMasker.
type Plain struct {
	Code string `mask:"custom"`
}

func (p Plain) Clone() Plain { return p }

func TestNewForm_Fields(t *testing.T) {
	Reset()

	form, err := NewForm[Checkout]()
	if err != nil {
		t.Fatalf("NewForm() error: %v", err)
	}

	want := []string{"Phone", "Amount", "Card", "Expiry", "Handle", "Billing.Zip"}
	got := form.Fields()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Fields() = %v, want %v", got, want)
	}

	if _, ok := form.Engine("Count"); ok {
		t.Error("non-string field should not get an engine")
	}
	if e, ok := form.Engine("Billing.Zip"); !ok || e.MaskType() != MaskZip {
		t.Error("nested field should get a zip engine")
	}
}

func TestNewForm_InvalidTag(t *testing.T) {
	Reset()

	_, err := NewForm[BadTag]()
	if !errors.Is(err, ErrInvalidTag) {
		t.Fatalf("NewForm() error = %v, want ErrInvalidTag", err)
	}

	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("NewForm() error should be *ConfigError, got %T", err)
	}
	if configErr.Field != "Account" || configErr.MaskType != "iban" {
		t.Errorf("ConfigError = %+v", configErr)
	}
}

func TestForm_Edit(t *testing.T) {
	Reset()

	form, err := NewForm[Checkout]()
	if err != nil {
		t.Fatalf("NewForm() error: %v", err)
	}

	edits := []struct {
		field  string
		input  Input
		masked string
	}{
		{"Phone", Text("9876543210"), "(987) 654-3210"},
		{"Amount", NewChangeEvent("1234.5"), "1,234.50"},
		{"Card", Text("4111111111111111"), "4111 1111 1111 1111"},
		{"Expiry", Text("12345"), "12/34"},
		{"Handle", Text("Gopher"), "@gopher"},
		{"Billing.Zip", Text("123456789"), "12345-6789"},
	}

	for _, ed := range edits {
		state, err := form.Edit(ed.field, ed.input)
		if err != nil {
			t.Fatalf("Edit(%q) error: %v", ed.field, err)
		}
		if state.Masked != ed.masked {
			t.Errorf("Edit(%q) masked = %q, want %q", ed.field, state.Masked, ed.masked)
		}
	}

	raw := form.Raw(Checkout{Name: "Ada"})
	if raw.Name != "Ada" || raw.Phone != "9876543210" || raw.Amount != "1234.50" || raw.Billing.Zip != "123456789" {
		t.Errorf("Raw() = %+v", raw)
	}
	if raw.Handle != "Gopher" {
		t.Errorf("Raw().Handle = %q, want %q", raw.Handle, "Gopher")
	}

	display := form.Display(Checkout{})
	if display.Phone != "(987) 654-3210" || display.Billing.Zip != "12345-6789" {
		t.Errorf("Display() = %+v", display)
	}

	masked := form.Masked()
	if masked["Expiry"] != "12/34" || len(masked) != 6 {
		t.Errorf("Masked() = %v", masked)
	}
	if states := form.States(); states["Amount"].Raw != "1234.50" {
		t.Errorf("States()[Amount] = %+v", states["Amount"])
	}
}

func TestForm_UnknownField(t *testing.T) {
	Reset()

	form, _ := NewForm[Checkout]()

	if _, err := form.Edit("Name", Text("x")); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Edit(Name) error = %v, want ErrUnknownField", err)
	}
	if _, err := form.SetValue("Missing", "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("SetValue(Missing) error = %v, want ErrUnknownField", err)
	}
}

func TestForm_Load(t *testing.T) {
	Reset()

	var changes []string
	form, _ := NewForm[Checkout](WithFormOnChange(func(field, raw string) {
		changes = append(changes, field+"="+raw)
	}))

	form.Load(&Checkout{Phone: "5555555555", Amount: "100", Billing: Address{Zip: "12345"}})
	if len(changes) != 0 {
		t.Errorf("Load() notified %v", changes)
	}

	masked := form.Masked()
	if masked["Phone"] != "(555) 555-5555" || masked["Amount"] != "100.00" || masked["Billing.Zip"] != "12345" {
		t.Errorf("Masked() after Load = %v", masked)
	}

	form.Load(nil)
	if got := form.Masked()["Amount"]; got != "0.00" {
		t.Errorf("Masked()[Amount] after Load(nil) = %q, want %q", got, "0.00")
	}
}

func TestForm_OnChange(t *testing.T) {
	Reset()

	var changes []string
	form, _ := NewForm[Checkout](WithFormOnChange(func(field, raw string) {
		changes = append(changes, field+"="+raw)
	}))

	form.SetValue("Phone", "(555) 123-4567")
	form.Edit("Billing.Zip", Text("12345-6"))

	want := []string{"Phone=5551234567", "Billing.Zip=123456"}
	if strings.Join(changes, ";") != strings.Join(want, ";") {
		t.Errorf("changes = %v, want %v", changes, want)
	}
}

func TestForm_FieldMaskOption(t *testing.T) {
	Reset()

	form, _ := NewForm[Checkout](WithFieldMask("Handle", func(v string) string { return "#" + v }))
	state, _ := form.Edit("Handle", Text("go"))
	if state.Masked != "#go" {
		t.Errorf("Edit(Handle) masked = %q, want %q", state.Masked, "#go")
	}
}

func TestForm_CustomWithoutFormatter(t *testing.T) {
	Reset()

	form, err := NewForm[Plain]()
	if err != nil {
		t.Fatalf("NewForm() error: %v", err)
	}
	state, _ := form.Edit("Code", Text("AbC"))
	if state.Masked != "AbC" || state.Raw != "AbC" {
		t.Errorf("Edit(Code) = %+v, want identity", state)
	}
}

func TestForm_PlanCache(t *testing.T) {
	Reset()

	a, _ := getOrBuildPlans[Checkout]()
	b, _ := getOrBuildPlans[Checkout]()
	if a != b {
		t.Error("getOrBuildPlans() should return cached plans")
	}

	Reset()

	c, _ := getOrBuildPlans[Checkout]()
	if a == c {
		t.Error("Reset() should clear cached plans")
	}
}
