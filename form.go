package inputmask

import (
	"context"
	"reflect"

	"github.com/zoobzio/sentinel"
)

// maskTag is the struct tag naming a field's mask type.
const maskTag = "mask"

func init() {
	sentinel.Tag(maskTag)
}

// typePlans holds the masked fields of a struct type.
type typePlans struct {
	typeName string
	fields   []fieldPlan
}

// fieldPlan describes a single masked field.
type fieldPlan struct {
	index    []int    // reflect.Value.FieldByIndex access path
	name     string   // dotted field name, e.g. "Billing.Zip"
	maskType MaskType // tag value
}

// Form binds a struct type to a set of engines, one per string field
// tagged with mask:"<type>".
//
//	type Checkout struct {
//	    Phone  string `mask:"phone"`
//	    Amount string `mask:"money"`
//	    Note   string
//	}
//
//	form, _ := inputmask.NewForm[Checkout]()
//	form.Edit("Phone", inputmask.Text("9876543210"))
//	form.Masked()["Phone"] // "(987) 654-3210"
//
// Nested structs are walked and their fields named with a dot. Pointer
// fields are skipped. Like Engine, a Form is not safe for concurrent use.
type Form[T Cloner[T]] struct {
	plans   *typePlans
	engines map[string]*Engine
	opts    formOptions
}

// FormOption configures a Form.
type FormOption func(*formOptions)

type formOptions struct {
	onChange func(field, raw string)
	custom   map[string]FormatFunc
}

// WithFormOnChange sets a callback invoked with the field name and new raw
// value after every Edit and SetValue on the form.
func WithFormOnChange(fn func(field, raw string)) FormOption {
	return func(o *formOptions) {
		o.onChange = fn
	}
}

// WithFieldMask sets the custom formatter for a mask:"custom" field.
// It takes precedence over a CustomMasker implementation.
func WithFieldMask(field string, fn FormatFunc) FormOption {
	return func(o *formOptions) {
		if o.custom == nil {
			o.custom = make(map[string]FormatFunc)
		}
		o.custom[field] = fn
	}
}

// NewForm scans T's struct tags and creates an engine for every masked field.
// An unknown mask type in a tag fails with ErrInvalidTag.
func NewForm[T Cloner[T]](opts ...FormOption) (*Form[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	f := &Form[T]{
		plans:   plans,
		engines: make(map[string]*Engine, len(plans.fields)),
	}
	for _, opt := range opts {
		opt(&f.opts)
	}

	cm, hasCustom := customMaskerFor[T]()
	for _, plan := range plans.fields {
		name := plan.name
		cfg := NewConfig(WithMaskType(plan.maskType))

		if plan.maskType == MaskCustom {
			if fn, ok := f.opts.custom[name]; ok {
				cfg.Custom = fn
			} else if hasCustom {
				cfg.Custom = cm.CustomMask(name)
			}
		}
		if f.opts.onChange != nil {
			onChange := f.opts.onChange
			cfg.OnChange = func(raw string) { onChange(name, raw) }
		}

		f.engines[name] = FromConfig(cfg)
	}

	emitFormCreated(context.Background(), plans.typeName, len(plans.fields))
	return f, nil
}

// Fields returns the masked field names in declaration order.
func (f *Form[T]) Fields() []string {
	names := make([]string, len(f.plans.fields))
	for i, plan := range f.plans.fields {
		names[i] = plan.name
	}
	return names
}

// Engine returns the engine bound to field.
func (f *Form[T]) Engine(field string) (*Engine, bool) {
	e, ok := f.engines[field]
	return e, ok
}

// Load seeds every engine from the matching field of obj without calling
// any change callback. A nil obj resets all fields to empty.
func (f *Form[T]) Load(obj *T) {
	var rv reflect.Value
	if obj != nil {
		rv = reflect.ValueOf(obj).Elem()
	}

	for _, plan := range f.plans.fields {
		value := ""
		if rv.IsValid() {
			value = rv.FieldByIndex(plan.index).String()
		}
		f.engines[plan.name].seed(value)
	}
}

// Edit applies a host edit to field.
func (f *Form[T]) Edit(field string, in Input) (State, error) {
	e, ok := f.engines[field]
	if !ok {
		return State{}, newConfigError(ErrUnknownField, MaskNone, field)
	}
	return e.Edit(in), nil
}

// SetValue sets field programmatically.
func (f *Form[T]) SetValue(field, raw string) (State, error) {
	e, ok := f.engines[field]
	if !ok {
		return State{}, newConfigError(ErrUnknownField, MaskNone, field)
	}
	return e.SetValue(raw), nil
}

// Raw returns a clone of base with every masked field set to its raw value.
func (f *Form[T]) Raw(base T) T {
	return f.write(base, func(e *Engine) string { return e.Raw() })
}

// Display returns a clone of base with every masked field set to its
// masked value.
func (f *Form[T]) Display(base T) T {
	return f.write(base, func(e *Engine) string { return e.Masked() })
}

// Masked returns the display value of every masked field.
func (f *Form[T]) Masked() map[string]string {
	out := make(map[string]string, len(f.engines))
	for name, e := range f.engines {
		out[name] = e.Masked()
	}
	return out
}

// States returns the state of every masked field.
func (f *Form[T]) States() map[string]State {
	out := make(map[string]State, len(f.engines))
	for name, e := range f.engines {
		out[name] = e.State()
	}
	return out
}

func (f *Form[T]) write(base T, value func(*Engine) string) T {
	clone := base.Clone()
	rv := reflect.ValueOf(&clone).Elem()

	for _, plan := range f.plans.fields {
		field := rv.FieldByIndex(plan.index)
		if field.CanSet() {
			field.SetString(value(f.engines[plan.name]))
		}
	}
	return clone
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T any]() (*typePlans, error) {
	meta := sentinel.Scan[T]()
	plans := &typePlans{
		typeName: meta.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, meta, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive walks fields and nested structs.
func buildFieldPlansRecursive(plans *typePlans, meta sentinel.Metadata, parentIndex []int, namePrefix string) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, fullName); err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[maskTag]
		if !ok {
			continue
		}

		mt := MaskType(val)
		if !IsValidMaskType(mt) {
			return newConfigError(ErrInvalidTag, mt, fullName)
		}

		// Only string fields can hold raw and masked text.
		if field.ReflectType.Kind() != reflect.String {
			continue
		}

		plans.fields = append(plans.fields, fieldPlan{
			index:    fullIndex,
			name:     fullName,
			maskType: mt,
		})
	}

	return nil
}

// scanNestedType returns metadata for a nested struct type.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(maskTag); ok {
			fm.Tags[maskTag] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}
