package inputmask

// CustomMasker lets a form type supply formatters for its custom fields.
// Struct tags cannot carry functions, so a field tagged mask:"custom" asks
// the type for its FormatFunc by field name. A nil result means identity.
//
//	func (p Profile) CustomMask(field string) inputmask.FormatFunc {
//	    if field == "Handle" {
//	        return func(v string) string { return "@" + v }
//	    }
//	    return nil
//	}
type CustomMasker interface {
	CustomMask(field string) FormatFunc
}

// customMaskerFor reports whether T, or *T, implements CustomMasker.
func customMaskerFor[T any]() (CustomMasker, bool) {
	var zero T
	if cm, ok := any(zero).(CustomMasker); ok {
		return cm, true
	}
	if cm, ok := any(&zero).(CustomMasker); ok {
		return cm, true
	}
	return nil, false
}
