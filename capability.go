package inputmask

import "fmt"

// validMaskTypes contains every named mask type for tag and config validation.
// MaskNone is valid as well but has no name to look up.
var validMaskTypes = map[MaskType]bool{
	MaskPhone:    true,
	MaskMoney:    true,
	MaskCard:     true,
	MaskZip:      true,
	MaskDate:     true,
	MaskMonthDay: true,
	MaskCustom:   true,
}

// IsValidMaskType returns true if mt is a known mask type or MaskNone.
func IsValidMaskType(mt MaskType) bool {
	return mt == MaskNone || validMaskTypes[mt]
}

// ParseMaskType converts a configured name into a MaskType.
// The empty string yields MaskNone.
func ParseMaskType(name string) (MaskType, error) {
	mt := MaskType(name)
	if !IsValidMaskType(mt) {
		return MaskNone, newConfigError(ErrInvalidMaskType, mt, "")
	}
	return mt, nil
}

// String implements fmt.Stringer.
func (mt MaskType) String() string {
	if mt == MaskNone {
		return "none"
	}
	return string(mt)
}

// GoString keeps %#v readable in test failures.
func (mt MaskType) GoString() string {
	return fmt.Sprintf("inputmask.MaskType(%q)", string(mt))
}
