package inputmask

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// Engine operations never fail; these cover configuration, form binding
// and snapshot decoding.
var (
	// ErrInvalidMaskType indicates a configured mask type is not known.
	ErrInvalidMaskType = errors.New("invalid mask type")

	// ErrInvalidTag indicates a struct tag names an unknown mask type.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnknownField indicates a form has no masked field by that name.
	ErrUnknownField = errors.New("unknown field")

	// ErrMaskTypeMismatch indicates a snapshot was taken under another mask type.
	ErrMaskTypeMismatch = errors.New("mask type mismatch")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents an engine or form configuration error.
// It wraps a sentinel error with the field and mask type involved.
type ConfigError struct {
	Err      error  // Underlying sentinel error (ErrInvalidMaskType, etc.)
	Field    string // Field name that triggered the error
	MaskType string // Mask type that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.MaskType != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.MaskType, e.Field)
	}
	if e.MaskType != "" {
		return fmt.Sprintf("%s %q", e.Err.Error(), e.MaskType)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError.
func newConfigError(sentinel error, maskType MaskType, field string) error {
	return &ConfigError{
		Err:      sentinel,
		MaskType: string(maskType),
		Field:    field,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
