package design

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrConversion is matched by every error returned from Format and Parse.
	ErrConversion = errors.New("conversion failed")
	// ErrUnsupportedType means no converter is registered for the type.
	ErrUnsupportedType = errors.New("unsupported type")
)

// ConversionError describes a failed Format or Parse call.
type ConversionError struct {
	Op    string // "format" or "parse"
	Value string
	Type  reflect.Type
	Err   error
}

func (e *ConversionError) Error() string {
	typeName := "<nil>"
	if e.Type != nil {
		typeName = e.Type.String()
	}
	if errors.Is(e.Err, ErrUnsupportedType) {
		return fmt.Sprintf("cannot %s type %s: %v", e.Op, typeName, e.Err)
	}
	return fmt.Sprintf("cannot %s %q as %s: %v", e.Op, e.Value, typeName, e.Err)
}

// Unwrap exposes both ErrConversion and the underlying cause.
func (e *ConversionError) Unwrap() []error {
	return []error{ErrConversion, e.Err}
}

func unsupported(op string, t reflect.Type) error {
	return &ConversionError{Op: op, Type: t, Err: ErrUnsupportedType}
}
