package design

import (
	"fmt"
	"reflect"
)

// Converter turns values of one type into strings and back.
type Converter interface {
	Format(v any) (string, error)
	Parse(s string) (any, error)
}

// Typed adapts a pair of typed functions into a Converter.
type Typed[T any] struct {
	FormatFunc func(T) (string, error)
	ParseFunc  func(string) (T, error)
}

// Format implements Converter.
func (c Typed[T]) Format(v any) (string, error) {
	tv, ok := v.(T)
	if !ok {
		return "", fmt.Errorf("expected %s, got %T", TypeOf[T](), v)
	}
	return c.FormatFunc(tv)
}

// Parse implements Converter.
func (c Typed[T]) Parse(s string) (any, error) {
	v, err := c.ParseFunc(s)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// TypeOf returns the registry key for T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

// Register adds a converter for T to the formatter.
func Register[T any](f *Formatter, c Converter) error {
	return f.AddConverter(TypeOf[T](), c)
}

// ParseAs parses s into a value of type T.
func ParseAs[T any](f *Formatter, s string) (T, error) {
	var zero T
	v, err := f.Parse(s, TypeOf[T]())
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, &ConversionError{
			Op:    "parse",
			Value: s,
			Type:  TypeOf[T](),
			Err:   fmt.Errorf("converter returned %T", v),
		}
	}
	return tv, nil
}
