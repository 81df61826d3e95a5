package design

import (
	"fmt"
	"strings"
)

// NewEnumConverter builds a converter for an enumerated type from the name
// of each constant. Names are written in lower case and matched without
// regard to case.
func NewEnumConverter[T comparable](names map[T]string) Typed[T] {
	byName := make(map[string]T, len(names))
	for v, name := range names {
		byName[strings.ToLower(name)] = v
	}

	return Typed[T]{
		FormatFunc: func(v T) (string, error) {
			name, ok := names[v]
			if !ok {
				return "", fmt.Errorf("no name for constant %v", v)
			}
			return strings.ToLower(name), nil
		},
		ParseFunc: func(s string) (T, error) {
			v, ok := byName[strings.ToLower(s)]
			if !ok {
				var zero T
				return zero, fmt.Errorf("unknown constant %q", s)
			}
			return v, nil
		},
	}
}
