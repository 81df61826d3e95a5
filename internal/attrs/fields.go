package attrs

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/stoewer/go-strcase"
)

// field is one struct field bound to an attribute.
type field struct {
	index     int
	attr      string
	omitEmpty bool
}

// fields lists the bound fields of a struct type. Unexported fields and
// fields tagged `design:"-"` are skipped.
func fields(t reflect.Type) ([]field, error) {
	var out []field
	seen := make(map[string]string)

	for i := 0; i < t.NumField(); i++ {
		def := t.Field(i)
		if !def.IsExported() {
			continue
		}

		tag := def.Tag.Get("design")
		if tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = strcase.KebabCase(def.Name)
		}
		if other, dup := seen[name]; dup {
			return nil, fmt.Errorf("fields %s and %s both map to attribute %q", other, def.Name, name)
		}
		seen[name] = def.Name

		out = append(out, field{
			index:     i,
			attr:      name,
			omitEmpty: opts == "omitempty",
		})
	}
	return out, nil
}

// structValue dereferences v and checks that it is a struct.
func structValue(v any, wantPtr bool) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if wantPtr {
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("target must be a non-nil pointer to a struct, got %T", v)
		}
		rv = rv.Elem()
	} else if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, fmt.Errorf("source must not be a nil pointer")
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("expected a struct, got %s", rv.Kind())
	}
	return rv, nil
}

// isNil reports whether a pointer or interface field holds nil.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// assignable wraps a parsed value for assignment to a field of type t. A
// nil result becomes the zero value of t.
func assignable(v any, t reflect.Type) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}
