package design

import (
	"github.com/vk/designfmt/internal/resource"
	"github.com/vk/designfmt/internal/shortcut"
)

var shortcutConverter = Typed[*shortcut.Action]{
	FormatFunc: func(v *shortcut.Action) (string, error) {
		return v.Format()
	},
	ParseFunc: shortcut.Parse,
}

var resourceConverter = Typed[resource.Resource]{
	FormatFunc: resource.Format,
	ParseFunc:  resource.Parse,
}

// resourceVariant converts one concrete resource type. Parsing text that
// denotes a different variant fails.
func resourceVariant[T resource.Resource]() Typed[T] {
	return Typed[T]{
		FormatFunc: func(v T) (string, error) {
			return resource.Format(v)
		},
		ParseFunc: func(s string) (T, error) {
			var zero T
			r, err := resource.Parse(s)
			if err != nil {
				return zero, err
			}
			v, ok := r.(T)
			if !ok {
				return zero, &resource.KindError{Want: zero.Kind(), Got: r.Kind()}
			}
			return v, nil
		},
	}
}
