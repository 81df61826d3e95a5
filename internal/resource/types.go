// internal/resource/types.go
package resource

import (
	"fmt"
	"reflect"
)

// Resource is a reference to something a component can display or link to.
type Resource interface {
	// Kind returns the short variant name, e.g. "external" or "theme".
	Kind() string
}

// External references a resource by absolute URL.
type External struct {
	URL string
}

// Kind implements Resource.
func (External) Kind() string { return "external" }

// Theme references a resource relative to the active theme.
type Theme struct {
	Path string
}

// Kind implements Resource.
func (Theme) Kind() string { return "theme" }

// File references a file on the server's filesystem.
type File struct {
	Path string
}

// Kind implements Resource.
func (File) Kind() string { return "file" }

// FontIcon references a single glyph of an icon font.
type FontIcon struct {
	Family    string
	Codepoint rune
}

// Kind implements Resource.
func (FontIcon) Kind() string { return "fonticon" }

// Equal compares two resources, treating two nil values as equal.
// Resources of non-comparable types are compared deeply.
func Equal(a, b Resource) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}
	if !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}

// KindError reports that a string denoted a different variant than the one
// requested.
type KindError struct {
	Want string
	Got  string
}

func (e *KindError) Error() string {
	return fmt.Sprintf("expected %s resource, got %s", e.Want, e.Got)
}
