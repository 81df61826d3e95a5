// Package attrs binds Go structs describing component properties to the
// attribute maps of declarative markup elements.
//
// Field names map to attribute names through the `design` struct tag, or
// through the kebab-case form of the field name when no tag is given
// (PrimaryStyleName becomes primary-style-name). Values go through a
// design.Formatter in both directions.
package attrs
