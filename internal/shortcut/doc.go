// internal/shortcut/doc.go

/*
Package shortcut models keyboard shortcut actions: a key code, a set of
modifier keys and an optional caption and icon.

The canonical textual form is a dash-separated key combination, optionally
followed by a space and the caption, e.g. `alt-ctrl-d Delete`. Modifiers are
always written in the order alt, ctrl, shift, meta.

A caption may also be written in shorthand, where `&`, `^` and `_` before a
letter or digit select alt, ctrl and shift with that key (`&^d`).
*/
package shortcut
