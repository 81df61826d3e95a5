// internal/resource/doc.go

/*
Package resource models the references a component property can point at:
external URLs, theme-relative paths, local files and font icons.

Each variant has a canonical textual form, e.g. `https://example.com/a.png`,
`theme://img/logo.png`, `img/logo.png` or `fonticon://FontAwesome/f0c0`.
Parse and Format convert between the two. No resource is ever fetched.
*/
package resource
