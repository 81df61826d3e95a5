// Package design converts component property values to and from the
// strings used as attributes in declarative markup.
//
// A Formatter is a registry holding one Converter per Go type. It comes
// preloaded with converters for booleans, signed integers, floating point
// numbers, *big.Float decimals, characters, strings, dates, time zones,
// shortcut actions and resource references, and can be extended with
// AddConverter or Register.
//
// The textual forms produced here are persisted in markup files and must
// stay stable across versions.
package design
