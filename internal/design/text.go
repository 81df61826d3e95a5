package design

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Char is a single character property value. It is distinct from int32,
// which Go treats as the same type as rune and formats as a number.
type Char rune

// boolConverter treats everything except the literal "false" as true, so a
// present but empty attribute enables a flag.
var boolConverter = Typed[bool]{
	FormatFunc: func(v bool) (string, error) {
		return strconv.FormatBool(v), nil
	},
	ParseFunc: func(s string) (bool, error) {
		return s != "false", nil
	},
}

var charConverter = Typed[Char]{
	FormatFunc: func(v Char) (string, error) {
		if !utf8.ValidRune(rune(v)) {
			return "", fmt.Errorf("invalid character %U", rune(v))
		}
		return string(rune(v)), nil
	},
	ParseFunc: func(s string) (Char, error) {
		if s == "" {
			return 0, errors.New("a character is required")
		}
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return 0, errors.New("invalid UTF-8 encoding")
		}
		return Char(r), nil
	},
}

var stringConverter = Typed[string]{
	FormatFunc: func(v string) (string, error) { return v, nil },
	ParseFunc:  func(s string) (string, error) { return s, nil },
}
