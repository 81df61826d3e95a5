// internal/shortcut/keys.go
package shortcut

import (
	"strconv"
	"strings"
)

var modifierNames = map[Modifier]string{
	Alt:   "alt",
	Ctrl:  "ctrl",
	Shift: "shift",
	Meta:  "meta",
}

var namedKeys = map[KeyCode]string{
	KeyBackspace:  "backspace",
	KeyTab:        "tab",
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeySpacebar:   "spacebar",
	KeyPageUp:     "page_up",
	KeyPageDown:   "page_down",
	KeyEnd:        "end",
	KeyHome:       "home",
	KeyArrowLeft:  "arrow_left",
	KeyArrowUp:    "arrow_up",
	KeyArrowRight: "arrow_right",
	KeyArrowDown:  "arrow_down",
	KeyInsert:     "insert",
	KeyDelete:     "delete",
}

var (
	modifiersByName = invert(modifierNames)
	keysByName      = invert(namedKeys)
)

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// ModifierName returns the token for a modifier, e.g. "ctrl".
func ModifierName(m Modifier) (string, bool) {
	name, ok := modifierNames[m]
	return name, ok
}

// ModifierByName looks up a modifier token, ignoring case.
func ModifierByName(name string) (Modifier, bool) {
	m, ok := modifiersByName[strings.ToLower(name)]
	return m, ok
}

// KeyName returns the token for a key code, e.g. "d", "7", "f5" or "enter".
func KeyName(k KeyCode) (string, bool) {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + (k - KeyA))), true
	case k >= Key0 && k <= Key0+9:
		return string(rune('0' + (k - Key0))), true
	case k >= KeyF1 && k <= KeyF1+11:
		return "f" + strconv.Itoa(int(k-KeyF1)+1), true
	}
	name, ok := namedKeys[k]
	return name, ok
}

// KeyByName looks up a key token, ignoring case.
func KeyByName(name string) (KeyCode, bool) {
	name = strings.ToLower(name)
	if len(name) == 1 {
		return keyForChar(rune(name[0]))
	}
	if k, ok := keysByName[name]; ok {
		return k, true
	}
	if rest, ok := strings.CutPrefix(name, "f"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 1 && n <= 12 && rest[0] >= '1' && rest[0] <= '9' {
			return KeyF1 + KeyCode(n-1), true
		}
	}
	return 0, false
}

// keyForChar maps a letter or digit to its key code.
func keyForChar(c rune) (KeyCode, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return KeyA + KeyCode(c-'a'), true
	case c >= 'A' && c <= 'Z':
		return KeyA + KeyCode(c-'A'), true
	case c >= '0' && c <= '9':
		return Key0 + KeyCode(c-'0'), true
	}
	return 0, false
}
