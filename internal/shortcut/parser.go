// internal/shortcut/parser.go
package shortcut

import (
	"fmt"
	"strings"
)

// mnemonicMarker precedes the key letter inside a caption, e.g. "&Delete".
const mnemonicMarker = '&'

// Parse creates an Action from its canonical string representation, e.g.
// `alt-ctrl-d` or `alt-ctrl-d Delete`. The whole string must be valid; no
// partial action is ever returned.
func Parse(raw string) (*Action, error) {
	combo, caption, _ := strings.Cut(raw, " ")
	if combo == "" {
		return nil, fmt.Errorf("shortcut %q has no key combination", raw)
	}

	tokens := strings.Split(combo, "-")
	action := &Action{Caption: caption}

	for i, token := range tokens {
		if token == "" {
			return nil, fmt.Errorf("shortcut %q contains an empty token", raw)
		}

		last := i == len(tokens)-1
		if !last {
			mod, ok := ModifierByName(token)
			if !ok {
				return nil, fmt.Errorf("invalid modifier %q in shortcut %q", token, raw)
			}
			action.Modifiers = append(action.Modifiers, mod)
			continue
		}

		if key, ok := KeyByName(token); ok {
			action.KeyCode = key
			continue
		}

		// A trailing modifier is only allowed when the caption names the key.
		mod, ok := ModifierByName(token)
		if !ok {
			return nil, fmt.Errorf("invalid key %q in shortcut %q", token, raw)
		}
		key, stripped, ok := captionMnemonic(caption)
		if !ok {
			return nil, fmt.Errorf("shortcut %q has no key", raw)
		}
		action.Modifiers = append(action.Modifiers, mod)
		action.KeyCode = key
		action.Caption = stripped
	}

	return action, nil
}

// captionMnemonic finds the first `&`-marked letter or digit in a caption
// and returns its key code along with the caption minus the marker.
func captionMnemonic(caption string) (KeyCode, string, bool) {
	runes := []rune(caption)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != mnemonicMarker {
			continue
		}
		if key, ok := keyForChar(runes[i+1]); ok {
			stripped := string(runes[:i]) + string(runes[i+1:])
			return key, stripped, true
		}
	}
	return 0, caption, false
}

// String serializes the Action into its canonical string representation.
// It returns an empty string for actions whose key has no textual name.
func (a *Action) String() string {
	s, err := a.Format()
	if err != nil {
		return ""
	}
	return s
}

// Format serializes the Action into its canonical string representation.
func (a *Action) Format() (string, error) {
	if a == nil {
		return "", fmt.Errorf("shortcut action cannot be nil")
	}

	var sb strings.Builder
	for _, mod := range a.CanonicalModifiers() {
		name, ok := ModifierName(mod)
		if !ok {
			return "", fmt.Errorf("unknown modifier code %d", mod)
		}
		sb.WriteString(name)
		sb.WriteRune('-')
	}

	key, ok := KeyName(a.KeyCode)
	if !ok {
		return "", fmt.Errorf("unknown key code %d", a.KeyCode)
	}
	sb.WriteString(key)

	if a.Caption != "" {
		sb.WriteRune(' ')
		sb.WriteString(a.Caption)
	}
	return sb.String(), nil
}
