// internal/shortcut/shorthand.go
package shortcut

var shorthandModifiers = map[rune]Modifier{
	'&': Alt,
	'^': Ctrl,
	'_': Shift,
}

// FromShorthand creates an action from a shorthand caption. Modifier
// prefixes directly before the first letter or digit select the key
// combination, so "&^d" is alt-ctrl-d with caption "d". A doubled prefix
// character is kept as a literal. Without a valid combination the action
// has only a caption.
func FromShorthand(caption string) *Action {
	action := &Action{}
	runes := []rune(caption)
	out := make([]rune, 0, len(runes))

	var pending []Modifier
	found := false

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		mod, isPrefix := shorthandModifiers[r]

		if isPrefix && i+1 < len(runes) && runes[i+1] == r {
			out = append(out, r)
			i++
			pending = nil
			continue
		}
		if isPrefix && !found {
			pending = append(pending, mod)
			continue
		}

		if !found && len(pending) > 0 {
			if key, ok := keyForChar(r); ok {
				action.KeyCode = key
				action.Modifiers = pending
				found = true
			}
		}
		pending = nil
		out = append(out, r)
	}

	action.Caption = string(out)
	return action
}
