// internal/shortcut/types.go
package shortcut

import (
	"slices"

	"github.com/samber/lo"
	"github.com/vk/designfmt/internal/resource"
)

// KeyCode identifies a keyboard key.
type KeyCode int

// Modifier identifies a modifier key.
type Modifier int

const (
	Shift Modifier = 16
	Ctrl  Modifier = 17
	Alt   Modifier = 18
	Meta  Modifier = 91
)

const (
	KeyBackspace  KeyCode = 8
	KeyTab        KeyCode = 9
	KeyEnter      KeyCode = 13
	KeyEscape     KeyCode = 27
	KeySpacebar   KeyCode = 32
	KeyPageUp     KeyCode = 33
	KeyPageDown   KeyCode = 34
	KeyEnd        KeyCode = 35
	KeyHome       KeyCode = 36
	KeyArrowLeft  KeyCode = 37
	KeyArrowUp    KeyCode = 38
	KeyArrowRight KeyCode = 39
	KeyArrowDown  KeyCode = 40
	KeyInsert     KeyCode = 45
	KeyDelete     KeyCode = 46

	Key0 KeyCode = 48
	KeyA KeyCode = 65
	KeyD KeyCode = 68
	KeyZ KeyCode = 90

	KeyF1 KeyCode = 112
)

// canonicalOrder is the order in which modifiers are written out.
var canonicalOrder = []Modifier{Alt, Ctrl, Shift, Meta}

// Action is a keyboard-triggerable action.
type Action struct {
	Caption   string
	KeyCode   KeyCode
	Modifiers []Modifier
	Icon      resource.Resource
}

// New creates an action for the given key combination.
func New(caption string, key KeyCode, modifiers ...Modifier) *Action {
	return &Action{Caption: caption, KeyCode: key, Modifiers: modifiers}
}

// CanonicalModifiers returns the distinct modifiers of the action in
// canonical order. Unknown modifier codes sort last, ascending.
func (a *Action) CanonicalModifiers() []Modifier {
	mods := lo.Uniq(a.Modifiers)
	slices.SortFunc(mods, func(x, y Modifier) int {
		ix, iy := slices.Index(canonicalOrder, x), slices.Index(canonicalOrder, y)
		if ix == -1 {
			ix = len(canonicalOrder)
		}
		if iy == -1 {
			iy = len(canonicalOrder)
		}
		if ix != iy {
			return ix - iy
		}
		return int(x) - int(y)
	})
	return mods
}

// Equal reports whether two actions have the same caption, icon, key and
// modifier set. Modifier order and duplicates are ignored.
func (a *Action) Equal(other *Action) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Caption == other.Caption &&
		resource.Equal(a.Icon, other.Icon) &&
		a.KeyCode == other.KeyCode &&
		lo.Every(a.Modifiers, other.Modifiers) &&
		lo.Every(other.Modifiers, a.Modifiers)
}
