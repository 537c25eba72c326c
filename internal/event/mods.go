package event

import (
	"fmt"
	"strings"
)

// Modifiers is a set of keyboard modifiers which were active when an input
// event occurred. The bit layout is that of the native (X11 core protocol)
// modifier mask, so a native mask can be copied into a Modifiers directly.
type Modifiers uint16

// Modifier flags
const (
	ModShift    Modifiers = 1 << 0
	ModCapsLock Modifiers = 1 << 1
	ModControl  Modifiers = 1 << 2
	ModAlt      Modifiers = 1 << 3 // Mod1
	ModNumLock  Modifiers = 1 << 4 // Mod2
	ModSuper    Modifiers = 1 << 6 // Mod4

	ModNone Modifiers = 0

	// modMask contains every named flag. Bits outside of it (Mod3, Mod5,
	// pointer button state) are never copied from a native mask.
	modMask = ModShift | ModCapsLock | ModControl | ModAlt | ModNumLock | ModSuper
)

// Order in which flags are listed by Flags and String.
var modOrder = [...]Modifiers{
	ModControl,
	ModShift,
	ModAlt,
	ModSuper,
	ModCapsLock,
	ModNumLock,
}

var modNames = map[Modifiers]string{
	ModShift:    "shift",
	ModCapsLock: "capslock",
	ModControl:  "ctrl",
	ModAlt:      "alt",
	ModNumLock:  "numlock",
	ModSuper:    "super",
}

var modsByName = map[string]Modifiers{
	"shift":    ModShift,
	"ctrl":     ModControl,
	"control":  ModControl,
	"alt":      ModAlt,
	"mod1":     ModAlt,
	"numlock":  ModNumLock,
	"mod2":     ModNumLock,
	"super":    ModSuper,
	"mod4":     ModSuper,
	"capslock": ModCapsLock,
	"lock":     ModCapsLock,
}

// ModifiersFromNative copies the named modifier bits out of a native
// modifier mask.
func ModifiersFromNative(mask uint16) Modifiers {
	return Modifiers(mask) & modMask
}

// ParseModifiers parses a list of modifier names separated by '+' or '-'
// (e.g. "ctrl+shift".)
func ParseModifiers(str string) (Modifiers, error) {
	var m Modifiers
	str = strings.TrimSpace(str)
	if str == "" || strings.EqualFold(str, "none") {
		return ModNone, nil
	}
	for _, name := range strings.FieldsFunc(str, isModSeparator) {
		mod, ok := modsByName[strings.ToLower(name)]
		if !ok {
			return ModNone, fmt.Errorf("unknown modifier %q", name)
		}
		m |= mod
	}
	return m, nil
}

// Empty returns whether no modifiers are set.
func (m Modifiers) Empty() bool {
	return m&modMask == 0
}

// Has returns whether every flag in other is set in m.
func (m Modifiers) Has(other Modifiers) bool {
	return m&other == other
}

// With returns the union of m and other.
func (m Modifiers) With(other Modifiers) Modifiers {
	return (m | other) & modMask
}

// Intersect returns the flags set in both m and other.
func (m Modifiers) Intersect(other Modifiers) Modifiers {
	return m & other & modMask
}

// Native returns the native modifier mask for m.
func (m Modifiers) Native() uint16 {
	return uint16(m & modMask)
}

// Flags returns each flag set in m individually.
func (m Modifiers) Flags() []Modifiers {
	var flags []Modifiers
	for _, flag := range modOrder {
		if m&flag != 0 {
			flags = append(flags, flag)
		}
	}
	return flags
}

// String implements Stringer.
func (m Modifiers) String() string {
	if m.Empty() {
		return "none"
	}
	names := make([]string, 0, len(modOrder))
	for _, flag := range m.Flags() {
		names = append(names, modNames[flag])
	}
	return strings.Join(names, "+")
}

func isModSeparator(r rune) bool {
	return r == '+' || r == '-'
}
