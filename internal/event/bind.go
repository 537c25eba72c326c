package event

import (
	"errors"
	"fmt"
	"strings"
)

// Bind is a key combined with the modifiers which must be held alongside it,
// written as e.g. "ctrl-shift-q".
type Bind struct {
	Key  Key
	Mods Modifiers
}

// ParseBind parses a bind from its textual form.
func ParseBind(str string) (Bind, error) {
	var b Bind
	if strings.TrimSpace(str) == "" {
		return b, errors.New("empty bind")
	}
	haveKey := false
	for _, split := range strings.Split(str, "-") {
		split = strings.ToLower(strings.TrimSpace(split))
		if mod, ok := modsByName[split]; ok {
			b.Mods |= mod
			continue
		}
		key, err := ParseKey(split)
		if err != nil {
			return Bind{}, fmt.Errorf("unrecognized bind element %q", split)
		}
		if haveKey {
			return Bind{}, errors.New("more than one key")
		}
		b.Key = key
		haveKey = true
	}
	if !haveKey {
		return Bind{}, errors.New("bind has no key")
	}
	return b, nil
}

// Matches returns whether a key press of key with mods triggers the bind.
// Lock modifiers are ignored.
func (b Bind) Matches(key Key, mods Modifiers) bool {
	const locks = ModCapsLock | ModNumLock
	return b.Key == key && b.Mods&^locks == mods&modMask&^locks
}

// String implements Stringer.
func (b Bind) String() string {
	var s strings.Builder
	for _, flag := range b.Mods.Flags() {
		s.WriteString(modNames[flag])
		s.WriteByte('-')
	}
	s.WriteString(b.Key.String())
	return s.String()
}
