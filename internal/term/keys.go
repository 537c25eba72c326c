package term

import (
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/input"
	"github.com/tesselslate/hazel/internal/platform"
)

// Characters which need a key other than their own name.
var runeKeys = map[rune]event.Key{
	' ':  event.KeySpace,
	'-':  event.KeyMinus,
	'=':  event.KeyEqual,
	'[':  event.KeyBracketLeft,
	']':  event.KeyBracketRight,
	'\\': event.KeyBackslash,
	';':  event.KeySemicolon,
	'\'': event.KeyApostrophe,
	',':  event.KeyComma,
	'.':  event.KeyPeriod,
	'/':  event.KeySlash,
	'`':  event.KeyBacktick,
}

// Characters typed with shift held, on a US layout.
var shiftedRunes = map[rune]rune{
	'_': '-', '+': '=', '{': '[', '}': ']', '|': '\\',
	':': ';', '"': '\'', '<': ',', '>': '.', '?': '/', '~': '`',
	'!': '1', '@': '2', '#': '3', '$': '4', '%': '5',
	'^': '6', '&': '7', '*': '8', '(': '9', ')': '0',
}

// Terminal key names which differ from hazel's.
var namedKeys = map[string]event.Key{
	"space":  event.KeySpace,
	"esc":    event.KeyEscape,
	"pgup":   event.KeyPageUp,
	"pgdown": event.KeyPageDown,
}

// keyNotifications converts a terminal key press into native key
// notifications. Terminals do not report key releases, so a release follows
// every press immediately.
func keyNotifications(msg tea.KeyMsg) []platform.Notification {
	key, mods, ok := parseKey(msg.String())
	if !ok {
		return nil
	}
	code, ok := input.NativeKeycode(key)
	if !ok {
		return nil
	}
	press := platform.Notification{
		Kind:    platform.KindKey,
		Action:  platform.Press,
		Keycode: code,
		Mods:    mods.Native(),
	}
	release := press
	release.Action = platform.Release
	return []platform.Notification{press, release}
}

// parseKey parses a key description such as "ctrl+a", "alt+enter" or "Q".
func parseKey(str string) (event.Key, event.Modifiers, bool) {
	var mods event.Modifiers
prefixes:
	for {
		switch {
		case strings.HasPrefix(str, "ctrl+"):
			mods |= event.ModControl
			str = str[len("ctrl+"):]
		case strings.HasPrefix(str, "alt+"):
			mods |= event.ModAlt
			str = str[len("alt+"):]
		case strings.HasPrefix(str, "shift+"):
			mods |= event.ModShift
			str = str[len("shift+"):]
		default:
			break prefixes
		}
	}
	runes := []rune(str)
	if len(runes) == 1 {
		key, shift, ok := runeKey(runes[0])
		if shift {
			mods |= event.ModShift
		}
		return key, mods, ok
	}
	if key, ok := namedKeys[str]; ok {
		return key, mods, true
	}
	key, err := event.ParseKey(str)
	if err != nil {
		return event.KeyUnknown, mods, false
	}
	return key, mods, true
}

// runeKey returns the key which types the given character, and whether shift
// is needed to type it.
func runeKey(r rune) (event.Key, bool, bool) {
	shift := false
	if base, ok := shiftedRunes[r]; ok {
		r, shift = base, true
	} else if unicode.IsUpper(r) {
		r, shift = unicode.ToLower(r), true
	}
	if key, ok := runeKeys[r]; ok {
		return key, shift, true
	}
	if r > unicode.MaxASCII {
		return event.KeyUnknown, false, false
	}
	key, err := event.ParseKey(string(r))
	if err != nil {
		return event.KeyUnknown, false, false
	}
	return key, shift, true
}

// mouseNotifications converts a terminal mouse event into native
// notifications. Terminals do not say which button was released, so the
// last pressed button is assumed.
func (c *converter) mouseNotifications(msg tea.MouseMsg) []platform.Notification {
	var mods uint16
	if msg.Alt {
		mods |= platform.Mask1
	}
	if msg.Ctrl {
		mods |= platform.MaskControl
	}

	button := func(b uint8, action platform.Action) platform.Notification {
		return platform.Notification{
			Kind:   platform.KindMouseButton,
			Action: action,
			Button: b,
			Mods:   mods,
		}
	}
	switch msg.Type {
	case tea.MouseMotion:
		return []platform.Notification{{
			Kind: platform.KindCursorPos,
			PX:   float64(msg.X),
			PY:   float64(msg.Y),
		}}
	case tea.MouseLeft:
		c.lastButton = platform.ButtonLeft
		return []platform.Notification{button(platform.ButtonLeft, platform.Press)}
	case tea.MouseMiddle:
		c.lastButton = platform.ButtonMiddle
		return []platform.Notification{button(platform.ButtonMiddle, platform.Press)}
	case tea.MouseRight:
		c.lastButton = platform.ButtonRight
		return []platform.Notification{button(platform.ButtonRight, platform.Press)}
	case tea.MouseRelease:
		if c.lastButton == 0 {
			return nil
		}
		b := c.lastButton
		c.lastButton = 0
		return []platform.Notification{button(b, platform.Release)}
	case tea.MouseWheelUp:
		return []platform.Notification{{Kind: platform.KindScroll, PY: 1}}
	case tea.MouseWheelDown:
		return []platform.Notification{{Kind: platform.KindScroll, PY: -1}}
	}
	return nil
}
