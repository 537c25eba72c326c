package event

import (
	"fmt"
	"strings"
)

// Key is a symbolic keyboard key, independent of the keyboard layout.
type Key uint8

// Keys
const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyCtrlLeft
	KeyCtrlRight
	KeyShiftLeft
	KeyShiftRight
	KeyAltLeft
	KeyAltRight
	KeyOSLeft
	KeyOSRight
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyNumAdd
	KeyNumSubtract
	KeyNumMultiply
	KeyNumDivide
	KeyNumDecimal
	KeyNumEnter

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyPrintScreen
	KeySysRq
	KeyPause
	KeyMenu

	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyRight
	KeyDown
	KeyLeft

	KeyBracketLeft
	KeyBracketRight
	KeyBackslash
	KeySemicolon
	KeyApostrophe
	KeyComma
	KeyPeriod
	KeySlash
	KeyBacktick
	KeyMinus
	KeyEqual

	KeyTab
	KeyEnter
	KeyEscape
	KeySpace
	KeyBackspace

	// KeyUnknown is any key without a symbolic identifier. It is always the
	// last key.
	KeyUnknown
)

// KeyCount is the number of keys, including KeyUnknown.
const KeyCount = int(KeyUnknown) + 1

var keyNames = [KeyCount]string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"ctrl_left", "ctrl_right", "shift_left", "shift_right",
	"alt_left", "alt_right", "os_left", "os_right",
	"capslock", "numlock", "scrolllock",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"num0", "num1", "num2", "num3", "num4",
	"num5", "num6", "num7", "num8", "num9",
	"num_add", "num_subtract", "num_multiply", "num_divide",
	"num_decimal", "num_enter",
	"f1", "f2", "f3", "f4", "f5", "f6",
	"f7", "f8", "f9", "f10", "f11", "f12",
	"printscreen", "sysrq", "pause", "menu",
	"insert", "delete", "home", "end", "pageup", "pagedown",
	"up", "right", "down", "left",
	"bracket_left", "bracket_right", "backslash", "semicolon",
	"apostrophe", "comma", "period", "slash", "backtick",
	"minus", "equal",
	"tab", "enter", "escape", "space", "backspace",
	"unknown",
}

// Alternate spellings accepted by ParseKey.
var keyAliases = map[string]Key{
	"esc":       KeyEscape,
	"return":    KeyEnter,
	"del":       KeyDelete,
	"ins":       KeyInsert,
	"pgup":      KeyPageUp,
	"pgdown":    KeyPageDown,
	"print":     KeyPrintScreen,
	"grave":     KeyBacktick,
	"super_l":   KeyOSLeft,
	"super_r":   KeyOSRight,
	"lbracket":  KeyBracketLeft,
	"rbracket":  KeyBracketRight,
	"quote":     KeyApostrophe,
	"dash":      KeyMinus,
	"equals":    KeyEqual,
	"caps_lock": KeyCapsLock,
	"num_lock":  KeyNumLock,
}

var keysByName map[string]Key

func init() {
	keysByName = make(map[string]Key, KeyCount+len(keyAliases))
	for k, name := range keyNames {
		keysByName[name] = Key(k)
	}
	for name, k := range keyAliases {
		keysByName[name] = k
	}
}

// ParseKey returns the key with the given name. Names are case insensitive.
func ParseKey(name string) (Key, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyUnknown, fmt.Errorf("unknown key %q", name)
	}
	return k, nil
}

// String implements Stringer.
func (k Key) String() string {
	if int(k) < KeyCount {
		return keyNames[k]
	}
	return keyNames[KeyUnknown]
}

// Valid returns whether k is one of the defined keys (KeyUnknown included).
func (k Key) Valid() bool {
	return int(k) < KeyCount
}
