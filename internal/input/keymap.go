package input

import (
	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/platform"
)

// keymap maps every native keycode to a key. Codes which are not listed
// in knownKeys map to event.KeyUnknown.
var keymap [256]event.Key

var knownKeys = map[platform.Keycode]event.Key{
	platform.CodeA: event.KeyA,
	platform.CodeB: event.KeyB,
	platform.CodeC: event.KeyC,
	platform.CodeD: event.KeyD,
	platform.CodeE: event.KeyE,
	platform.CodeF: event.KeyF,
	platform.CodeG: event.KeyG,
	platform.CodeH: event.KeyH,
	platform.CodeI: event.KeyI,
	platform.CodeJ: event.KeyJ,
	platform.CodeK: event.KeyK,
	platform.CodeL: event.KeyL,
	platform.CodeM: event.KeyM,
	platform.CodeN: event.KeyN,
	platform.CodeO: event.KeyO,
	platform.CodeP: event.KeyP,
	platform.CodeQ: event.KeyQ,
	platform.CodeR: event.KeyR,
	platform.CodeS: event.KeyS,
	platform.CodeT: event.KeyT,
	platform.CodeU: event.KeyU,
	platform.CodeV: event.KeyV,
	platform.CodeW: event.KeyW,
	platform.CodeX: event.KeyX,
	platform.CodeY: event.KeyY,
	platform.CodeZ: event.KeyZ,

	platform.CodeCtrlLeft:   event.KeyCtrlLeft,
	platform.CodeCtrlRight:  event.KeyCtrlRight,
	platform.CodeShiftLeft:  event.KeyShiftLeft,
	platform.CodeShiftRight: event.KeyShiftRight,
	platform.CodeAltLeft:    event.KeyAltLeft,
	platform.CodeAltRight:   event.KeyAltRight,
	platform.CodeOSLeft:     event.KeyOSLeft,
	platform.CodeOSRight:    event.KeyOSRight,
	platform.CodeCapsLock:   event.KeyCapsLock,
	platform.CodeNumLock:    event.KeyNumLock,
	platform.CodeScrollLock: event.KeyScrollLock,

	platform.Code0: event.KeyDigit0,
	platform.Code1: event.KeyDigit1,
	platform.Code2: event.KeyDigit2,
	platform.Code3: event.KeyDigit3,
	platform.Code4: event.KeyDigit4,
	platform.Code5: event.KeyDigit5,
	platform.Code6: event.KeyDigit6,
	platform.Code7: event.KeyDigit7,
	platform.Code8: event.KeyDigit8,
	platform.Code9: event.KeyDigit9,

	platform.CodeNum0:        event.KeyNum0,
	platform.CodeNum1:        event.KeyNum1,
	platform.CodeNum2:        event.KeyNum2,
	platform.CodeNum3:        event.KeyNum3,
	platform.CodeNum4:        event.KeyNum4,
	platform.CodeNum5:        event.KeyNum5,
	platform.CodeNum6:        event.KeyNum6,
	platform.CodeNum7:        event.KeyNum7,
	platform.CodeNum8:        event.KeyNum8,
	platform.CodeNum9:        event.KeyNum9,
	platform.CodeNumAdd:      event.KeyNumAdd,
	platform.CodeNumSubtract: event.KeyNumSubtract,
	platform.CodeNumMultiply: event.KeyNumMultiply,
	platform.CodeNumDivide:   event.KeyNumDivide,
	platform.CodeNumDecimal:  event.KeyNumDecimal,
	platform.CodeNumEnter:    event.KeyNumEnter,

	platform.CodeF1:  event.KeyF1,
	platform.CodeF2:  event.KeyF2,
	platform.CodeF3:  event.KeyF3,
	platform.CodeF4:  event.KeyF4,
	platform.CodeF5:  event.KeyF5,
	platform.CodeF6:  event.KeyF6,
	platform.CodeF7:  event.KeyF7,
	platform.CodeF8:  event.KeyF8,
	platform.CodeF9:  event.KeyF9,
	platform.CodeF10: event.KeyF10,
	platform.CodeF11: event.KeyF11,
	platform.CodeF12: event.KeyF12,

	platform.CodePrintScreen: event.KeyPrintScreen,
	platform.CodePause:       event.KeyPause,
	platform.CodeMenu:        event.KeyMenu,

	platform.CodeInsert:   event.KeyInsert,
	platform.CodeDelete:   event.KeyDelete,
	platform.CodeHome:     event.KeyHome,
	platform.CodeEnd:      event.KeyEnd,
	platform.CodePageUp:   event.KeyPageUp,
	platform.CodePageDown: event.KeyPageDown,

	platform.CodeUp:    event.KeyUp,
	platform.CodeRight: event.KeyRight,
	platform.CodeDown:  event.KeyDown,
	platform.CodeLeft:  event.KeyLeft,

	platform.CodeBracketLeft:  event.KeyBracketLeft,
	platform.CodeBracketRight: event.KeyBracketRight,
	platform.CodeBackslash:    event.KeyBackslash,
	platform.CodeSemicolon:    event.KeySemicolon,
	platform.CodeApostrophe:   event.KeyApostrophe,
	platform.CodeComma:        event.KeyComma,
	platform.CodePeriod:       event.KeyPeriod,
	platform.CodeSlash:        event.KeySlash,
	platform.CodeBacktick:     event.KeyBacktick,
	platform.CodeMinus:        event.KeyMinus,
	platform.CodeEqual:        event.KeyEqual,

	platform.CodeTab:       event.KeyTab,
	platform.CodeEnter:     event.KeyEnter,
	platform.CodeEscape:    event.KeyEscape,
	platform.CodeSpace:     event.KeySpace,
	platform.CodeBackspace: event.KeyBackspace,
}

// keycodes is the inverse of keymap for keys which have a native code.
var keycodes = make(map[event.Key]platform.Keycode, len(knownKeys))

func init() {
	for i := range keymap {
		keymap[i] = event.KeyUnknown
	}
	for code, key := range knownKeys {
		keymap[code] = key
		keycodes[key] = code
	}
}

// KeyFromNative returns the key for a native keycode. The mapping is total:
// unrecognized codes map to event.KeyUnknown.
func KeyFromNative(code platform.Keycode) event.Key {
	return keymap[code]
}

// NativeKeycode returns the native keycode of key, if it has one.
func NativeKeycode(key event.Key) (platform.Keycode, bool) {
	code, ok := keycodes[key]
	return code, ok
}

// ButtonFromNative returns the mouse button for a native button number.
// Native buttons 4 through 7 are scroll wheel directions and, like any number
// above platform.ButtonMax, have no mouse button.
func ButtonFromNative(button uint8) (event.MouseButton, bool) {
	switch {
	case button == platform.ButtonLeft:
		return event.MousePrimary, true
	case button == platform.ButtonMiddle:
		return event.MouseMiddle, true
	case button == platform.ButtonRight:
		return event.MouseSecondary, true
	case button == platform.ButtonBack:
		return event.MouseBack, true
	case button == platform.ButtonForward:
		return event.MouseForward, true
	case button > platform.ButtonForward && button <= platform.ButtonMax:
		return event.MouseButton6 + event.MouseButton(button-platform.ButtonForward-1), true
	}
	return 0, false
}

// NativeButton returns the native button number of a mouse button.
func NativeButton(button event.MouseButton) uint8 {
	switch button {
	case event.MousePrimary:
		return platform.ButtonLeft
	case event.MouseMiddle:
		return platform.ButtonMiddle
	case event.MouseSecondary:
		return platform.ButtonRight
	case event.MouseBack:
		return platform.ButtonBack
	case event.MouseForward:
		return platform.ButtonForward
	}
	return platform.ButtonForward + 1 + uint8(button-event.MouseButton6)
}
