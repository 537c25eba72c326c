// Package platform describes the native window system as seen by hazel: the
// raw notifications a window reports and the operations hazel needs from it.
//
// Notifications use the numbering of the X11 core protocol for keycodes,
// pointer buttons and modifier masks. Window implementations for other
// systems convert into that numbering.
package platform

import (
	"errors"
	"fmt"
)

// ErrClosed is returned by Window.Poll once the native window system
// connection has gone away.
var ErrClosed = errors.New("window system connection closed")

// Kind is the type of a native notification.
type Kind uint8

// Notification kinds
const (
	KindUnknown     Kind = iota
	KindPos              // window moved (X, Y)
	KindSize             // window resized (Width, Height)
	KindClose            // close requested
	KindFocus            // focus changed (Focused)
	KindRefresh          // contents need to be redrawn
	KindCursorPos        // cursor moved (PX, PY)
	KindScroll           // scrolled (PX, PY)
	KindMouseButton      // button action (Button, Action, Mods)
	KindKey              // key action (Keycode, Action, Mods)
	KindCursorEnter      // cursor entered or left the window (Focused)
	KindIconify          // window (de)iconified (Focused)
	KindChar             // text input (Char)
)

var kindNames = [...]string{
	KindUnknown:     "unknown",
	KindPos:         "pos",
	KindSize:        "size",
	KindClose:       "close",
	KindFocus:       "focus",
	KindRefresh:     "refresh",
	KindCursorPos:   "cursor_pos",
	KindScroll:      "scroll",
	KindMouseButton: "mouse_button",
	KindKey:         "key",
	KindCursorEnter: "cursor_enter",
	KindIconify:     "iconify",
	KindChar:        "char",
}

// String implements Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind returns the Kind with the given name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindUnknown, fmt.Errorf("unknown notification kind %q", name)
}

// Action is the state change reported by a key or button notification.
type Action uint8

// Actions
const (
	Release Action = iota
	Press
	Repeat
)

var actionNames = [...]string{"release", "press", "repeat"}

// String implements Stringer.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", uint8(a))
}

// ParseAction returns the Action with the given name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return Release, fmt.Errorf("unknown action %q", name)
}

// Notification is a single native window system notification. Which fields
// are meaningful depends on Kind.
type Notification struct {
	Kind   Kind
	Action Action

	X, Y          int32  // KindPos
	Width, Height uint32 // KindSize
	Focused       bool   // KindFocus, KindCursorEnter, KindIconify

	// Cursor position for KindCursorPos, scroll offsets for KindScroll.
	PX, PY float64

	Button  uint8   // KindMouseButton
	Keycode Keycode // KindKey
	Mods    uint16  // native modifier mask
	Char    rune    // KindChar
}

// String implements Stringer.
func (n Notification) String() string {
	switch n.Kind {
	case KindPos:
		return fmt.Sprintf("pos(%d, %d)", n.X, n.Y)
	case KindSize:
		return fmt.Sprintf("size(%d, %d)", n.Width, n.Height)
	case KindFocus, KindCursorEnter, KindIconify:
		return fmt.Sprintf("%s(%t)", n.Kind, n.Focused)
	case KindCursorPos, KindScroll:
		return fmt.Sprintf("%s(%g, %g)", n.Kind, n.PX, n.PY)
	case KindMouseButton:
		return fmt.Sprintf("mouse_button(%d, %s, %#x)", n.Button, n.Action, n.Mods)
	case KindKey:
		return fmt.Sprintf("key(%d, %s, %#x)", n.Keycode, n.Action, n.Mods)
	case KindChar:
		return fmt.Sprintf("char(%q)", n.Char)
	default:
		return n.Kind.String()
	}
}

// Presenter can present (swap) the window's buffer.
type Presenter interface {
	Present() error
}

// Window is a native window, owned by a single polling context.
type Window interface {
	Presenter

	// Poll synchronously delivers every pending notification to fn in the
	// order the window system reported them. It returns ErrClosed once the
	// window system has gone away.
	Poll(fn func(Notification)) error

	// Width returns the last known width of the window.
	Width() uint32

	// Height returns the last known height of the window.
	Height() uint32

	// VSync returns whether presenting is synchronized to the display.
	VSync() bool

	// Close destroys the window.
	Close() error
}
