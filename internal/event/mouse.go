package event

import "fmt"

// MouseButton is a mouse button.
type MouseButton uint8

// Mouse buttons
const (
	MousePrimary MouseButton = iota
	MouseSecondary
	MouseMiddle
	MouseBack
	MouseForward
	MouseButton6
	MouseButton7
	MouseButton8
	MouseButton9
	MouseButton10
	MouseButton11
	MouseButton12
	MouseButton13
	MouseButton14
	MouseButton15
	MouseButton16
	MouseButton17
	MouseButton18
	MouseButton19
	MouseButton20
)

// MouseButtonCount is the number of mouse buttons.
const MouseButtonCount = int(MouseButton20) + 1

// String implements Stringer.
func (b MouseButton) String() string {
	switch b {
	case MousePrimary:
		return "primary"
	case MouseSecondary:
		return "secondary"
	case MouseMiddle:
		return "middle"
	case MouseBack:
		return "back"
	case MouseForward:
		return "forward"
	}
	if int(b) < MouseButtonCount {
		return fmt.Sprintf("button%d", int(b)+1)
	}
	return fmt.Sprintf("mousebutton(%d)", uint8(b))
}
