package event

import "fmt"

// WindowClose is emitted when the user asks for the window to be closed.
type WindowClose struct{}

// WindowResize is emitted when the size of the window changes.
type WindowResize struct {
	Width, Height uint32
}

// WindowFocus is emitted when the window gains input focus.
type WindowFocus struct{}

// WindowBlur is emitted when the window loses input focus.
type WindowBlur struct{}

// WindowMove is emitted when the window is moved. The coordinates are those
// of the top left corner of the window on the screen.
type WindowMove struct {
	X, Y int32
}

func (WindowClose) Category() Category  { return CategoryWindow }
func (WindowResize) Category() Category { return CategoryWindow }
func (WindowFocus) Category() Category  { return CategoryWindow }
func (WindowBlur) Category() Category   { return CategoryWindow }
func (WindowMove) Category() Category   { return CategoryWindow }

func (WindowClose) String() string { return "Window(Close)" }
func (e WindowResize) String() string {
	return fmt.Sprintf("Window(Resize(%d, %d))", e.Width, e.Height)
}
func (WindowFocus) String() string { return "Window(Focus)" }
func (WindowBlur) String() string  { return "Window(Blur)" }
func (e WindowMove) String() string {
	return fmt.Sprintf("Window(Move(%d, %d))", e.X, e.Y)
}

func (WindowClose) event()  {}
func (WindowResize) event() {}
func (WindowFocus) event()  {}
func (WindowBlur) event()   {}
func (WindowMove) event()   {}
