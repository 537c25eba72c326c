package event

import "fmt"

// KeyPress is emitted when a key is pressed. Repeat is 0 for the initial
// press and 1 for every press delivered by the native auto-repeat.
type KeyPress struct {
	Key    Key
	Mods   Modifiers
	Repeat uint32
}

// KeyRelease is emitted when a key is released.
type KeyRelease struct {
	Key  Key
	Mods Modifiers
}

// MouseButtonPress is emitted when a mouse button is pressed.
type MouseButtonPress struct {
	Button MouseButton
	Mods   Modifiers
}

// MouseButtonRelease is emitted when a mouse button is released.
type MouseButtonRelease struct {
	Button MouseButton
	Mods   Modifiers
}

// MouseMove is emitted when the cursor moves. The coordinates are absolute
// and relative to the top left corner of the window.
type MouseMove struct {
	X, Y uint32
}

// MouseScroll is emitted when the user scrolls.
type MouseScroll struct {
	DX, DY float64
}

func (KeyPress) Category() Category           { return CategoryKeyboard }
func (KeyRelease) Category() Category         { return CategoryKeyboard }
func (MouseButtonPress) Category() Category   { return CategoryMouse }
func (MouseButtonRelease) Category() Category { return CategoryMouse }
func (MouseMove) Category() Category          { return CategoryMouse }
func (MouseScroll) Category() Category        { return CategoryMouse }

func (e KeyPress) String() string {
	return fmt.Sprintf("Keyboard(Press(%s, %s, %d))", e.Key, e.Mods, e.Repeat)
}
func (e KeyRelease) String() string {
	return fmt.Sprintf("Keyboard(Release(%s, %s))", e.Key, e.Mods)
}
func (e MouseButtonPress) String() string {
	return fmt.Sprintf("Mouse(ButtonPress(%s, %s))", e.Button, e.Mods)
}
func (e MouseButtonRelease) String() string {
	return fmt.Sprintf("Mouse(ButtonRelease(%s, %s))", e.Button, e.Mods)
}
func (e MouseMove) String() string {
	return fmt.Sprintf("Mouse(Move(%d, %d))", e.X, e.Y)
}
func (e MouseScroll) String() string {
	return fmt.Sprintf("Mouse(Scroll(%g, %g))", e.DX, e.DY)
}

func (KeyPress) event()           {}
func (KeyRelease) event()         {}
func (MouseButtonPress) event()   {}
func (MouseButtonRelease) event() {}
func (MouseMove) event()          {}
func (MouseScroll) event()        {}
