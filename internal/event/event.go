// Package event contains the closed set of events which hazel can deliver to
// an application.
//
// Every event is a small value type. Events are compared with == and
// inspected with a type switch:
//
//	switch evt := evt.(type) {
//	case event.KeyPress:
//	    ...
//	case event.WindowResize:
//	    ...
//	}
package event

import "fmt"

// Category is the top-level variant of an Event.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryApp
	CategoryWindow
	CategoryKeyboard
	CategoryMouse
)

var categoryNames = [...]string{
	CategoryNone:     "none",
	CategoryApp:      "app",
	CategoryWindow:   "window",
	CategoryKeyboard: "keyboard",
	CategoryMouse:    "mouse",
}

// String implements Stringer.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// An Event is a single platform-independent event. The set of types which
// implement Event is closed; only the types in this package do.
type Event interface {
	fmt.Stringer

	// Category returns the variant this event belongs to.
	Category() Category

	event()
}

// None is produced when a native notification carries nothing the
// application cares about. It is never delivered to an application.
type None struct{}

func (None) Category() Category { return CategoryNone }
func (None) String() string     { return "None" }
func (None) event()             {}

// IsNone returns whether the given event is the None sentinel (or nil).
func IsNone(evt Event) bool {
	if evt == nil {
		return true
	}
	return evt.Category() == CategoryNone
}
