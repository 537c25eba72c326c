// Package app defines the interface between hazel and application code.
//
// An application embeds Base and overrides the callbacks it is interested
// in:
//
//	type Game struct {
//	    app.Base
//	}
//
//	func (g *Game) OnKeyDown(key event.Key, mods event.Modifiers, repeat uint32) {
//	    ...
//	}
package app

import (
	"os"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/transport"
)

// Exit is called by the default OnWindowClose. It can be replaced in tests.
var Exit = os.Exit

// Handler receives events from the dispatch loop. Every callback runs on the
// dispatch goroutine, one at a time, in the order the events were produced.
// A callback which blocks delays every following event and tick.
type Handler interface {
	Tick()
	OnUpdate()
	OnRender()

	OnWindowResize(width, height uint32)
	OnWindowMove(x, y int32)
	OnWindowClose()
	OnWindowFocus()
	OnWindowBlur()

	OnKeyDown(key event.Key, mods event.Modifiers, repeat uint32)
	OnKeyUp(key event.Key, mods event.Modifiers)

	OnMouseDown(button event.MouseButton, mods event.Modifiers)
	OnMouseUp(button event.MouseButton, mods event.Modifiers)
	OnMouseMove(x, y uint32)
	OnScroll(dx, dy float64)
}

// Constructor builds an application. The emitter can be used by the
// application to queue events for itself. Sending never blocks, and the
// events are delivered in the order they were sent, after the callback which
// sent them returns.
type Constructor func(emit transport.Emitter) Handler

// Runner is the coarse alternative to Handler, used by engine.RunDelta. Run
// is called once per loop iteration with the number of milliseconds elapsed
// since the previous call.
type Runner interface {
	Run(deltaMillis float64)
}

// Base implements every Handler callback as a no-op, except for
// OnWindowClose, which exits the process with status 0.
type Base struct{}

func (Base) Tick()     {}
func (Base) OnUpdate() {}
func (Base) OnRender() {}

func (Base) OnWindowResize(width, height uint32) {}
func (Base) OnWindowMove(x, y int32)             {}
func (Base) OnWindowFocus()                      {}
func (Base) OnWindowBlur()                       {}

// OnWindowClose exits the process with status 0. Override it to keep running
// after the window is closed.
func (Base) OnWindowClose() {
	Exit(0)
}

func (Base) OnKeyDown(key event.Key, mods event.Modifiers, repeat uint32) {}
func (Base) OnKeyUp(key event.Key, mods event.Modifiers)                  {}

func (Base) OnMouseDown(button event.MouseButton, mods event.Modifiers) {}
func (Base) OnMouseUp(button event.MouseButton, mods event.Modifiers)   {}
func (Base) OnMouseMove(x, y uint32)                                    {}
func (Base) OnScroll(dx, dy float64)                                    {}

// Dispatch invokes the callback of h matching evt. It returns false, without
// calling anything, for event.None.
func Dispatch(h Handler, evt event.Event) bool {
	switch evt := evt.(type) {
	case event.Tick:
		h.Tick()
	case event.Update:
		h.OnUpdate()
	case event.Render:
		h.OnRender()

	case event.WindowResize:
		h.OnWindowResize(evt.Width, evt.Height)
	case event.WindowMove:
		h.OnWindowMove(evt.X, evt.Y)
	case event.WindowClose:
		h.OnWindowClose()
	case event.WindowFocus:
		h.OnWindowFocus()
	case event.WindowBlur:
		h.OnWindowBlur()

	case event.KeyPress:
		h.OnKeyDown(evt.Key, evt.Mods, evt.Repeat)
	case event.KeyRelease:
		h.OnKeyUp(evt.Key, evt.Mods)

	case event.MouseButtonPress:
		h.OnMouseDown(evt.Button, evt.Mods)
	case event.MouseButtonRelease:
		h.OnMouseUp(evt.Button, evt.Mods)
	case event.MouseMove:
		h.OnMouseMove(evt.X, evt.Y)
	case event.MouseScroll:
		h.OnScroll(evt.DX, evt.DY)

	default:
		return false
	}
	return true
}
