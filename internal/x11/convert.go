package x11

import (
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"golang.org/x/exp/slices"

	"github.com/tesselslate/hazel/internal/platform"
)

// repeatGrace is how long a key release is held back waiting for the press
// which would make it an auto-repeat.
const repeatGrace = 5 * time.Millisecond

// converter turns X events into platform notifications. It keeps the state
// needed to detect auto-repeat and geometry changes.
type converter struct {
	protocols    xproto.Atom // WM_PROTOCOLS
	deleteWindow xproto.Atom // WM_DELETE_WINDOW

	x, y          int32
	width, height uint32

	// Keys which are currently held down.
	held []xproto.Keycode

	// A key release which may be the first half of an auto-repeat pair. It
	// is emitted once the next event shows that it is not, or once it has
	// waited for repeatGrace.
	pending    *xproto.KeyReleaseEvent
	pendingAt  time.Time
	hasPending bool

	now func() time.Time
}

func newConverter(protocols, deleteWindow xproto.Atom, width, height uint32) *converter {
	return &converter{
		protocols:    protocols,
		deleteWindow: deleteWindow,
		width:        width,
		height:       height,
		now:          time.Now,
	}
}

// convert emits the notifications for a single X event.
func (c *converter) convert(evt xgb.Event, emit func(platform.Notification)) {
	if c.hasPending {
		if press, ok := evt.(xproto.KeyPressEvent); ok &&
			press.Detail == c.pending.Detail && press.Time == c.pending.Time {
			// Release and press with the same timestamp: the X server's
			// auto-repeat. The key is still held.
			c.hasPending = false
			emit(keyNotification(press.Detail, press.State, platform.Repeat))
			return
		}
		c.flush(emit)
	}

	switch evt := evt.(type) {
	case xproto.KeyPressEvent:
		action := platform.Press
		if slices.Contains(c.held, evt.Detail) {
			action = platform.Repeat
		} else {
			c.held = append(c.held, evt.Detail)
		}
		emit(keyNotification(evt.Detail, evt.State, action))
	case xproto.KeyReleaseEvent:
		c.pending = &evt
		c.pendingAt = c.now()
		c.hasPending = true

	case xproto.ButtonPressEvent:
		if dx, dy, ok := scrollDelta(evt.Detail); ok {
			emit(platform.Notification{Kind: platform.KindScroll, PX: dx, PY: dy})
			return
		}
		emit(buttonNotification(evt.Detail, evt.State, platform.Press))
	case xproto.ButtonReleaseEvent:
		if _, _, ok := scrollDelta(evt.Detail); ok {
			return
		}
		emit(buttonNotification(evt.Detail, evt.State, platform.Release))
	case xproto.MotionNotifyEvent:
		emit(platform.Notification{
			Kind: platform.KindCursorPos,
			PX:   float64(evt.EventX),
			PY:   float64(evt.EventY),
		})
	case xproto.EnterNotifyEvent:
		emit(platform.Notification{Kind: platform.KindCursorEnter, Focused: true})
	case xproto.LeaveNotifyEvent:
		emit(platform.Notification{Kind: platform.KindCursorEnter, Focused: false})

	case xproto.ConfigureNotifyEvent:
		x, y := int32(evt.X), int32(evt.Y)
		if x != c.x || y != c.y {
			c.x, c.y = x, y
			emit(platform.Notification{Kind: platform.KindPos, X: x, Y: y})
		}
		w, h := uint32(evt.Width), uint32(evt.Height)
		if w != c.width || h != c.height {
			c.width, c.height = w, h
			emit(platform.Notification{Kind: platform.KindSize, Width: w, Height: h})
		}
	case xproto.ExposeEvent:
		// Only the last of a series of expose events.
		if evt.Count == 0 {
			emit(platform.Notification{Kind: platform.KindRefresh})
		}
	case xproto.FocusInEvent:
		if evt.Mode == xproto.NotifyModeGrab || evt.Mode == xproto.NotifyModeUngrab {
			return
		}
		emit(platform.Notification{Kind: platform.KindFocus, Focused: true})
	case xproto.FocusOutEvent:
		if evt.Mode == xproto.NotifyModeGrab || evt.Mode == xproto.NotifyModeUngrab {
			return
		}
		// Keys released while unfocused are never reported.
		c.held = c.held[:0]
		emit(platform.Notification{Kind: platform.KindFocus, Focused: false})
	case xproto.MapNotifyEvent:
		emit(platform.Notification{Kind: platform.KindIconify, Focused: false})
	case xproto.UnmapNotifyEvent:
		emit(platform.Notification{Kind: platform.KindIconify, Focused: true})
	case xproto.ClientMessageEvent:
		if evt.Type == c.protocols && evt.Format == 32 &&
			xproto.Atom(evt.Data.Data32[0]) == c.deleteWindow {
			emit(platform.Notification{Kind: platform.KindClose})
		}
	}
}

// expire emits the pending key release if it has waited for repeatGrace.
// Otherwise, it returns how much longer the release can wait.
func (c *converter) expire(emit func(platform.Notification)) time.Duration {
	if !c.hasPending {
		return 0
	}
	left := repeatGrace - c.now().Sub(c.pendingAt)
	if left <= 0 {
		c.flush(emit)
		return 0
	}
	return left
}

// flush emits the pending key release, if there is one.
func (c *converter) flush(emit func(platform.Notification)) {
	if !c.hasPending {
		return
	}
	c.hasPending = false
	if idx := slices.Index(c.held, c.pending.Detail); idx >= 0 {
		c.held = slices.Delete(c.held, idx, idx+1)
	}
	emit(keyNotification(c.pending.Detail, c.pending.State, platform.Release))
}

func keyNotification(code xproto.Keycode, state uint16, action platform.Action) platform.Notification {
	return platform.Notification{
		Kind:    platform.KindKey,
		Action:  action,
		Keycode: platform.Keycode(code),
		Mods:    state,
	}
}

func buttonNotification(button xproto.Button, state uint16, action platform.Action) platform.Notification {
	return platform.Notification{
		Kind:   platform.KindMouseButton,
		Action: action,
		Button: uint8(button),
		Mods:   state,
	}
}

// scrollDelta returns the scroll offsets for the wheel buttons.
func scrollDelta(button xproto.Button) (float64, float64, bool) {
	switch uint8(button) {
	case platform.ButtonWheelUp:
		return 0, 1, true
	case platform.ButtonWheelDown:
		return 0, -1, true
	case platform.ButtonWheelLeft:
		return 1, 0, true
	case platform.ButtonWheelRight:
		return -1, 0, true
	}
	return 0, 0, false
}
