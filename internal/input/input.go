// Package input translates native window system notifications into hazel
// events.
package input

import (
	"math"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/log"
	"github.com/tesselslate/hazel/internal/metrics"
	"github.com/tesselslate/hazel/internal/platform"
)

// Translator converts native notifications into events. It holds the
// window's Presenter so that refresh notifications can be answered
// immediately.
type Translator struct {
	presenter platform.Presenter
}

// NewTranslator creates a Translator which presents to the given window when
// it translates a refresh notification.
func NewTranslator(presenter platform.Presenter) *Translator {
	return &Translator{presenter}
}

// Translate converts a single notification into exactly one event. Any
// notification which carries nothing of interest becomes event.None.
// Translation never fails.
func (t *Translator) Translate(n platform.Notification) event.Event {
	kind := n.Kind.String()
	metrics.RecordTranslated(kind)
	evt := t.translate(n)
	if event.IsNone(evt) {
		metrics.RecordDropped(kind)
		log.Debug("Dropped notification %s", n)
	}
	return evt
}

func (t *Translator) translate(n platform.Notification) event.Event {
	switch n.Kind {
	// Window
	case platform.KindPos:
		return event.WindowMove{X: n.X, Y: n.Y}
	case platform.KindSize:
		return event.WindowResize{Width: n.Width, Height: n.Height}
	case platform.KindClose:
		return event.WindowClose{}
	case platform.KindFocus:
		if n.Focused {
			return event.WindowFocus{}
		}
		return event.WindowBlur{}
	case platform.KindRefresh:
		t.refresh()
		return event.None{}

	// Mouse
	case platform.KindCursorPos:
		return event.MouseMove{X: toPixel(n.PX), Y: toPixel(n.PY)}
	case platform.KindScroll:
		return event.MouseScroll{DX: n.PX, DY: n.PY}
	case platform.KindMouseButton:
		button, ok := ButtonFromNative(n.Button)
		if !ok {
			return event.None{}
		}
		mods := event.ModifiersFromNative(n.Mods)
		switch n.Action {
		case platform.Release:
			return event.MouseButtonRelease{Button: button, Mods: mods}
		case platform.Press:
			return event.MouseButtonPress{Button: button, Mods: mods}
		default:
			return event.None{}
		}

	// Keyboard
	case platform.KindKey:
		key := KeyFromNative(n.Keycode)
		mods := event.ModifiersFromNative(n.Mods)
		switch n.Action {
		case platform.Release:
			return event.KeyRelease{Key: key, Mods: mods}
		case platform.Press:
			return event.KeyPress{Key: key, Mods: mods, Repeat: 0}
		case platform.Repeat:
			return event.KeyPress{Key: key, Mods: mods, Repeat: 1}
		default:
			return event.None{}
		}
	}
	return event.None{}
}

// refresh presents the window's buffer in response to a refresh
// notification.
func (t *Translator) refresh() {
	if t.presenter == nil {
		return
	}
	if err := t.presenter.Present(); err != nil {
		log.Warn("Present on refresh failed: %s", err)
		return
	}
	metrics.RecordRefreshPresent()
}

// toPixel rounds a cursor coordinate to an unsigned pixel position.
func toPixel(v float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(math.Round(v))
}
