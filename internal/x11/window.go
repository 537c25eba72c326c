// Package x11 implements a platform.Window on top of the X11 core protocol.
package x11

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"

	"github.com/tesselslate/hazel/internal/log"
	"github.com/tesselslate/hazel/internal/platform"
)

// Atom names
const (
	wmProtocols    = "WM_PROTOCOLS"
	wmDeleteWindow = "WM_DELETE_WINDOW"
	netWmName      = "_NET_WM_NAME"
	utf8String     = "UTF8_STRING"
)

// Events the window listens for.
const eventMask uint32 = xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskEnterWindow |
	xproto.EventMaskLeaveWindow |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange

// Options contains the settings used to create a window.
type Options struct {
	Title  string
	Width  uint32
	Height uint32
	VSync  bool
}

// xevent is an event or error read from the X connection.
type xevent struct {
	evt xgb.Event
	err xgb.Error
}

// Window is an X11 window.
type Window struct {
	atoms *atomCache
	conn  *xgb.Conn
	id    xproto.Window

	conv   *converter
	events chan xevent
	done   chan struct{}
	once   sync.Once

	width, height atomic.Uint32
}

// Open connects to the X server and creates and maps a window. Errors are
// returned before anything is shown.
func Open(opts Options) (*Window, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(err, "connect to X server")
	}
	w, err := create(conn, opts)
	if err != nil {
		conn.Close()
		return nil, err
	}
	go w.read()
	return w, nil
}

func create(conn *xgb.Conn, opts Options) (*Window, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)
	id, err := xproto.NewWindowId(conn)
	if err != nil {
		return nil, errors.Wrap(err, "allocate window id")
	}
	err = xproto.CreateWindowChecked(
		conn,
		screen.RootDepth,
		id,
		screen.Root,
		0, 0,
		uint16(opts.Width), uint16(opts.Height),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.BlackPixel, eventMask},
	).Check()
	if err != nil {
		return nil, errors.Wrap(err, "create window")
	}

	w := &Window{
		atoms:  newAtomCache(conn),
		conn:   conn,
		id:     id,
		events: make(chan xevent, 256),
		done:   make(chan struct{}),
	}
	w.width.Store(opts.Width)
	w.height.Store(opts.Height)

	if err := w.setTitle(opts.Title); err != nil {
		return nil, errors.Wrap(err, "set title")
	}
	protocols, err := w.atoms.Get(wmProtocols)
	if err != nil {
		return nil, errors.Wrap(err, "get WM_PROTOCOLS atom")
	}
	deleteWindow, err := w.atoms.Get(wmDeleteWindow)
	if err != nil {
		return nil, errors.Wrap(err, "get WM_DELETE_WINDOW atom")
	}
	data := make([]byte, 4)
	xgb.Put32(data, uint32(deleteWindow))
	err = xproto.ChangePropertyChecked(
		conn,
		xproto.PropModeReplace,
		id,
		protocols,
		xproto.AtomAtom,
		32,
		1,
		data,
	).Check()
	if err != nil {
		return nil, errors.Wrap(err, "set WM_PROTOCOLS")
	}
	w.conv = newConverter(protocols, deleteWindow, opts.Width, opts.Height)

	if err := xproto.MapWindowChecked(conn, id).Check(); err != nil {
		return nil, errors.Wrap(err, "map window")
	}
	if opts.VSync {
		log.Warn("VSync is not supported by the X11 window, ignoring")
	}
	return w, nil
}

// setTitle sets both the legacy and EWMH window titles.
func (w *Window) setTitle(title string) error {
	err := xproto.ChangePropertyChecked(
		w.conn,
		xproto.PropModeReplace,
		w.id,
		xproto.AtomWmName,
		xproto.AtomString,
		8,
		uint32(len(title)),
		[]byte(title),
	).Check()
	if err != nil {
		return err
	}
	name, err := w.atoms.Get(netWmName)
	if err != nil {
		return err
	}
	utf8, err := w.atoms.Get(utf8String)
	if err != nil {
		return err
	}
	return xproto.ChangePropertyChecked(
		w.conn,
		xproto.PropModeReplace,
		w.id,
		name,
		utf8,
		8,
		uint32(len(title)),
		[]byte(title),
	).Check()
}

// read forwards events from the X connection until it is closed.
func (w *Window) read() {
	defer close(w.events)
	for {
		evt, err := w.conn.WaitForEvent()
		if evt == nil && err == nil {
			return
		}
		select {
		case w.events <- xevent{evt, err}:
		case <-w.done:
			return
		}
	}
}

// Poll implements platform.Window.
func (w *Window) Poll(fn func(platform.Notification)) error {
	emit := func(n platform.Notification) {
		if n.Kind == platform.KindSize {
			w.width.Store(n.Width)
			w.height.Store(n.Height)
		}
		fn(n)
	}
	for {
		var xevt xevent
		var ok bool
		select {
		case xevt, ok = <-w.events:
		default:
			// The press completing an auto-repeat pair may not have been
			// read from the connection yet.
			wait := w.conv.expire(emit)
			if wait == 0 {
				return nil
			}
			timer := time.NewTimer(wait)
			select {
			case xevt, ok = <-w.events:
				timer.Stop()
			case <-timer.C:
				w.conv.flush(emit)
				return nil
			}
		}
		if !ok {
			w.conv.flush(emit)
			return platform.ErrClosed
		}
		if xevt.err != nil {
			log.Warn("X error: %s", xevt.err)
			continue
		}
		w.conv.convert(xevt.evt, emit)
	}
}

// Present implements platform.Presenter. The core protocol has no buffer
// swap, so the window is cleared to its background instead.
func (w *Window) Present() error {
	err := xproto.ClearAreaChecked(w.conn, false, w.id, 0, 0, 0, 0).Check()
	if err != nil {
		return errors.Wrap(err, "clear window")
	}
	return nil
}

// Width implements platform.Window.
func (w *Window) Width() uint32 {
	return w.width.Load()
}

// Height implements platform.Window.
func (w *Window) Height() uint32 {
	return w.height.Load()
}

// VSync implements platform.Window.
func (w *Window) VSync() bool {
	return false
}

// Close implements platform.Window.
func (w *Window) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = xproto.DestroyWindowChecked(w.conn, w.id).Check()
		w.conn.Close()
	})
	return err
}
