// Package script implements a headless window which replays notifications
// from a YAML script. It is used for testing and for `hazel replay`.
//
// A script looks like this:
//
//	width: 640
//	height: 480
//	frames:
//	  - - {kind: size, width: 800, height: 600}
//	  - - {kind: key, key: a, action: press, mods: ctrl}
//	    - {kind: key, key: a, action: release, mods: ctrl}
//	  - - {kind: close}
//
// Each call to Poll delivers the notifications of one frame. Once every frame
// has been delivered, Poll returns platform.ErrClosed.
package script

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/input"
	"github.com/tesselslate/hazel/internal/platform"
)

// Script is the decoded form of a script file.
type Script struct {
	Width  uint32    `yaml:"width"`
	Height uint32    `yaml:"height"`
	VSync  bool      `yaml:"vsync"`
	Frames [][]Entry `yaml:"frames"`
}

// Entry is a single notification in a script. Keys may be given by name
// (Key) or by native keycode (Keycode); the name takes precedence.
type Entry struct {
	Kind    string          `yaml:"kind"`
	Action  string          `yaml:"action,omitempty"`
	X       int32           `yaml:"x,omitempty"`
	Y       int32           `yaml:"y,omitempty"`
	Width   uint32          `yaml:"width,omitempty"`
	Height  uint32          `yaml:"height,omitempty"`
	Focused bool            `yaml:"focused,omitempty"`
	PX      float64         `yaml:"px,omitempty"`
	PY      float64         `yaml:"py,omitempty"`
	Button  uint8           `yaml:"button,omitempty"`
	Key     *event.Key      `yaml:"key,omitempty"`
	Keycode uint8           `yaml:"keycode,omitempty"`
	Mods    event.Modifiers `yaml:"mods,omitempty"`
	Char    string          `yaml:"char,omitempty"`
}

// Notification converts the entry into a native notification.
func (e Entry) Notification() (platform.Notification, error) {
	kind, err := platform.ParseKind(e.Kind)
	if err != nil {
		return platform.Notification{}, err
	}
	n := platform.Notification{
		Kind:    kind,
		X:       e.X,
		Y:       e.Y,
		Width:   e.Width,
		Height:  e.Height,
		Focused: e.Focused,
		PX:      e.PX,
		PY:      e.PY,
		Button:  e.Button,
		Keycode: platform.Keycode(e.Keycode),
		Mods:    e.Mods.Native(),
	}
	if e.Action != "" {
		if n.Action, err = platform.ParseAction(e.Action); err != nil {
			return n, err
		}
	}
	if e.Key != nil {
		code, ok := input.NativeKeycode(*e.Key)
		if !ok {
			return n, errors.Errorf("key %s has no native keycode", *e.Key)
		}
		n.Keycode = code
	}
	if e.Char != "" {
		n.Char = []rune(e.Char)[0]
	}
	return n, nil
}

// Parse decodes a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, errors.Wrap(err, "decode script")
	}
	return &s, nil
}

// Load reads and decodes the script at the given path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read script")
	}
	return Parse(data)
}

// Window is a platform.Window which replays a script.
type Window struct {
	mu       sync.Mutex
	frames   [][]platform.Notification
	next     int
	width    uint32
	height   uint32
	vsync    bool
	presents int
	closed   bool
}

// NewWindow creates a window replaying s. Every entry is converted up front,
// so a malformed script is reported before anything is delivered.
func NewWindow(s *Script) (*Window, error) {
	w := &Window{
		frames: make([][]platform.Notification, len(s.Frames)),
		width:  s.Width,
		height: s.Height,
		vsync:  s.VSync,
	}
	for i, frame := range s.Frames {
		w.frames[i] = make([]platform.Notification, 0, len(frame))
		for j, entry := range frame {
			n, err := entry.Notification()
			if err != nil {
				return nil, errors.Wrapf(err, "frame %d, entry %d", i, j)
			}
			w.frames[i] = append(w.frames[i], n)
		}
	}
	return w, nil
}

// FromNotifications creates a window delivering the given frames as-is.
func FromNotifications(width, height uint32, frames ...[]platform.Notification) *Window {
	return &Window{
		frames: frames,
		width:  width,
		height: height,
	}
}

// Poll implements platform.Window.
func (w *Window) Poll(fn func(platform.Notification)) error {
	w.mu.Lock()
	if w.closed || w.next >= len(w.frames) {
		w.mu.Unlock()
		return platform.ErrClosed
	}
	frame := w.frames[w.next]
	w.next += 1
	for _, n := range frame {
		if n.Kind == platform.KindSize {
			w.width, w.height = n.Width, n.Height
		}
	}
	w.mu.Unlock()

	for _, n := range frame {
		fn(n)
	}
	return nil
}

// Present implements platform.Presenter.
func (w *Window) Present() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return platform.ErrClosed
	}
	w.presents += 1
	return nil
}

// Presents returns the number of times Present was called.
func (w *Window) Presents() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presents
}

// Remaining returns the number of frames which have not been delivered.
func (w *Window) Remaining() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.frames) - w.next
}

// Width implements platform.Window.
func (w *Window) Width() uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// Height implements platform.Window.
func (w *Window) Height() uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// VSync implements platform.Window.
func (w *Window) VSync() bool {
	return w.vsync
}

// Close implements platform.Window.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}
