package engine_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tesselslate/hazel/internal/app"
	"github.com/tesselslate/hazel/internal/engine"
	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/input"
	"github.com/tesselslate/hazel/internal/platform"
	"github.com/tesselslate/hazel/internal/script"
	"github.com/tesselslate/hazel/internal/transport"
)

var modes = []engine.Mode{engine.ModeThreaded, engine.ModeCooperative}

// recorder records every callback except Tick.
type recorder struct {
	app.Base
	emit  transport.Emitter
	calls []string
	ticks int
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Tick()                      { r.ticks += 1 }
func (r *recorder) OnUpdate()                  { r.record("update") }
func (r *recorder) OnWindowResize(w, h uint32) { r.record("resize %d %d", w, h) }
func (r *recorder) OnWindowMove(x, y int32)    { r.record("move %d %d", x, y) }
func (r *recorder) OnWindowFocus()             { r.record("focus") }
func (r *recorder) OnWindowBlur()              { r.record("blur") }
func (r *recorder) OnKeyDown(k event.Key, m event.Modifiers, repeat uint32) {
	r.record("keydown %s %s %d", k, m, repeat)
}
func (r *recorder) OnKeyUp(k event.Key, m event.Modifiers) { r.record("keyup %s %s", k, m) }
func (r *recorder) OnMouseDown(b event.MouseButton, m event.Modifiers) {
	r.record("mousedown %s %s", b, m)
}
func (r *recorder) OnMouseUp(b event.MouseButton, m event.Modifiers) {
	r.record("mouseup %s %s", b, m)
}
func (r *recorder) OnMouseMove(x, y uint32) { r.record("mousemove %d %d", x, y) }
func (r *recorder) OnScroll(dx, dy float64) { r.record("scroll %g %g", dx, dy) }

func config(mode engine.Mode) engine.Config {
	conf := engine.DefaultConfig()
	conf.Mode = mode
	conf.TickRate = 1000
	return conf
}

// run runs a recorder against the given frames and returns it once the
// window has run out of frames.
func run(t *testing.T, mode engine.Mode, frames ...[]platform.Notification) (*recorder, *script.Window) {
	t.Helper()
	w := script.FromNotifications(640, 480, frames...)
	r := &recorder{}
	e := engine.New(w, config(mode))
	err := e.Run(context.Background(), func(emit transport.Emitter) app.Handler {
		r.emit = emit
		return r
	})
	if err != nil {
		t.Fatal(err)
	}
	return r, w
}

func key(code platform.Keycode, action platform.Action) platform.Notification {
	return platform.Notification{Kind: platform.KindKey, Keycode: code, Action: action}
}

func expect(t *testing.T, mode engine.Mode, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %q, want %q", mode, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: call %d: got %q, want %q", mode, i, got[i], want[i])
		}
	}
}

func TestResize(t *testing.T) {
	for _, mode := range modes {
		r, _ := run(t, mode, []platform.Notification{
			{Kind: platform.KindSize, Width: 800, Height: 600},
		})
		expect(t, mode, r.calls, "resize 800 600")
	}
}

func TestKeyPressRelease(t *testing.T) {
	for _, mode := range modes {
		r, _ := run(t, mode,
			[]platform.Notification{key(platform.CodeA, platform.Press)},
			[]platform.Notification{key(platform.CodeA, platform.Release)},
		)
		expect(t, mode, r.calls, "keydown a none 0", "keyup a none")
	}
}

func TestRepeat(t *testing.T) {
	for _, mode := range modes {
		r, _ := run(t, mode, []platform.Notification{
			key(platform.CodeQ, platform.Press),
			key(platform.CodeQ, platform.Repeat),
			key(platform.CodeQ, platform.Repeat),
			key(platform.CodeQ, platform.Repeat),
			key(platform.CodeQ, platform.Release),
		})
		expect(t, mode, r.calls,
			"keydown q none 0",
			"keydown q none 1",
			"keydown q none 1",
			"keydown q none 1",
			"keyup q none",
		)
	}
}

func TestScrollPassthrough(t *testing.T) {
	for _, mode := range modes {
		r, _ := run(t, mode, []platform.Notification{
			{Kind: platform.KindScroll, PX: 1.0, PY: -1.0},
		})
		expect(t, mode, r.calls, "scroll 1 -1")
	}
}

func TestRefreshPresents(t *testing.T) {
	for _, mode := range modes {
		r, w := run(t, mode, []platform.Notification{
			{Kind: platform.KindRefresh},
		})
		expect(t, mode, r.calls)
		// One present per iteration, plus one for the refresh.
		if w.Presents() != 3 {
			t.Fatalf("%s: got %d presents, want 3", mode, w.Presents())
		}
	}
}

func TestOrderPreserved(t *testing.T) {
	frames := [][]platform.Notification{
		{
			{Kind: platform.KindFocus, Focused: true},
			{Kind: platform.KindCursorPos, PX: 10.4, PY: 20.6},
			{Kind: platform.KindChar, Char: 'x'},
			{Kind: platform.KindMouseButton, Button: platform.ButtonLeft, Action: platform.Press, Mods: platform.MaskShift},
			{Kind: platform.KindMouseButton, Button: platform.ButtonLeft, Action: platform.Repeat},
		},
		{
			{Kind: platform.KindMouseButton, Button: platform.ButtonLeft, Action: platform.Release},
			{Kind: platform.KindCursorEnter, Focused: true},
			{Kind: platform.KindPos, X: -3, Y: 9},
			{Kind: platform.KindRefresh},
		},
		{
			key(platform.CodeEscape, platform.Press),
			{Kind: platform.KindIconify},
			{Kind: platform.KindFocus, Focused: false},
		},
	}

	// The expected sequence is the non-None translation of every
	// notification, in order.
	tr := input.NewTranslator(nil)
	var want []event.Event
	for _, frame := range frames {
		for _, n := range frame {
			if evt := tr.Translate(n); !event.IsNone(evt) {
				want = append(want, evt)
			}
		}
	}

	for _, mode := range modes {
		w := script.FromNotifications(640, 480, frames...)
		var got []event.Event
		h := &collector{events: &got}
		e := engine.New(w, config(mode))
		if err := e.Run(context.Background(), func(transport.Emitter) app.Handler { return h }); err != nil {
			t.Fatal(err)
		}
		if len(got) != len(want) {
			t.Fatalf("%s: got %v, want %v", mode, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: event %d: got %s, want %s", mode, i, got[i], want[i])
			}
		}
	}
}

// collector reconstructs the events it is given, ignoring ticks.
type collector struct {
	app.Base
	events *[]event.Event
}

func (c *collector) add(evt event.Event) { *c.events = append(*c.events, evt) }

func (c *collector) OnWindowResize(w, h uint32) { c.add(event.WindowResize{Width: w, Height: h}) }
func (c *collector) OnWindowMove(x, y int32)    { c.add(event.WindowMove{X: x, Y: y}) }
func (c *collector) OnWindowClose()             { c.add(event.WindowClose{}) }
func (c *collector) OnWindowFocus()             { c.add(event.WindowFocus{}) }
func (c *collector) OnWindowBlur()              { c.add(event.WindowBlur{}) }
func (c *collector) OnKeyDown(k event.Key, m event.Modifiers, repeat uint32) {
	c.add(event.KeyPress{Key: k, Mods: m, Repeat: repeat})
}
func (c *collector) OnKeyUp(k event.Key, m event.Modifiers) {
	c.add(event.KeyRelease{Key: k, Mods: m})
}
func (c *collector) OnMouseDown(b event.MouseButton, m event.Modifiers) {
	c.add(event.MouseButtonPress{Button: b, Mods: m})
}
func (c *collector) OnMouseUp(b event.MouseButton, m event.Modifiers) {
	c.add(event.MouseButtonRelease{Button: b, Mods: m})
}
func (c *collector) OnMouseMove(x, y uint32) { c.add(event.MouseMove{X: x, Y: y}) }
func (c *collector) OnScroll(dx, dy float64) { c.add(event.MouseScroll{DX: dx, DY: dy}) }

func TestCloseExits(t *testing.T) {
	exit := app.Exit
	defer func() { app.Exit = exit }()

	for _, mode := range modes {
		code := -1
		app.Exit = func(c int) { code = c }
		r, _ := run(t, mode, []platform.Notification{{Kind: platform.KindClose}})
		expect(t, mode, r.calls)
		if code != 0 {
			t.Fatalf("%s: got exit code %d, want 0", mode, code)
		}
	}
}

func TestTicks(t *testing.T) {
	for _, mode := range modes {
		r, _ := run(t, mode, nil, nil, nil, nil)
		if r.ticks < 3 {
			t.Fatalf("%s: got %d ticks, want at least 3", mode, r.ticks)
		}
	}
}

// emitter sends an Update event to itself when a key is pressed.
type emitter struct {
	recorder
}

func (e *emitter) OnKeyDown(k event.Key, m event.Modifiers, repeat uint32) {
	e.recorder.OnKeyDown(k, m, repeat)
	if err := e.emit.Send(event.Update{}); err != nil {
		panic(err)
	}
}

func TestSelfEmission(t *testing.T) {
	for _, mode := range modes {
		// Leave the consumer plenty of time to emit before the window runs
		// out of frames and the transport is closed.
		frames := make([][]platform.Notification, 50)
		frames[0] = []platform.Notification{key(platform.CodeA, platform.Press)}
		w := script.FromNotifications(640, 480, frames...)
		h := &emitter{}
		e := engine.New(w, config(mode))
		err := e.Run(context.Background(), func(emit transport.Emitter) app.Handler {
			h.emit = emit
			return h
		})
		if err != nil {
			t.Fatal(err)
		}
		expect(t, mode, h.calls, "keydown a none 0", "update")
	}
}

// panicker panics on every key press.
type panicker struct {
	recorder
}

func (p *panicker) OnKeyDown(event.Key, event.Modifiers, uint32) {
	panic("key pressed")
}

func TestRecoverPanics(t *testing.T) {
	for _, mode := range modes {
		w := script.FromNotifications(640, 480, []platform.Notification{
			key(platform.CodeA, platform.Press),
			key(platform.CodeA, platform.Release),
		})
		h := &panicker{}
		conf := config(mode)
		conf.RecoverPanics = true
		err := engine.New(w, conf).Run(context.Background(), func(transport.Emitter) app.Handler {
			return h
		})
		if err != nil {
			t.Fatal(err)
		}
		expect(t, mode, h.calls, "keyup a none")
	}
}

func TestCancel(t *testing.T) {
	for _, mode := range modes {
		w := script.FromNotifications(640, 480, make([][]platform.Notification, 100_000)...)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		err := engine.New(w, config(mode)).Run(ctx, func(transport.Emitter) app.Handler {
			return &recorder{}
		})
		cancel()
		if err != nil {
			t.Fatal(err)
		}
		if w.Remaining() == 0 {
			t.Fatalf("%s: loop was not cancelled", mode)
		}
	}
}

// stepper counts delta-time steps.
type stepper struct {
	steps []float64
}

func (s *stepper) Run(dt float64) {
	s.steps = append(s.steps, dt)
}

func TestDelta(t *testing.T) {
	w := script.FromNotifications(640, 480, nil, nil, nil)
	s := &stepper{}
	if err := engine.New(w, config(engine.ModeDelta)).RunDelta(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if len(s.steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(s.steps))
	}
	for i, dt := range s.steps {
		if dt <= 0 {
			t.Fatalf("step %d: non-positive delta %g", i, dt)
		}
	}
}

func TestDeltaClose(t *testing.T) {
	w := script.FromNotifications(640, 480,
		nil,
		[]platform.Notification{{Kind: platform.KindClose}},
		nil,
		nil,
	)
	s := &stepper{}
	if err := engine.New(w, config(engine.ModeDelta)).RunDelta(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	if len(s.steps) != 1 {
		t.Fatalf("got %d steps, want 1", len(s.steps))
	}
}

// deltaHandler is both a Runner and a Handler.
type deltaHandler struct {
	recorder
	stepper
}

func TestDeltaDispatch(t *testing.T) {
	w := script.FromNotifications(640, 480,
		[]platform.Notification{{Kind: platform.KindSize, Width: 1, Height: 2}},
		[]platform.Notification{key(platform.CodeSpace, platform.Press)},
	)
	h := &deltaHandler{}
	err := engine.New(w, config(engine.ModeDelta)).Run(context.Background(), func(transport.Emitter) app.Handler {
		return h
	})
	if err != nil {
		t.Fatal(err)
	}
	expect(t, engine.ModeDelta, h.calls, "resize 1 2", "keydown space none 0")
	if len(h.steps) != 2 {
		t.Fatalf("got %d steps, want 2", len(h.steps))
	}
}

func TestParseMode(t *testing.T) {
	for _, name := range []string{"threaded", "cooperative", "delta"} {
		m, err := engine.ParseMode(name)
		if err != nil || m.String() != name {
			t.Fatalf("%s: got %s, %v", name, m, err)
		}
	}
	if _, err := engine.ParseMode("parallel"); err == nil {
		t.Fatal("unknown mode parsed")
	}
}

func TestClock(t *testing.T) {
	c := engine.NewClock(100, true)
	if c.Interval() != 10*time.Millisecond {
		t.Fatalf("got interval %s", c.Interval())
	}
	c.Elapsed()
	start := time.Now()
	for i := 0; i < 5; i += 1 {
		if err := c.Wait(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if took := time.Since(start); took < 40*time.Millisecond {
		t.Fatalf("5 ticks at 100 Hz took %s", took)
	}
	if c.Elapsed() < 40*time.Millisecond {
		t.Fatal("Elapsed did not measure the waits")
	}

	c.SetRate(0)
	if c.Interval() != time.Second/60 {
		t.Fatalf("got interval %s for invalid rate", c.Interval())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.SetRate(0.5)
	if err := c.Wait(ctx); err != context.Canceled {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

// burster sends a burst of Update events to itself on every key press.
type burster struct {
	recorder
	burst int
}

func (b *burster) OnKeyDown(k event.Key, m event.Modifiers, repeat uint32) {
	b.recorder.OnKeyDown(k, m, repeat)
	for i := 0; i < b.burst; i += 1 {
		if err := b.emit.Send(event.Update{}); err != nil {
			panic(err)
		}
	}
}

func TestSelfEmissionFullQueue(t *testing.T) {
	for _, capacity := range []int{0, 1, 4} {
		frames := make([][]platform.Notification, 20)
		frames[0] = []platform.Notification{
			key(platform.CodeA, platform.Press),
			key(platform.CodeB, platform.Press),
			key(platform.CodeC, platform.Press),
			key(platform.CodeD, platform.Press),
		}
		w := script.FromNotifications(640, 480, frames...)
		h := &burster{burst: 8}
		conf := config(engine.ModeThreaded)
		conf.QueueCapacity = capacity

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := engine.New(w, conf).Run(ctx, func(emit transport.Emitter) app.Handler {
			h.emit = emit
			return h
		})
		timedOut := ctx.Err() != nil
		cancel()
		if err != nil {
			t.Fatal(err)
		}
		if timedOut {
			t.Fatalf("capacity %d: loop did not finish", capacity)
		}

		// Each burst is dispatched before the next key press.
		var want []string
		for _, k := range []string{"a", "b", "c", "d"} {
			want = append(want, "keydown "+k+" none 0")
			for i := 0; i < h.burst; i += 1 {
				want = append(want, "update")
			}
		}
		expect(t, engine.ModeThreaded, h.calls, want...)
	}
}
