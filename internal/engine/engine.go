// Package engine implements the main loop, which polls the window, carries
// translated events to the application and paces the application's tick.
package engine

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/pkg/errors"

	"github.com/tesselslate/hazel/internal/app"
	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/input"
	"github.com/tesselslate/hazel/internal/log"
	"github.com/tesselslate/hazel/internal/metrics"
	"github.com/tesselslate/hazel/internal/platform"
	"github.com/tesselslate/hazel/internal/transport"
)

// Mode is the shape of the main loop.
type Mode uint8

const (
	// ModeThreaded polls the window on the calling goroutine and dispatches
	// events on a second goroutine which blocks on the transport. The
	// window is presented and polled once per tick, so input can wait up to
	// one tick interval before it is dispatched. Events emitted by the
	// application are dispatched as soon as the callback which emitted them
	// returns; events emitted from other goroutines wait for the next
	// window event or tick.
	ModeThreaded Mode = iota

	// ModeCooperative polls and dispatches on the calling goroutine. Each
	// iteration drains the transport without blocking, queues a Tick for
	// the next iteration and sleeps for one tick interval.
	ModeCooperative

	// ModeDelta polls the window and passes the elapsed time to a single
	// app.Runner entry point.
	ModeDelta
)

var modeNames = [...]string{"threaded", "cooperative", "delta"}

// ParseMode returns the Mode with the given name.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return ModeThreaded, fmt.Errorf("unknown loop mode %q", name)
}

// String implements Stringer.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// UnmarshalTOML implements toml.Unmarshaler.
func (m *Mode) UnmarshalTOML(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("loop mode was not a string")
	}
	mode, err := ParseMode(str)
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Config contains the settings of the main loop.
type Config struct {
	Mode            Mode    `toml:"mode"`
	TickRate        float64 `toml:"tick_rate"`
	CompensateDrift bool    `toml:"compensate_drift"`

	// QueueCapacity is passed to transport.New for the queue between the
	// window and the application. ModeCooperative always uses an unbounded
	// queue.
	QueueCapacity int `toml:"queue_capacity"`

	// RecoverPanics logs panics raised by application callbacks and keeps
	// running instead of crashing.
	RecoverPanics bool `toml:"recover_panics"`
}

// DefaultConfig returns the default loop settings.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeThreaded,
		TickRate:      DefaultTickRate,
		QueueCapacity: 64,
	}
}

// Engine owns a window and drives an application with the events it reports.
type Engine struct {
	conf       Config
	window     platform.Window
	translator *input.Translator
	clock      *Clock
	lastTick   time.Time
}

// New creates an Engine for the given window.
func New(window platform.Window, conf Config) *Engine {
	if conf.Mode == ModeCooperative {
		conf.QueueCapacity = transport.Unbounded
	}
	return &Engine{
		conf:       conf,
		window:     window,
		translator: input.NewTranslator(window),
		clock:      NewClock(conf.TickRate, conf.CompensateDrift),
	}
}

// Config returns the engine's settings.
func (e *Engine) Config() Config {
	return e.conf
}

// Interval returns the current tick interval.
func (e *Engine) Interval() time.Duration {
	return e.clock.Interval()
}

// SetTickRate changes the tick rate of a running engine.
func (e *Engine) SetTickRate(rate float64) {
	e.clock.SetRate(rate)
	log.Info("Tick rate set to %.2f Hz", rate)
}

// Run constructs the application and runs the loop selected by the engine's
// mode until the window goes away, the application's transport is closed or
// ctx is cancelled. In ModeDelta, the application must implement app.Runner.
func (e *Engine) Run(ctx context.Context, ctor app.Constructor) error {
	switch e.conf.Mode {
	case ModeThreaded:
		return e.runThreaded(ctx, ctor)
	case ModeCooperative:
		return e.runCooperative(ctx, ctor)
	case ModeDelta:
		q := transport.New(transport.Unbounded)
		defer q.Close()
		runner, ok := ctor(q).(app.Runner)
		if !ok {
			return errors.New("application does not implement Run")
		}
		return e.runDelta(ctx, runner, q)
	default:
		return fmt.Errorf("invalid loop mode %s", e.conf.Mode)
	}
}

// RunDelta calls runner.Run once per iteration with the number of
// milliseconds elapsed since the previous iteration. If runner also
// implements app.Handler, the events polled during the iteration are
// dispatched to it before Run is called. Otherwise, a window close request
// ends the loop.
func (e *Engine) RunDelta(ctx context.Context, runner app.Runner) error {
	q := transport.New(transport.Unbounded)
	defer q.Close()
	return e.runDelta(ctx, runner, q)
}

// poll polls the window once and sends every translated event. It reports
// whether the loop should keep running.
func (e *Engine) poll(q transport.Emitter) (bool, error) {
	var sendErr error
	err := e.window.Poll(func(n platform.Notification) {
		if sendErr != nil {
			return
		}
		sendErr = q.Send(e.translator.Translate(n))
	})
	switch {
	case err == platform.ErrClosed:
		log.Info("Window system connection closed")
		return false, nil
	case err != nil:
		return false, errors.Wrap(err, "poll window")
	case sendErr != nil:
		log.Info("Event transport closed, stopping")
		return false, nil
	}
	return true, nil
}

func (e *Engine) present() {
	if err := e.window.Present(); err != nil && err != platform.ErrClosed {
		log.Warn("Present failed: %s", err)
	}
}

// tick sends a Tick event and records the time since the last one.
func (e *Engine) tick(q transport.Emitter) error {
	now := time.Now()
	if !e.lastTick.IsZero() {
		metrics.RecordTick(now.Sub(e.lastTick))
	}
	e.lastTick = now
	return q.Send(event.Tick{})
}

// dispatch delivers a single event to the application.
func (e *Engine) dispatch(h app.Handler, evt event.Event) {
	if e.conf.RecoverPanics {
		defer func() {
			if err := recover(); err != nil {
				metrics.RecordPanic()
				log.Error("Callback for %s panicked: %v\n%s", evt, err, debug.Stack())
			}
		}()
	}
	if app.Dispatch(h, evt) {
		metrics.RecordDispatched(evt.Category().String())
	}
}

func (e *Engine) runThreaded(ctx context.Context, ctor app.Constructor) error {
	q := transport.New(e.conf.QueueCapacity)

	// Events the application emits go to their own unbounded queue, so a
	// callback can never block on the queue its own goroutine drains.
	self := transport.New(transport.Unbounded)
	h := ctor(self)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer self.Close()
		defer q.Close()
		for {
			evt, ok := q.Recv()
			if !ok {
				return
			}
			e.dispatch(h, evt)
			e.drain(h, self)
		}
	}()

	err := e.produce(ctx, q)
	q.Close()
	<-done
	return err
}

// produce is the polling side of the threaded loop.
func (e *Engine) produce(ctx context.Context, q transport.Queue) error {
	for {
		e.present()
		ok, err := e.poll(q)
		if !ok {
			return err
		}
		if err := e.tick(q); err != nil {
			log.Info("Event transport closed, stopping")
			return nil
		}
		if err := e.clock.Wait(ctx); err != nil {
			log.Info("Loop cancelled")
			return nil
		}
	}
}

func (e *Engine) runCooperative(ctx context.Context, ctor app.Constructor) error {
	q := transport.New(transport.Unbounded)
	defer q.Close()
	h := ctor(q)

	for {
		e.present()
		ok, err := e.poll(q)
		e.drain(h, q)
		if !ok {
			return err
		}
		if err := e.tick(q); err != nil {
			return nil
		}
		if err := e.clock.Wait(ctx); err != nil {
			log.Info("Loop cancelled")
			return nil
		}
	}
}

// drain dispatches every event currently queued.
func (e *Engine) drain(h app.Handler, q transport.Queue) {
	for {
		evt, ok := q.TryRecv()
		if !ok {
			return
		}
		e.dispatch(h, evt)
	}
}

func (e *Engine) runDelta(ctx context.Context, runner app.Runner, q transport.Queue) error {
	h, isHandler := runner.(app.Handler)
	e.clock.Elapsed()
	for {
		e.present()
		ok, err := e.poll(q)
		closed := false
		for {
			evt, more := q.TryRecv()
			if !more {
				break
			}
			if isHandler {
				e.dispatch(h, evt)
			} else if evt == (event.WindowClose{}) {
				closed = true
			}
		}
		if !ok {
			return err
		}
		if closed {
			log.Info("Window closed")
			return nil
		}

		dt := e.clock.Elapsed()
		metrics.RecordTick(dt)
		runner.Run(float64(dt.Nanoseconds()) / 1e6)

		if err := e.clock.Wait(ctx); err != nil {
			log.Info("Loop cancelled")
			return nil
		}
	}
}
