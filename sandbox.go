package main

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/tesselslate/hazel/internal/app"
	"github.com/tesselslate/hazel/internal/cfg"
	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/log"
	"github.com/tesselslate/hazel/internal/transport"
)

// sandbox is the application run by the hazel binary. It logs the events it
// receives and responds to the profile's keybinds.
type sandbox struct {
	app.Base

	emit   transport.Emitter
	log    *log.Logger
	quit   context.CancelFunc
	keysMu sync.Mutex
	keys   cfg.Keys

	ticks   atomic.Uint64
	updates atomic.Uint64
	elapsed float64
	width   uint32
	height  uint32
}

func newSandbox(keys cfg.Keys, quit context.CancelFunc) *sandbox {
	return &sandbox{
		log:  log.Default().Client(),
		quit: quit,
		keys: keys,
	}
}

// Construct implements app.Constructor.
func (s *sandbox) Construct(emit transport.Emitter) app.Handler {
	s.emit = emit
	return s
}

// SetKeys replaces the sandbox's keybinds.
func (s *sandbox) SetKeys(keys cfg.Keys) {
	s.keysMu.Lock()
	defer s.keysMu.Unlock()
	s.keys = keys
}

func (s *sandbox) getKeys() cfg.Keys {
	s.keysMu.Lock()
	defer s.keysMu.Unlock()
	return s.keys
}

func (s *sandbox) Tick() {
	s.ticks.Add(1)
}

func (s *sandbox) OnUpdate() {
	n := s.updates.Add(1)
	s.log.Info("Update %d (%dx%d, %d ticks)", n, s.width, s.height, s.ticks.Load())
}

func (s *sandbox) OnRender() {
	s.log.Debug("Render")
}

func (s *sandbox) OnWindowResize(width, height uint32) {
	s.width, s.height = width, height
	s.log.Info("Window resized to %dx%d", width, height)
}

func (s *sandbox) OnWindowMove(x, y int32) {
	s.log.Debug("Window moved to %d,%d", x, y)
}

// OnWindowClose stops the loop instead of exiting, so deferred cleanup runs.
func (s *sandbox) OnWindowClose() {
	s.log.Info("Window closed")
	s.quit()
}

func (s *sandbox) OnWindowFocus() {
	s.log.Debug("Window focused")
}

func (s *sandbox) OnWindowBlur() {
	s.log.Debug("Window lost focus")
}

func (s *sandbox) OnKeyDown(key event.Key, mods event.Modifiers, repeat uint32) {
	s.log.Debug("Key down: %s (%s, repeat %d)", key, mods, repeat)
	if repeat != 0 {
		return
	}
	keys := s.getKeys()
	switch {
	case keys.Quit.Matches(key, mods):
		s.log.Info("Quit bind pressed")
		s.quit()
	case keys.Reload.Matches(key, mods):
		if err := s.emit.Send(event.Update{}); err != nil {
			s.log.Warn("Failed to request update: %s", err)
		}
	}
}

func (s *sandbox) OnKeyUp(key event.Key, mods event.Modifiers) {
	s.log.Debug("Key up: %s (%s)", key, mods)
}

func (s *sandbox) OnMouseDown(button event.MouseButton, mods event.Modifiers) {
	s.log.Debug("Mouse down: %s (%s)", button, mods)
}

func (s *sandbox) OnMouseUp(button event.MouseButton, mods event.Modifiers) {
	s.log.Debug("Mouse up: %s (%s)", button, mods)
}

func (s *sandbox) OnMouseMove(x, y uint32) {
	s.log.Debug("Mouse moved to %d,%d", x, y)
}

func (s *sandbox) OnScroll(dx, dy float64) {
	s.log.Debug("Scrolled %.1f,%.1f", dx, dy)
}

// Run implements app.Runner for the delta loop.
func (s *sandbox) Run(deltaMillis float64) {
	s.ticks.Add(1)
	s.elapsed += deltaMillis
	if s.elapsed >= 1000 {
		s.log.Debug("%.0f ms elapsed, %d iterations", s.elapsed, s.ticks.Load())
		s.elapsed = 0
	}
}
