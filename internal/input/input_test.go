package input_test

import (
	"errors"
	"testing"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/input"
	"github.com/tesselslate/hazel/internal/platform"
)

type countingPresenter struct {
	presents int
	err      error
}

func (p *countingPresenter) Present() error {
	p.presents += 1
	return p.err
}

func TestPolicyTable(t *testing.T) {
	shiftCtrl := platform.MaskShift | platform.MaskControl
	mods := event.ModShift | event.ModControl
	tests := []struct {
		name string
		in   platform.Notification
		want event.Event
	}{
		{"pos", platform.Notification{Kind: platform.KindPos, X: -20, Y: 40}, event.WindowMove{X: -20, Y: 40}},
		{"size", platform.Notification{Kind: platform.KindSize, Width: 800, Height: 600}, event.WindowResize{Width: 800, Height: 600}},
		{"close", platform.Notification{Kind: platform.KindClose}, event.WindowClose{}},
		{"focus", platform.Notification{Kind: platform.KindFocus, Focused: true}, event.WindowFocus{}},
		{"blur", platform.Notification{Kind: platform.KindFocus, Focused: false}, event.WindowBlur{}},
		{"cursor", platform.Notification{Kind: platform.KindCursorPos, PX: 10.4, PY: 20.6}, event.MouseMove{X: 10, Y: 21}},
		{"cursor negative", platform.Notification{Kind: platform.KindCursorPos, PX: -3, PY: 5}, event.MouseMove{X: 0, Y: 5}},
		{"scroll", platform.Notification{Kind: platform.KindScroll, PX: 1.0, PY: -1.0}, event.MouseScroll{DX: 1.0, DY: -1.0}},
		{"scroll fractional", platform.Notification{Kind: platform.KindScroll, PX: -0.25, PY: 2.5}, event.MouseScroll{DX: -0.25, DY: 2.5}},
		{"button press", platform.Notification{Kind: platform.KindMouseButton, Button: platform.ButtonLeft, Action: platform.Press, Mods: shiftCtrl}, event.MouseButtonPress{Button: event.MousePrimary, Mods: mods}},
		{"button release", platform.Notification{Kind: platform.KindMouseButton, Button: platform.ButtonRight, Action: platform.Release}, event.MouseButtonRelease{Button: event.MouseSecondary}},
		{"button repeat", platform.Notification{Kind: platform.KindMouseButton, Button: platform.ButtonLeft, Action: platform.Repeat}, event.None{}},
		{"wheel button", platform.Notification{Kind: platform.KindMouseButton, Button: platform.ButtonWheelUp, Action: platform.Press}, event.None{}},
		{"key press", platform.Notification{Kind: platform.KindKey, Keycode: platform.CodeA, Action: platform.Press}, event.KeyPress{Key: event.KeyA}},
		{"key repeat", platform.Notification{Kind: platform.KindKey, Keycode: platform.CodeA, Action: platform.Repeat, Mods: shiftCtrl}, event.KeyPress{Key: event.KeyA, Mods: mods, Repeat: 1}},
		{"key release", platform.Notification{Kind: platform.KindKey, Keycode: platform.CodeEscape, Action: platform.Release}, event.KeyRelease{Key: event.KeyEscape}},
		{"unknown key", platform.Notification{Kind: platform.KindKey, Keycode: 250, Action: platform.Press}, event.KeyPress{Key: event.KeyUnknown}},
		{"char", platform.Notification{Kind: platform.KindChar, Char: 'a'}, event.None{}},
		{"iconify", platform.Notification{Kind: platform.KindIconify, Focused: true}, event.None{}},
		{"cursor enter", platform.Notification{Kind: platform.KindCursorEnter, Focused: true}, event.None{}},
		{"unknown", platform.Notification{Kind: platform.KindUnknown}, event.None{}},
	}
	tr := input.NewTranslator(&countingPresenter{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Translate(tt.in); got != tt.want {
				t.Fatalf("Translate(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRefreshPresents(t *testing.T) {
	p := &countingPresenter{}
	tr := input.NewTranslator(p)
	evt := tr.Translate(platform.Notification{Kind: platform.KindRefresh})
	if !event.IsNone(evt) {
		t.Fatalf("refresh produced %s", evt)
	}
	if p.presents != 1 {
		t.Fatalf("got %d presents, want 1", p.presents)
	}

	// A failing present is not surfaced.
	p.err = errors.New("lost context")
	if evt := tr.Translate(platform.Notification{Kind: platform.KindRefresh}); !event.IsNone(evt) {
		t.Fatalf("refresh produced %s", evt)
	}
	if p.presents != 2 {
		t.Fatalf("got %d presents, want 2", p.presents)
	}

	// Other notifications never present.
	tr.Translate(platform.Notification{Kind: platform.KindSize, Width: 1, Height: 1})
	if p.presents != 2 {
		t.Fatalf("got %d presents, want 2", p.presents)
	}
}

func TestRepeatSemantics(t *testing.T) {
	tr := input.NewTranslator(nil)
	press := platform.Notification{Kind: platform.KindKey, Keycode: platform.CodeW, Action: platform.Press}
	if got := tr.Translate(press); got != (event.KeyPress{Key: event.KeyW, Repeat: 0}) {
		t.Fatalf("first press: got %s", got)
	}
	// Repeats carry an is-repeat indicator of 1, not a running count.
	repeat := press
	repeat.Action = platform.Repeat
	for i := 0; i < 5; i += 1 {
		if got := tr.Translate(repeat); got != (event.KeyPress{Key: event.KeyW, Repeat: 1}) {
			t.Fatalf("repeat %d: got %s", i, got)
		}
	}
}

func TestKeymapTotal(t *testing.T) {
	seen := make(map[event.Key]platform.Keycode)
	for code := 0; code < 256; code += 1 {
		key := input.KeyFromNative(platform.Keycode(code))
		if !key.Valid() {
			t.Fatalf("code %d mapped to invalid key %d", code, key)
		}
		if key == event.KeyUnknown {
			continue
		}
		if prev, ok := seen[key]; ok {
			t.Fatalf("key %s mapped from both %d and %d", key, prev, code)
		}
		seen[key] = platform.Keycode(code)
		back, ok := input.NativeKeycode(key)
		if !ok || back != platform.Keycode(code) {
			t.Fatalf("NativeKeycode(%s) = %d, want %d", key, back, code)
		}
	}
	if input.KeyFromNative(0) != event.KeyUnknown || input.KeyFromNative(255) != event.KeyUnknown {
		t.Fatal("codes outside the table should be unknown")
	}
}

func TestButtonMapping(t *testing.T) {
	seen := make(map[event.MouseButton]bool)
	for b := 0; b < 256; b += 1 {
		button, ok := input.ButtonFromNative(uint8(b))
		exposed := b >= 1 && b <= 3 || b >= 8 && b <= 24
		if ok != exposed {
			t.Fatalf("ButtonFromNative(%d) ok = %t, want %t", b, ok, exposed)
		}
		if !ok {
			continue
		}
		if seen[button] {
			t.Fatalf("button %s mapped twice", button)
		}
		seen[button] = true
		if back := input.NativeButton(button); back != uint8(b) {
			t.Fatalf("NativeButton(%s) = %d, want %d", button, back, b)
		}
	}
	if len(seen) != event.MouseButtonCount {
		t.Fatalf("mapped %d buttons, want %d", len(seen), event.MouseButtonCount)
	}
}
