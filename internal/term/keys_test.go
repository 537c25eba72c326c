package term

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tesselslate/hazel/internal/event"
	"github.com/tesselslate/hazel/internal/platform"
)

func TestParseKey(t *testing.T) {
	cases := []struct {
		str  string
		key  event.Key
		mods event.Modifiers
	}{
		{"a", event.KeyA, event.ModNone},
		{"A", event.KeyA, event.ModShift},
		{"7", event.KeyDigit7, event.ModNone},
		{"&", event.KeyDigit7, event.ModShift},
		{"?", event.KeySlash, event.ModShift},
		{" ", event.KeySpace, event.ModNone},
		{"ctrl+a", event.KeyA, event.ModControl},
		{"alt+enter", event.KeyEnter, event.ModAlt},
		{"shift+tab", event.KeyTab, event.ModShift},
		{"esc", event.KeyEscape, event.ModNone},
		{"pgdown", event.KeyPageDown, event.ModNone},
		{"f5", event.KeyF5, event.ModNone},
		{"up", event.KeyUp, event.ModNone},
	}
	for _, c := range cases {
		key, mods, ok := parseKey(c.str)
		if !ok || key != c.key || mods != c.mods {
			t.Errorf("%q: got %s %s %t, want %s %s", c.str, key, mods, ok, c.key, c.mods)
		}
	}
	for _, bad := range []string{"é", "ctrl+hyper", ""} {
		if _, _, ok := parseKey(bad); ok {
			t.Errorf("%q parsed", bad)
		}
	}
}

func TestKeyNotifications(t *testing.T) {
	ns := keyNotifications(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}})
	if len(ns) != 2 {
		t.Fatalf("got %v", ns)
	}
	if ns[0].Action != platform.Press || ns[1].Action != platform.Release {
		t.Fatalf("got actions %s, %s", ns[0].Action, ns[1].Action)
	}
	if ns[0].Keycode != platform.CodeQ || ns[0].Mods != platform.MaskShift {
		t.Fatalf("got %s", ns[0])
	}
}

func TestMouseNotifications(t *testing.T) {
	c := &converter{}
	var ns []platform.Notification
	for _, msg := range []tea.MouseMsg{
		{X: 3, Y: 4, Type: tea.MouseMotion},
		{Type: tea.MouseRight, Ctrl: true},
		{Type: tea.MouseRelease},
		{Type: tea.MouseRelease},
		{Type: tea.MouseWheelDown},
	} {
		ns = append(ns, c.notifications(msg)...)
	}
	want := []platform.Notification{
		{Kind: platform.KindCursorPos, PX: 3, PY: 4},
		{Kind: platform.KindMouseButton, Button: platform.ButtonRight, Action: platform.Press, Mods: platform.MaskControl},
		{Kind: platform.KindMouseButton, Button: platform.ButtonRight, Action: platform.Release},
		{Kind: platform.KindScroll, PY: -1},
	}
	if len(ns) != len(want) {
		t.Fatalf("got %v", ns)
	}
	for i := range want {
		if ns[i] != want[i] {
			t.Fatalf("notification %d: got %s, want %s", i, ns[i], want[i])
		}
	}
}

func TestModelForwards(t *testing.T) {
	out := make(chan tea.Msg, 4)
	m := model{out: out}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c did not quit")
	}
	if next.(model).width != 80 {
		t.Fatal("size not stored")
	}

	c := &converter{}
	var kinds []platform.Kind
	for len(out) > 0 {
		for _, n := range c.notifications(<-out) {
			kinds = append(kinds, n.Kind)
		}
	}
	if len(kinds) != 2 || kinds[0] != platform.KindSize || kinds[1] != platform.KindClose {
		t.Fatalf("got %v", kinds)
	}
}

func TestPresentCoalesces(t *testing.T) {
	w := &Window{
		exited:  make(chan struct{}),
		present: make(chan struct{}, 1),
	}
	for i := 0; i < 3; i++ {
		if err := w.Present(); err != nil {
			t.Fatal(err)
		}
	}
	if len(w.present) != 1 {
		t.Fatalf("got %d pending presents", len(w.present))
	}

	m := model{present: w.present, done: w.exited}
	if _, ok := m.waitFrame()().(frameMsg); !ok {
		t.Fatal("present was not delivered as a frame")
	}
	next, cmd := m.Update(frameMsg{})
	if next.(model).frames != 1 || cmd == nil {
		t.Fatal("frame did not wait for the next present")
	}

	// Once the program has exited, waiting frames give up and presents fail
	// without blocking.
	close(w.exited)
	if msg := cmd(); msg != nil {
		t.Fatalf("got %v after exit", msg)
	}
	if err := w.Present(); err != platform.ErrClosed {
		t.Fatalf("got %v, want ErrClosed", err)
	}
}
