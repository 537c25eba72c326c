// Package term implements a platform.Window inside the terminal, for
// running hazel applications without a display server.
package term

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	gloss "github.com/charmbracelet/lipgloss"

	"github.com/tesselslate/hazel/internal/platform"
)

var (
	titleStyle = gloss.NewStyle().Bold(true).Foreground(gloss.Color("6"))
	grayStyle  = gloss.NewStyle().Foreground(gloss.Color("8"))
	boxStyle   = gloss.NewStyle().Border(gloss.RoundedBorder()).Padding(0, 1)
)

// Options contains the settings used to create a window.
type Options struct {
	Title string
	VSync bool
}

// frameMsg is delivered to the model after a present.
type frameMsg struct{}

// closeMsg is forwarded when the user asks to quit.
type closeMsg struct{}

// model is the bubbletea model of the window. It draws a status box and
// forwards every message it receives to the polling side.
type model struct {
	title  string
	width  int
	height int
	frames uint64
	last   string
	out    chan<- tea.Msg

	// Presents are signalled on present until done is closed.
	present <-chan struct{}
	done    <-chan struct{}
}

func (m model) Init() tea.Cmd {
	return m.waitFrame()
}

// waitFrame returns a command which waits for the next present.
func (m model) waitFrame() tea.Cmd {
	if m.present == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-m.present:
			return frameMsg{}
		case <-m.done:
			return nil
		}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frames += 1
		return m, m.waitFrame()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		m.last = msg.String()
		if msg.String() == "ctrl+c" {
			m.forward(closeMsg{})
			return m, tea.Quit
		}
	}
	m.forward(msg)
	return m, nil
}

// forward passes msg to the polling side, dropping it if the poller has
// fallen too far behind.
func (m model) forward(msg tea.Msg) {
	select {
	case m.out <- msg:
	default:
	}
}

func (m model) View() string {
	body := titleStyle.Render(m.title) + "\n"
	body += fmt.Sprintf("%dx%d  frame %d\n", m.width, m.height, m.frames)
	if m.last != "" {
		body += "last key: " + m.last + "\n"
	}
	body += grayStyle.Render("ctrl+c: quit")
	return boxStyle.Render(body) + "\n"
}

// converter holds the state needed to convert terminal messages.
type converter struct {
	lastButton uint8
}

// notifications converts a single terminal message.
func (c *converter) notifications(msg tea.Msg) []platform.Notification {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return []platform.Notification{{
			Kind:   platform.KindSize,
			Width:  uint32(msg.Width),
			Height: uint32(msg.Height),
		}}
	case tea.KeyMsg:
		return keyNotifications(msg)
	case tea.MouseMsg:
		return c.mouseNotifications(msg)
	case closeMsg:
		return []platform.Notification{{Kind: platform.KindClose}}
	}
	return nil
}

// Window is a terminal window.
type Window struct {
	program *tea.Program
	msgs    chan tea.Msg
	exited  chan struct{}
	conv    converter
	vsync   bool

	// Holds at most one present the program has not drawn yet.
	present chan struct{}

	mu     sync.Mutex
	width  uint32
	height uint32
	err    error
}

// Open takes over the terminal and starts drawing the window.
func Open(opts Options) (*Window, error) {
	msgs := make(chan tea.Msg, 256)
	w := &Window{
		msgs:    msgs,
		exited:  make(chan struct{}),
		vsync:   opts.VSync,
		present: make(chan struct{}, 1),
	}
	w.program = tea.NewProgram(
		model{title: opts.Title, out: msgs, present: w.present, done: w.exited},
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	go func() {
		err := w.program.Start()
		w.mu.Lock()
		w.err = err
		w.mu.Unlock()
		close(w.exited)
	}()
	return w, nil
}

// Poll implements platform.Window.
func (w *Window) Poll(fn func(platform.Notification)) error {
	for {
		select {
		case msg := <-w.msgs:
			for _, n := range w.conv.notifications(msg) {
				if n.Kind == platform.KindSize {
					w.mu.Lock()
					w.width, w.height = n.Width, n.Height
					w.mu.Unlock()
				}
				fn(n)
			}
		default:
			select {
			case <-w.exited:
				return platform.ErrClosed
			default:
				return nil
			}
		}
	}
}

// Present implements platform.Presenter.
func (w *Window) Present() error {
	select {
	case <-w.exited:
		return platform.ErrClosed
	default:
	}
	// Frames are coalesced rather than stalling the loop on a slow terminal.
	select {
	case w.present <- struct{}{}:
	default:
	}
	return nil
}

// Width implements platform.Window. It is measured in cells.
func (w *Window) Width() uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// Height implements platform.Window. It is measured in cells.
func (w *Window) Height() uint32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.height
}

// VSync implements platform.Window.
func (w *Window) VSync() bool {
	return w.vsync
}

// Close implements platform.Window. It restores the terminal and returns
// the error the program exited with, if any.
func (w *Window) Close() error {
	select {
	case <-w.exited:
	default:
		go w.program.Quit()
		<-w.exited
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}
