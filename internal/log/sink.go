package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Sink is a destination for log entries.
type Sink interface {
	Write(t time.Time, level Level, src Source, message string) error
	Close() error
}

// Level tags, padded to equal width.
var levelTags = map[Level]string{
	DEBUG: "DEBG",
	INFO:  "INFO",
	OKAY:  "OKAY",
	WARN:  "WARN",
	ERROR: "ERRR",
	FATAL: "FATL",
}

var (
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	sourceStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	levelStyles = map[Level]lipgloss.Style{
		DEBUG: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		INFO:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		OKAY:  lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("2")),
		WARN:  lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("3")),
		ERROR: lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("9")),
		FATAL: lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(lipgloss.Color("1")),
	}
)

// Console writes entries to stdout, or stderr for ERROR and FATAL entries.
// Entries are styled if the output is a terminal.
type Console struct {
	formatter Formatter
	stdout    io.Writer
	stderr    io.Writer
	color     bool
}

// NewConsole creates a Console sink for the process' stdout and stderr.
func NewConsole() *Console {
	return &Console{
		formatter: DefaultFormatter(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		color:     term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// NewWriterConsole creates an unstyled Console sink which writes every entry
// to w.
func NewWriterConsole(w io.Writer) *Console {
	return &Console{
		formatter: DefaultFormatter(),
		stdout:    w,
		stderr:    w,
	}
}

// Write implements Sink.
func (c *Console) Write(t time.Time, level Level, src Source, message string) error {
	lvl, source := " "+levelTags[level]+" ", src.tag()
	if c.color {
		lvl = levelStyles[level].Render(lvl)
		if source != "" {
			source = sourceStyle.Render(source)
		}
	}
	line := c.formatter.Format(t, lvl, source, message)
	if c.color {
		ts := t.Format(c.formatter.timeFormat)
		line = timeStyle.Render(ts) + line[len(ts):]
	}
	out := c.stdout
	if level <= ERROR {
		out = c.stderr
	}
	if _, err := io.WriteString(out, line); err != nil {
		return fmt.Errorf("unable to write to console: %w", err)
	}
	return nil
}

// Close implements Sink.
func (c *Console) Close() error {
	return nil
}

// File writes unstyled entries to a log file.
type File struct {
	logFile   *os.File
	formatter Formatter
}

// OpenFile opens (and truncates) the log file at the given path.
func OpenFile(path string) (*File, error) {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &File{logFile, DefaultFormatter()}, nil
}

// Write implements Sink.
func (f *File) Write(t time.Time, level Level, src Source, message string) error {
	line := f.formatter.Format(t, levelTags[level], src.tag(), message)
	if _, err := f.logFile.WriteString(line); err != nil {
		return fmt.Errorf("unable to write to log file: %w", err)
	}
	return nil
}

// Close implements Sink.
func (f *File) Close() error {
	return f.logFile.Close()
}
