// Package log implements hazel's leveled logger. Entries made by hazel itself
// are tagged with their source; entries made by the application are not.
package log

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is the visibility level of a log entry. FATAL is the lowest level
// and DEBUG the highest; a Logger prints entries at or below its level.
type Level int

const (
	FATAL Level = iota
	ERROR
	WARN
	OKAY
	INFO
	DEBUG
)

var levelNames = map[string]Level{
	"fatal": FATAL,
	"error": ERROR,
	"warn":  WARN,
	"okay":  OKAY,
	"info":  INFO,
	"debug": DEBUG,
}

// ParseLevel returns the level with the given name.
func ParseLevel(name string) (Level, error) {
	if level, ok := levelNames[strings.ToLower(name)]; ok {
		return level, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", name)
}

// String implements Stringer.
func (l Level) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Source is the origin of a log entry.
type Source int

const (
	SourceCore Source = iota
	SourceClient
)

func (s Source) tag() string {
	if s == SourceCore {
		return "hazel:"
	}
	return ""
}

// output is shared between a Logger and the views created by Client.
type output struct {
	mu    sync.Mutex
	level Level
	sinks []Sink
	exit  func(int)
}

// Logger writes entries to a set of sinks. It handles its own errors, so the
// caller doesn't have to.
type Logger struct {
	out *output
	src Source
}

// New creates a Logger which writes core entries at or below level.
func New(level Level, sinks ...Sink) *Logger {
	return &Logger{
		out: &output{level: level, sinks: sinks, exit: os.Exit},
		src: SourceCore,
	}
}

// Client returns a view of the logger for application entries.
func (l *Logger) Client() *Logger {
	return &Logger{l.out, SourceClient}
}

// SetLevel sets the log visibility level.
func (l *Logger) SetLevel(level Level) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.level = level
}

// Level returns the log visibility level.
func (l *Logger) Level() Level {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	return l.out.level
}

// SetExit replaces the function called by Fatal.
func (l *Logger) SetExit(exit func(int)) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	l.out.exit = exit
}

// Close closes all of the logger's sinks.
func (l *Logger) Close() {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	for _, sink := range l.out.sinks {
		if err := sink.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close log sink: %s\n", err)
		}
	}
	l.out.sinks = nil
}

func (l *Logger) write(level Level, message string, args ...any) {
	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	if level > l.out.level {
		return
	}
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	now := time.Now()
	for _, sink := range l.out.sinks {
		if err := sink.Write(now, level, l.src, message); err != nil {
			fmt.Fprintf(os.Stderr, "Failed log write: %s\n", err)
		}
	}
}

// Debug writes a DEBUG entry.
func (l *Logger) Debug(message string, args ...any) {
	l.write(DEBUG, message, args...)
}

// Info writes an INFO entry.
func (l *Logger) Info(message string, args ...any) {
	l.write(INFO, message, args...)
}

// Okay writes an OKAY entry.
func (l *Logger) Okay(message string, args ...any) {
	l.write(OKAY, message, args...)
}

// Warn writes a WARN entry.
func (l *Logger) Warn(message string, args ...any) {
	l.write(WARN, message, args...)
}

// Error writes an ERROR entry.
func (l *Logger) Error(message string, args ...any) {
	l.write(ERROR, message, args...)
}

// Fatal writes a FATAL entry and exits the process with status 1.
func (l *Logger) Fatal(message string, args ...any) {
	l.write(FATAL, message, args...)
	l.out.mu.Lock()
	exit := l.out.exit
	l.out.mu.Unlock()
	exit(1)
}

var (
	std   = New(INFO, NewConsole())
	stdMu sync.RWMutex
)

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	stdMu.RLock()
	defer stdMu.RUnlock()
	return std
}

// SetDefault replaces the logger used by the package-level functions.
func SetDefault(l *Logger) {
	stdMu.Lock()
	defer stdMu.Unlock()
	std = l
}

// Setup creates a logger writing to the console (unless console is false)
// and, if path is not empty, to the file at path. It becomes the default
// logger.
func Setup(level Level, path string, console bool) (*Logger, error) {
	var sinks []Sink
	if console {
		sinks = append(sinks, NewConsole())
	}
	if path != "" {
		file, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, file)
	}
	l := New(level, sinks...)
	SetDefault(l)
	return l, nil
}

// Debug writes a DEBUG entry to the default logger.
func Debug(message string, args ...any) { Default().Debug(message, args...) }

// Info writes an INFO entry to the default logger.
func Info(message string, args ...any) { Default().Info(message, args...) }

// Okay writes an OKAY entry to the default logger.
func Okay(message string, args ...any) { Default().Okay(message, args...) }

// Warn writes a WARN entry to the default logger.
func Warn(message string, args ...any) { Default().Warn(message, args...) }

// Error writes an ERROR entry to the default logger.
func Error(message string, args ...any) { Default().Error(message, args...) }

// Fatal writes a FATAL entry to the default logger and exits with status 1.
func Fatal(message string, args ...any) { Default().Fatal(message, args...) }
