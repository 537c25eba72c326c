package log

import (
	"fmt"
	"strings"
	"time"
)

// Formatter is used by the Sinks to format a log entry before it is written.
// It is initialized with a formatStr that can use certain internal variables:
// `ascTime` - The time of the log print in human readable form.
// `level` - The visibility level of the log.
// `source` - The origin of the entry (empty for application entries.)
// `message` - The log message itself. This is a compulsory format variable.
// All format variables are enclosed in '{' and '}'.
// Eg: "{ascTime} [{level}]{source} {message}"
type Formatter struct {
	formatStr  string
	timeFormat string
}

// DefaultFormatter creates a Formatter with the default format string.
func DefaultFormatter() Formatter {
	return Formatter{
		formatStr:  "{ascTime} [{level}]{source} {message}",
		timeFormat: "15:04:05.000",
	}
}

// NewFormatter creates a Formatter with a user-defined format string.
func NewFormatter(formatStr string) (Formatter, error) {
	if !strings.Contains(formatStr, "{message}") {
		return Formatter{}, fmt.Errorf("missing `message` parameter in format string %q", formatStr)
	}
	return Formatter{formatStr, "15:04:05.000"}, nil
}

// Format returns the formatted entry, terminated by a newline. The level and
// source tags are passed in already rendered so that sinks can style them.
func (f *Formatter) Format(t time.Time, level, source, message string) string {
	if source != "" {
		source = " " + source
	}
	replacer := strings.NewReplacer(
		"{ascTime}", t.Format(f.timeFormat),
		"{level}", level,
		"{source}", source,
		"{message}", message,
	)
	return replacer.Replace(f.formatStr) + "\n"
}
