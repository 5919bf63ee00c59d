// Package logger provides the coloured, prefixed loggers used by every subsystem.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze3d/config"
	"github.com/beka-birhanu/vinom-maze3d/service/i"
)

var _ i.Logger = &Logger{}

// ErrNilWriter is returned when a logger is created without an output.
var ErrNilWriter = errors.New("logger output is nil")

// Logger writes levelled lines tagged with a coloured subsystem prefix, e.g. "[MAZE] [INFO] ...".
type Logger struct {
	out *log.Logger
}

// New creates a logger that writes to w, tagging each line with prefix in the given colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	tag := fmt.Sprintf("%s[%s]%s ", color, prefix, config.ColorReset)
	return &Logger{out: log.New(w, tag, log.Ldate|log.Ltime)}, nil
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.print(config.LogWarnColor, "WARN", msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(color, level, msg string) {
	l.out.Printf("%s[%s]%s %s", color, level, config.LogColorReset, msg)
}
