// Package logger provides logging functionality for tapline.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocklogger.gen.go -package=logger

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// zerologLogger forwards messages to a zerolog.Logger.
type zerologLogger struct {
	mu     sync.Mutex
	logger zerolog.Logger
}

// NewDefaultLogger creates a logger writing human readable lines to stdout.
func NewDefaultLogger() Logger {
	return NewWriterLogger(os.Stdout)
}

// NewWriterLogger creates a logger writing human readable lines to w.
func NewWriterLogger(w io.Writer) Logger {
	return NewZerologLogger(zerolog.New(zerolog.ConsoleWriter{
		Out:     w,
		NoColor: true,
		PartsExclude: []string{
			zerolog.TimestampFieldName,
		},
	}))
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(l zerolog.Logger) Logger {
	return &zerologLogger{logger: l}
}

// Logf writes a formatted message at info level.
func (z *zerologLogger) Logf(format string, args ...interface{}) {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logger.Info().Msg(fmt.Sprintf(format, args...))
}
