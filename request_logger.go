package client

import (
	"os"

	"github.com/rs/zerolog"
)

// RequestLogger is the interface used by [Client] for logging request
// attempts, responses, and backoff delays. Implement this interface to
// integrate with your logging library and supply the implementation via
// [WithRequestLogger].
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log messages.
// It is the default logger when debug logging is off and no logger is
// provided to [New].
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}

// defaultNoopLogger is the sentinel default; New replaces it with a
// debugLogger when WithDebug is set and no custom logger was supplied.
var defaultNoopLogger = &NoopLogger{}

// debugLogger writes single-line diagnostic events to stderr. It backs
// [WithDebug] when no custom RequestLogger is supplied.
type debugLogger struct {
	log zerolog.Logger
}

func newDebugLogger() *debugLogger {
	return &debugLogger{
		log: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
}

func (l *debugLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
func (l *debugLogger) Warnf(format string, v ...any)  { l.log.Warn().Msgf(format, v...) }
func (l *debugLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
