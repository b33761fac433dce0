// Package logger is the structured logging facade used across maneuvergen.
// Libraries accept a Logger and default to Nop; the CLI builds a zerolog
// backed one.
package logger

// Logger is the minimal logging surface the generator needs.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no-op methods.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any)         {}
func (NopLogger) Debugw(string, map[string]any) {}
func (NopLogger) Infof(string, ...any)          {}
func (NopLogger) Warnf(string, ...any)          {}
func (NopLogger) Errorf(string, ...any)         {}

// Nop is the shared no-op logger.
var Nop Logger = NopLogger{}

// New returns a Logger for the given component writing to stderr at info
// level. The output format follows APP_ENV.
func New(component string) Logger {
	return NewZerologLogger(component, Options{})
}
