package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options tune a ZerologLogger. Zero values mean stderr, info level and a
// format chosen from APP_ENV.
type Options struct {
	// Out receives the log lines.
	Out io.Writer
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	Level string
	// Console forces the human-readable console writer.
	Console bool
}

// ZerologLogger implements Logger using rs/zerolog.
type ZerologLogger struct {
	base zerolog.Logger // without component
	log  zerolog.Logger
}

// NewZerologLogger creates a ZerologLogger tagged with component. APP_ENV=dev
// or opts.Console selects the console writer, anything else emits JSON lines.
// An unknown level name falls back to info.
func NewZerologLogger(component string, opts Options) *ZerologLogger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Console || strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}

	base := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &ZerologLogger{base: base, log: base.With().Str("component", component).Logger()}
}

// With returns a child logger whose lines carry a different component.
func (l *ZerologLogger) With(component string) *ZerologLogger {
	return &ZerologLogger{base: l.base, log: l.base.With().Str("component", component).Logger()}
}

func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

func (l *ZerologLogger) Debugw(msg string, fields map[string]any) {
	ev := l.log.Debug()
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

func (l *ZerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
