// Package log provides structured slog-based logging for featselect pipelines.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupLogger installs the default JSON logger at the given level.
func SetupLogger(loglevel string) {
	slog.SetDefault(slog.New(NewHandler(os.Stdout, ToLogLevel(loglevel))))
}

// NewHandler builds the JSON handler SetupLogger installs: CloudLogging
// attribute names, source locations, and the stacktrace-extracting wrapper.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     level,
		// Replace attributes to convert to CloudLogging format.
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{
					Key:   "severity",
					Value: attr.Value,
				}
			case slog.MessageKey:
				attr = slog.Attr{
					Key:   "message",
					Value: attr.Value,
				}
			case slog.SourceKey:
				attr = slog.Attr{
					Key:   "logging.googleapis.com/sourceLocation",
					Value: attr.Value,
				}
			}
			return attr
		},
	}
	return WrapByErrFmtHandler(slog.NewJSONHandler(w, &ops))
}

// ToLogLevel maps a level name to its slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
