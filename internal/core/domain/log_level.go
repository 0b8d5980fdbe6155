package domain

import "log/slog"

// LogLevel is the severity attached to telemetry log lines.
type LogLevel int

// Levels share their numeric values with log/slog.
const (
	LogLevelDebug LogLevel = LogLevel(slog.LevelDebug)
	LogLevelInfo  LogLevel = LogLevel(slog.LevelInfo)
	LogLevelWarn  LogLevel = LogLevel(slog.LevelWarn)
	LogLevelError LogLevel = LogLevel(slog.LevelError)
)

// String returns the upper-case level name.
func (l LogLevel) String() string {
	return slog.Level(l).String()
}
