package nestlog

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/rybkr/termkit/internal/termcolor"
)

// Formatter renders the arguments of one log call at the given level.
type Formatter func(level string, args ...any) string

// Message is the default Formatter: "level: msg" for the known levels and
// the bare message otherwise.
func Message(level string, args ...any) string {
	msg := join(args)
	switch level {
	case LevelStart, LevelEnd, LevelDebug, LevelInfo, LevelWarn, LevelError:
		return level + ": " + msg
	default:
		return msg
	}
}

// ColorFormatter returns a Formatter that renders start messages bold and
// marks the other levels with a colored bullet.
func ColorFormatter(cw *termcolor.Writer) Formatter {
	bullets := map[string]func(string) string{
		LevelDebug: cw.Gray,
		LevelInfo:  cw.Green,
		LevelWarn:  cw.Yellow,
		LevelError: cw.Red,
		LevelEnd:   cw.White,
	}
	return func(level string, args ...any) string {
		msg := join(args)
		if level == LevelStart {
			return cw.Bold(msg)
		}
		if paint, ok := bullets[level]; ok {
			return paint("*") + " " + msg
		}
		return msg
	}
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// levelName maps a slog level to the nearest logger level name.
func levelName(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return LevelDebug
	case l < slog.LevelWarn:
		return LevelInfo
	case l < slog.LevelError:
		return LevelWarn
	default:
		return LevelError
	}
}

func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
