package logging

import (
	"io"
	"log/slog"
	"strings"
)

const envProduction = "production"

// SetupLogger installs the process-wide slog logger.
// Production gets JSON lines, every other environment gets the text handler.
func SetupLogger(appEnv, logLevel string, out io.Writer) *slog.Logger {
	level := parseLevel(logLevel)
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewTextHandler(out, opts)
	if appEnv == envProduction {
		handler = slog.NewJSONHandler(out, opts)
	}

	logger := slog.New(handler).With("app", "riskapi", "env", appEnv)
	slog.SetDefault(logger)
	return logger
}

func parseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(levelStr)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING", "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
