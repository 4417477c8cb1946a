package svcutil

import (
	"io"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v2"
)

// Maps a "log-level" name (error, warn, info, debug) to a slog level. Unknown or empty names give info.
func ParseLogLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Configures a JSON logger at the level given by the "log-level" flag, and installs it as the slog default.
func ConfigLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: ParseLogLevel(cctx.String("log-level")),
	}))
	slog.SetDefault(logger)
	return logger
}
