package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// logConfig holds the resolved logging setup. The terminal belongs to Bubble
// Tea, so logs only go to a file.
type logConfig struct {
	level   slog.Level
	logFile io.WriteCloser // nil if no file logging
}

func resolveLogConfig(flagPath, flagLevel string) (logConfig, error) {
	var lc logConfig
	switch strings.ToLower(flagLevel) {
	case "debug":
		lc.level = slog.LevelDebug
	case "info", "":
		lc.level = slog.LevelInfo
	case "warn":
		lc.level = slog.LevelWarn
	case "error":
		lc.level = slog.LevelError
	default:
		return lc, fmt.Errorf("invalid log level: %s", flagLevel)
	}

	if flagPath != "" {
		f, err := os.OpenFile(flagPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return lc, fmt.Errorf("failed to open log file: %w", err)
		}
		lc.logFile = f
	}
	return lc, nil
}

func (lc logConfig) logger() *slog.Logger {
	if lc.logFile == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewJSONHandler(lc.logFile, &slog.HandlerOptions{Level: lc.level}))
}

func (lc logConfig) Close() error {
	if lc.logFile == nil {
		return nil
	}
	return lc.logFile.Close()
}
