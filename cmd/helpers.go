package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/activeforks/internal/giturl"
	"github.com/inovacc/activeforks/internal/page"
)

// outputJSON encodes data as indented JSON to w
func outputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}

// parseLevel maps a --log-level value to a slog level, defaulting to info
func parseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogger creates a slog.Logger writing to w in the given format
func newLogger(w io.Writer, levelStr, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(levelStr)}

	var handler slog.Handler

	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q: expected text or json", format)
	}

	return slog.New(handler), nil
}

// openLogger creates a logger appending to the file at path. The returned
// function closes the file.
func openLogger(path, levelStr, format string) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger, err := newLogger(f, levelStr, format)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	return logger, f.Close, nil
}

// startLocation builds the page location from the command argument: a
// link carrying a #fragment, or a bare identifier used as the fragment.
func startLocation(arg string) (*page.History, error) {
	if giturl.IsLocation(arg) {
		return page.ParseHistory(arg)
	}

	return page.NewHistory("", strings.TrimSpace(arg)), nil
}
