// Package logging sets up the structured log file. The terminal belongs to the
// UI, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"reversi-local/config"
)

var logFile = "reversi-local/reversi.log"

// ParseLevel maps a config level name to a slog level. Unknown names mean info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New returns a JSON logger writing to cfg.File, or to the XDG state dir when
// unset. The caller closes the returned file.
func New(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	path := cfg.File
	if path == "" {
		var err error
		if path, err = xdg.StateFile(logFile); err != nil {
			return nil, nil, fmt.Errorf("locate log file: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewWithWriter(f, cfg.Level), f, nil
}

// NewWithWriter builds the JSON logger on an arbitrary writer.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}
