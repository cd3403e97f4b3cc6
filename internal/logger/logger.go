// Package logger configures the process-wide slog logger to write to a
// rotating file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/lumen/internal/osutil"
)

// Config holds logger configuration.
type Config struct {
	// Path is the log file. Its directory is created if missing.
	Path  string
	Level string
	// Debug also mirrors records to stderr and reports callers.
	Debug bool
}

const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

func parseLevel(s string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}

	return lvl
}

// New builds a logger from cfg. The returned closer releases the log file.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(cfg.Path), osutil.DirPermission)
	if err != nil {
		return nil, nil, err
	}

	file := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	level := parseLevel(cfg.Level)

	var w io.Writer = file

	if cfg.Debug {
		w = io.MultiWriter(os.Stderr, file)
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "lumen",
		Formatter:       log.LogfmtFormatter,
	})

	return slog.New(handler), file, nil
}

// Init installs a logger built from cfg as the slog default.
func Init(cfg Config) (io.Closer, error) {
	l, closer, err := New(cfg)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)

	return closer, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
