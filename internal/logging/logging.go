// Package logging builds the structured logger used by the CLI and viewer.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/samdwyer/randommarch/internal/config"
)

const prefix = "randommarch"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger writing to w, or to a rotating file when cfg.File is set.
// The returned closer releases the log file and must be called on exit.
func New(cfg config.LogConfig, w io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   false,
		}
		w = file
		closer = file
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
