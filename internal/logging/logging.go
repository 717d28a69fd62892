// Package logging configures logrus for the two binaries.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup sets logger's level and output. An empty path logs to stderr;
// otherwise the file is opened for append and must be closed by the caller.
func Setup(logger *log.Logger, level, path string) (io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(lvl)

	if path == "" {
		logger.SetOutput(os.Stderr)
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: true})
	return f, nil
}
