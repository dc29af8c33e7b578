package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

const (
	logDir      = "logs"
	logFileName = "ant-colony.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging builds the process logger
// dest "" discards, "-" writes to stderr, anything else is a file path rotated past maxLogSize
// The returned closer is nil unless a file was opened
func setupLogging(dest string, debug bool) (*log.Logger, io.Closer, error) {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	opts := log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "colony",
	}

	switch dest {
	case "":
		return log.New(io.Discard), nil, nil
	case "-":
		return log.NewWithOptions(os.Stderr, opts), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	if err := rotateLog(dest); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.NewWithOptions(f, opts), f, nil
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return nil
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s.%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
