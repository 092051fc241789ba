package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logBackend fans log writes out to stderr and, when a log file is
// configured, a rotating file.
type logBackend struct {
	stdErr     io.Writer
	logRotator *rotator.Rotator
	bknd       *slog.Backend
	level      slog.Level
}

func newLogBackend(logFile, debugLevel string) (*logBackend, error) {
	var logRotator *rotator.Rotator
	if logFile != "" {
		logDir, _ := filepath.Split(logFile)
		if logDir != "" {
			if err := os.MkdirAll(logDir, 0o700); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %v", err)
			}
		}
		var err error
		logRotator, err = rotator.New(logFile, 1024, false, 3)
		if err != nil {
			return nil, fmt.Errorf("failed to create file rotator: %v", err)
		}
	}

	level, ok := slog.LevelFromString(debugLevel)
	if !ok {
		return nil, fmt.Errorf("unknown log level %q", debugLevel)
	}

	b := &logBackend{
		stdErr:     os.Stderr,
		logRotator: logRotator,
		level:      level,
	}
	b.bknd = slog.NewBackend(b)
	return b, nil
}

func (b *logBackend) Write(p []byte) (int, error) {
	b.stdErr.Write(p)
	if b.logRotator != nil {
		b.logRotator.Write(p)
	}
	return len(p), nil
}

func (b *logBackend) logger(subsys string) slog.Logger {
	l := b.bknd.Logger(subsys)
	l.SetLevel(b.level)
	return l
}

func (b *logBackend) close() {
	if b.logRotator != nil {
		b.logRotator.Close()
	}
}
