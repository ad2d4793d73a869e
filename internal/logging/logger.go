// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string
	// File receives every log line. Empty disables file logging.
	File string
	// Mirror also writes log lines to stderr.
	Mirror bool
}

// Setup points the standard logrus logger at a rotated log file and returns
// a function that closes it.
func Setup(opts Options) (func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var (
		writers []io.Writer
		closer  = func() error { return nil }
	)
	if opts.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,    // megabytes
			LocalTime:  false, // UTC file names
			Compress:   true,
			MaxBackups: 5,
		}
		writers = append(writers, rotator)
		closer = rotator.Close
	}
	if opts.Mirror || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		DisableColors:   opts.File != "",
	})
	log.SetOutput(io.MultiWriter(writers...))

	return closer, nil
}
