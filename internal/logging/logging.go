// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Debug   bool
	NoColor bool

	// File receives JSON logs when set. The interactive form uses this so
	// log lines do not tear the alternate screen.
	File string

	// Console receives human readable logs when File is empty. A nil
	// Console discards everything.
	Console io.Writer
}

// Init replaces the global logger and returns a func that releases the log
// file, if any.
func Init(opts Options) (func(), error) {
	level := zerolog.WarnLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}

	cleanup := func() {}
	var logger zerolog.Logger
	switch {
	case opts.File != "":
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cleanup, errors.Wrapf(err, "opening log file %s", opts.File)
		}
		cleanup = func() { _ = f.Close() }
		logger = zerolog.New(f).With().Timestamp().Logger()
	case opts.Console != nil:
		logger = zerolog.New(zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: "15:04:05", NoColor: opts.NoColor}).
			With().
			Timestamp().
			Logger()
	default:
		logger = zerolog.Nop()
	}

	logger = logger.Level(level)
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	return cleanup, nil
}
