// Package logger provides configured zerolog loggers.
package logger

import (
	"io"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

type stackTracer interface{ StackTrace() pkgerrors.StackTrace }

// NewWithWriter returns a JSON logger on w tagged with serviceName.
// Call sites should use .Stack() on error events to include stacks.
func NewWithWriter(w io.Writer, serviceName string, level zerolog.Level) zerolog.Logger {
	// Marshal pkg/errors stacks when present and attach one otherwise, so
	// .Stack() always renders something.
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if _, ok := err.(stackTracer); !ok {
			err = pkgerrors.WithStack(err)
		}
		return zpkgerrors.MarshalStack(err)
	}

	return zerolog.New(w).Level(level).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Console returns a human readable, uncolored logger for interactive tools.
func Console(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
