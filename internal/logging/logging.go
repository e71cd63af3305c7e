package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New returns a timestamped JSON logger writing to w at debug level, or a
// disabled logger when debug is false.
func New(w io.Writer, debug bool) zerolog.Logger {
	if !debug || w == nil {
		return zerolog.Nop()
	}
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
