// Package logging sets up the debug stream. The puzzle platform shows
// stderr next to the game view, so everything goes there without colour.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level maps a level name to a zerolog level. Unknown names fall back to
// warn so a stray value never floods the console.
func Level(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}).Level(Level(level)).With().Timestamp().Logger()
}
