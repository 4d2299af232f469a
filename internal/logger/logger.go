package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a zerolog logger configured for the given environment.
// Production uses JSON output at info level; everything else gets a
// human-readable console writer at debug level.
func New(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	if environment == "production" {
		return zerolog.New(os.Stdout).
			Level(zerolog.InfoLevel).
			With().
			Timestamp().
			Str("service", "fleetops").
			Logger()
	}

	writer := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	return zerolog.New(writer).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
