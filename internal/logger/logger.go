package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console-formatted logger in development and a plain JSON
// logger everywhere else.
func New(environment string) zerolog.Logger {
	if environment == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
