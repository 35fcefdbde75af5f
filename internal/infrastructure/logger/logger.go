package logger

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/roomnest-app/roomnest-backend/internal/config"
)

// New builds the application logger. Console output with a component tag;
// unknown levels fall back to info.
func New(cfg *config.LoggingConfig, component string) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
		Level(level).
		With().Timestamp().Str("component", component).Logger()
}
