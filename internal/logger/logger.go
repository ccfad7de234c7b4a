package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"NUTRINO_BACK-END/internal/config"
)

const serviceName = "nutrino-backend"

// New builds the process logger. Development mode writes human readable
// console output, everything else writes JSON lines to stdout.
func New(cfg config.LogConfig) zerolog.Logger {
	return newWithWriter(cfg, os.Stdout)
}

func newWithWriter(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}
