package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
}

// New builds a logger writing to stderr. Format "console" gives human readable output,
// anything else gives JSON lines.
func New(config Config) zerolog.Logger {
	return NewWithWriter(config, os.Stderr)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(config Config, out io.Writer) zerolog.Logger {
	level := parseLevel(config.Level)

	if config.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: getTimeFormat(config.TimeFormat),
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func getTimeFormat(format string) string {
	if format != "" {
		return format
	}
	return time.Kitchen
}
