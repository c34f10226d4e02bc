package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/langkit/pkg/config"
	"github.com/dmitrymomot/langkit/pkg/logger"
)

// Config holds the environment-driven settings of the CLI.
type Config struct {
	Env          string `env:"LANGKIT_ENV" envDefault:"development"`
	LogLevel     string `env:"LANGKIT_LOG_LEVEL"`
	LogFormat    string `env:"LANGKIT_LOG_FORMAT"`
	Parallelism  int    `env:"LANGKIT_PARALLELISM"`
	ReportFormat string `env:"LANGKIT_REPORT_FORMAT" envDefault:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg Config, w io.Writer, command string) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "langkit"),
		logger.WithOutput(w),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithAttr(slog.String("command", command)),
		logger.WithContextExtractors(logger.ExtractRunID),
	}
	switch f := logger.Format(cfg.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid LANGKIT_LOG_FORMAT %q", cfg.LogFormat)
	}
	return logger.New(opts...), nil
}
