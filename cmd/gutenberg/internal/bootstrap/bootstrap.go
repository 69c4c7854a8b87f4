package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-gutenberg"
	"github.com/goliatone/go-gutenberg/internal/logging"
	"github.com/goliatone/go-gutenberg/internal/logging/gologger"
	"github.com/goliatone/go-gutenberg/pkg/interfaces"
)

// Options captures configuration for gutenberg CLI bootstraps.
type Options struct {
	LogLevel       string
	LogFormat      string
	Quiet          bool
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the pipeline and its scoped logger for CLI entry points.
type Module struct {
	Pipeline *gutenberg.Pipeline
	Provider interfaces.LoggerProvider
	Logger   interfaces.Logger
}

// BuildModule constructs a conversion pipeline configured from CLI options.
func BuildModule(opts Options) (*Module, error) {
	cfg := gutenberg.DefaultConfig()
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	provider := opts.LoggerProvider
	if provider == nil && !opts.Quiet {
		built, err := gologger.NewProvider(gologger.Config{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return nil, fmt.Errorf("initialise logger provider: %w", err)
		}
		provider = built
	}

	logger := logging.PipelineLogger(provider)

	pipeline, err := gutenberg.New(cfg, gutenberg.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("initialise gutenberg pipeline: %w", err)
	}

	return &Module{
		Pipeline: pipeline,
		Provider: provider,
		Logger:   logger,
	}, nil
}
