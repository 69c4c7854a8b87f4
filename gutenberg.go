// Package gutenberg converts free-form markdown, often AI-generated, into
// WordPress Gutenberg block markup. The conversion is a strict three-stage
// pipeline: an optional commentary stripper, an optional hint expander, and
// the markdown-to-block converter that always runs.
package gutenberg

import (
	"github.com/goliatone/go-gutenberg/internal/pipeline"
	"github.com/goliatone/go-gutenberg/pkg/interfaces"
)

// Pipeline exports the conversion service for consumers of the gutenberg package.
type Pipeline = pipeline.Service

// Option exports the pipeline option type.
type Option = pipeline.Option

// ConvertOptions exports the per-call stage selection flags.
type ConvertOptions = interfaces.ConvertOptions

// ConvertResult exports the conversion result DTO.
type ConvertResult = interfaces.ConvertResult

// Logger exports the logging contract the pipeline expects.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// New constructs the conversion pipeline from the supplied configuration.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	return pipeline.NewService(cfg, opts...)
}

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger Logger) Option {
	return pipeline.WithLogger(logger)
}
