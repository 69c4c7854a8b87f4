// Package pipeline wires the three conversion stages into one service:
// commentary stripping, hint expansion, and markdown-to-block conversion.
// The stages themselves are pure functions; the service adds configuration
// gating, logging, and the optional frontmatter and audit passes around them.
package pipeline

import (
	"context"

	"github.com/goliatone/go-gutenberg/internal/audit"
	"github.com/goliatone/go-gutenberg/internal/blockconv"
	"github.com/goliatone/go-gutenberg/internal/commentary"
	"github.com/goliatone/go-gutenberg/internal/hints"
	"github.com/goliatone/go-gutenberg/internal/logging"
	"github.com/goliatone/go-gutenberg/internal/markdown"
	"github.com/goliatone/go-gutenberg/internal/runtimeconfig"
	"github.com/goliatone/go-gutenberg/pkg/interfaces"
)

// Service runs the conversion pipeline. Construct it once and reuse it: every
// call builds fresh local state, so a single instance is safe for concurrent
// use.
type Service struct {
	cfg       runtimeconfig.Config
	stripper  interfaces.CommentaryStripper
	expander  interfaces.HintExpander
	converter interfaces.BlockConverter
	preview   interfaces.PreviewRenderer
	auditor   interfaces.Auditor
	logger    interfaces.Logger
}

// Option customises service behaviour.
type Option func(*Service)

// WithLogger attaches a logger used for structured diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStripper overrides the commentary stripper stage.
func WithStripper(stripper interfaces.CommentaryStripper) Option {
	return func(s *Service) {
		if stripper != nil {
			s.stripper = stripper
		}
	}
}

// WithExpander overrides the hint expander stage.
func WithExpander(expander interfaces.HintExpander) Option {
	return func(s *Service) {
		if expander != nil {
			s.expander = expander
		}
	}
}

// WithConverter overrides the block converter stage.
func WithConverter(converter interfaces.BlockConverter) Option {
	return func(s *Service) {
		if converter != nil {
			s.converter = converter
		}
	}
}

// WithPreviewRenderer overrides the HTML preview renderer.
func WithPreviewRenderer(renderer interfaces.PreviewRenderer) Option {
	return func(s *Service) {
		if renderer != nil {
			s.preview = renderer
		}
	}
}

// WithAuditor overrides the output auditor.
func WithAuditor(auditor interfaces.Auditor) Option {
	return func(s *Service) {
		if auditor != nil {
			s.auditor = auditor
		}
	}
}

// NewService constructs the pipeline with the built-in stage implementations.
func NewService(cfg runtimeconfig.Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		cfg:       cfg,
		stripper:  stripperAdapter{},
		expander:  expanderAdapter{},
		converter: converterAdapter{},
		preview:   markdown.NewGoldmarkParser(),
		auditor:   audit.New(),
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Convert runs the pipeline over input. Stage selection honours both the
// per-call options and the configured feature gates; a disabled feature turns
// the matching option into a no-op. The only error surface is the context:
// the stages themselves are total over arbitrary text.
func (s *Service) Convert(ctx context.Context, input string, opts interfaces.ConvertOptions) (interfaces.ConvertResult, error) {
	select {
	case <-ctx.Done():
		return interfaces.ConvertResult{}, ctx.Err()
	default:
	}

	logger := logging.WithStageContext(s.logger, "convert", len(input))
	result := interfaces.ConvertResult{}
	text := input

	if opts.ExtractFrontmatter && s.cfg.Features.Frontmatter {
		fm, body, err := markdown.ParseFrontMatter([]byte(text))
		if err != nil {
			// Frontmatter trouble degrades to a warning; the raw text still converts.
			logger.Warn("pipeline.frontmatter.failed", "error", err)
			result.Warnings = append(result.Warnings, "frontmatter: "+err.Error())
		} else {
			result.Title = fm.Title
			result.Meta = fm.Meta()
			text = string(body)
		}
	}

	if opts.StripCommentary && s.cfg.Features.Commentary {
		text = s.stripper.Strip(text)
	}

	if opts.Enhance && s.cfg.Features.Hints {
		text = s.expander.Expand(text)
	}

	result.Content = s.converter.Convert(text)

	if opts.Audit && s.cfg.Features.Audit {
		if findings := s.auditor.Audit(result.Content); len(findings) > 0 {
			logger.Warn("pipeline.audit.findings", "count", len(findings))
			result.Warnings = append(result.Warnings, findings...)
		}
	}

	logger.Debug("pipeline.convert.done", "output_bytes", len(result.Content), "warnings", len(result.Warnings))
	return result, nil
}

// Preview renders the raw markdown input to plain HTML.
func (s *Service) Preview(ctx context.Context, input string) (string, error) {
	html, err := s.preview.Render(ctx, []byte(input))
	if err != nil {
		return "", err
	}
	return string(html), nil
}

type stripperAdapter struct{}

func (stripperAdapter) Strip(text string) string { return commentary.Strip(text) }

type expanderAdapter struct{}

func (expanderAdapter) Expand(text string) string { return hints.Expand(text) }

type converterAdapter struct{}

func (converterAdapter) Convert(text string) string { return blockconv.Convert(text) }
