package pipelinecmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-gutenberg/internal/commands"
	"github.com/goliatone/go-gutenberg/internal/logging"
	"github.com/goliatone/go-gutenberg/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	convertOperation = "pipeline.convert"
	previewOperation = "pipeline.preview"
)

// ErrPipelineUnavailable is returned when a handler is constructed without a
// pipeline service.
var ErrPipelineUnavailable = errors.New("pipeline command: service unavailable")

var (
	_ command.Commander[ConvertCommand] = (*ConvertHandler)(nil)
	_ command.Commander[PreviewCommand] = (*PreviewHandler)(nil)
)

// ConvertHandler orchestrates document conversions via the shared command
// handler foundation.
type ConvertHandler struct {
	inner *commands.Handler[ConvertCommand]
}

// NewConvertHandler creates a handler bound to the supplied pipeline service.
func NewConvertHandler(service interfaces.PipelineService, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertCommand]) *ConvertHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ConvertCommand) error {
		if service == nil {
			return ErrPipelineUnavailable
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.Convert(ctx, msg.Input, interfaces.ConvertOptions{
			StripCommentary:    msg.StripCommentary,
			Enhance:            msg.Enhance,
			ExtractFrontmatter: msg.ExtractFrontmatter,
			Audit:              msg.Audit,
		})
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = result
		}

		logging.WithFields(baseLogger, map[string]any{
			"output_bytes":  len(result.Content),
			"warning_count": len(result.Warnings),
		}).Info("pipeline.command.convert.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertCommand]{
		commands.WithLogger[ConvertCommand](baseLogger),
		commands.WithOperation[ConvertCommand](convertOperation),
		commands.WithMessageFields(func(msg ConvertCommand) map[string]any {
			fields := map[string]any{
				"input_bytes": len(msg.Input),
			}
			if msg.StripCommentary {
				fields["strip_commentary"] = true
			}
			if msg.Enhance {
				fields["enhance"] = true
			}
			if msg.ExtractFrontmatter {
				fields["extract_frontmatter"] = true
			}
			if msg.Audit {
				fields["audit"] = true
			}
			return fields
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander[ConvertCommand].
func (h *ConvertHandler) Execute(ctx context.Context, msg ConvertCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewHandler renders markdown previews via the shared command handler
// foundation.
type PreviewHandler struct {
	inner *commands.Handler[PreviewCommand]
}

// NewPreviewHandler creates a handler bound to the supplied pipeline service.
func NewPreviewHandler(service interfaces.PipelineService, logger interfaces.Logger, opts ...commands.HandlerOption[PreviewCommand]) *PreviewHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg PreviewCommand) error {
		if service == nil {
			return ErrPipelineUnavailable
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		html, err := service.Preview(ctx, msg.Input)
		if err != nil {
			return err
		}
		if msg.Result != nil {
			*msg.Result = html
		}

		logging.WithFields(baseLogger, map[string]any{
			"output_bytes": len(html),
		}).Info("pipeline.command.preview.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewCommand]{
		commands.WithLogger[PreviewCommand](baseLogger),
		commands.WithOperation[PreviewCommand](previewOperation),
		commands.WithMessageFields(func(msg PreviewCommand) map[string]any {
			return map[string]any{
				"input_bytes": len(msg.Input),
			}
		}),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander[PreviewCommand].
func (h *PreviewHandler) Execute(ctx context.Context, msg PreviewCommand) error {
	return h.inner.Execute(ctx, msg)
}
