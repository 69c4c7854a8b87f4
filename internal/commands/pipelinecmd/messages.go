package pipelinecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-gutenberg/pkg/interfaces"
)

const (
	convertMessageType = "gutenberg.pipeline.convert"
	previewMessageType = "gutenberg.pipeline.preview"
)

// ConvertCommand runs the full conversion pipeline over Input. The flags map
// directly onto interfaces.ConvertOptions, so the command mirrors the
// pipeline's Convert semantics stage for stage.
type ConvertCommand struct {
	// Input is the raw markdown (or mixed markdown/block) document to convert.
	Input string `json:"input"`
	// StripCommentary removes assistant preamble/postamble before conversion.
	StripCommentary bool `json:"strip_commentary,omitempty"`
	// Enhance expands hint markers into block fragments before conversion.
	Enhance bool `json:"enhance,omitempty"`
	// ExtractFrontmatter splits a frontmatter header off the input and surfaces
	// it on the result instead of converting it.
	ExtractFrontmatter bool `json:"extract_frontmatter,omitempty"`
	// Audit runs the output auditor and attaches findings as warnings.
	Audit bool `json:"audit,omitempty"`
	// Result receives the conversion output when non-nil. Command buses only
	// surface errors, so callers that need the markup pass a destination here.
	Result *interfaces.ConvertResult `json:"-"`
}

// Type implements command.Message.
func (ConvertCommand) Type() string { return convertMessageType }

// Validate ensures the document input is present before handlers execute.
func (cmd ConvertCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Input, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("gutenberg.pipeline.convert.input_required", "input is required")
			}
			return nil
		})),
	)
}

// PreviewCommand renders Input as plain HTML so editors can diff the source
// against the converted block output.
type PreviewCommand struct {
	// Input is the raw markdown document to render.
	Input string `json:"input"`
	// Result receives the rendered HTML when non-nil.
	Result *string `json:"-"`
}

// Type implements command.Message.
func (PreviewCommand) Type() string { return previewMessageType }

// Validate ensures the document input is present before handlers execute.
func (cmd PreviewCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Input, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("gutenberg.pipeline.preview.input_required", "input is required")
			}
			return nil
		})),
	)
}
