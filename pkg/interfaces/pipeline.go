package interfaces

import "context"

// CommentaryStripper removes conversational wrapper text (preamble and
// postamble an assistant may have added) from around the real content.
// Implementations must be pure: the same input always yields the same output
// and no state survives between calls.
type CommentaryStripper interface {
	Strip(text string) string
}

// HintExpander replaces author-inserted hint marker regions
// (<!-- @name ... --> ... <!-- @end -->) with pre-templated block fragments.
type HintExpander interface {
	Expand(text string) string
}

// BlockConverter turns markdown text into Gutenberg block markup. Content
// already expressed as block markup must be re-emitted unchanged.
type BlockConverter interface {
	Convert(text string) string
}

// PreviewRenderer renders raw markdown into plain HTML so editors can diff
// the source against the converted block output.
type PreviewRenderer interface {
	Render(ctx context.Context, markdown []byte) ([]byte, error)
}

// Auditor inspects converted block markup for structural problems (unbalanced
// block comments, invalid attribute payloads). Findings are advisory: the
// pipeline reports them as warnings, never as errors.
type Auditor interface {
	Audit(content string) []string
}

// PipelineService is the full conversion surface: staged conversion plus a
// plain-HTML preview of the raw markdown.
type PipelineService interface {
	Convert(ctx context.Context, input string, opts ConvertOptions) (ConvertResult, error)
	Preview(ctx context.Context, input string) (string, error)
}

// ConvertOptions selects which optional pipeline stages run for a single
// conversion. The markdown-to-block conversion itself always runs.
type ConvertOptions struct {
	// StripCommentary removes assistant preamble/postamble before conversion.
	StripCommentary bool
	// Enhance expands hint markers into block fragments before conversion.
	Enhance bool
	// ExtractFrontmatter splits a YAML/TOML frontmatter header off the input
	// and surfaces it on the result instead of converting it.
	ExtractFrontmatter bool
	// Audit runs the output auditor and attaches findings as warnings.
	Audit bool
}

// ConvertResult carries the converted block markup plus metadata extracted
// along the way.
type ConvertResult struct {
	// Content is the complete Gutenberg block markup.
	Content string
	// Title is the frontmatter title when ExtractFrontmatter is set and the
	// input carried one; empty otherwise.
	Title string
	// Meta holds the remaining frontmatter fields, keyed by field name.
	Meta map[string]any
	// Warnings lists advisory audit findings. Empty unless Audit was set.
	Warnings []string
}
