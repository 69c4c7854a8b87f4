package markdown

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// GoldmarkParser renders markdown to plain HTML for preview purposes. The
// parser is intentionally stateless so callers can reuse a single instance
// across requests without additional locking.
type GoldmarkParser struct {
	engine goldmark.Markdown
}

// NewGoldmarkParser constructs a preview parser with GFM extensions and
// unsafe HTML enabled, mirroring what the block converter accepts (raw block
// comments must survive the preview rendering too).
func NewGoldmarkParser() *GoldmarkParser {
	return &GoldmarkParser{
		engine: goldmark.New(
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// Render converts markdown bytes into HTML. The context is only consulted at
// entry; rendering itself is a single in-memory pass.
func (p *GoldmarkParser) Render(ctx context.Context, markdown []byte) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var buf bytes.Buffer
	if err := p.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown preview: %w", err)
	}
	return buf.Bytes(), nil
}
