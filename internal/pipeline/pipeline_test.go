package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-gutenberg/internal/runtimeconfig"
	"github.com/goliatone/go-gutenberg/pkg/interfaces"
)

func newTestService(t *testing.T, mutate func(*runtimeconfig.Config)) *Service {
	t.Helper()
	cfg := runtimeconfig.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	svc, err := NewService(cfg)
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}
	return svc
}

func TestConvert_FullPipeline(t *testing.T) {
	svc := newTestService(t, nil)

	input := "Sure, here's your article:\n\n" +
		"## Overview\n\n" +
		"<!-- @protip -->\nRead the manual first.\n<!-- @end -->\n\n" +
		"Closing thoughts.\n\n" +
		"I hope this helps!"

	result, err := svc.Convert(context.Background(), input, interfaces.ConvertOptions{
		StripCommentary: true,
		Enhance:         true,
		Audit:           true,
	})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}

	if strings.Contains(result.Content, "Sure, here's") || strings.Contains(result.Content, "I hope this helps") {
		t.Fatalf("commentary survived: %q", result.Content)
	}
	if !strings.Contains(result.Content, "protip-box") {
		t.Fatalf("hint not expanded: %q", result.Content)
	}
	if !strings.Contains(result.Content, "<h2 class=\"wp-block-heading\">Overview</h2>") {
		t.Fatalf("heading not converted: %q", result.Content)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("clean conversion should have no findings: %v", result.Warnings)
	}
}

func TestConvert_StagesAreOptional(t *testing.T) {
	svc := newTestService(t, nil)

	input := "Sure, here it is:\n\n<!-- @protip -->\ntip\n<!-- @end -->"
	result, err := svc.Convert(context.Background(), input, interfaces.ConvertOptions{})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	// With both stages off, the preamble converts as a paragraph and the hint
	// markers flow through untouched as paragraphs too.
	if !strings.Contains(result.Content, "Sure, here it is:") {
		t.Fatalf("stripper ran although disabled: %q", result.Content)
	}
	if strings.Contains(result.Content, "protip-box") {
		t.Fatalf("expander ran although disabled: %q", result.Content)
	}
}

func TestConvert_FeatureGateBeatsOption(t *testing.T) {
	svc := newTestService(t, func(cfg *runtimeconfig.Config) {
		cfg.Features.Hints = false
	})

	result, err := svc.Convert(context.Background(), "<!-- @protip -->\ntip\n<!-- @end -->", interfaces.ConvertOptions{Enhance: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if strings.Contains(result.Content, "protip-box") {
		t.Fatalf("disabled feature must be a no-op: %q", result.Content)
	}
}

func TestConvert_FrontmatterExtraction(t *testing.T) {
	svc := newTestService(t, nil)

	input := "---\ntitle: My Post\nslug: my-post\n---\n## Section\n\nBody."
	result, err := svc.Convert(context.Background(), input, interfaces.ConvertOptions{ExtractFrontmatter: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if result.Title != "My Post" {
		t.Fatalf("Title = %q", result.Title)
	}
	if result.Meta["slug"] != "my-post" {
		t.Fatalf("Meta = %v", result.Meta)
	}
	if strings.Contains(result.Content, "title:") {
		t.Fatalf("frontmatter leaked into content: %q", result.Content)
	}
}

func TestConvert_AuditWarnings(t *testing.T) {
	svc := newTestService(t, nil)

	// Already-marked-up input with a stray close survives passthrough and
	// should be reported by the auditor.
	input := "<!-- wp:group -->\n<div class=\"wp-block-group\"></div>"
	result, err := svc.Convert(context.Background(), input, interfaces.ConvertOptions{Audit: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if len(result.Warnings) == 0 {
		t.Fatalf("expected audit warnings for unbalanced markup, got none: %q", result.Content)
	}
}

func TestConvert_CancelledContext(t *testing.T) {
	svc := newTestService(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Convert(ctx, "x", interfaces.ConvertOptions{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestPreview(t *testing.T) {
	svc := newTestService(t, nil)
	html, err := svc.Preview(context.Background(), "**bold**")
	if err != nil {
		t.Fatalf("Preview() error: %v", err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("unexpected preview: %q", html)
	}
}

type upperStripper struct{}

func (upperStripper) Strip(text string) string { return strings.ToUpper(text) }

func TestWithStripperOverride(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	svc, err := NewService(cfg, WithStripper(upperStripper{}))
	if err != nil {
		t.Fatalf("NewService() error: %v", err)
	}
	result, err := svc.Convert(context.Background(), "hello", interfaces.ConvertOptions{StripCommentary: true})
	if err != nil {
		t.Fatalf("Convert() error: %v", err)
	}
	if !strings.Contains(result.Content, "HELLO") {
		t.Fatalf("custom stripper not used: %q", result.Content)
	}
}
