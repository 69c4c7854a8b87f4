package markdown

import (
	"context"
	"strings"
	"testing"
)

func TestGoldmarkParser_Render(t *testing.T) {
	parser := NewGoldmarkParser()
	html, err := parser.Render(context.Background(), []byte("## Hello\n\nSome **bold** text."))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<h2") || !strings.Contains(out, "<strong>bold</strong>") {
		t.Fatalf("unexpected preview output: %q", out)
	}
}

func TestGoldmarkParser_RenderCancelledContext(t *testing.T) {
	parser := NewGoldmarkParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := parser.Render(ctx, []byte("x")); err == nil {
		t.Fatal("expected context error")
	}
}
