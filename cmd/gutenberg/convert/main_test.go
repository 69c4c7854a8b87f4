package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-gutenberg/cmd/gutenberg/internal/bootstrap"
)

func TestRunConvertProducesBlockMarkup(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		opts.Quiet = true
		return bootstrap.BuildModule(opts)
	}

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "post.md")
	outputPath := filepath.Join(dir, "post.html")
	input := "## Intro\n\nHello world.\n"
	if err := os.WriteFile(inputPath, []byte(input), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	var stdout, stderr strings.Builder
	err := runConvert([]string{
		"-file", inputPath,
		"-out", outputPath,
	}, strings.NewReader(""), &stdout, &stderr)
	if err != nil {
		t.Fatalf("runConvert returned error: %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	output := string(data)
	if !strings.Contains(output, "<!-- wp:heading -->") {
		t.Fatalf("expected heading block, got %q", output)
	}
	if !strings.Contains(output, "<!-- wp:paragraph -->") {
		t.Fatalf("expected paragraph block, got %q", output)
	}
}

func TestRunConvertReadsStdinAndWritesStdout(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		opts.Quiet = true
		return bootstrap.BuildModule(opts)
	}

	var stdout, stderr strings.Builder
	err := runConvert([]string{"-audit"}, strings.NewReader("Hello world.\n"), &stdout, &stderr)
	if err != nil {
		t.Fatalf("runConvert returned error: %v", err)
	}
	if !strings.Contains(stdout.String(), "<!-- wp:paragraph -->") {
		t.Fatalf("expected paragraph block on stdout, got %q", stdout.String())
	}
	if strings.Contains(stderr.String(), "warning:") {
		t.Fatalf("expected no audit warnings, got %q", stderr.String())
	}
}
