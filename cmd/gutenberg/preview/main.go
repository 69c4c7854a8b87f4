package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-gutenberg/cmd/gutenberg/internal/bootstrap"
	"github.com/goliatone/go-gutenberg/internal/commands"
	"github.com/goliatone/go-gutenberg/internal/commands/pipelinecmd"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		inputPath = flag.String("file", "", "Markdown file to preview (reads stdin when empty)")
		logLevel  = flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
		logFormat = flag.String("log-format", "json", "Log format (json, console, pretty)")
		quiet     = flag.Bool("quiet", true, "Disable structured logging output")
	)

	flag.Parse()

	input, err := readInput(*inputPath, os.Stdin)
	if err != nil {
		log.Fatalf("gutenberg preview: %v", err)
	}

	module, err := moduleBuilder(bootstrap.Options{
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
		Quiet:     *quiet,
	})
	if err != nil {
		log.Fatalf("gutenberg preview: bootstrap module: %v", err)
	}

	ctx := context.Background()

	handler := pipelinecmd.NewPreviewHandler(module.Pipeline, commands.CommandLogger(module.Provider, "pipeline"))

	var html string
	cmd := pipelinecmd.PreviewCommand{
		Input:  string(input),
		Result: &html,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		log.Fatalf("gutenberg preview: execute preview command: %v", err)
	}

	fmt.Fprintln(os.Stdout, html)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
