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
	"github.com/goliatone/go-gutenberg/pkg/interfaces"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runConvert(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatalf("gutenberg convert: %v", err)
	}
}

func runConvert(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gutenberg-convert", flag.ExitOnError)
	inputPath := fs.String("file", "", "Markdown file to convert (reads stdin when empty)")
	outputPath := fs.String("out", "", "Destination for block markup (writes stdout when empty)")
	strip := fs.Bool("strip", false, "Strip assistant preamble/postamble before conversion")
	enhance := fs.Bool("enhance", false, "Expand hint markers into block fragments")
	frontmatter := fs.Bool("frontmatter", false, "Extract frontmatter metadata instead of converting it")
	audit := fs.Bool("audit", false, "Audit the output and report findings on stderr")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "json", "Log format (json, console, pretty)")
	quiet := fs.Bool("quiet", false, "Disable structured logging output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	input, err := readInput(*inputPath, stdin)
	if err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		LogLevel:  *logLevel,
		LogFormat: *logFormat,
		Quiet:     *quiet,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	ctx := context.Background()

	handler := pipelinecmd.NewConvertHandler(module.Pipeline, commands.CommandLogger(module.Provider, "pipeline"))

	var result interfaces.ConvertResult
	cmd := pipelinecmd.ConvertCommand{
		Input:              string(input),
		StripCommentary:    *strip,
		Enhance:            *enhance,
		ExtractFrontmatter: *frontmatter,
		Audit:              *audit,
		Result:             &result,
	}
	if err := handler.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute convert command: %w", err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", warning)
	}
	if result.Title != "" {
		fmt.Fprintf(stderr, "title: %s\n", result.Title)
	}

	return writeOutput(*outputPath, stdout, result.Content)
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

func writeOutput(path string, stdout io.Writer, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
