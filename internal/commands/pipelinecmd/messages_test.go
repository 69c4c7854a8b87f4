package pipelinecmd

import "testing"

func TestConvertCommandValidateRequiresInput(t *testing.T) {
	cmd := ConvertCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when input missing")
	}

	cmd.Input = "   \n\t"
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when input is blank")
	}

	cmd.Input = "# Heading"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when input provided: %v", err)
	}
}

func TestPreviewCommandValidateRequiresInput(t *testing.T) {
	cmd := PreviewCommand{}
	if err := cmd.Validate(); err == nil {
		t.Fatal("expected error when input missing")
	}

	cmd.Input = "# Heading"
	if err := cmd.Validate(); err != nil {
		t.Fatalf("unexpected error when input provided: %v", err)
	}
}

func TestMessageTypes(t *testing.T) {
	if got := (ConvertCommand{}).Type(); got != "gutenberg.pipeline.convert" {
		t.Fatalf("unexpected convert message type %q", got)
	}
	if got := (PreviewCommand{}).Type(); got != "gutenberg.pipeline.preview" {
		t.Fatalf("unexpected preview message type %q", got)
	}
}
