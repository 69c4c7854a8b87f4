package runtimeconfig

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Features.Commentary || !cfg.Features.Hints || !cfg.Features.Frontmatter || !cfg.Features.Audit {
		t.Fatalf("default features should all be enabled: %+v", cfg.Features)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidate_RejectsBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), ErrLoggingLevelInvalid.Error()) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsBadFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error")
	}
}
