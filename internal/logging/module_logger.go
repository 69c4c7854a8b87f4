package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-gutenberg/pkg/interfaces"
)

const (
	rootModule     = "gutenberg"
	pipelineModule = "gutenberg.pipeline"
	hintsModule    = "gutenberg.hints"
	auditModule    = "gutenberg.audit"
)

const (
	fieldPipelineStage = "stage"
	fieldInputBytes    = "input_bytes"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// PipelineLogger returns the logger namespace reserved for the conversion pipeline.
func PipelineLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, pipelineModule)
}

// HintsLogger returns the logger namespace reserved for hint expansion.
func HintsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, hintsModule)
}

// AuditLogger returns the logger namespace reserved for output auditing.
func AuditLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, auditModule)
}

// WithStageContext enriches the provided logger with common pipeline fields
// such as the stage name and input size. Zero values are ignored.
func WithStageContext(logger interfaces.Logger, stage string, inputBytes int) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(stage); trimmed != "" {
		fields[fieldPipelineStage] = trimmed
	}
	if inputBytes > 0 {
		fields[fieldInputBytes] = inputBytes
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
