package runtimeconfig

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrLoggingLevelInvalid indicates an unsupported logging level value.
	ErrLoggingLevelInvalid = errors.New("config: logging level invalid")
	// ErrLoggingFormatInvalid indicates an unsupported logging format value.
	ErrLoggingFormatInvalid = errors.New("config: logging format invalid")
)

// Config captures the runtime configuration of the conversion pipeline.
type Config struct {
	Logging  LoggingConfig
	Features Features
}

// LoggingConfig mirrors the options the go-logger provider understands.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features gates the optional pipeline stages. A disabled feature turns the
// matching per-request option into a no-op rather than an error: conversion
// itself always runs.
type Features struct {
	Commentary  bool
	Hints       bool
	Frontmatter bool
	Audit       bool
}

// DefaultConfig returns the configuration used when the host supplies none:
// every stage available, JSON logging at info level.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Features: Features{
			Commentary:  true,
			Hints:       true,
			Frontmatter: true,
			Audit:       true,
		},
	}
}

var (
	validLevels  = []any{"", "trace", "debug", "info", "warn", "warning", "error", "fatal"}
	validFormats = []any{"", "json", "console", "pretty"}
)

// Validate checks the configuration for values the runtime cannot honour.
func (c Config) Validate() error {
	if err := validation.ValidateStruct(&c.Logging,
		validation.Field(&c.Logging.Level, validation.In(validLevels...).Error(ErrLoggingLevelInvalid.Error())),
		validation.Field(&c.Logging.Format, validation.In(validFormats...).Error(ErrLoggingFormatInvalid.Error())),
	); err != nil {
		return err
	}
	return nil
}
