package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-docx"
	"github.com/goliatone/go-docx/internal/di"
	"github.com/goliatone/go-docx/internal/logging"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// Options captures configuration for conversion CLI bootstraps.
type Options struct {
	SeedDir           string
	Pattern           string
	Recursive         bool
	OutputDir         string
	Overwrite         bool
	SkipDrafts        bool
	Workers           int
	StopOnError       bool
	Timeout           time.Duration
	PreviewExtensions []string
	LoggerProvider    interfaces.LoggerProvider
}

// Module wraps the docx module together with the configured converter and logger.
type Module struct {
	Module    *docx.Module
	Converter interfaces.Converter
	Logger    interfaces.Logger
}

// BuildModule constructs a docx module configured for CLI conversion workflows.
func BuildModule(opts Options) (*Module, error) {
	cfg := docx.DefaultConfig()
	cfg.Features.Batch = true
	cfg.Markdown.SeedDir = strings.TrimSpace(opts.SeedDir)
	if cfg.Markdown.SeedDir == "" {
		cfg.Markdown.SeedDir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	cfg.Markdown.Recursive = opts.Recursive

	if trimmed := strings.TrimSpace(opts.OutputDir); trimmed != "" {
		cfg.Output.Dir = trimmed
	}
	cfg.Output.Overwrite = opts.Overwrite
	cfg.Batch.SkipDrafts = opts.SkipDrafts
	cfg.Batch.Workers = opts.Workers
	cfg.Batch.StopOnError = opts.StopOnError
	if opts.Timeout > 0 {
		cfg.Batch.Timeout = opts.Timeout
	}

	if len(opts.PreviewExtensions) > 0 {
		cfg.Features.Preview = true
		cfg.Preview.Extensions = opts.PreviewExtensions
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := docx.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise docx module: %w", err)
	}

	converter := module.Converter()
	if converter == nil {
		return nil, fmt.Errorf("converter service not configured")
	}

	logger := logging.ConverterLogger(module.Container().LoggerProvider())

	return &Module{
		Module:    module,
		Converter: converter,
		Logger:    logger,
	}, nil
}

// SplitList parses a comma separated list into a trimmed slice.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
