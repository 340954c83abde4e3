// Package di wires the conversion runtime's dependencies: logger provider,
// document builder provider, converter service, preview parser, and batch
// runner. Hosts override individual pieces through options; everything else
// gets sensible defaults.
package di

import (
	"github.com/goliatone/go-docx/internal/converter"
	"github.com/goliatone/go-docx/internal/docxbuild"
	"github.com/goliatone/go-docx/internal/logging"
	"github.com/goliatone/go-docx/internal/logging/console"
	"github.com/goliatone/go-docx/internal/logging/gologger"
	"github.com/goliatone/go-docx/internal/markdown"
	"github.com/goliatone/go-docx/internal/project"
	"github.com/goliatone/go-docx/internal/runtimeconfig"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider  interfaces.LoggerProvider
	builderProvider interfaces.BuilderProvider
	previewParser   interfaces.MarkdownParser
	converterSvc    interfaces.Converter
	runner          *project.Runner
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the configured logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBuilderProvider overrides the document builder used for conversions.
func WithBuilderProvider(provider interfaces.BuilderProvider) Option {
	return func(c *Container) {
		c.builderProvider = provider
	}
}

// WithConverter overrides the converter service.
func WithConverter(svc interfaces.Converter) Option {
	return func(c *Container) {
		c.converterSvc = svc
	}
}

// WithPreviewParser overrides the HTML preview parser.
func WithPreviewParser(parser interfaces.MarkdownParser) Option {
	return func(c *Container) {
		c.previewParser = parser
	}
}

// NewContainer validates the configuration and assembles the runtime.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:          cfg,
		builderProvider: docxbuild.Provider{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.converterSvc == nil {
		c.converterSvc = converter.NewService(
			c.builderProvider,
			logging.ConverterLogger(c.loggerProvider),
			converter.WithOverwrite(cfg.Output.Overwrite),
		)
	}

	if c.previewParser == nil {
		c.previewParser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Preview.Extensions,
			Sanitize:   cfg.Preview.Sanitize,
			HardWraps:  cfg.Preview.HardWraps,
			SafeMode:   cfg.Preview.SafeMode,
		})
	}

	c.runner = project.NewRunner(c.converterSvc, logging.BatchLogger(c.loggerProvider),
		project.WithWorkers(cfg.Batch.Workers),
		project.WithStopOnError(cfg.Batch.StopOnError),
		project.WithTimeout(cfg.Batch.Timeout),
		project.WithExtension(cfg.Output.Extension),
		project.WithOverwrite(cfg.Output.Overwrite),
	)

	return c, nil
}

// buildLoggerProvider resolves the logging backend named in the config. When
// the logger feature is disabled no provider is constructed and module
// loggers fall back to no-op.
func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}

	switch cfg.Logging.Provider {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Logging.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}

// LoggerProvider exposes the configured logger provider. May be nil when the
// logger feature is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	if c == nil {
		return nil
	}
	return c.loggerProvider
}

// BuilderProvider exposes the document builder provider.
func (c *Container) BuilderProvider() interfaces.BuilderProvider {
	if c == nil {
		return nil
	}
	return c.builderProvider
}

// ConverterService exposes the conversion service.
func (c *Container) ConverterService() interfaces.Converter {
	if c == nil {
		return nil
	}
	return c.converterSvc
}

// PreviewParser exposes the HTML preview parser.
func (c *Container) PreviewParser() interfaces.MarkdownParser {
	if c == nil {
		return nil
	}
	return c.previewParser
}

// Runner exposes the batch conversion runner.
func (c *Container) Runner() *project.Runner {
	if c == nil {
		return nil
	}
	return c.runner
}
