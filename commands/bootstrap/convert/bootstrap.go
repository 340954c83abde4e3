package bootstrap

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-docx"
	"github.com/goliatone/go-docx/commands"
	"github.com/goliatone/go-docx/internal/di"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// Options captures the tunable configuration shared across conversion CLI commands.
type Options struct {
	SeedDir        string
	Pattern        string
	Recursive      bool
	OutputDir      string
	Overwrite      bool
	LoggerProvider interfaces.LoggerProvider
	EnableCommands bool // collect command handlers for CLI execution when true
}

// Resources groups the module runtime and optional command registry used by CLI commands.
type Resources struct {
	Module    *docx.Module
	Collector *CommandCollector
}

// CommandCollector records handlers registered by the DI container so CLI commands can
// invoke them directly when dispatcher integrations are requested.
type CommandCollector struct {
	handlers []any
}

// RegisterCommand satisfies commands.CommandRegistry.
func (c *CommandCollector) RegisterCommand(handler any) error {
	c.handlers = append(c.handlers, handler)
	return nil
}

// Handlers returns the collected handlers.
func (c *CommandCollector) Handlers() []any {
	if len(c.handlers) == 0 {
		return nil
	}
	out := make([]any, len(c.handlers))
	copy(out, c.handlers)
	return out
}

// BuildModule constructs a docx.Module configured for batch conversion using the supplied options.
func BuildModule(opts Options) (*Resources, error) {
	cfg := docx.DefaultConfig()

	cfg.Features.Batch = true
	cfg.Features.Commands = true
	cfg.Commands.Enabled = true

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

	var collector *CommandCollector
	diOpts := []di.Option{}

	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := docx.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise docx module: %w", err)
	}

	if opts.EnableCommands {
		collector = &CommandCollector{
			handlers: make([]any, 0),
		}
		if _, err := commands.RegisterContainerCommands(module.Container(), commands.RegistrationOptions{
			Registry:       collector,
			LoggerProvider: opts.LoggerProvider,
		}); err != nil {
			return nil, fmt.Errorf("register conversion commands: %w", err)
		}
	}

	return &Resources{
		Module:    module,
		Collector: collector,
	}, nil
}

// SplitPatterns parses a comma separated pattern list into a trimmed slice.
func SplitPatterns(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	patterns := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			patterns = append(patterns, trimmed)
		}
	}
	return patterns
}
