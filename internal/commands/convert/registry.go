package convertcmd

import (
	"errors"

	"github.com/goliatone/go-docx/internal/commands"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// HandlerSet groups the convert command handlers produced by RegisterConvertCommands.
type HandlerSet struct {
	File      *ConvertFileHandler
	Directory *ConvertDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	fileHandlerOpts      []commands.HandlerOption[ConvertFileCommand]
	directoryHandlerOpts []commands.HandlerOption[ConvertDirectoryCommand]
}

// WithFileHandlerOptions forwards options to the ConvertFileHandler constructor.
func WithFileHandlerOptions(opts ...commands.HandlerOption[ConvertFileCommand]) Option {
	return func(cfg *options) {
		cfg.fileHandlerOpts = append(cfg.fileHandlerOpts, opts...)
	}
}

// WithDirectoryHandlerOptions forwards options to the ConvertDirectoryHandler constructor.
func WithDirectoryHandlerOptions(opts ...commands.HandlerOption[ConvertDirectoryCommand]) Option {
	return func(cfg *options) {
		cfg.directoryHandlerOpts = append(cfg.directoryHandlerOpts, opts...)
	}
}

// RegisterConvertCommands builds convert command handlers and registers them with the provided
// registry. A HandlerSet containing the constructed handlers is returned so callers can wire
// additional integrations (dispatcher, cron) as needed.
func RegisterConvertCommands(reg CommandRegistry, service interfaces.Converter, runner BatchRunner, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("convert command registration: service is nil")
	}
	if runner == nil {
		return nil, errors.New("convert command registration: runner is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "convert")

	fileHandler := NewConvertFileHandler(service, logger, cfg.fileHandlerOpts...)
	directoryHandler := NewConvertDirectoryHandler(runner, logger, gates, cfg.directoryHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(fileHandler); err != nil {
			return nil, err
		}
		if err := reg.RegisterCommand(directoryHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{
		File:      fileHandler,
		Directory: directoryHandler,
	}, nil
}
