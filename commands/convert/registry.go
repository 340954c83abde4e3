package convertadapter

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	convertcmd "github.com/goliatone/go-docx/internal/commands/convert"
	"github.com/goliatone/go-docx/internal/logging"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the conversion command handlers produced by RegisterConvertCommands.
type HandlerSet struct {
	File      *convertcmd.ConvertFileHandler
	Directory *convertcmd.ConvertDirectoryHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	fileHandlerOpts      []convertcmd.FileHandlerOption
	directoryHandlerOpts []convertcmd.DirectoryHandlerOption
}

// WithFileHandlerOptions forwards options to the ConvertFileHandler constructor.
func WithFileHandlerOptions(opts ...convertcmd.FileHandlerOption) Option {
	return func(cfg *options) {
		cfg.fileHandlerOpts = append(cfg.fileHandlerOpts, opts...)
	}
}

// WithDirectoryHandlerOptions forwards options to the ConvertDirectoryHandler constructor.
func WithDirectoryHandlerOptions(opts ...convertcmd.DirectoryHandlerOption) Option {
	return func(cfg *options) {
		cfg.directoryHandlerOpts = append(cfg.directoryHandlerOpts, opts...)
	}
}

// RegisterConvertCommands builds conversion command handlers and registers them with the
// provided registry. A HandlerSet containing the constructed handlers is returned so callers
// can wire additional integrations (dispatcher, cron) as needed.
func RegisterConvertCommands(reg CommandRegistry, service interfaces.Converter, runner convertcmd.BatchRunner, provider interfaces.LoggerProvider, gates convertcmd.FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("convert command registration: converter service is nil")
	}
	if runner == nil {
		return nil, errors.New("convert command registration: batch runner is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := logging.ModuleLogger(provider, "docx.commands.convert")
	logger = logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": "convert",
	})

	fileHandler := convertcmd.NewConvertFileHandler(service, logger, cfg.fileHandlerOpts...)
	directoryHandler := convertcmd.NewConvertDirectoryHandler(runner, logger, gates, cfg.directoryHandlerOpts...)

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

// RegisterConvertCron wires the provided directory handler into a cron registrar using the
// supplied command configuration and message payload. The handler is executed with a
// background context.
func RegisterConvertCron(reg CronRegistrar, handler *convertcmd.ConvertDirectoryHandler, cfg command.HandlerConfig, msg convertcmd.ConvertDirectoryCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
