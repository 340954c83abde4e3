package convertcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-docx/internal/commands"
	"github.com/goliatone/go-docx/internal/logging"
	"github.com/goliatone/go-docx/internal/project"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

const (
	convertFileOperation      = "convert.file"
	convertDirectoryOperation = "convert.directory"
)

// ErrBatchFeatureDisabled is returned when the batch feature flag is disabled at runtime.
var ErrBatchFeatureDisabled = errors.New("convert command: batch feature disabled")

var (
	_ command.Commander[ConvertFileCommand]      = (*ConvertFileHandler)(nil)
	_ command.Commander[ConvertDirectoryCommand] = (*ConvertDirectoryHandler)(nil)
)

// FileHandlerOption configures the file conversion handler.
type FileHandlerOption = commands.HandlerOption[ConvertFileCommand]

// DirectoryHandlerOption configures the directory conversion handler.
type DirectoryHandlerOption = commands.HandlerOption[ConvertDirectoryCommand]

// BatchRunner abstracts the project runner so handlers stay testable.
type BatchRunner interface {
	Run(ctx context.Context, cfg project.Config) (*project.Report, error)
}

// ConvertFileHandler converts single files via the shared command handler foundation.
type ConvertFileHandler struct {
	inner *commands.Handler[ConvertFileCommand]
}

// NewConvertFileHandler creates a handler bound to the supplied converter.
func NewConvertFileHandler(service interfaces.Converter, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertFileCommand]) *ConvertFileHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ConvertFileCommand) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		return service.ConvertFile(ctx, msg.Input, msg.Output)
	}

	handlerOpts := []commands.HandlerOption[ConvertFileCommand]{
		commands.WithLogger[ConvertFileCommand](baseLogger),
		commands.WithOperation[ConvertFileCommand](convertFileOperation),
		commands.WithMessageFields(func(msg ConvertFileCommand) map[string]any {
			return map[string]any{
				"input":  msg.Input,
				"output": msg.Output,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertFileCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertFileHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertFileCommand].
func (h *ConvertFileHandler) Execute(ctx context.Context, msg ConvertFileCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ConvertDirectoryHandler runs batch conversions via the shared command handler foundation.
type ConvertDirectoryHandler struct {
	inner *commands.Handler[ConvertDirectoryCommand]
}

// NewConvertDirectoryHandler creates a handler bound to the supplied batch runner.
func NewConvertDirectoryHandler(runner BatchRunner, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ConvertDirectoryCommand]) *ConvertDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ConvertDirectoryCommand) error {
		if !gates.batchEnabled() {
			return ErrBatchFeatureDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		pattern := msg.Pattern
		if pattern == "" {
			pattern = "*.md"
		}

		report, err := runner.Run(ctx, project.Config{
			SeedDir:    msg.Directory,
			OutputDir:  msg.OutputDir,
			Pattern:    pattern,
			Recursive:  msg.Recursive,
			SkipDrafts: msg.SkipDrafts,
		})
		if err != nil {
			return err
		}
		if report != nil {
			logging.WithFields(baseLogger, map[string]any{
				"converted_count": report.Converted,
				"skipped_count":   report.Skipped,
				"failed_count":    report.Failed,
			}).Info("convert.command.directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertDirectoryCommand]{
		commands.WithLogger[ConvertDirectoryCommand](baseLogger),
		commands.WithOperation[ConvertDirectoryCommand](convertDirectoryOperation),
		commands.WithMessageFields(func(msg ConvertDirectoryCommand) map[string]any {
			fields := map[string]any{
				"directory":  msg.Directory,
				"output_dir": msg.OutputDir,
			}
			if msg.Pattern != "" {
				fields["pattern"] = msg.Pattern
			}
			if msg.Recursive {
				fields["recursive"] = true
			}
			if msg.SkipDrafts {
				fields["skip_drafts"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ConvertDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ConvertDirectoryCommand].
func (h *ConvertDirectoryHandler) Execute(ctx context.Context, msg ConvertDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
