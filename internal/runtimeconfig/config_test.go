package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-docx/internal/runtimeconfig"
)

func TestConfigValidate_AllowsDisabledBatchWithoutDirs(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Markdown.SeedDir = ""
	cfg.Output.Dir = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresSeedDirWhenBatchEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Batch = true
	cfg.Markdown.SeedDir = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrMarkdownSeedDirRequired) {
		t.Fatalf("expected ErrMarkdownSeedDirRequired, got %v", err)
	}
}

func TestConfigValidate_RequiresOutputDirWhenBatchEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Batch = true
	cfg.Output.Dir = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrOutputDirRequired) {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}
}

func TestConfigValidate_DispatcherRequiresCommandsFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Commands.AutoRegisterDispatcher = true

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrCommandsFeatureRequired) {
		t.Fatalf("expected ErrCommandsFeatureRequired, got %v", err)
	}
}

func TestConfigValidate_PreviewExtensionsRequirePreviewFeature(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Preview.Extensions = []string{"gfm"}

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrPreviewFeatureRequired) {
		t.Fatalf("expected ErrPreviewFeatureRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsNegativeBatchWorkers(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Batch.Workers = -1

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrBatchWorkersInvalid) {
		t.Fatalf("expected ErrBatchWorkersInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
