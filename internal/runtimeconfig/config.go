package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMarkdownSeedDirRequired indicates batch runs were enabled without a seed directory.
var ErrMarkdownSeedDirRequired = errors.New("docx config: markdown seed directory is required when batch conversion is enabled")

// ErrOutputDirRequired indicates batch runs were enabled without an output directory.
var ErrOutputDirRequired = errors.New("docx config: output directory is required when batch conversion is enabled")

// ErrCommandsFeatureRequired ensures dispatcher auto-registration stays behind the commands flag.
var ErrCommandsFeatureRequired = errors.New("docx config: command dispatcher auto-registration requires commands to be enabled")
var ErrPreviewFeatureRequired = errors.New("docx config: preview feature must be enabled to configure preview parsing")
var ErrBatchWorkersInvalid = errors.New("docx config: batch worker count must be zero or positive")
var ErrLoggingProviderRequired = errors.New("docx config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("docx config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("docx config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("docx config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the conversion module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Markdown MarkdownConfig
	Output   OutputConfig
	Batch    BatchConfig
	Preview  PreviewConfig
	Features Features
	Commands CommandsConfig
	Logging  LoggingConfig
}

// Features toggles module functionality.
type Features struct {
	Batch    bool
	Preview  bool
	Commands bool
	Logger   bool
}

// MarkdownConfig captures filesystem behaviour for Markdown ingestion.
type MarkdownConfig struct {
	SeedDir   string
	Pattern   string
	Recursive bool
}

// OutputConfig captures where converted documents land.
type OutputConfig struct {
	Dir       string
	Extension string
	Overwrite bool
}

// BatchConfig captures behaviour for directory-wide conversion runs.
type BatchConfig struct {
	Workers     int
	SkipDrafts  bool
	StopOnError bool
	Timeout     time.Duration
}

// PreviewConfig mirrors interfaces.ParseOptions for runtime configuration.
type PreviewConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for the conversion runtime.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Markdown: MarkdownConfig{
			SeedDir:   "content",
			Pattern:   "*.md",
			Recursive: true,
		},
		Output: OutputConfig{
			Dir:       "dist",
			Extension: ".docx",
			Overwrite: true,
		},
		Batch: BatchConfig{
			SkipDrafts: true,
		},
		Preview:  PreviewConfig{},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Features.Batch {
		if strings.TrimSpace(cfg.Markdown.SeedDir) == "" {
			return ErrMarkdownSeedDirRequired
		}
		if strings.TrimSpace(cfg.Output.Dir) == "" {
			return ErrOutputDirRequired
		}
	}
	if cfg.Commands.AutoRegisterDispatcher && !cfg.Features.Commands {
		return ErrCommandsFeatureRequired
	}
	if !cfg.Features.Preview {
		if len(cfg.Preview.Extensions) > 0 {
			return ErrPreviewFeatureRequired
		}
	}
	if cfg.Batch.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrBatchWorkersInvalid, cfg.Batch.Workers)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
