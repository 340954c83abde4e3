package docx

import "github.com/goliatone/go-docx/internal/runtimeconfig"

var (
	ErrMarkdownSeedDirRequired = runtimeconfig.ErrMarkdownSeedDirRequired
	ErrOutputDirRequired       = runtimeconfig.ErrOutputDirRequired
	ErrCommandsFeatureRequired = runtimeconfig.ErrCommandsFeatureRequired
	ErrPreviewFeatureRequired  = runtimeconfig.ErrPreviewFeatureRequired
	ErrBatchWorkersInvalid     = runtimeconfig.ErrBatchWorkersInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	MarkdownConfig = runtimeconfig.MarkdownConfig
	OutputConfig   = runtimeconfig.OutputConfig
	BatchConfig    = runtimeconfig.BatchConfig
	PreviewConfig  = runtimeconfig.PreviewConfig
	Features       = runtimeconfig.Features
	CommandsConfig = runtimeconfig.CommandsConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
