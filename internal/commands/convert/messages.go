package convertcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	convertFileMessageType      = "docx.convert.file"
	convertDirectoryMessageType = "docx.convert.directory"
)

// ConvertFileCommand converts a single Markdown seed file into a Word
// document at the provided output path.
type ConvertFileCommand struct {
	// Input selects the Markdown file (relative or absolute) to convert.
	Input string `json:"input"`
	// Output sets the destination path for the converted document.
	Output string `json:"output"`
}

// Type implements command.Message.
func (ConvertFileCommand) Type() string { return convertFileMessageType }

// Validate ensures both paths are present before handlers execute.
func (cmd ConvertFileCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Input, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docx.convert.file.input_required", "input is required")
			}
			return nil
		})),
		validation.Field(&cmd.Output, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docx.convert.file.output_required", "output is required")
			}
			return nil
		})),
	)
}

// ConvertDirectoryCommand runs a batch conversion over a seed directory,
// mirroring the project runner's discovery semantics.
type ConvertDirectoryCommand struct {
	// Directory selects the seed directory to load Markdown files from.
	Directory string `json:"directory"`
	// OutputDir sets where converted documents land.
	OutputDir string `json:"output_dir"`
	// Pattern limits discovered files to the supplied glob (defaults to "*.md").
	Pattern string `json:"pattern,omitempty"`
	// Recursive walks sub-directories when true.
	Recursive bool `json:"recursive,omitempty"`
	// SkipDrafts skips documents whose frontmatter marks them as drafts.
	SkipDrafts bool `json:"skip_drafts,omitempty"`
}

// Type implements command.Message.
func (ConvertDirectoryCommand) Type() string { return convertDirectoryMessageType }

// Validate ensures directory inputs are present before handlers execute.
func (cmd ConvertDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docx.convert.directory.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.OutputDir, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("docx.convert.directory.output_dir_required", "output_dir is required")
			}
			return nil
		})),
	)
}
