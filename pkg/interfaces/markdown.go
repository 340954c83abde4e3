package interfaces

import (
	"context"
	"time"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML for
// preview workflows. Implementations should be reusable across calls so hosts
// can share a single parser instance without additional locking.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises preview parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Converter exposes the Markdown to Word conversion workflows. ConvertText is
// pure and returns the rendered document for the caller to own; ConvertFile
// reads a source file, converts it, and persists the result through the
// builder's save capability.
type Converter interface {
	ConvertText(ctx context.Context, markdown string) (DocumentBuilder, error)
	ConvertDocument(ctx context.Context, doc *Document) (DocumentBuilder, error)
	ConvertFile(ctx context.Context, inputPath string, outputPath string) error
}

// MarkdownLoader discovers Markdown documents on disk so batch workflows can
// convert entire directories.
type MarkdownLoader interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a digest of the original file content (typically SHA-256)
	// so batch workflows can detect changes without re-converting unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. Fields stay
// flexible thanks to the Custom map for template- or domain-specific values.
type FrontMatter struct {
	Title   string         `yaml:"title" json:"title"`
	Slug    string         `yaml:"slug" json:"slug"`
	Summary string         `yaml:"summary" json:"summary"`
	Tags    []string       `yaml:"tags" json:"tags"`
	Author  string         `yaml:"author" json:"author"`
	Date    time.Time      `yaml:"date" json:"date"`
	Draft   bool           `yaml:"draft" json:"draft"`
	Custom  map[string]any `yaml:",inline" json:"custom"`
	Raw     map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
}
