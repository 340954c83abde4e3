// Package converter orchestrates the Markdown to Word pipeline: tokenize and
// block-parse the source, resolve inline runs, and render the block tree
// through a document builder.
package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/goliatone/go-docx/internal/docxbuild"
	"github.com/goliatone/go-docx/internal/logging"
	"github.com/goliatone/go-docx/internal/markdown"
	"github.com/goliatone/go-docx/internal/render"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// ErrInputDecode is returned when source bytes are not valid UTF-8 text.
// Decoding is validated before any block parsing happens.
var ErrInputDecode = errors.New("converter: source is not valid UTF-8 text")

// ErrOutputExists is returned when the destination file already exists and
// overwriting is disabled.
var ErrOutputExists = errors.New("converter: output file already exists")

// Service implements interfaces.Converter. It holds no per-conversion state:
// concurrent conversions over disjoint inputs are safe.
type Service struct {
	provider  interfaces.BuilderProvider
	logger    interfaces.Logger
	overwrite bool
}

var _ interfaces.Converter = (*Service)(nil)

// Option customizes a Service.
type Option func(*Service)

// WithOverwrite controls whether ConvertFile may replace an existing
// destination file. Overwriting is enabled by default.
func WithOverwrite(overwrite bool) Option {
	return func(s *Service) {
		s.overwrite = overwrite
	}
}

// NewService constructs a converter. When provider is nil the WordprocessingML
// builder is used; when logger is nil logging is disabled.
func NewService(provider interfaces.BuilderProvider, logger interfaces.Logger, opts ...Option) *Service {
	if provider == nil {
		provider = docxbuild.Provider{}
	}
	if logger == nil {
		logger = logging.NoOp()
	}
	svc := &Service{provider: provider, logger: logger, overwrite: true}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ConvertText converts Markdown source into a rendered document owned by the
// caller. Malformed Markdown never fails: unmatched delimiters and
// unterminated fences degrade per the parser rules. Only undecodable input is
// an error.
func (s *Service) ConvertText(ctx context.Context, source string) (interfaces.DocumentBuilder, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if !utf8.ValidString(source) {
		return nil, ErrInputDecode
	}

	blocks := markdown.Parse(source)
	builder := s.provider.NewDocument()
	render.Render(builder, blocks)

	s.logger.Debug("converter.text.rendered", "blocks", len(blocks))
	return builder, nil
}

// ConvertDocument converts a previously loaded document's Markdown body.
// Frontmatter has already been stripped by the loader so delimiters never
// leak into the output.
func (s *Service) ConvertDocument(ctx context.Context, doc *interfaces.Document) (interfaces.DocumentBuilder, error) {
	if doc == nil {
		return nil, errors.New("converter: document is nil")
	}
	built, err := s.ConvertText(ctx, string(doc.Body))
	if err != nil {
		return nil, fmt.Errorf("converter: convert %s: %w", doc.FilePath, err)
	}
	return built, nil
}

// ConvertFile reads a Markdown file, converts it, and persists the result at
// outputPath through the builder's save capability.
func (s *Service) ConvertFile(ctx context.Context, inputPath string, outputPath string) error {
	if !s.overwrite {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("converter: save %s: %w", outputPath, ErrOutputExists)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("converter: stat %s: %w", outputPath, err)
		}
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("converter: read %s: %w", inputPath, err)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("converter: decode %s: %w", inputPath, ErrInputDecode)
	}

	// Seed files may carry YAML frontmatter; strip it before conversion. A
	// malformed frontmatter block falls back to converting the raw source.
	body := data
	if _, stripped, err := markdown.ParseFrontMatter(data); err == nil {
		body = stripped
	}

	built, err := s.ConvertText(ctx, string(body))
	if err != nil {
		return fmt.Errorf("converter: convert %s: %w", inputPath, err)
	}

	if err := built.Save(outputPath); err != nil {
		return fmt.Errorf("converter: save %s: %w", outputPath, err)
	}

	logging.WithFields(s.logger, map[string]any{
		"input":  inputPath,
		"output": outputPath,
	}).Info("converter.file.converted")
	return nil
}
