// Package docx converts Markdown documents into structured Word (.docx)
// files. The root package is a thin façade over the internal runtime: hosts
// construct a Module from a Config and pull the converter, preview parser,
// and batch runner from it.
package docx

import (
	"github.com/goliatone/go-docx/internal/converter"
	"github.com/goliatone/go-docx/internal/di"
	"github.com/goliatone/go-docx/internal/project"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// Converter exports the conversion service contract for consumers of the docx package.
type Converter = interfaces.Converter

// DocumentBuilder exports the document builder capability.
type DocumentBuilder = interfaces.DocumentBuilder

// BuilderProvider exports the builder provider contract.
type BuilderProvider = interfaces.BuilderProvider

// MarkdownParser exports the HTML preview parser contract.
type MarkdownParser = interfaces.MarkdownParser

// MarkdownLoader exports the document loader contract.
type MarkdownLoader = interfaces.MarkdownLoader

// Document exports the loaded Markdown document DTO.
type Document = interfaces.Document

// FrontMatter exports the parsed frontmatter DTO.
type FrontMatter = interfaces.FrontMatter

// ParseOptions exports preview parsing options.
type ParseOptions = interfaces.ParseOptions

// LoadOptions exports loader discovery options.
type LoadOptions = interfaces.LoadOptions

// ProjectConfig exports the batch project configuration.
type ProjectConfig = project.Config

// BatchReport exports the batch run report.
type BatchReport = project.Report

// BatchResult exports the per-document batch outcome.
type BatchResult = project.Result

// ErrInputDecode is returned when conversion input is not valid UTF-8 text.
var ErrInputDecode = converter.ErrInputDecode

// Module represents the top level conversion runtime façade.
type Module struct {
	container *di.Container
}

// Option re-exports container options so hosts can override wiring.
type Option = di.Option

// WithLoggerProvider overrides the configured logger provider.
var WithLoggerProvider = di.WithLoggerProvider

// WithBuilderProvider overrides the document builder provider.
var WithBuilderProvider = di.WithBuilderProvider

// WithConverter overrides the converter service.
var WithConverter = di.WithConverter

// WithPreviewParser overrides the HTML preview parser.
var WithPreviewParser = di.WithPreviewParser

// New constructs a conversion module using the provided configuration and optional overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Converter returns the configured conversion service.
func (m *Module) Converter() Converter {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.ConverterService()
}

// Preview returns the HTML preview parser.
func (m *Module) Preview() MarkdownParser {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.PreviewParser()
}

// Runner returns the batch conversion runner.
func (m *Module) Runner() *project.Runner {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Runner()
}

// LoggerProvider returns the configured logger provider, which may be nil
// when the logger feature is disabled.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}
