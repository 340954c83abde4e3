// Package docxbuild materializes paragraphs and runs into a WordprocessingML
// (.docx) container. It implements the document builder capability consumed
// by the renderer: paragraphs and runs accumulate in memory and Save
// serializes the complete zip package in one shot so a failed write never
// leaves a partial file behind.
package docxbuild

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-docx/pkg/interfaces"
)

// twipsPerIndent is the left indentation applied per nesting level.
const twipsPerIndent = 720

// Builder accumulates document content and serializes it on demand. It is not
// safe for concurrent use; callers own one builder per conversion.
type Builder struct {
	paragraphs []*paragraph
}

type paragraph struct {
	style interfaces.ParagraphStyle
	runs  []run
}

type run struct {
	text  string
	style interfaces.RunStyle
	href  string
}

var _ interfaces.DocumentBuilder = (*Builder)(nil)

// New returns an empty document builder.
func New() *Builder {
	return &Builder{}
}

// Provider hands out fresh builders, one document per conversion.
type Provider struct{}

var _ interfaces.BuilderProvider = Provider{}

// NewDocument satisfies interfaces.BuilderProvider.
func (Provider) NewDocument() interfaces.DocumentBuilder {
	return New()
}

// AddParagraph appends a paragraph with the supplied style and returns its
// handle.
func (b *Builder) AddParagraph(style interfaces.ParagraphStyle) interfaces.Paragraph {
	p := &paragraph{style: style}
	b.paragraphs = append(b.paragraphs, p)
	return p
}

// AddRun appends styled text to the paragraph. Handles issued by a different
// builder are ignored.
func (b *Builder) AddRun(handle interfaces.Paragraph, text string, style interfaces.RunStyle) {
	if p, ok := handle.(*paragraph); ok && p != nil {
		p.runs = append(p.runs, run{text: text, style: style})
	}
}

// AddHyperlinkRun appends link text with its target. Links render as the
// label followed by the parenthesized URL; no relationship entries are
// required in the container.
func (b *Builder) AddHyperlinkRun(handle interfaces.Paragraph, text string, url string) {
	if p, ok := handle.(*paragraph); ok && p != nil {
		p.runs = append(p.runs, run{text: text, href: url})
	}
}

// ParagraphCount reports how many paragraphs have been appended so far.
func (b *Builder) ParagraphCount() int {
	return len(b.paragraphs)
}

// Bytes serializes the accumulated document into a complete .docx package.
func (b *Builder) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"docProps/core.xml", corePropsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", numberingXML},
		{"word/document.xml", b.documentXML()},
	}

	for _, part := range parts {
		entry, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("docx builder: create part %s: %w", part.name, err)
		}
		if _, err := entry.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("docx builder: write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("docx builder: close package: %w", err)
	}
	return buf.Bytes(), nil
}

// Save serializes the document and writes it to path. The package is staged
// in memory and moved into place with a rename so readers never observe a
// partial file.
func (b *Builder) Save(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".docx-*")
	if err != nil {
		return fmt.Errorf("docx builder: stage output in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("docx builder: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("docx builder: close %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("docx builder: rename into %s: %w", path, err)
	}
	return nil
}

// documentXML renders the main document part.
func (b *Builder) documentXML() string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n")
	sb.WriteString("  <w:body>\n")
	for _, p := range b.paragraphs {
		writeParagraph(&sb, p)
	}
	sb.WriteString("  </w:body>\n")
	sb.WriteString("</w:document>\n")
	return sb.String()
}

func writeParagraph(sb *strings.Builder, p *paragraph) {
	sb.WriteString("    <w:p>")
	writeParagraphProps(sb, p.style)
	for _, r := range p.runs {
		writeRun(sb, r)
	}
	sb.WriteString("</w:p>\n")
}

func writeParagraphProps(sb *strings.Builder, style interfaces.ParagraphStyle) {
	name := style.Name
	if name == "" {
		name = "Normal"
	}

	sb.WriteString("<w:pPr>")
	sb.WriteString(`<w:pStyle w:val="` + escapeXML(name) + `"/>`)

	if style.List != interfaces.ListNone {
		numID := "1"
		if style.List == interfaces.ListNumber {
			numID = "2"
		}
		depth := style.Depth
		if depth > 8 {
			depth = 8
		}
		sb.WriteString(`<w:numPr><w:ilvl w:val="` + strconv.Itoa(depth) + `"/><w:numId w:val="` + numID + `"/></w:numPr>`)
	} else if style.Depth > 0 {
		sb.WriteString(`<w:ind w:left="` + strconv.Itoa(style.Depth*twipsPerIndent) + `"/>`)
	}

	if style.Centered {
		sb.WriteString(`<w:jc w:val="center"/>`)
	}
	sb.WriteString("</w:pPr>")
}

func writeRun(sb *strings.Builder, r run) {
	if r.href != "" {
		// Hyperlinks degrade to "label (url)" in the document text.
		sb.WriteString("<w:r><w:t xml:space=\"preserve\">")
		sb.WriteString(escapeXML(r.text + " (" + r.href + ")"))
		sb.WriteString("</w:t></w:r>")
		return
	}

	sb.WriteString("<w:r>")
	writeRunProps(sb, r.style)
	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escapeXML(r.text))
	sb.WriteString("</w:t></w:r>")
}

// writeRunProps maps run style flags onto run properties. The code flag wins
// over bold and italic: code spans always render with only the fixed-width
// font override.
func writeRunProps(sb *strings.Builder, style interfaces.RunStyle) {
	if style.Zero() {
		return
	}

	sb.WriteString("<w:rPr>")
	if style.Code {
		sb.WriteString(`<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/><w:sz w:val="20"/>`)
		if style.Strike {
			sb.WriteString("<w:strike/>")
		}
		sb.WriteString("</w:rPr>")
		return
	}
	if style.Bold {
		sb.WriteString("<w:b/>")
	}
	if style.Italic {
		sb.WriteString("<w:i/>")
	}
	if style.Strike {
		sb.WriteString("<w:strike/>")
	}
	sb.WriteString("</w:rPr>")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
