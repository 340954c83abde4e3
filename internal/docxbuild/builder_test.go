package docxbuild

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-docx/pkg/interfaces"
)

func readPart(t *testing.T, data []byte, name string) string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open package: %v", err)
	}
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open part %s: %v", name, err)
		}
		defer rc.Close()
		content, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read part %s: %v", name, err)
		}
		return string(content)
	}
	t.Fatalf("part %s not found in package", name)
	return ""
}

func TestBuilderPackageParts(t *testing.T) {
	b := New()
	p := b.AddParagraph(interfaces.ParagraphStyle{Name: "Heading1"})
	b.AddRun(p, "Title", interfaces.RunStyle{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open package: %v", err)
	}

	want := map[string]bool{
		"[Content_Types].xml":          false,
		"_rels/.rels":                  false,
		"docProps/core.xml":            false,
		"word/_rels/document.xml.rels": false,
		"word/styles.xml":              false,
		"word/numbering.xml":           false,
		"word/document.xml":            false,
	}
	for _, f := range zr.File {
		if _, ok := want[f.Name]; ok {
			want[f.Name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing package part %s", name)
		}
	}
}

func TestBuilderCorePropertiesDeclared(t *testing.T) {
	b := New()

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	core := readPart(t, data, "docProps/core.xml")
	if !strings.Contains(core, "cp:coreProperties") {
		t.Fatal("expected core properties payload")
	}

	types := readPart(t, data, "[Content_Types].xml")
	if !strings.Contains(types, `PartName="/docProps/core.xml"`) {
		t.Fatal("core properties part missing from content types")
	}

	rels := readPart(t, data, "_rels/.rels")
	if !strings.Contains(rels, `Target="docProps/core.xml"`) {
		t.Fatal("core properties part missing from package relationships")
	}
}

func TestBuilderDocumentParagraphs(t *testing.T) {
	b := New()

	h := b.AddParagraph(interfaces.ParagraphStyle{Name: "Heading2"})
	b.AddRun(h, "Section", interfaces.RunStyle{})

	body := b.AddParagraph(interfaces.ParagraphStyle{Name: "Normal"})
	b.AddRun(body, "plain ", interfaces.RunStyle{})
	b.AddRun(body, "bold", interfaces.RunStyle{Bold: true})
	b.AddRun(body, "both", interfaces.RunStyle{Bold: true, Italic: true})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	if !strings.Contains(doc, `<w:pStyle w:val="Heading2"/>`) {
		t.Fatalf("expected Heading2 style, got %s", doc)
	}
	if !strings.Contains(doc, `<w:rPr><w:b/></w:rPr><w:t xml:space="preserve">bold</w:t>`) {
		t.Fatalf("expected bold run properties, got %s", doc)
	}
	if !strings.Contains(doc, "<w:rPr><w:b/><w:i/></w:rPr>") {
		t.Fatalf("expected combined bold italic properties, got %s", doc)
	}
	if strings.Contains(doc, `<w:rPr></w:rPr><w:t xml:space="preserve">plain `) {
		t.Fatal("plain runs should carry no run properties")
	}
}

func TestBuilderListNumbering(t *testing.T) {
	b := New()

	bullet := b.AddParagraph(interfaces.ParagraphStyle{Name: "ListParagraph", List: interfaces.ListBullet})
	b.AddRun(bullet, "one", interfaces.RunStyle{})

	nested := b.AddParagraph(interfaces.ParagraphStyle{Name: "ListParagraph", List: interfaces.ListNumber, Depth: 1})
	b.AddRun(nested, "first", interfaces.RunStyle{})

	deep := b.AddParagraph(interfaces.ParagraphStyle{Name: "ListParagraph", List: interfaces.ListBullet, Depth: 12})
	b.AddRun(deep, "clamped", interfaces.RunStyle{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	if !strings.Contains(doc, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr>`) {
		t.Fatalf("expected bullet numbering, got %s", doc)
	}
	if !strings.Contains(doc, `<w:numPr><w:ilvl w:val="1"/><w:numId w:val="2"/></w:numPr>`) {
		t.Fatalf("expected decimal numbering at level 1, got %s", doc)
	}
	if !strings.Contains(doc, `<w:ilvl w:val="8"/>`) {
		t.Fatalf("expected indentation level clamped to 8, got %s", doc)
	}
}

func TestBuilderQuoteIndentAndCenter(t *testing.T) {
	b := New()

	quote := b.AddParagraph(interfaces.ParagraphStyle{Name: "Quote", Depth: 2})
	b.AddRun(quote, "quoted", interfaces.RunStyle{})

	rule := b.AddParagraph(interfaces.ParagraphStyle{Name: "Normal", Centered: true})
	b.AddRun(rule, "────", interfaces.RunStyle{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	if !strings.Contains(doc, `<w:ind w:left="1440"/>`) {
		t.Fatalf("expected 1440 twips indent for depth 2, got %s", doc)
	}
	if !strings.Contains(doc, `<w:jc w:val="center"/>`) {
		t.Fatalf("expected centered paragraph, got %s", doc)
	}
}

func TestBuilderCodeRunOverridesEmphasis(t *testing.T) {
	b := New()

	p := b.AddParagraph(interfaces.ParagraphStyle{Name: "Code"})
	b.AddRun(p, "x := 1", interfaces.RunStyle{Code: true, Bold: true})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	if !strings.Contains(doc, `<w:rFonts w:ascii="Courier New" w:hAnsi="Courier New"/><w:sz w:val="20"/>`) {
		t.Fatalf("expected fixed-width font override, got %s", doc)
	}
	if strings.Contains(doc, "<w:b/>") {
		t.Fatal("code runs should not carry bold")
	}
}

func TestBuilderHyperlinkRun(t *testing.T) {
	b := New()

	p := b.AddParagraph(interfaces.ParagraphStyle{Name: "Normal"})
	b.AddHyperlinkRun(p, "docs", "https://example.com")

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	if !strings.Contains(doc, "docs (https://example.com)") {
		t.Fatalf("expected label with parenthesized URL, got %s", doc)
	}
}

func TestBuilderEscapesXML(t *testing.T) {
	b := New()

	p := b.AddParagraph(interfaces.ParagraphStyle{Name: "Normal"})
	b.AddRun(p, `a < b & "c"`, interfaces.RunStyle{})

	data, err := b.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	doc := readPart(t, data, "word/document.xml")

	if !strings.Contains(doc, "a &lt; b &amp; &quot;c&quot;") {
		t.Fatalf("expected escaped text, got %s", doc)
	}
}

func TestBuilderSave(t *testing.T) {
	b := New()
	p := b.AddParagraph(interfaces.ParagraphStyle{Name: "Normal"})
	b.AddRun(p, "hello", interfaces.RunStyle{})

	out := filepath.Join(t.TempDir(), "out.docx")
	if err := b.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if _, err := zip.NewReader(bytes.NewReader(data), int64(len(data))); err != nil {
		t.Fatalf("saved file is not a valid package: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(out))
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected no staging leftovers, found %d entries", len(entries))
	}
}

func TestBuilderSaveMissingDirectory(t *testing.T) {
	b := New()

	err := b.Save(filepath.Join(t.TempDir(), "missing", "out.docx"))
	if err == nil {
		t.Fatal("expected error when output directory does not exist")
	}
}

func TestProviderIssuesFreshBuilders(t *testing.T) {
	provider := Provider{}

	first := provider.NewDocument().(*Builder)
	p := first.AddParagraph(interfaces.ParagraphStyle{Name: "Normal"})
	first.AddRun(p, "x", interfaces.RunStyle{})

	second := provider.NewDocument().(*Builder)
	if second.ParagraphCount() != 0 {
		t.Fatalf("expected fresh builder, got %d paragraphs", second.ParagraphCount())
	}
}

func TestBuilderIgnoresForeignHandles(t *testing.T) {
	b := New()
	b.AddRun("not a paragraph", "text", interfaces.RunStyle{})
	b.AddHyperlinkRun(nil, "text", "https://example.com")

	if b.ParagraphCount() != 0 {
		t.Fatalf("expected no paragraphs, got %d", b.ParagraphCount())
	}
}
