// Package render walks a parsed Markdown block tree and maps every node onto
// the narrow document builder capability. The mapping is fixed: headings to
// heading styles, lists to bullet or numbered paragraphs, code blocks to
// fixed-width paragraphs, quotes to indented paragraphs, and rules to a
// centered divider glyph.
package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-docx/internal/markdown"
	"github.com/goliatone/go-docx/pkg/interfaces"
)

// Paragraph style identifiers understood by document builders.
const (
	StyleNormal        = "Normal"
	StyleHeadingPrefix = "Heading"
	StyleCode          = "Code"
	StyleQuote         = "Quote"
	StyleList          = "ListParagraph"
)

// dividerGlyph renders a horizontal rule as a centered box-drawing line.
const dividerGlyph = "─"

const dividerWidth = 50

// Render walks blocks in document order and appends one or more paragraphs
// per block to the builder. No block is visited twice; nesting depth passes
// through unmodified so indentation accumulates for nested lists and quotes.
func Render(builder interfaces.DocumentBuilder, blocks []*markdown.Block) {
	walk(builder, blocks, 0)
}

func walk(builder interfaces.DocumentBuilder, blocks []*markdown.Block, quoteDepth int) {
	for _, block := range blocks {
		renderBlock(builder, block, quoteDepth)
	}
}

func renderBlock(builder interfaces.DocumentBuilder, block *markdown.Block, quoteDepth int) {
	switch block.Kind {
	case markdown.KindHeading:
		p := builder.AddParagraph(interfaces.ParagraphStyle{
			Name:  StyleHeadingPrefix + strconv.Itoa(block.Level),
			Depth: quoteDepth,
		})
		addRuns(builder, p, block.Runs)

	case markdown.KindParagraph:
		style := interfaces.ParagraphStyle{Name: StyleNormal, Depth: quoteDepth}
		if quoteDepth > 0 {
			style.Name = StyleQuote
		}
		p := builder.AddParagraph(style)
		addRuns(builder, p, block.Runs)

	case markdown.KindList:
		walk(builder, block.Children, quoteDepth)

	case markdown.KindListItem:
		list := interfaces.ListBullet
		if block.Ordered {
			list = interfaces.ListNumber
		}
		p := builder.AddParagraph(interfaces.ParagraphStyle{
			Name:  StyleList,
			List:  list,
			Depth: block.Depth + quoteDepth,
		})
		addRuns(builder, p, block.Runs)
		walk(builder, block.Children, quoteDepth)

	case markdown.KindCodeBlock:
		for _, line := range block.Lines {
			p := builder.AddParagraph(interfaces.ParagraphStyle{Name: StyleCode, Depth: quoteDepth})
			builder.AddRun(p, line, interfaces.RunStyle{Code: true})
		}

	case markdown.KindBlockQuote:
		walk(builder, block.Children, quoteDepth+1)

	case markdown.KindRule:
		p := builder.AddParagraph(interfaces.ParagraphStyle{
			Name:     StyleNormal,
			Depth:    quoteDepth,
			Centered: true,
		})
		builder.AddRun(p, strings.Repeat(dividerGlyph, dividerWidth), interfaces.RunStyle{})
	}
}

func addRuns(builder interfaces.DocumentBuilder, p interfaces.Paragraph, runs []markdown.Run) {
	for _, run := range runs {
		if run.Href != "" {
			builder.AddHyperlinkRun(p, run.Text, run.Href)
			continue
		}
		builder.AddRun(p, run.Text, run.Style)
	}
}
