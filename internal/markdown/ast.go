package markdown

import "github.com/goliatone/go-docx/pkg/interfaces"

// BlockKind discriminates the closed set of block node variants. The renderer
// switches exhaustively over this enum; adding a kind requires a matching
// mapping entry.
type BlockKind uint8

const (
	// KindHeading is a section heading with level 1 through 6.
	KindHeading BlockKind = iota
	// KindParagraph is a plain run of body text.
	KindParagraph
	// KindList groups consecutive list items of the same nesting depth.
	KindList
	// KindListItem is a single bullet or numbered entry inside a list.
	KindListItem
	// KindCodeBlock is a fenced verbatim region.
	KindCodeBlock
	// KindBlockQuote is quoted content whose body is itself block-parsed.
	KindBlockQuote
	// KindRule is a thematic break.
	KindRule
)

// String returns the lowercase kind label used in logs and test failures.
func (k BlockKind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindListItem:
		return "list_item"
	case KindCodeBlock:
		return "code_block"
	case KindBlockQuote:
		return "block_quote"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// Block is a tagged variant over every block node the parser can emit. Only
// the fields relevant to Kind are populated; children are exclusively owned
// by their parent so the tree is cycle free by construction.
type Block struct {
	Kind BlockKind

	// Level is the heading level (1-6) when Kind is KindHeading.
	Level int

	// Ordered distinguishes numbered from bullet lists on KindList and
	// KindListItem nodes.
	Ordered bool

	// Depth is the nesting depth of a list item, starting at zero for
	// top-level items.
	Depth int

	// Text holds the raw textual content accumulated by the block parser
	// before inline parsing enriches it into Runs.
	Text string

	// Runs is the inline run sequence produced by the inline parser for
	// textual blocks (headings, paragraphs, list items).
	Runs []Run

	// Language is the optional fence language tag on KindCodeBlock nodes.
	Language string

	// Lines holds code block content verbatim, one entry per source line,
	// including interior blank lines. No inline parsing is applied.
	Lines []string

	// Children are nested blocks: quote bodies on KindBlockQuote, items on
	// KindList, and nested lists on KindListItem.
	Children []*Block
}

// Run is a contiguous span of text sharing one combination of character
// styles. Href carries the link target when the run originated from a
// Markdown link.
type Run struct {
	Text  string
	Style interfaces.RunStyle
	Href  string
}
