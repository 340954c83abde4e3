package markdown

import "strings"

const defaultIndentUnit = 2

// Parse turns raw Markdown source into a block tree with inline runs already
// resolved on every textual node. Malformed constructs never fail the parse;
// they degrade to literal text or auto-close at end of input.
func Parse(src string) []*Block {
	blocks := parseBlocks(newTokenizer(src))
	resolveInlines(blocks)
	return blocks
}

// parseBlocks consumes the classified line sequence in a single pass, no
// backtracking. Consecutive text lines merge into one paragraph, same-depth
// list items merge into one list, and quote bodies are re-parsed recursively.
func parseBlocks(tok *tokenizer) []*Block {
	p := &blockParser{}
	for {
		line, ok := tok.Next()
		if !ok {
			break
		}
		p.feed(line)
	}
	p.flush()
	return p.blocks
}

type blockParser struct {
	blocks []*Block

	// paragraph accumulation
	textLines []string

	// open list state. openLists holds one entry per nesting level, each the
	// *Block of kind KindList currently accepting items at that depth.
	openLists []*Block
	// indentUnit is the indent width of the first nested item encountered;
	// zero until detected.
	indentUnit int

	// quote accumulation: body lines with one '>' level stripped.
	quoteLines []string

	// open code block, nil unless a fence is active.
	code *Block
	// codeIndent remembers the fence indentation so fenced blocks inside a
	// list attach to the innermost open item.
	codeIndent int
}

func (p *blockParser) feed(line Line) {
	if p.code != nil && line.Kind != LineFence {
		// Tokenizer guarantees only LineCode arrives here while a fence is
		// open, but stay permissive.
		p.code.Lines = append(p.code.Lines, line.Text)
		return
	}

	switch line.Kind {
	case LineBlank:
		p.flush()

	case LineHeading:
		p.flush()
		p.blocks = append(p.blocks, &Block{Kind: KindHeading, Level: line.Level, Text: line.Text})

	case LineRule:
		p.flush()
		p.blocks = append(p.blocks, &Block{Kind: KindRule})

	case LineQuote:
		p.flushParagraph()
		p.flushLists()
		p.flushCode()
		p.quoteLines = append(p.quoteLines, line.Text)

	case LineListItem:
		p.flushParagraph()
		p.flushQuote()
		p.addListItem(line)

	case LineFence:
		if p.code != nil {
			p.closeCode()
			return
		}
		p.flushParagraph()
		p.flushQuote()
		p.code = &Block{Kind: KindCodeBlock, Language: line.Lang, Lines: []string{}}
		p.codeIndent = line.Indent

	case LineCode:
		if p.code != nil {
			p.code.Lines = append(p.code.Lines, line.Text)
		}

	case LineText:
		p.flushQuote()
		if len(p.openLists) > 0 {
			// Continuation line: append to the most recent item rather than
			// starting a paragraph.
			if item := p.lastItem(); item != nil {
				item.Text += " " + strings.TrimSpace(line.Text)
				return
			}
		}
		p.textLines = append(p.textLines, strings.TrimSpace(line.Text))
	}
}

// flush closes every open accumulation: paragraph, lists, quote, and code.
func (p *blockParser) flush() {
	p.flushParagraph()
	p.flushLists()
	p.flushQuote()
	p.flushCode()
}

func (p *blockParser) flushParagraph() {
	if len(p.textLines) == 0 {
		return
	}
	text := strings.Join(p.textLines, " ")
	p.textLines = nil
	p.blocks = append(p.blocks, &Block{Kind: KindParagraph, Text: text})
}

func (p *blockParser) flushLists() {
	if len(p.openLists) == 0 {
		return
	}
	p.blocks = append(p.blocks, p.openLists[0])
	p.openLists = nil
	p.indentUnit = 0
}

func (p *blockParser) flushQuote() {
	if len(p.quoteLines) == 0 {
		return
	}
	body := strings.Join(p.quoteLines, "\n")
	p.quoteLines = nil
	children := parseBlocks(newTokenizer(body))
	p.blocks = append(p.blocks, &Block{Kind: KindBlockQuote, Children: children})
}

func (p *blockParser) flushCode() {
	if p.code == nil {
		return
	}
	p.closeCode()
}

func (p *blockParser) closeCode() {
	block := p.code
	p.code = nil

	// A fence indented under an open list attaches to the innermost item.
	if len(p.openLists) > 0 && p.codeIndent > 0 {
		if item := p.lastItem(); item != nil {
			item.Children = append(item.Children, block)
			return
		}
	}
	p.flushLists()
	p.blocks = append(p.blocks, block)
}

// addListItem places a list item at the depth derived from its indentation.
// The indent unit is the width of the first nested item encountered; until
// one is seen the default unit applies.
func (p *blockParser) addListItem(line Line) {
	if line.Indent > 0 && p.indentUnit == 0 {
		p.indentUnit = line.Indent
	}

	depth := 0
	if line.Indent > 0 {
		unit := p.indentUnit
		if unit == 0 {
			unit = defaultIndentUnit
		}
		depth = line.Indent / unit
		if depth < 1 {
			depth = 1
		}
	}

	item := &Block{Kind: KindListItem, Ordered: line.Ordered, Depth: depth, Text: line.Text}

	if len(p.openLists) == 0 {
		list := &Block{Kind: KindList, Ordered: line.Ordered}
		list.Children = append(list.Children, item)
		p.openLists = []*Block{list}
		return
	}

	// Close lists deeper than the incoming item.
	for len(p.openLists)-1 > depth {
		p.openLists = p.openLists[:len(p.openLists)-1]
	}

	if depth > len(p.openLists)-1 {
		// Deeper item: open a nested list under the most recent item of the
		// innermost open list.
		parent := p.lastItemOf(p.openLists[len(p.openLists)-1])
		if parent == nil {
			// Irregular indentation with no item to nest under; treat as a
			// sibling at the current depth.
			item.Depth = len(p.openLists) - 1
			current := p.openLists[len(p.openLists)-1]
			current.Children = append(current.Children, item)
			return
		}
		nested := &Block{Kind: KindList, Ordered: line.Ordered}
		nested.Children = append(nested.Children, item)
		parent.Children = append(parent.Children, nested)
		p.openLists = append(p.openLists, nested)
		return
	}

	current := p.openLists[depth]
	current.Children = append(current.Children, item)
}

// lastItem returns the most recent item of the innermost open list.
func (p *blockParser) lastItem() *Block {
	if len(p.openLists) == 0 {
		return nil
	}
	return p.lastItemOf(p.openLists[len(p.openLists)-1])
}

func (p *blockParser) lastItemOf(list *Block) *Block {
	for i := len(list.Children) - 1; i >= 0; i-- {
		if list.Children[i].Kind == KindListItem {
			return list.Children[i]
		}
	}
	return nil
}

// resolveInlines walks the tree and enriches every textual block with its
// inline run sequence. Code blocks are skipped: their content stays verbatim.
func resolveInlines(blocks []*Block) {
	for _, b := range blocks {
		switch b.Kind {
		case KindHeading, KindParagraph, KindListItem:
			b.Runs = ParseInline(b.Text)
		}
		resolveInlines(b.Children)
	}
}
