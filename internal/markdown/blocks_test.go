package markdown

import "testing"

func TestParseMergesConsecutiveTextLines(t *testing.T) {
	blocks := Parse("first line\nsecond line\n\nnext paragraph")

	if len(blocks) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(blocks))
	}
	if blocks[0].Kind != KindParagraph || blocks[0].Text != "first line second line" {
		t.Fatalf("paragraph merge failed: %+v", blocks[0])
	}
	if blocks[1].Text != "next paragraph" {
		t.Fatalf("expected second paragraph, got %+v", blocks[1])
	}
}

func TestParseHeadingsKeepOrder(t *testing.T) {
	blocks := Parse("# A\n\nbody\n\n## B\n\n### C")

	var levels []int
	for _, b := range blocks {
		if b.Kind == KindHeading {
			levels = append(levels, b.Level)
		}
	}
	if len(levels) != 3 || levels[0] != 1 || levels[1] != 2 || levels[2] != 3 {
		t.Fatalf("heading order mismatch: %v", levels)
	}
}

func TestParseNestedList(t *testing.T) {
	blocks := Parse("- a\n  - b\n- c")

	if len(blocks) != 1 || blocks[0].Kind != KindList {
		t.Fatalf("expected a single list block, got %+v", blocks)
	}
	list := blocks[0]
	if len(list.Children) != 2 {
		t.Fatalf("expected items [a c] at depth 0, got %d items", len(list.Children))
	}

	a := list.Children[0]
	if a.Text != "a" || a.Depth != 0 {
		t.Fatalf("unexpected first item: %+v", a)
	}
	if len(a.Children) != 1 || a.Children[0].Kind != KindList {
		t.Fatalf("expected nested list under item a, got %+v", a.Children)
	}
	b := a.Children[0].Children[0]
	if b.Text != "b" || b.Depth != 1 {
		t.Fatalf("expected item b at depth 1, got %+v", b)
	}

	c := list.Children[1]
	if c.Text != "c" || c.Depth != 0 {
		t.Fatalf("unexpected second top-level item: %+v", c)
	}
}

func TestParseIndentUnitFromFirstNestedItem(t *testing.T) {
	// Four-space indentation: the first nested item fixes the unit, so eight
	// spaces maps to depth 2.
	blocks := Parse("- a\n    - b\n        - c")

	list := blocks[0]
	a := list.Children[0]
	b := a.Children[0].Children[0]
	if b.Depth != 1 {
		t.Fatalf("expected depth 1 for four-space indent, got %d", b.Depth)
	}
	c := b.Children[0].Children[0]
	if c.Depth != 2 {
		t.Fatalf("expected depth 2 for eight-space indent, got %d", c.Depth)
	}
}

func TestParseOrderedList(t *testing.T) {
	blocks := Parse("1. one\n2. two")

	list := blocks[0]
	if list.Kind != KindList || !list.Ordered {
		t.Fatalf("expected ordered list, got %+v", list)
	}
	if len(list.Children) != 2 || !list.Children[0].Ordered {
		t.Fatalf("expected two ordered items, got %+v", list.Children)
	}
}

func TestParseBlankLineSplitsLists(t *testing.T) {
	blocks := Parse("- a\n\n- b")

	if len(blocks) != 2 {
		t.Fatalf("expected two separate lists, got %d blocks", len(blocks))
	}
	for _, b := range blocks {
		if b.Kind != KindList {
			t.Fatalf("expected list blocks, got %v", b.Kind)
		}
	}
}

func TestParseQuoteWithHeading(t *testing.T) {
	blocks := Parse("> # Title")

	if len(blocks) != 1 || blocks[0].Kind != KindBlockQuote {
		t.Fatalf("expected a block quote, got %+v", blocks)
	}
	children := blocks[0].Children
	if len(children) != 1 || children[0].Kind != KindHeading || children[0].Level != 1 {
		t.Fatalf("expected a level 1 heading child, got %+v", children)
	}
	if children[0].Text != "Title" {
		t.Fatalf("unexpected heading text %q", children[0].Text)
	}
}

func TestParseNestedQuote(t *testing.T) {
	blocks := Parse("> outer\n>> inner")

	quote := blocks[0]
	if quote.Kind != KindBlockQuote {
		t.Fatalf("expected quote, got %+v", quote)
	}
	// The body "outer\n> inner" re-parses into a paragraph and a nested quote.
	if len(quote.Children) != 2 {
		t.Fatalf("expected paragraph and nested quote, got %+v", quote.Children)
	}
	if quote.Children[0].Kind != KindParagraph {
		t.Fatalf("expected paragraph first, got %v", quote.Children[0].Kind)
	}
	inner := quote.Children[1]
	if inner.Kind != KindBlockQuote || len(inner.Children) != 1 || inner.Children[0].Text != "inner" {
		t.Fatalf("nested quote mismatch: %+v", inner)
	}
}

func TestParseQuoteWithList(t *testing.T) {
	blocks := Parse("> - a\n> - b")

	quote := blocks[0]
	if quote.Kind != KindBlockQuote {
		t.Fatalf("expected quote, got %v", quote.Kind)
	}
	if len(quote.Children) != 1 || quote.Children[0].Kind != KindList {
		t.Fatalf("expected a list inside the quote, got %+v", quote.Children)
	}
	if len(quote.Children[0].Children) != 2 {
		t.Fatalf("expected two items, got %+v", quote.Children[0].Children)
	}
}

func TestParseCodeBlockVerbatim(t *testing.T) {
	blocks := Parse("```python\ndef f():\n\n    return 1\n```")

	if len(blocks) != 1 || blocks[0].Kind != KindCodeBlock {
		t.Fatalf("expected one code block, got %+v", blocks)
	}
	code := blocks[0]
	if code.Language != "python" {
		t.Fatalf("expected language tag python, got %q", code.Language)
	}
	want := []string{"def f():", "", "    return 1"}
	if len(code.Lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), code.Lines)
	}
	for i := range want {
		if code.Lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, code.Lines[i], want[i])
		}
	}
	if len(code.Runs) != 0 {
		t.Fatalf("code blocks must not get inline runs")
	}
}

func TestParseCodeBlockKeepsTrailingBlankLine(t *testing.T) {
	blocks := Parse("```\ncode\n\n```")

	if len(blocks) != 1 || blocks[0].Kind != KindCodeBlock {
		t.Fatalf("expected one code block, got %+v", blocks)
	}
	want := []string{"code", ""}
	if len(blocks[0].Lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), blocks[0].Lines)
	}
	for i := range want {
		if blocks[0].Lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, blocks[0].Lines[i], want[i])
		}
	}
}

func TestParseUnterminatedFenceBecomesCodeBlock(t *testing.T) {
	blocks := Parse("```\n- not a list\n# not a heading")

	if len(blocks) != 1 || blocks[0].Kind != KindCodeBlock {
		t.Fatalf("expected a single auto-closed code block, got %+v", blocks)
	}
	if len(blocks[0].Lines) != 2 {
		t.Fatalf("expected both lines captured, got %v", blocks[0].Lines)
	}
}

func TestParseFenceInsideList(t *testing.T) {
	blocks := Parse("- item\n  ```\n  code\n  ```\n- next")

	if len(blocks) != 1 || blocks[0].Kind != KindList {
		t.Fatalf("expected one list, got %+v", blocks)
	}
	item := blocks[0].Children[0]
	if len(item.Children) != 1 || item.Children[0].Kind != KindCodeBlock {
		t.Fatalf("expected code block attached to the first item, got %+v", item.Children)
	}
}

func TestParseRule(t *testing.T) {
	blocks := Parse("above\n\n---\n\nbelow")

	if len(blocks) != 3 || blocks[1].Kind != KindRule {
		t.Fatalf("expected rule between paragraphs, got %+v", blocks)
	}
}

func TestParseResolvesInlineRuns(t *testing.T) {
	blocks := Parse("# A **bold** title")

	if len(blocks[0].Runs) == 0 {
		t.Fatalf("heading should carry inline runs")
	}
	var sawBold bool
	for _, r := range blocks[0].Runs {
		if r.Style.Bold && r.Text == "bold" {
			sawBold = true
		}
	}
	if !sawBold {
		t.Fatalf("expected a bold run, got %+v", blocks[0].Runs)
	}
}
