package markdown

import (
	"strings"
	"testing"
)

func TestParseInlinePlainText(t *testing.T) {
	runs := ParseInline("hello world")

	if len(runs) != 1 || runs[0].Text != "hello world" {
		t.Fatalf("expected single literal run, got %+v", runs)
	}
	if !runs[0].Style.Zero() {
		t.Fatalf("plain text must carry no style flags: %+v", runs[0].Style)
	}
}

func TestParseInlineBold(t *testing.T) {
	runs := ParseInline("**x**")

	if len(runs) != 1 {
		t.Fatalf("expected one run, got %+v", runs)
	}
	if !runs[0].Style.Bold || runs[0].Text != "x" {
		t.Fatalf("expected bold run x, got %+v", runs[0])
	}
	if strings.Contains(runs[0].Text, "*") {
		t.Fatalf("delimiters leaked into run text: %q", runs[0].Text)
	}
}

func TestParseInlineUnderscoreBold(t *testing.T) {
	runs := ParseInline("__x__")

	if len(runs) != 1 || !runs[0].Style.Bold || runs[0].Text != "x" {
		t.Fatalf("expected bold run from underscores, got %+v", runs)
	}
}

func TestParseInlineItalic(t *testing.T) {
	runs := ParseInline("a *b* c")

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %+v", runs)
	}
	if runs[0].Text != "a " || runs[1].Text != "b" || runs[2].Text != " c" {
		t.Fatalf("run split mismatch: %+v", runs)
	}
	if !runs[1].Style.Italic || runs[0].Style.Italic {
		t.Fatalf("italic flag misapplied: %+v", runs)
	}
}

func TestParseInlineBoldItalicNesting(t *testing.T) {
	runs := ParseInline("***text***")

	if len(runs) != 1 {
		t.Fatalf("expected one run, got %+v", runs)
	}
	if !runs[0].Style.Bold || !runs[0].Style.Italic || runs[0].Text != "text" {
		t.Fatalf("expected bold+italic text, got %+v", runs[0])
	}
}

func TestParseInlineNestedEmphasis(t *testing.T) {
	runs := ParseInline("**bold and *both***")

	var both bool
	for _, r := range runs {
		if r.Style.Bold && r.Style.Italic && r.Text == "both" {
			both = true
		}
		if !r.Style.Bold {
			t.Fatalf("every run should be bold, got %+v", r)
		}
	}
	if !both {
		t.Fatalf("expected nested bold+italic run, got %+v", runs)
	}
}

func TestParseInlineStrikethrough(t *testing.T) {
	runs := ParseInline("~~gone~~ kept")

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", runs)
	}
	if !runs[0].Style.Strike || runs[0].Text != "gone" {
		t.Fatalf("expected strikethrough run, got %+v", runs[0])
	}
	if runs[1].Style.Strike {
		t.Fatalf("strike must not leak past its span: %+v", runs[1])
	}
}

func TestParseInlineCodeIsOpaque(t *testing.T) {
	runs := ParseInline("`a*b*c`")

	if len(runs) != 1 {
		t.Fatalf("expected one code run, got %+v", runs)
	}
	if !runs[0].Style.Code || runs[0].Text != "a*b*c" {
		t.Fatalf("code span must keep asterisks verbatim, got %+v", runs[0])
	}
	if runs[0].Style.Bold || runs[0].Style.Italic {
		t.Fatalf("no emphasis flags belong on a plain code span: %+v", runs[0].Style)
	}
}

func TestParseInlineEmphasisClosesAroundCode(t *testing.T) {
	// The closer search skips backtick spans, so the asterisk inside the code
	// span does not terminate the bold run.
	runs := ParseInline("**a `b*c` d**")

	for _, r := range runs {
		if !r.Style.Bold {
			t.Fatalf("expected every run bold, got %+v", runs)
		}
	}
}

func TestParseInlineUnmatchedDelimiterIsLiteral(t *testing.T) {
	runs := ParseInline("*hello")

	if len(runs) != 1 {
		t.Fatalf("expected a single run, got %+v", runs)
	}
	if runs[0].Text != "*hello" || !runs[0].Style.Zero() {
		t.Fatalf("unmatched delimiter should stay literal, got %+v", runs[0])
	}
}

func TestParseInlineUnmatchedDoubleStays(t *testing.T) {
	runs := ParseInline("a ** b")

	if len(runs) != 1 || runs[0].Text != "a ** b" {
		t.Fatalf("expected literal text, got %+v", runs)
	}
}

func TestParseInlineLink(t *testing.T) {
	runs := ParseInline("see [the docs](https://example.com/docs) here")

	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %+v", runs)
	}
	link := runs[1]
	if link.Text != "the docs" || link.Href != "https://example.com/docs" {
		t.Fatalf("link mismatch: %+v", link)
	}
	if runs[0].Href != "" || runs[2].Href != "" {
		t.Fatalf("href leaked into adjacent runs: %+v", runs)
	}
}

func TestParseInlineLinkLabelResolvesEmphasis(t *testing.T) {
	runs := ParseInline("[**bold label**](https://example.com)")

	if len(runs) != 1 {
		t.Fatalf("expected one link run, got %+v", runs)
	}
	if runs[0].Text != "bold label" {
		t.Fatalf("label delimiters should be consumed, got %q", runs[0].Text)
	}
	if runs[0].Href != "https://example.com" {
		t.Fatalf("unexpected href %q", runs[0].Href)
	}
}

func TestParseInlineIncompleteLinkIsLiteral(t *testing.T) {
	runs := ParseInline("[not a link] and [also](broken")

	joined := ""
	for _, r := range runs {
		joined += r.Text
	}
	if joined != "[not a link] and [also](broken" {
		t.Fatalf("incomplete links must degrade to literal text, got %q", joined)
	}
}

func TestParseInlineEmptySpanIsLiteral(t *testing.T) {
	runs := ParseInline("a années b")

	if len(runs) != 1 {
		t.Fatalf("multibyte text should survive the byte scan, got %+v", runs)
	}

	runs = ParseInline("****")
	joined := ""
	for _, r := range runs {
		joined += r.Text
	}
	if joined != "****" {
		t.Fatalf("empty span should stay literal, got %q", joined)
	}
}

func TestParseInlineMergesAdjacentStyles(t *testing.T) {
	runs := ParseInline("*a**b*")

	// Both italic spans merge into a single styled run.
	if len(runs) != 1 || runs[0].Text != "ab" || !runs[0].Style.Italic {
		t.Fatalf("expected merged italic run, got %+v", runs)
	}
}
