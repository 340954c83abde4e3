package markdown

import "strings"

// LineKind classifies a single logical source line. Classification follows a
// fixed priority order: heading, fence, quote, list item, rule, blank, text.
// While a fence is open every line is classified as LineCode regardless of
// other markers.
type LineKind uint8

const (
	// LineBlank terminates the current paragraph or list run.
	LineBlank LineKind = iota
	// LineHeading is 1-6 leading '#' characters followed by a space.
	LineHeading
	// LineFence is a ``` or ~~~ delimiter toggling verbatim mode.
	LineFence
	// LineQuote starts with one or more '>' markers.
	LineQuote
	// LineListItem starts with -, * or + plus a space, or digits plus '.'
	// and a space.
	LineListItem
	// LineRule consists solely of 3+ -, * or _ characters.
	LineRule
	// LineCode is a verbatim line inside an open fence.
	LineCode
	// LineText is anything else.
	LineText
)

// Line is a classified source line. Only the fields relevant to Kind carry
// meaning.
type Line struct {
	Kind LineKind

	// Text is the line content with the classified marker stripped: heading
	// text, list item body, quote body after one '>' level, or the verbatim
	// code line.
	Text string

	// Level is the heading level for LineHeading and the full quote depth
	// (count of leading '>') for LineQuote.
	Level int

	// Ordered marks numbered list items.
	Ordered bool

	// Indent is the leading whitespace width of a list item line, used by the
	// block parser to derive nesting depth.
	Indent int

	// Lang is the trimmed token following a fence marker.
	Lang string
}

// tokenizer walks raw source text and classifies one line at a time. It is a
// single-pass consumer: once Next returns false the tokenizer is exhausted.
type tokenizer struct {
	lines []string
	pos   int

	inFence     bool
	fenceMarker byte
}

func newTokenizer(src string) *tokenizer {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(normalized, "\n")
	// A trailing newline terminates the last line; the empty string Split
	// leaves behind is not a line of input.
	if n := len(lines); n > 0 && strings.HasSuffix(normalized, "\n") {
		lines = lines[:n-1]
	}
	return &tokenizer{lines: lines}
}

// Next returns the next classified line. The second result is false once the
// input is exhausted. An unterminated fence simply runs to the end of input;
// that is never an error.
func (t *tokenizer) Next() (Line, bool) {
	if t.pos >= len(t.lines) {
		return Line{}, false
	}
	raw := t.lines[t.pos]
	t.pos++
	return t.classify(raw), true
}

// Tokenize classifies every line of src eagerly. The result is a pure
// function of the input: identical text always yields an identical sequence.
func Tokenize(src string) []Line {
	tok := newTokenizer(src)
	var out []Line
	for {
		line, ok := tok.Next()
		if !ok {
			return out
		}
		out = append(out, line)
	}
}

func (t *tokenizer) classify(raw string) Line {
	trimmed := strings.TrimLeft(raw, " \t")

	if t.inFence {
		if marker, _ := fenceMarker(trimmed); marker == t.fenceMarker {
			t.inFence = false
			return Line{Kind: LineFence}
		}
		return Line{Kind: LineCode, Text: raw}
	}

	if marker, lang := fenceMarker(trimmed); marker != 0 {
		t.inFence = true
		t.fenceMarker = marker
		return Line{Kind: LineFence, Lang: lang, Indent: indentWidth(raw)}
	}

	if level, text, ok := headingLine(raw); ok {
		return Line{Kind: LineHeading, Level: level, Text: text}
	}

	if depth, text, ok := quoteLine(trimmed); ok {
		return Line{Kind: LineQuote, Level: depth, Text: text}
	}

	if ordered, text, ok := listItemLine(trimmed); ok {
		return Line{Kind: LineListItem, Ordered: ordered, Text: text, Indent: indentWidth(raw)}
	}

	if isRuleLine(raw) {
		return Line{Kind: LineRule}
	}

	if strings.TrimSpace(raw) == "" {
		return Line{Kind: LineBlank}
	}

	return Line{Kind: LineText, Text: raw}
}

// fenceMarker reports the fence delimiter character (` or ~) when the line
// opens or closes a fence, along with the trimmed language tag.
func fenceMarker(trimmed string) (byte, string) {
	for _, marker := range []string{"```", "~~~"} {
		if strings.HasPrefix(trimmed, marker) {
			rest := strings.TrimLeft(trimmed, string(marker[0]))
			return marker[0], strings.TrimSpace(rest)
		}
	}
	return 0, ""
}

func headingLine(raw string) (int, string, bool) {
	level := 0
	for level < len(raw) && raw[level] == '#' {
		level++
	}
	if level < 1 || level > 6 {
		return 0, "", false
	}
	if level >= len(raw) || raw[level] != ' ' {
		return 0, "", false
	}
	return level, strings.TrimSpace(raw[level+1:]), true
}

// quoteLine strips a single '>' level so quote bodies can be re-tokenized
// recursively. Level still reports the full marker count.
func quoteLine(trimmed string) (int, string, bool) {
	if !strings.HasPrefix(trimmed, ">") {
		return 0, "", false
	}
	depth := 0
	rest := trimmed
	for strings.HasPrefix(rest, ">") {
		depth++
		rest = strings.TrimPrefix(rest, ">")
		rest = strings.TrimPrefix(rest, " ")
	}
	body := strings.TrimPrefix(trimmed, ">")
	body = strings.TrimPrefix(body, " ")
	return depth, body, true
}

func listItemLine(trimmed string) (bool, string, bool) {
	if len(trimmed) >= 2 && (trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+') && trimmed[1] == ' ' {
		return false, trimmed[2:], true
	}

	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits+1 < len(trimmed) && trimmed[digits] == '.' && trimmed[digits+1] == ' ' {
		return true, trimmed[digits+2:], true
	}

	return false, "", false
}

// isRuleLine matches lines made solely of 3+ -, * or _ characters, ignoring
// whitespace. Mixed marker characters do not form a rule.
func isRuleLine(raw string) bool {
	compact := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, raw)

	if len(compact) < 3 {
		return false
	}
	marker := compact[0]
	if marker != '-' && marker != '*' && marker != '_' {
		return false
	}
	for i := 1; i < len(compact); i++ {
		if compact[i] != marker {
			return false
		}
	}
	return true
}

// indentWidth measures leading whitespace, counting tabs as the default
// two-column indent unit.
func indentWidth(raw string) int {
	width := 0
	for _, r := range raw {
		switch r {
		case ' ':
			width++
		case '\t':
			width += defaultIndentUnit
		default:
			return width
		}
	}
	return width
}
