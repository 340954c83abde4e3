package markdown

import (
	"strings"

	"github.com/goliatone/go-docx/pkg/interfaces"
)

// ParseInline tokenizes the inline spans of a single block into styled runs.
// The scan is left to right: inline code resolves first and is opaque, bold
// and italic nest, and any delimiter without a legal counterpart in the block
// degrades to literal text. Malformed spans never produce an error.
func ParseInline(text string) []Run {
	runs := parseSpans(text, interfaces.RunStyle{})
	return mergeRuns(runs)
}

func parseSpans(text string, style interfaces.RunStyle) []Run {
	var (
		runs    []Run
		literal strings.Builder
	)

	flush := func() {
		if literal.Len() == 0 {
			return
		}
		runs = append(runs, Run{Text: literal.String(), Style: style})
		literal.Reset()
	}

	i := 0
	for i < len(text) {
		c := text[i]

		switch {
		case c == '`':
			end := strings.IndexByte(text[i+1:], '`')
			if end < 0 {
				literal.WriteByte(c)
				i++
				continue
			}
			flush()
			code := style
			code.Code = true
			runs = append(runs, Run{Text: text[i+1 : i+1+end], Style: code})
			i += end + 2

		case c == '[':
			label, url, consumed := matchLink(text[i:])
			if consumed == 0 {
				literal.WriteByte(c)
				i++
				continue
			}
			flush()
			// Nested emphasis inside the label still resolves; the resulting
			// runs are flattened into a single hyperlink run.
			runs = append(runs, Run{Text: flattenText(parseSpans(label, style)), Style: style, Href: url})
			i += consumed

		case c == '*' || c == '_' || c == '~':
			marker, toggles := matchDelimiter(text[i:])
			if marker == "" {
				literal.WriteByte(c)
				i++
				continue
			}
			inner, consumed := matchSpan(text[i:], marker)
			if consumed == 0 {
				literal.WriteByte(c)
				i++
				continue
			}
			flush()
			runs = append(runs, parseSpans(inner, applyToggles(style, toggles))...)
			i += consumed

		default:
			literal.WriteByte(c)
			i++
		}
	}

	flush()
	return runs
}

type styleToggles struct {
	bold   bool
	italic bool
	strike bool
}

// matchDelimiter inspects the delimiter run starting the text and picks the
// marker to match: *** and ___ open bold+italic, ** and __ open bold, ~~
// opens strikethrough, single * and _ open italic. A lone ~ is literal.
func matchDelimiter(text string) (string, styleToggles) {
	c := text[0]
	n := 1
	for n < len(text) && text[n] == c {
		n++
	}

	switch c {
	case '~':
		if n >= 2 {
			return "~~", styleToggles{strike: true}
		}
		return "", styleToggles{}
	default: // '*' or '_'
		switch {
		case n >= 3:
			return strings.Repeat(string(c), 3), styleToggles{bold: true, italic: true}
		case n == 2:
			return string(c) + string(c), styleToggles{bold: true}
		default:
			return string(c), styleToggles{italic: true}
		}
	}
}

// matchSpan locates the closing marker for a span opened at the start of
// text. It returns the enclosed content and the total bytes consumed
// including both markers, or zero when no legal counterpart exists in the
// block. Closer search skips backtick spans so code stays opaque.
func matchSpan(text, marker string) (string, int) {
	start := len(marker)
	i := start
	for i <= len(text)-len(marker) {
		if text[i] == '`' {
			if end := strings.IndexByte(text[i+1:], '`'); end >= 0 {
				i += end + 2
				continue
			}
		}
		if strings.HasPrefix(text[i:], marker) {
			if i == start {
				// Empty span, e.g. "****": treat the opener as literal.
				return "", 0
			}
			// When the closer sits inside a longer delimiter run (e.g. the
			// *** closing "**bold *x***"), take the trailing marker-width
			// slice so the inner single delimiter stays with the content.
			if len(marker) >= 2 {
				run := i
				for run < len(text) && text[run] == marker[0] {
					run++
				}
				if runLen := run - i; runLen > len(marker) {
					i += runLen - len(marker)
				}
			}
			return text[start:i], i + len(marker)
		}
		i++
	}
	return "", 0
}

// matchLink matches [label](url) at the start of text, returning the label,
// the url, and the bytes consumed. Consumed is zero when the construct is
// incomplete, leaving the bracket to render literally.
func matchLink(text string) (string, string, int) {
	closeBracket := strings.IndexByte(text, ']')
	if closeBracket < 0 {
		return "", "", 0
	}
	if closeBracket+1 >= len(text) || text[closeBracket+1] != '(' {
		return "", "", 0
	}
	closeParen := strings.IndexByte(text[closeBracket+2:], ')')
	if closeParen < 0 {
		return "", "", 0
	}
	label := text[1:closeBracket]
	url := text[closeBracket+2 : closeBracket+2+closeParen]
	return label, strings.TrimSpace(url), closeBracket + closeParen + 3
}

func applyToggles(style interfaces.RunStyle, t styleToggles) interfaces.RunStyle {
	if t.bold {
		style.Bold = true
	}
	if t.italic {
		style.Italic = true
	}
	if t.strike {
		style.Strike = true
	}
	return style
}

// flattenText concatenates run text, dropping styling. Link labels collapse
// to plain text this way once their delimiters have been consumed.
func flattenText(runs []Run) string {
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// mergeRuns joins adjacent runs that share an identical style and link
// target so the renderer emits the minimal run sequence.
func mergeRuns(runs []Run) []Run {
	if len(runs) < 2 {
		return runs
	}
	out := runs[:1]
	for _, r := range runs[1:] {
		last := &out[len(out)-1]
		if last.Style == r.Style && last.Href == "" && r.Href == "" {
			last.Text += r.Text
			continue
		}
		out = append(out, r)
	}
	return out
}
