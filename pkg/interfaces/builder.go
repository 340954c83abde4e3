package interfaces

// RunStyle captures the character-level toggles applied to a single run of
// text. The flags are simultaneously applicable; builders decide precedence
// when a combination cannot be honoured (code wins over bold/italic in the
// default Word mapping).
type RunStyle struct {
	Bold   bool
	Italic bool
	Strike bool
	Code   bool
}

// Zero reports whether no styling toggle is set.
func (s RunStyle) Zero() bool {
	return !s.Bold && !s.Italic && !s.Strike && !s.Code
}

// ListStyle selects the list numbering behaviour for a paragraph.
type ListStyle uint8

const (
	// ListNone marks a paragraph that is not part of a list.
	ListNone ListStyle = iota
	// ListBullet marks an unordered list paragraph.
	ListBullet
	// ListNumber marks an ordered list paragraph.
	ListNumber
)

// ParagraphStyle selects the named paragraph style and indentation behaviour
// the builder should apply. Depth is cumulative: nested lists and quotes pass
// their nesting level through unmodified so builders can indent accordingly.
type ParagraphStyle struct {
	// Name is a builder style identifier such as "Normal", "Heading1" through
	// "Heading6", "Code", or "Quote".
	Name string
	// List selects bullet or numbered rendering when the paragraph belongs to
	// a list.
	List ListStyle
	// Depth is the nesting depth for list items and quoted content.
	Depth int
	// Centered requests centered alignment (divider paragraphs).
	Centered bool
}

// Paragraph is an opaque handle to a paragraph previously created through a
// DocumentBuilder. Handles are only meaningful to the builder that issued
// them.
type Paragraph any

// DocumentBuilder is the narrow capability the renderer consumes to
// materialize mapped blocks into an output document. Implementations append
// content in call order and serialize the accumulated document on Save; the
// renderer never touches the container format directly.
type DocumentBuilder interface {
	// AddParagraph appends a paragraph with the supplied style and returns a
	// handle for subsequent run creation.
	AddParagraph(style ParagraphStyle) Paragraph
	// AddRun appends styled text to the paragraph.
	AddRun(p Paragraph, text string, style RunStyle)
	// AddHyperlinkRun appends link text with its target URL to the paragraph.
	AddHyperlinkRun(p Paragraph, text string, url string)
	// Save serializes the document to the supplied path. The write is
	// all-or-nothing: implementations must not leave a partial file behind on
	// failure.
	Save(path string) error
}

// BuilderProvider creates empty output documents. The converter requests one
// document per conversion so concurrent conversions never share builder
// state.
type BuilderProvider interface {
	NewDocument() DocumentBuilder
}
