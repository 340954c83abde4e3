// Package markdown implements the Markdown front end of the converter: a
// line classifier, a block parser producing an owned block tree, and an
// inline parser that enriches textual blocks into styled run sequences. It
// also provides filesystem discovery with frontmatter extraction and a
// goldmark-backed HTML preview parser.
package markdown
