// Package content parses server-rendered chat message markup into a typed,
// immutable content tree.
//
// The markup is produced by a fixed, trusted rendering pipeline, so parsing
// is strict: the package models a closed vocabulary of elements and classes,
// and anything outside that vocabulary degrades to an Unimplemented node
// wrapping the original markup. Degradation is always as local as possible.
// A bad span inside a paragraph costs that span, not the paragraph, and a
// bad block costs that block, not the message.
//
// Parse is a pure function of its input. Equal inputs produce structurally
// equal trees, which makes trees safe to share between goroutines and to
// memoize (see WithCache).
package content

import "time"

// Tree is the parsed form of one message.
type Tree struct {
	Blocks []BlockNode
}

// BlockNode is a piece of vertically stacked message content. The set of
// implementations is closed; consumers dispatch with a type switch and
// treat Unimplemented as the fallback arm.
type BlockNode interface {
	blockNode()
}

// InlineNode is a piece of flowing content inside a Paragraph or Heading.
// Like BlockNode, the set of implementations is closed.
type InlineNode interface {
	inlineNode()
}

// Paragraph holds an inline run. Implicit paragraphs were synthesized
// around bare inline content, such as list item text that the renderer
// emitted without a wrapping element.
type Paragraph struct {
	Implicit bool

	// Links collects the target of every Link nested anywhere beneath the
	// paragraph, in source order. Nil when the paragraph holds no links.
	Links []string

	Inlines []InlineNode
}

// Heading is a section heading with Level from 1 through 6. Links is
// aggregated exactly as for Paragraph.
type Heading struct {
	Level   int
	Links   []string
	Inlines []InlineNode
}

// List is an ordered or unordered list. Each item holds at least one
// block; an item the parser can make nothing of holds one Unimplemented.
type List struct {
	Ordered bool
	Items   [][]BlockNode
}

// Quotation is a block quote wrapping nested blocks.
type Quotation struct {
	Blocks []BlockNode
}

// CodeBlock is a highlighted code listing, flattened to classified spans.
// Adjacent spans always differ in kind.
type CodeBlock struct {
	Spans []CodeSpan
}

// CodeSpan is a run of code text sharing one highlighting kind.
type CodeSpan struct {
	Kind SpanKind
	Text string
}

// MathBlock is display math. TeX is the raw source without delimiters.
type MathBlock struct {
	TeX string
}

// ImageGallery is a run of adjacent image previews collapsed into one
// block. URLs preserves the source order of the previews.
type ImageGallery struct {
	URLs []string
}

// LineBreak is a hard break. Between blocks it is a block of its own;
// inside a paragraph it is inline.
type LineBreak struct{}

// Unimplemented preserves markup the package does not model. HTML is a
// re-rendering of the offending region and owns its own memory.
type Unimplemented struct {
	HTML string
}

// Text is a literal text run, preserved byte for byte.
type Text struct {
	Text string
}

// Emphasis is emphasized inline content.
type Emphasis struct {
	Inlines []InlineNode
}

// Strong is strongly emphasized inline content.
type Strong struct {
	Inlines []InlineNode
}

// InlineCode is a code phrase inside a paragraph, distinct from CodeBlock.
type InlineCode struct {
	Inlines []InlineNode
}

// Link is an anchor. URL is reported verbatim, without validation or
// normalization, and also surfaces in the enclosing block's Links.
type Link struct {
	URL     string
	Inlines []InlineNode
}

// Mention references a user or user group. The visible label is kept as
// nested inlines; silent and regular mentions parse to the same shape.
type Mention struct {
	Inlines []InlineNode
}

// UnicodeEmoji is an emoji rendered as text. Emoji holds the literal
// code points.
type UnicodeEmoji struct {
	Emoji string
}

// ImageEmoji is a custom emoji rendered as an image. Src and Alt are
// carried verbatim; an image without a source degrades, one without
// alt text keeps an empty Alt.
type ImageEmoji struct {
	Src string
	Alt string
}

// MathInline is inline math. TeX is the raw source without delimiters.
type MathInline struct {
	TeX string
}

// GlobalTime is a timestamp the client renders in the reader's local
// zone. Time is always in UTC.
type GlobalTime struct {
	Time time.Time
}

func (*Paragraph) blockNode()     {}
func (*Heading) blockNode()       {}
func (*List) blockNode()          {}
func (*Quotation) blockNode()     {}
func (*CodeBlock) blockNode()     {}
func (*MathBlock) blockNode()     {}
func (*ImageGallery) blockNode()  {}
func (*LineBreak) blockNode()     {}
func (*Unimplemented) blockNode() {}

func (*Text) inlineNode()          {}
func (*Emphasis) inlineNode()      {}
func (*Strong) inlineNode()        {}
func (*InlineCode) inlineNode()    {}
func (*Link) inlineNode()          {}
func (*Mention) inlineNode()       {}
func (*UnicodeEmoji) inlineNode()  {}
func (*ImageEmoji) inlineNode()    {}
func (*MathInline) inlineNode()    {}
func (*GlobalTime) inlineNode()    {}
func (*LineBreak) inlineNode()     {}
func (*Unimplemented) inlineNode() {}
