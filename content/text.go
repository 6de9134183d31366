package content

import (
	"strings"
	"time"
)

// Text flattens the tree to its visible text, one line per block. Image
// galleries and unimplemented regions carry no text of their own and are
// skipped; math contributes its TeX source.
func (t *Tree) Text() string {
	var b strings.Builder
	blocksText(&b, t.Blocks)
	return strings.TrimSuffix(b.String(), "\n")
}

func blocksText(b *strings.Builder, blocks []BlockNode) {
	for _, block := range blocks {
		switch block := block.(type) {
		case *Paragraph:
			inlinesText(b, block.Inlines)
			b.WriteString("\n")
		case *Heading:
			inlinesText(b, block.Inlines)
			b.WriteString("\n")
		case *List:
			for _, item := range block.Items {
				blocksText(b, item)
			}
		case *Quotation:
			blocksText(b, block.Blocks)
		case *CodeBlock:
			var code strings.Builder
			for _, span := range block.Spans {
				code.WriteString(span.Text)
			}
			b.WriteString(strings.TrimSuffix(code.String(), "\n"))
			b.WriteString("\n")
		case *MathBlock:
			b.WriteString(block.TeX)
			b.WriteString("\n")
		case *LineBreak:
			b.WriteString("\n")
		}
	}
}

func inlinesText(b *strings.Builder, inlines []InlineNode) {
	for _, in := range inlines {
		switch in := in.(type) {
		case *Text:
			b.WriteString(in.Text)
		case *Emphasis:
			inlinesText(b, in.Inlines)
		case *Strong:
			inlinesText(b, in.Inlines)
		case *InlineCode:
			inlinesText(b, in.Inlines)
		case *Link:
			inlinesText(b, in.Inlines)
		case *Mention:
			inlinesText(b, in.Inlines)
		case *UnicodeEmoji:
			b.WriteString(in.Emoji)
		case *ImageEmoji:
			b.WriteString(in.Alt)
		case *MathInline:
			b.WriteString(in.TeX)
		case *GlobalTime:
			b.WriteString(in.Time.Format(time.RFC3339))
		case *LineBreak:
			b.WriteString("\n")
		}
	}
}
