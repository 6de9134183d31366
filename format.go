package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hhhapz/msgtree/content"
)

const snippetLimit = 40

// outline sketches the tree one node per line, nesting by indentation.
func outline(tree *content.Tree) string {
	var b strings.Builder
	outlineBlocks(&b, tree.Blocks, 0)
	return strings.TrimSuffix(b.String(), "\n")
}

func outlineBlocks(b *strings.Builder, blocks []content.BlockNode, depth int) {
	for _, block := range blocks {
		indent(b, depth)
		switch block := block.(type) {
		case *content.Paragraph:
			if block.Implicit {
				b.WriteString("Paragraph (implicit)\n")
			} else {
				b.WriteString("Paragraph\n")
			}
			outlineInlines(b, block.Inlines, depth+1)

		case *content.Heading:
			fmt.Fprintf(b, "Heading %d\n", block.Level)
			outlineInlines(b, block.Inlines, depth+1)

		case *content.List:
			kind := "unordered"
			if block.Ordered {
				kind = "ordered"
			}
			fmt.Fprintf(b, "List (%s)\n", kind)
			for _, item := range block.Items {
				indent(b, depth+1)
				b.WriteString("Item\n")
				outlineBlocks(b, item, depth+2)
			}

		case *content.Quotation:
			b.WriteString("Quotation\n")
			outlineBlocks(b, block.Blocks, depth+1)

		case *content.CodeBlock:
			fmt.Fprintf(b, "CodeBlock (%d spans)\n", len(block.Spans))
			for _, span := range block.Spans {
				indent(b, depth+1)
				fmt.Fprintf(b, "%s %s\n", span.Kind, snippet(span.Text))
			}

		case *content.MathBlock:
			fmt.Fprintf(b, "MathBlock %s\n", snippet(block.TeX))

		case *content.ImageGallery:
			fmt.Fprintf(b, "ImageGallery (%d)\n", len(block.URLs))
			for _, url := range block.URLs {
				indent(b, depth+1)
				b.WriteString(url)
				b.WriteRune('\n')
			}

		case *content.LineBreak:
			b.WriteString("LineBreak\n")

		case *content.Unimplemented:
			fmt.Fprintf(b, "Unimplemented %s\n", snippet(block.HTML))
		}
	}
}

func outlineInlines(b *strings.Builder, inlines []content.InlineNode, depth int) {
	for _, in := range inlines {
		indent(b, depth)
		switch in := in.(type) {
		case *content.Text:
			fmt.Fprintf(b, "Text %s\n", snippet(in.Text))

		case *content.Emphasis:
			b.WriteString("Emphasis\n")
			outlineInlines(b, in.Inlines, depth+1)

		case *content.Strong:
			b.WriteString("Strong\n")
			outlineInlines(b, in.Inlines, depth+1)

		case *content.InlineCode:
			b.WriteString("InlineCode\n")
			outlineInlines(b, in.Inlines, depth+1)

		case *content.Link:
			fmt.Fprintf(b, "Link %s\n", in.URL)
			outlineInlines(b, in.Inlines, depth+1)

		case *content.Mention:
			b.WriteString("Mention\n")
			outlineInlines(b, in.Inlines, depth+1)

		case *content.UnicodeEmoji:
			fmt.Fprintf(b, "UnicodeEmoji %s\n", in.Emoji)

		case *content.ImageEmoji:
			fmt.Fprintf(b, "ImageEmoji %s %s\n", snippet(in.Alt), in.Src)

		case *content.MathInline:
			fmt.Fprintf(b, "MathInline %s\n", snippet(in.TeX))

		case *content.GlobalTime:
			fmt.Fprintf(b, "GlobalTime %s\n", in.Time.Format(time.RFC3339))

		case *content.LineBreak:
			b.WriteString("LineBreak\n")

		case *content.Unimplemented:
			fmt.Fprintf(b, "Unimplemented %s\n", snippet(in.HTML))
		}
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}

// snippet quotes s on one line, cut down to a preview length.
func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > snippetLimit {
		cut := snippetLimit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "..."
	}
	return strconv.Quote(s)
}

// clamp cuts s at the last full line that fits in limit.
func clamp(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}

	cut := strings.LastIndex(s[:limit], "\n")
	if cut <= 0 {
		cut = limit
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
	}
	return s[:cut], true
}
