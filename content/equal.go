package content

// Equal reports whether two trees are structurally identical: the same
// node kinds in the same order carrying the same data. Parsing the same
// markup always yields equal trees.
func Equal(a, b *Tree) bool {
	if a == nil || b == nil {
		return a == b
	}
	return EqualBlocks(a.Blocks, b.Blocks)
}

// EqualBlocks reports whether two block sequences are structurally
// identical. A nil sequence equals an empty one.
func EqualBlocks(a, b []BlockNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualBlock(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualBlock compares two block nodes. Nodes of different kinds are
// never equal.
func EqualBlock(a, b BlockNode) bool {
	switch a := a.(type) {
	case *Paragraph:
		b, ok := b.(*Paragraph)
		return ok && a.Implicit == b.Implicit &&
			equalStrings(a.Links, b.Links) &&
			EqualInlines(a.Inlines, b.Inlines)
	case *Heading:
		b, ok := b.(*Heading)
		return ok && a.Level == b.Level &&
			equalStrings(a.Links, b.Links) &&
			EqualInlines(a.Inlines, b.Inlines)
	case *List:
		b, ok := b.(*List)
		if !ok || a.Ordered != b.Ordered || len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !EqualBlocks(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case *Quotation:
		b, ok := b.(*Quotation)
		return ok && EqualBlocks(a.Blocks, b.Blocks)
	case *CodeBlock:
		b, ok := b.(*CodeBlock)
		if !ok || len(a.Spans) != len(b.Spans) {
			return false
		}
		for i := range a.Spans {
			if a.Spans[i] != b.Spans[i] {
				return false
			}
		}
		return true
	case *MathBlock:
		b, ok := b.(*MathBlock)
		return ok && a.TeX == b.TeX
	case *ImageGallery:
		b, ok := b.(*ImageGallery)
		return ok && equalStrings(a.URLs, b.URLs)
	case *LineBreak:
		_, ok := b.(*LineBreak)
		return ok
	case *Unimplemented:
		b, ok := b.(*Unimplemented)
		return ok && a.HTML == b.HTML
	}
	return false
}

// EqualInlines reports whether two inline sequences are structurally
// identical.
func EqualInlines(a, b []InlineNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualInline(a[i], b[i]) {
			return false
		}
	}
	return true
}

// EqualInline compares two inline nodes.
func EqualInline(a, b InlineNode) bool {
	switch a := a.(type) {
	case *Text:
		b, ok := b.(*Text)
		return ok && a.Text == b.Text
	case *Emphasis:
		b, ok := b.(*Emphasis)
		return ok && EqualInlines(a.Inlines, b.Inlines)
	case *Strong:
		b, ok := b.(*Strong)
		return ok && EqualInlines(a.Inlines, b.Inlines)
	case *InlineCode:
		b, ok := b.(*InlineCode)
		return ok && EqualInlines(a.Inlines, b.Inlines)
	case *Link:
		b, ok := b.(*Link)
		return ok && a.URL == b.URL && EqualInlines(a.Inlines, b.Inlines)
	case *Mention:
		b, ok := b.(*Mention)
		return ok && EqualInlines(a.Inlines, b.Inlines)
	case *UnicodeEmoji:
		b, ok := b.(*UnicodeEmoji)
		return ok && a.Emoji == b.Emoji
	case *ImageEmoji:
		b, ok := b.(*ImageEmoji)
		return ok && a.Src == b.Src && a.Alt == b.Alt
	case *MathInline:
		b, ok := b.(*MathInline)
		return ok && a.TeX == b.TeX
	case *GlobalTime:
		b, ok := b.(*GlobalTime)
		return ok && a.Time.Equal(b.Time)
	case *LineBreak:
		_, ok := b.(*LineBreak)
		return ok
	case *Unimplemented:
		b, ok := b.(*Unimplemented)
		return ok && a.HTML == b.HTML
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
