package content

import (
	"testing"
	"time"
)

func TestEqualBlock(t *testing.T) {
	cases := []struct {
		name string
		a, b BlockNode
		want bool
	}{
		{
			name: "identical paragraphs",
			a:    &Paragraph{Inlines: []InlineNode{&Text{Text: "x"}}},
			b:    &Paragraph{Inlines: []InlineNode{&Text{Text: "x"}}},
			want: true,
		},
		{
			name: "implicit flag matters",
			a:    &Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "x"}}},
			b:    &Paragraph{Inlines: []InlineNode{&Text{Text: "x"}}},
			want: false,
		},
		{
			name: "nil links equal empty links",
			a:    &Paragraph{Links: nil},
			b:    &Paragraph{Links: []string{}},
			want: true,
		},
		{
			name: "different kinds",
			a:    &Paragraph{},
			b:    &Heading{Level: 1},
			want: false,
		},
		{
			name: "heading levels",
			a:    &Heading{Level: 2, Inlines: []InlineNode{&Text{Text: "t"}}},
			b:    &Heading{Level: 3, Inlines: []InlineNode{&Text{Text: "t"}}},
			want: false,
		},
		{
			name: "list ordering matters",
			a:    &List{Ordered: true, Items: [][]BlockNode{{&Paragraph{Implicit: true}}}},
			b:    &List{Items: [][]BlockNode{{&Paragraph{Implicit: true}}}},
			want: false,
		},
		{
			name: "nested quotation",
			a:    &Quotation{Blocks: []BlockNode{&LineBreak{}}},
			b:    &Quotation{Blocks: []BlockNode{&LineBreak{}}},
			want: true,
		},
		{
			name: "code spans compare kind and text",
			a:    &CodeBlock{Spans: []CodeSpan{{Kind: SpanKeyword, Text: "if"}}},
			b:    &CodeBlock{Spans: []CodeSpan{{Kind: SpanName, Text: "if"}}},
			want: false,
		},
		{
			name: "galleries compare urls in order",
			a:    &ImageGallery{URLs: []string{"/a", "/b"}},
			b:    &ImageGallery{URLs: []string{"/b", "/a"}},
			want: false,
		},
		{
			name: "unimplemented compares markup",
			a:    &Unimplemented{HTML: "<x/>"},
			b:    &Unimplemented{HTML: "<x/>"},
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := EqualBlock(c.a, c.b); got != c.want {
				t.Errorf("EqualBlock = %v, want %v", got, c.want)
			}
			if got := EqualBlock(c.b, c.a); got != c.want {
				t.Errorf("EqualBlock reversed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEqualInline(t *testing.T) {
	when := time.Date(2024, time.January, 30, 17, 33, 0, 0, time.UTC)

	cases := []struct {
		name string
		a, b InlineNode
		want bool
	}{
		{
			name: "text",
			a:    &Text{Text: "a"},
			b:    &Text{Text: "b"},
			want: false,
		},
		{
			name: "strong is not emphasis",
			a:    &Strong{Inlines: []InlineNode{&Text{Text: "x"}}},
			b:    &Emphasis{Inlines: []InlineNode{&Text{Text: "x"}}},
			want: false,
		},
		{
			name: "links compare url and label",
			a:    &Link{URL: "/u", Inlines: []InlineNode{&Text{Text: "x"}}},
			b:    &Link{URL: "/u", Inlines: []InlineNode{&Text{Text: "x"}}},
			want: true,
		},
		{
			name: "mention labels matter",
			a:    &Mention{Inlines: []InlineNode{&Text{Text: "@a"}}},
			b:    &Mention{Inlines: []InlineNode{&Text{Text: "@b"}}},
			want: false,
		},
		{
			name: "emoji code points",
			a:    &UnicodeEmoji{Emoji: "\U0001f642"},
			b:    &UnicodeEmoji{Emoji: "\U0001f642"},
			want: true,
		},
		{
			name: "image emoji compares src and alt",
			a:    &ImageEmoji{Src: "/e.png", Alt: ":e:"},
			b:    &ImageEmoji{Src: "/e.png", Alt: ":other:"},
			want: false,
		},
		{
			name: "times compare by instant",
			a:    &GlobalTime{Time: when},
			b:    &GlobalTime{Time: when.In(time.FixedZone("X", 3600))},
			want: true,
		},
		{
			name: "line breaks",
			a:    &LineBreak{},
			b:    &LineBreak{},
			want: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := EqualInline(c.a, c.b); got != c.want {
				t.Errorf("EqualInline = %v, want %v", got, c.want)
			}
			if got := EqualInline(c.b, c.a); got != c.want {
				t.Errorf("EqualInline reversed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestEqualNilTrees(t *testing.T) {
	if !Equal(nil, nil) {
		t.Error("two nil trees must be equal")
	}
	if Equal(nil, &Tree{}) {
		t.Error("nil tree must not equal an empty tree")
	}
	if !Equal(&Tree{}, &Tree{Blocks: []BlockNode{}}) {
		t.Error("empty trees must be equal regardless of nil blocks")
	}
}
