package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		want   *Tree
	}{
		{
			name:   "plain paragraph",
			markup: `<p>hello world</p>`,
			want: &Tree{Blocks: []BlockNode{
				&Paragraph{Inlines: []InlineNode{&Text{Text: "hello world"}}},
			}},
		},
		{
			name:   "nested formatting",
			markup: `<p>a <strong>b</strong> <em>c</em> <code>d</code></p>`,
			want: &Tree{Blocks: []BlockNode{
				&Paragraph{Inlines: []InlineNode{
					&Text{Text: "a "},
					&Strong{Inlines: []InlineNode{&Text{Text: "b"}}},
					&Text{Text: " "},
					&Emphasis{Inlines: []InlineNode{&Text{Text: "c"}}},
					&Text{Text: " "},
					&InlineCode{Inlines: []InlineNode{&Text{Text: "d"}}},
				}},
			}},
		},
		{
			name:   "heading",
			markup: `<h3>Release notes</h3>`,
			want: &Tree{Blocks: []BlockNode{
				&Heading{Level: 3, Inlines: []InlineNode{&Text{Text: "Release notes"}}},
			}},
		},
		{
			name: "unordered list",
			markup: `<ul>
<li>one</li>
<li>two</li>
</ul>`,
			want: &Tree{Blocks: []BlockNode{
				&List{Items: [][]BlockNode{
					{&Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "one"}}}},
					{&Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "two"}}}},
				}},
			}},
		},
		{
			name:   "ordered list",
			markup: `<ol><li>first</li></ol>`,
			want: &Tree{Blocks: []BlockNode{
				&List{Ordered: true, Items: [][]BlockNode{
					{&Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "first"}}}},
				}},
			}},
		},
		{
			name:   "list item with break keeps whitespace",
			markup: "<ul><li>a<br>\n  b</li></ul>",
			want: &Tree{Blocks: []BlockNode{
				&List{Items: [][]BlockNode{
					{&Paragraph{Implicit: true, Inlines: []InlineNode{
						&Text{Text: "a"},
						&LineBreak{},
						&Text{Text: "\n  b"},
					}}},
				}},
			}},
		},
		{
			name:   "list item with explicit blocks",
			markup: `<ul><li>intro<ul><li>nested</li></ul></li></ul>`,
			want: &Tree{Blocks: []BlockNode{
				&List{Items: [][]BlockNode{
					{
						&Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "intro"}}},
						&List{Items: [][]BlockNode{
							{&Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "nested"}}}},
						}},
					},
				}},
			}},
		},
		{
			name:   "empty list item",
			markup: `<ul><li></li></ul>`,
			want: &Tree{Blocks: []BlockNode{
				&List{Items: [][]BlockNode{
					{&Unimplemented{HTML: `<li></li>`}},
				}},
			}},
		},
		{
			name: "block quote",
			markup: `<blockquote>
<p>quoted</p>
</blockquote>`,
			want: &Tree{Blocks: []BlockNode{
				&Quotation{Blocks: []BlockNode{
					&Paragraph{Inlines: []InlineNode{&Text{Text: "quoted"}}},
				}},
			}},
		},
		{
			name:   "line break between blocks",
			markup: "<p>a</p>\n<br>\n<p>b</p>",
			want: &Tree{Blocks: []BlockNode{
				&Paragraph{Inlines: []InlineNode{&Text{Text: "a"}}},
				&LineBreak{},
				&Paragraph{Inlines: []InlineNode{&Text{Text: "b"}}},
			}},
		},
		{
			name:   "stray text between blocks",
			markup: `<p>a</p>junk<p>b</p>`,
			want: &Tree{Blocks: []BlockNode{
				&Paragraph{Inlines: []InlineNode{&Text{Text: "a"}}},
				&Unimplemented{HTML: "junk"},
				&Paragraph{Inlines: []InlineNode{&Text{Text: "b"}}},
			}},
		},
		{
			name:   "unknown block element",
			markup: `<div class="spoiler-block"><p>surprise</p></div>`,
			want: &Tree{Blocks: []BlockNode{
				&Unimplemented{HTML: `<div class="spoiler-block"><p>surprise</p></div>`},
			}},
		},
		{
			name:   "unknown inline element",
			markup: `<p><del>gone</del></p>`,
			want: &Tree{Blocks: []BlockNode{
				&Paragraph{Inlines: []InlineNode{
					&Unimplemented{HTML: `<del>gone</del>`},
				}},
			}},
		},
		{
			name:   "empty message",
			markup: ``,
			want:   &Tree{},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.markup)
			if err != nil {
				t.Fatalf("could not parse: %v", err)
			}
			if !Equal(c.want, got) {
				t.Errorf("tree mismatch (-want +got):\n%s", cmp.Diff(c.want, got))
			}
		})
	}
}

func TestParseImageClusters(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		want   *Tree
	}{
		{
			name: "single bare image",
			markup: `<p><a href="/user_uploads/2/a.png">a.png</a></p>
<div class="message_inline_image"><a href="/user_uploads/2/a.png" title="a.png"><img src="/thumbnail/a.png"></a></div>`,
			want: &Tree{Blocks: []BlockNode{
				&ImageGallery{URLs: []string{"/user_uploads/2/a.png"}},
			}},
		},
		{
			name: "two bare images collapse to one gallery",
			markup: `<p><a href="/u/a.png">a.png</a><br>
<a href="/u/b.png">b.png</a></p>
<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>
<div class="message_inline_image"><a href="/u/b.png"><img src="/t/b.png"></a></div>`,
			want: &Tree{Blocks: []BlockNode{
				&ImageGallery{URLs: []string{"/u/a.png", "/u/b.png"}},
			}},
		},
		{
			name: "text keeps the paragraph",
			markup: `<p>look: <a href="/u/a.png">a.png</a></p>
<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>`,
			want: &Tree{Blocks: []BlockNode{
				&Paragraph{
					Links: []string{"/u/a.png"},
					Inlines: []InlineNode{
						&Text{Text: "look: "},
						&Link{URL: "/u/a.png", Inlines: []InlineNode{&Text{Text: "a.png"}}},
					},
				},
				&ImageGallery{URLs: []string{"/u/a.png"}},
			}},
		},
		{
			name: "url mismatch keeps the paragraph",
			markup: `<p><a href="/u/a.png">a.png</a></p>
<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>
<div class="message_inline_image"><a href="/u/b.png"><img src="/t/b.png"></a></div>`,
			want: &Tree{Blocks: []BlockNode{
				&Paragraph{
					Links: []string{"/u/a.png"},
					Inlines: []InlineNode{
						&Link{URL: "/u/a.png", Inlines: []InlineNode{&Text{Text: "a.png"}}},
					},
				},
				&ImageGallery{URLs: []string{"/u/a.png", "/u/b.png"}},
			}},
		},
		{
			name:   "preview with no preceding paragraph",
			markup: `<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>`,
			want: &Tree{Blocks: []BlockNode{
				&ImageGallery{URLs: []string{"/u/a.png"}},
			}},
		},
		{
			name: "malformed preview splits the run",
			markup: `<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>
<div class="message_inline_image"><img src="/t/b.png"></div>
<div class="message_inline_image"><a href="/u/c.png"><img src="/t/c.png"></a></div>`,
			want: &Tree{Blocks: []BlockNode{
				&ImageGallery{URLs: []string{"/u/a.png"}},
				&Unimplemented{HTML: `<div class="message_inline_image"><img src="/t/b.png"/></div>`},
				&ImageGallery{URLs: []string{"/u/c.png"}},
			}},
		},
		{
			name: "gallery inside a quote",
			markup: `<blockquote>
<p><a href="/u/a.png">a.png</a></p>
<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>
</blockquote>`,
			want: &Tree{Blocks: []BlockNode{
				&Quotation{Blocks: []BlockNode{
					&ImageGallery{URLs: []string{"/u/a.png"}},
				}},
			}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.markup)
			if err != nil {
				t.Fatalf("could not parse: %v", err)
			}
			if !Equal(c.want, got) {
				t.Errorf("tree mismatch (-want +got):\n%s", cmp.Diff(c.want, got))
			}
		})
	}
}

func TestParseListImages(t *testing.T) {
	cases := []struct {
		name   string
		markup string
		want   *Tree
	}{
		{
			name: "bare image in list item",
			markup: `<ul>
<li><a href="/u/a.png">a.png</a>
<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div></li>
</ul>`,
			want: &Tree{Blocks: []BlockNode{
				&List{Items: [][]BlockNode{
					{&ImageGallery{URLs: []string{"/u/a.png"}}},
				}},
			}},
		},
		{
			name: "text after the preview run",
			markup: `<ul>
<li><a href="/u/a.png">a.png</a>
<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>
trailing</li>
</ul>`,
			want: &Tree{Blocks: []BlockNode{
				&List{Items: [][]BlockNode{
					{
						&Unimplemented{HTML: "\ntrailing"},
						&ImageGallery{URLs: []string{"/u/a.png"}},
					},
				}},
			}},
		},
		{
			name: "gallery lands after later blocks",
			markup: `<ul>
<li>shots:
<div class="message_inline_image"><a href="/u/a.png"><img src="/t/a.png"></a></div>
<ul><li>captioned</li></ul></li>
</ul>`,
			want: &Tree{Blocks: []BlockNode{
				&List{Items: [][]BlockNode{
					{
						&Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "shots:\n"}}},
						&List{Items: [][]BlockNode{
							{&Paragraph{Implicit: true, Inlines: []InlineNode{&Text{Text: "captioned"}}}},
						}},
						&ImageGallery{URLs: []string{"/u/a.png"}},
					},
				}},
			}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.markup)
			if err != nil {
				t.Fatalf("could not parse: %v", err)
			}
			if !Equal(c.want, got) {
				t.Errorf("tree mismatch (-want +got):\n%s", cmp.Diff(c.want, got))
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	markup := `<h2>Title</h2>
<p>body with <strong>weight</strong> and <a href="https://go.dev">a link</a></p>
<ul>
<li>item</li>
</ul>`

	first, err := Parse(markup)
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	second, err := Parse(markup)
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	if !Equal(first, second) {
		t.Errorf("repeated parses differ (-first +second):\n%s", cmp.Diff(first, second))
	}
}

func TestParseLinkAggregation(t *testing.T) {
	markup := `<p><strong><a href="/one">one</a></strong> and <a href="/two"><em>two</em></a></p>
<h2><a href="/three">three</a></h2>`

	got, err := Parse(markup)
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}

	if len(got.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(got.Blocks))
	}
	p, ok := got.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("expected first block to be a paragraph, got %T", got.Blocks[0])
	}
	if want := []string{"/one", "/two"}; !equalStrings(p.Links, want) {
		t.Errorf("paragraph links = %q, want %q", p.Links, want)
	}
	h, ok := got.Blocks[1].(*Heading)
	if !ok {
		t.Fatalf("expected second block to be a heading, got %T", got.Blocks[1])
	}
	if want := []string{"/three"}; !equalStrings(h.Links, want) {
		t.Errorf("heading links = %q, want %q", h.Links, want)
	}
}
