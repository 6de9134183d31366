package content

import (
	"strings"

	"golang.org/x/net/html"
)

// Parse converts one rendered message into its content tree.
//
// Parsing is total over recognized markup: malformed or unknown regions
// degrade to Unimplemented nodes while their siblings parse normally.
// An error is only returned when the markup cannot be structured as a
// document fragment at all.
func Parse(markup string) (*Tree, error) {
	nodes, err := fragment(markup)
	if err != nil {
		return nil, err
	}
	return &Tree{Blocks: parseBlocks(nodes)}, nil
}

// parseBlocks parses sibling nodes in block position: the message top
// level and the inside of block quotes. Whitespace between blocks is
// dropped; any other loose text is kept as a fallback block.
func parseBlocks(nodes []*html.Node) []BlockNode {
	var out []BlockNode
	for i := 0; i < len(nodes); {
		n := nodes[i]
		switch {
		case isWhitespace(n):
			i++
		case n.Type == html.TextNode:
			out = append(out, unimplemented(n))
			i++
		case isImagePreview(n):
			urls, next := imageRun(nodes, i)
			if len(urls) == 0 {
				out = append(out, unimplemented(n))
				i++
				break
			}
			out = appendGallery(out, urls)
			i = next
		case n.Type == html.ElementNode:
			out = append(out, parseBlock(n))
			i++
		default:
			out = append(out, unimplemented(n))
			i++
		}
	}
	return out
}

func parseBlock(n *html.Node) BlockNode {
	if n.Type != html.ElementNode {
		return unimplemented(n)
	}
	switch n.Data {
	case "p":
		return parseParagraph(n)
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return parseHeading(n)
	case "ul":
		return parseList(n, false)
	case "ol":
		return parseList(n, true)
	case "blockquote":
		return &Quotation{Blocks: parseBlocks(children(n))}
	case "br":
		return &LineBreak{}
	case "div":
		if classSetIs(n, "codehilite") {
			return parseCodeBlock(n)
		}
	}
	return unimplemented(n)
}

// parseParagraph unwraps a paragraph holding nothing but display math
// into a MathBlock. Everything else parses as an inline run.
func parseParagraph(n *html.Node) BlockNode {
	if kids := children(n); len(kids) == 1 && isElement(kids[0], "span") && classSetIs(kids[0], "katex-display") {
		if tex, ok := mathTeX(kids[0]); ok {
			return &MathBlock{TeX: tex}
		}
	}
	var links []string
	inlines := parseInlines(children(n), &links)
	return &Paragraph{Links: links, Inlines: inlines}
}

func parseHeading(n *html.Node) BlockNode {
	var links []string
	inlines := parseInlines(children(n), &links)
	return &Heading{
		Level:   int(n.Data[1] - '0'),
		Links:   links,
		Inlines: inlines,
	}
}

func parseList(n *html.Node, ordered bool) BlockNode {
	list := List{Ordered: ordered}
	for li := n.FirstChild; li != nil; li = li.NextSibling {
		if li.Data != "li" {
			continue
		}
		blocks := parseListItem(children(li))
		if len(blocks) == 0 {
			blocks = []BlockNode{unimplemented(li)}
		}
		list.Items = append(list.Items, blocks)
	}
	return &list
}

// parseListItem parses item children, which the renderer emits without a
// paragraph wrapper: runs of inline content become implicit Paragraphs
// around the real block elements. Image previews found in an item are
// collected and appended after every other block, and inline content
// following a preview run stays out of the paragraph, degrading to one
// fallback block instead.
func parseListItem(nodes []*html.Node) []BlockNode {
	var out []BlockNode
	var galleries []BlockNode
	var run []*html.Node
	var tail []*html.Node
	clustered := false

	flushRun := func() {
		if !allWhitespace(run) {
			var links []string
			inlines := parseInlines(run, &links)
			out = append(out, &Paragraph{Implicit: true, Links: links, Inlines: inlines})
		}
		run = nil
	}
	flushTail := func() {
		if !allWhitespace(tail) {
			var b strings.Builder
			for _, n := range tail {
				_ = html.Render(&b, n)
			}
			out = append(out, &Unimplemented{HTML: b.String()})
		}
		tail = nil
	}

	for i := 0; i < len(nodes); {
		n := nodes[i]
		switch {
		case isImagePreview(n):
			urls, next := imageRun(nodes, i)
			if len(urls) == 0 {
				flushRun()
				flushTail()
				out = append(out, unimplemented(n))
				i++
				break
			}
			flushRun()
			flushTail()
			if p, ok := tailParagraph(out); ok && bareLinkParagraph(p, urls) {
				out = out[:len(out)-1]
			}
			galleries = append(galleries, &ImageGallery{URLs: urls})
			clustered = true
			i = next
		case isInlineCandidate(n):
			if clustered {
				tail = append(tail, n)
			} else {
				run = append(run, n)
			}
			i++
		default:
			flushRun()
			flushTail()
			out = append(out, parseBlock(n))
			i++
		}
	}
	flushRun()
	flushTail()
	return append(out, galleries...)
}

func allWhitespace(nodes []*html.Node) bool {
	for _, n := range nodes {
		if !isWhitespace(n) {
			return false
		}
	}
	return true
}

// isInlineCandidate reports whether a list item child belongs to an
// implicit paragraph run rather than block position. A br inside an item
// is part of the run; at the top level it is a block of its own.
func isInlineCandidate(n *html.Node) bool {
	if n.Type == html.TextNode {
		return true
	}
	if n.Type != html.ElementNode {
		return false
	}
	switch n.Data {
	case "a", "br", "code", "em", "img", "span", "strong", "time":
		return true
	}
	return false
}

func isImagePreview(n *html.Node) bool {
	return isElement(n, "div") && classSetIs(n, "message_inline_image")
}

// imageRun collects the URLs of consecutive valid image previews
// starting at nodes[i], tolerating whitespace between them. It returns
// the index after the run; an invalid preview ends the run before it,
// and a run of zero means nodes[i] itself is invalid.
func imageRun(nodes []*html.Node, i int) ([]string, int) {
	var urls []string
	for i < len(nodes) {
		n := nodes[i]
		if isWhitespace(n) && len(urls) > 0 {
			if i+1 < len(nodes) && validPreview(nodes[i+1]) {
				i++
				continue
			}
			break
		}
		if !validPreview(n) {
			break
		}
		url, _ := previewURL(n)
		urls = append(urls, url)
		i++
	}
	return urls, i
}

func validPreview(n *html.Node) bool {
	if !isImagePreview(n) {
		return false
	}
	_, ok := previewURL(n)
	return ok
}

// previewURL pulls the target out of a preview's anchor. The thumbnail
// source inside is a server rewritten copy; the anchor holds the real
// image location.
func previewURL(div *html.Node) (string, bool) {
	for _, c := range children(div) {
		if isElement(c, "a") {
			return attrVal(c, "href")
		}
	}
	return "", false
}

// appendGallery resolves a preview run in block position. A paragraph
// directly above that held nothing but the same links in the same order,
// with only separating breaks and whitespace around them, was the source
// text for the previews and is elided in favor of the gallery.
func appendGallery(out []BlockNode, urls []string) []BlockNode {
	if p, ok := tailParagraph(out); ok && bareLinkParagraph(p, urls) {
		out[len(out)-1] = &ImageGallery{URLs: urls}
		return out
	}
	return append(out, &ImageGallery{URLs: urls})
}

func tailParagraph(out []BlockNode) (*Paragraph, bool) {
	if len(out) == 0 {
		return nil, false
	}
	p, ok := out[len(out)-1].(*Paragraph)
	return p, ok
}

func bareLinkParagraph(p *Paragraph, urls []string) bool {
	if len(p.Links) != len(urls) {
		return false
	}
	for i := range urls {
		if p.Links[i] != urls[i] {
			return false
		}
	}
	for _, in := range p.Inlines {
		switch in := in.(type) {
		case *Link, *LineBreak:
		case *Text:
			if strings.TrimSpace(in.Text) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}
