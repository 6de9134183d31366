package content

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// parseInlines parses a run of sibling nodes in inline position. Every
// Link target found anywhere in the run, including inside nested
// formatting, is appended to links.
func parseInlines(nodes []*html.Node, links *[]string) []InlineNode {
	var out []InlineNode
	for _, n := range nodes {
		out = append(out, parseInline(n, links))
	}
	return out
}

func parseInline(n *html.Node, links *[]string) InlineNode {
	if n.Type == html.TextNode {
		return &Text{Text: n.Data}
	}
	if n.Type != html.ElementNode {
		return unimplemented(n)
	}

	switch n.Data {
	case "br":
		return &LineBreak{}
	case "em":
		return &Emphasis{Inlines: parseInlines(children(n), links)}
	case "strong":
		return &Strong{Inlines: parseInlines(children(n), links)}
	case "code":
		return &InlineCode{Inlines: parseInlines(children(n), links)}
	case "a":
		return parseAnchor(n, links)
	case "span":
		return parseSpan(n, links)
	case "img":
		return parseImageEmoji(n)
	case "time":
		return parseTime(n)
	}
	return unimplemented(n)
}

// parseAnchor keeps every anchor with a target, channel and topic
// references included; their classes only change how a client styles
// the link. The target is reported to the aggregator either way.
func parseAnchor(n *html.Node, links *[]string) InlineNode {
	href, ok := attrVal(n, "href")
	if !ok {
		return unimplemented(n)
	}
	*links = append(*links, href)
	return &Link{URL: href, Inlines: parseInlines(children(n), links)}
}

func parseSpan(n *html.Node, links *[]string) InlineNode {
	classes := classList(n)
	if isMention(classes) {
		return &Mention{Inlines: parseInlines(children(n), links)}
	}
	if emoji, ok := emojiFromClasses(classes); ok {
		return &UnicodeEmoji{Emoji: emoji}
	}
	if tex, ok := mathTeX(n); ok {
		return &MathInline{TeX: tex}
	}
	return unimplemented(n)
}

// isMention recognizes user and group mention spans, with or without the
// silent marker. Any class outside that vocabulary disqualifies the span.
func isMention(classes []string) bool {
	var mention bool
	for _, c := range classes {
		switch c {
		case "user-mention", "user-group-mention":
			mention = true
		case "silent":
		default:
			return false
		}
	}
	return mention
}

// emojiFromClasses decodes spans of the emoji, emoji-HEX form, where HEX
// is one or more dash separated code points.
func emojiFromClasses(classes []string) (string, bool) {
	var marker bool
	var hex string
	for _, c := range classes {
		switch {
		case c == "emoji":
			marker = true
		case strings.HasPrefix(c, "emoji-"):
			if hex != "" {
				return "", false
			}
			hex = strings.TrimPrefix(c, "emoji-")
		default:
			return "", false
		}
	}
	if !marker || hex == "" {
		return "", false
	}

	var b strings.Builder
	for _, part := range strings.Split(hex, "-") {
		cp, err := strconv.ParseUint(part, 16, 32)
		if err != nil || !utf8.ValidRune(rune(cp)) {
			return "", false
		}
		b.WriteRune(rune(cp))
	}
	return b.String(), true
}

func parseImageEmoji(n *html.Node) InlineNode {
	if !classSetIs(n, "emoji") {
		return unimplemented(n)
	}
	src, ok := attrVal(n, "src")
	if !ok {
		return unimplemented(n)
	}
	alt, _ := attrVal(n, "alt")
	return &ImageEmoji{Src: src, Alt: alt}
}

// parseTime accepts RFC 3339 datetimes with the Z designator, which is
// what the renderer emits. Offsets, even zero ones, degrade so that a
// tree never depends on the host zone database.
func parseTime(n *html.Node) InlineNode {
	datetime, ok := attrVal(n, "datetime")
	if !ok {
		return unimplemented(n)
	}
	t, err := time.Parse(time.RFC3339, datetime)
	if err != nil || !strings.HasSuffix(datetime, "Z") {
		return unimplemented(n)
	}
	return &GlobalTime{Time: t}
}

// mathTeX extracts TeX source from a math span, either the inline form
// or the display wrapper around it. The source lives in the annotation
// element the renderer nests under the span; the renderer pads it with
// one space on each side, which is trimmed off.
func mathTeX(n *html.Node) (string, bool) {
	if classSetIs(n, "katex-display") {
		kids := children(n)
		if len(kids) != 1 || !isElement(kids[0], "span") || !classSetIs(kids[0], "katex") {
			return "", false
		}
		n = kids[0]
	} else if !classSetIs(n, "katex") {
		return "", false
	}

	annotation := findAnnotation(n)
	if annotation == nil {
		return "", false
	}
	tex := textContent(annotation)
	tex = strings.TrimPrefix(tex, " ")
	tex = strings.TrimSuffix(tex, " ")
	return tex, true
}

func findAnnotation(n *html.Node) *html.Node {
	if isElement(n, "annotation") {
		if enc, _ := attrVal(n, "encoding"); enc == "application/x-tex" {
			return n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findAnnotation(c); found != nil {
			return found
		}
	}
	return nil
}
