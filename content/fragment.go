package content

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// fragment structures one markup fragment and returns the top level
// nodes. The fragment parses as a document body, so stray head content
// or doctypes never reach the block parser.
func fragment(markup string) ([]*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("could not parse markup: %w", err)
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		return nil, fmt.Errorf("could not locate fragment body")
	}
	return children(body.Get(0)), nil
}

func children(n *html.Node) []*html.Node {
	var kids []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, c)
	}
	return kids
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func isWhitespace(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

func attrVal(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func classList(n *html.Node) []string {
	class, _ := attrVal(n, "class")
	return strings.Fields(class)
}

// classSetIs reports whether the node's classes are exactly the given
// set. Order and repetition in the attribute never matter.
func classSetIs(n *html.Node, want ...string) bool {
	classes := classList(n)
	set := make(map[string]bool, len(classes))
	for _, c := range classes {
		set[c] = true
	}
	if len(set) != len(want) {
		return false
	}
	for _, c := range want {
		if !set[c] {
			return false
		}
	}
	return true
}

// soleText returns the node's text when it holds nothing but text
// children. Any element child reports failure.
func soleText(n *html.Node) (string, bool) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			return "", false
		}
		b.WriteString(c.Data)
	}
	return b.String(), true
}

// textContent concatenates every text descendant.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// unimplemented wraps a node the parser cannot model. The markup is
// re-rendered into the node so the tree never borrows from the input
// document.
func unimplemented(n *html.Node) *Unimplemented {
	var b strings.Builder
	// Render only fails on malformed node types, which the fragment
	// parser never produces.
	_ = html.Render(&b, n)
	return &Unimplemented{HTML: b.String()}
}
