// Package htmlconv converts the HTML-like markup subset found in legacy
// documentation comments into Markdown.
//
// The converter is advisory, never load-bearing: detection is a linear
// heuristic, parsing is permissive, and any failure means the caller keeps
// the original text.
package htmlconv

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"git.home.luguber.info/inful/docmark/internal/inline"
)

var openTag = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)[^>]*>`)

// IsHTMLLike reports whether text plausibly contains paired markup tags:
// some opening tag <name ...> followed, anywhere later, by a matching
// </name>. This is deliberately a single linear scan, not balance checking;
// a wrong positive is corrected downstream by the fallback in the caller.
func IsHTMLLike(text string) bool {
	for _, m := range openTag.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		if strings.Contains(text[m[1]:], "</"+name+">") {
			return true
		}
	}
	return false
}

// templates maps element names to their Markdown replacement. Replacement
// substitutes the whole element with a text node holding the templated,
// trimmed text content; nested styling inside a replaced element flattens to
// plain text.
var templates = map[string]func(string) string{
	"i":    func(s string) string { return "*" + s + "*" },
	"b":    func(s string) string { return "**" + s + "**" },
	"pre":  func(s string) string { return "`" + s + "`" },
	"code": func(s string) string { return "`" + s + "`" },
	"a":    func(s string) string { return s },
}

// ToMarkdown parses text as a permissive markup document and rewrites the
// recognized elements into Markdown, innermost first. Inline directive braces
// are expanded before structural parsing so that directive content does not
// confuse the tag scan.
//
// Any error is recoverable; callers fall back to the original text.
func ToMarkdown(text string) (string, error) {
	expanded, err := inline.Expand(text)
	if err != nil {
		return "", fmt.Errorf("expand inline directives: %w", err)
	}

	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(expanded), ctx)
	if err != nil {
		return "", fmt.Errorf("parse markup: %w", err)
	}

	// A single synthetic root keeps multiple top-level siblings representable
	// and gives every replaceable element a parent.
	root := &html.Node{Type: html.ElementNode, Data: "wrapper"}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	rewrite(root)

	var out strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		serialize(c, &out)
	}
	return out.String(), nil
}

// rewrite walks the tree in strict post-order (innermost first, left to
// right) and replaces template elements with text nodes. Children are fully
// rewritten before their parent is considered, so by the time an element is
// replaced its descendants are already flat text.
func rewrite(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		rewrite(c)
		c = next
	}
	if n.Type != html.ElementNode || n.Parent == nil {
		return
	}
	tmpl, ok := templates[n.Data]
	if !ok {
		return
	}
	replacement := &html.Node{Type: html.TextNode, Data: tmpl(strings.TrimSpace(textContent(n)))}
	n.Parent.InsertBefore(replacement, n)
	n.Parent.RemoveChild(n)
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// voidElements never carry children; serialize them without a closing tag.
var voidElements = map[string]bool{"br": true, "hr": true, "img": true}

// serialize writes the rewritten tree back as text. Text nodes are written
// verbatim; elements that survived rewriting keep their tag form so later
// passes (and readers) still see them.
func serialize(n *html.Node, out *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		out.WriteString(n.Data)
	case html.ElementNode:
		out.WriteByte('<')
		out.WriteString(n.Data)
		for _, a := range n.Attr {
			fmt.Fprintf(out, " %s=%q", a.Key, a.Val)
		}
		out.WriteByte('>')
		if voidElements[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			serialize(c, out)
		}
		out.WriteString("</")
		out.WriteString(n.Data)
		out.WriteByte('>')
	default:
		// Comments and doctypes carry nothing a tooltip should show.
	}
}
