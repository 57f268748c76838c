package parsers

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractText renders a markup-bearing field string to plain text: tags
// are dropped, entities are resolved, whitespace is collapsed. It never
// fails; empty or malformed input yields an empty string.
func ExtractText(markup string) string {
	if strings.TrimSpace(markup) == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	var b strings.Builder
	collectText(doc, &b)

	return strings.Join(strings.Fields(b.String()), " ")
}

// collectText walks the parse tree appending text nodes, skipping
// non-rendered subtrees. A space is written at element boundaries so
// adjacent blocks don't fuse into one token.
func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Head:
			return
		}
		b.WriteByte(' ')
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
