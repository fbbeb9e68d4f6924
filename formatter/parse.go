package formatter

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads a markup fragment into a tree. Fragments are parsed in a
// <template> context so table parts, head elements and bare text are all
// accepted at the top level.
func Parse(markup string) (*Fragment, error) {
	nodes, err := parseNodes(markup)
	if err != nil {
		return nil, err
	}
	return FromHTML(nodes...), nil
}

// ParseSelect parses markup and keeps only the outermost elements matching
// the CSS selector, in document order.
func ParseSelect(markup, selector string) (*Fragment, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	nodes, err := parseNodes(markup)
	if err != nil {
		return nil, err
	}

	matched := make(map[*html.Node]bool)
	var keep []*html.Node
	for _, root := range nodes {
		for _, n := range sel.MatchAll(root) {
			matched[n] = true
			if !hasMatchedAncestor(n, matched) {
				keep = append(keep, n)
			}
		}
	}
	return FromHTML(keep...), nil
}

func hasMatchedAncestor(n *html.Node, matched map[*html.Node]bool) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if matched[p] {
			return true
		}
	}
	return false
}

func parseNodes(markup string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "template",
		DataAtom: atom.Template,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}
	return nodes, nil
}

// FromHTML converts parsed html nodes into a Fragment. Doctype nodes are
// dropped and document nodes are flattened into their children.
func FromHTML(nodes ...*html.Node) *Fragment {
	f := &Fragment{}
	for _, n := range nodes {
		f.Children = appendConverted(f.Children, n)
	}
	return f
}

func appendConverted(dst []Node, n *html.Node) []Node {
	switch n.Type {
	case html.ElementNode:
		el := &Element{Name: n.Data}
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			el.Attributes = append(el.Attributes, Attr{Name: name, Value: a.Val})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			el.Children = appendConverted(el.Children, c)
		}
		return append(dst, el)
	case html.TextNode:
		return append(dst, &Text{Value: n.Data})
	case html.CommentNode:
		return append(dst, &Comment{Data: n.Data})
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			dst = appendConverted(dst, c)
		}
	}
	return dst
}
