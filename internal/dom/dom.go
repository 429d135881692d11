// Package dom is a thin query layer over the loaded export document.
// It wraps htmlquery so the parser can speak in class selectors and
// sibling walks without touching x/net/html node plumbing directly.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Document is a fully loaded, immutable HTML document.
type Document struct {
	root *html.Node
}

// Load parses an HTML document from r.
func Load(r io.Reader) (*Document, error) {
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{root: root}, nil
}

// classExpr builds an XPath expression matching elements whose class
// attribute contains the given class token.
func classExpr(class string) string {
	return fmt.Sprintf("//*[contains(concat(' ', normalize-space(@class), ' '), ' %s ')]", class)
}

// FindClass returns all elements carrying the class token, in document order.
func (d *Document) FindClass(class string) ([]*Node, error) {
	nodes, err := htmlquery.QueryAll(d.root, classExpr(class))
	if err != nil {
		return nil, fmt.Errorf("query class %q: %w", class, err)
	}
	result := make([]*Node, len(nodes))
	for i, n := range nodes {
		result[i] = &Node{n: n}
	}
	return result, nil
}

// FirstClass returns the first element carrying the class token, or nil.
func (d *Document) FirstClass(class string) (*Node, error) {
	n, err := htmlquery.Query(d.root, classExpr(class))
	if err != nil {
		return nil, fmt.Errorf("query class %q: %w", class, err)
	}
	if n == nil {
		return nil, nil
	}
	return &Node{n: n}, nil
}

// Node wraps one document node. Text nodes are first-class here: the
// export interleaves them with elements, and segmentation must see both.
type Node struct {
	n *html.Node
}

// IsElement reports whether the node is an element (as opposed to text,
// comment or doctype content).
func (n *Node) IsElement() bool {
	return n.n.Type == html.ElementNode
}

// Tag returns the element name, or "" for non-element nodes.
func (n *Node) Tag() string {
	if !n.IsElement() {
		return ""
	}
	return n.n.Data
}

// Text returns the concatenated text content of the node and its subtree.
func (n *Node) Text() string {
	return htmlquery.InnerText(n.n)
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	if !n.IsElement() {
		return ""
	}
	return htmlquery.SelectAttr(n.n, name)
}

// ClassAttr returns the raw class attribute value.
func (n *Node) ClassAttr() string {
	return n.Attr("class")
}

// HasClass reports whether the class attribute contains the given token.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.ClassAttr()) {
		if c == class {
			return true
		}
	}
	return false
}

// NextSibling returns the following sibling node of any kind, or nil.
func (n *Node) NextSibling() *Node {
	if n.n.NextSibling == nil {
		return nil
	}
	return &Node{n: n.n.NextSibling}
}

// FirstChild returns the first child node of any kind, or nil.
func (n *Node) FirstChild() *Node {
	if n.n.FirstChild == nil {
		return nil
	}
	return &Node{n: n.n.FirstChild}
}

// ChildCount counts child nodes of any kind.
func (n *Node) ChildCount() int {
	count := 0
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		count++
	}
	return count
}

// NthChild returns the i-th child node of any kind, or nil.
func (n *Node) NthChild(i int) *Node {
	idx := 0
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if idx == i {
			return &Node{n: c}
		}
		idx++
	}
	return nil
}

// ChildElement returns the i-th child element, skipping text nodes, or nil.
func (n *Node) ChildElement(i int) *Node {
	idx := 0
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if idx == i {
			return &Node{n: c}
		}
		idx++
	}
	return nil
}

// Is reports whether both wrappers point at the same underlying node.
func (n *Node) Is(other *Node) bool {
	return other != nil && n.n == other.n
}
