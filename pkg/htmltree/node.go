package htmltree

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Node is a read-only view of one element in a Document.
type Node struct {
	n *html.Node
}

func newNode(n *html.Node) *Node {
	return &Node{n: n}
}

// Tag returns the lower-case tag name.
func (n *Node) Tag() string {
	return strings.ToLower(n.n.Data)
}

// Attr returns the verbatim value of the named attribute.
// Attribute names are matched case-insensitively.
func (n *Node) Attr(name string) (string, bool) {
	for _, attr := range n.n.Attr {
		if attr.Namespace == "" && strings.EqualFold(attr.Key, name) {
			return attr.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present, even if empty.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// AttrOr returns the attribute value, or fallback when it is absent.
func (n *Node) AttrOr(name, fallback string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return fallback
}

// Text returns the concatenated descendant text, trimmed.
func (n *Node) Text() string {
	return strings.TrimSpace(n.selection().Text())
}

// Children returns the element children in order.
func (n *Node) Children() []*Node {
	var children []*Node
	for child := n.n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode {
			children = append(children, newNode(child))
		}
	}
	return children
}

// OuterHTML serializes the element and its subtree back to markup.
func (n *Node) OuterHTML() string {
	out, err := goquery.OuterHtml(n.selection())
	if err != nil {
		return ""
	}
	return out
}

// InnerHTML serializes the element's children back to markup.
func (n *Node) InnerHTML() string {
	out, err := n.selection().Html()
	if err != nil {
		return ""
	}
	return out
}

func (n *Node) selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(n.n).Selection
}
