// Package htmltree provides a read-only element tree over parsed HTML.
//
// Parsing is delegated to goquery (golang.org/x/net/html underneath), which
// follows the HTML5 tree-construction algorithm and therefore never rejects
// malformed markup. Rules only see the accessors exposed here, so the tree
// cannot be mutated once it has been built.
package htmltree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrNoRoot is returned when parsing yields no document node.
var ErrNoRoot = errors.New("parsed document has no root node")

// Document is an immutable, parsed HTML tree.
type Document struct {
	doc  *goquery.Document
	root *html.Node
}

// Parse builds a Document from markup source.
func Parse(ctx context.Context, source string) (*Document, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("parse cancelled: %w", ctx.Err())
	default:
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	if len(doc.Nodes) == 0 || doc.Nodes[0] == nil {
		return nil, ErrNoRoot
	}

	return &Document{doc: doc, root: doc.Nodes[0]}, nil
}

// Walk visits every element node in pre-order (document order).
// Returning false from fn stops the walk.
func (d *Document) Walk(fn func(*Node) bool) {
	if d == nil || d.root == nil {
		return
	}

	stack := []*html.Node{d.root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current.Type == html.ElementNode {
			if !fn(newNode(current)) {
				return
			}
		}

		// Push children in reverse so the first child is visited next.
		for child := current.LastChild; child != nil; child = child.PrevSibling {
			stack = append(stack, child)
		}
	}
}

// Elements returns all elements whose tag matches one of tags, in document order.
// Tag names are matched case-insensitively. With no tags, every element is returned.
func (d *Document) Elements(tags ...string) []*Node {
	wanted := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		wanted[strings.ToLower(tag)] = struct{}{}
	}

	var nodes []*Node
	d.Walk(func(n *Node) bool {
		if len(wanted) == 0 {
			nodes = append(nodes, n)
			return true
		}
		if _, ok := wanted[n.Tag()]; ok {
			nodes = append(nodes, n)
		}
		return true
	})
	return nodes
}

// Count returns the number of elements for which match returns true.
func (d *Document) Count(match func(*Node) bool) int {
	count := 0
	d.Walk(func(n *Node) bool {
		if match(n) {
			count++
		}
		return true
	})
	return count
}
