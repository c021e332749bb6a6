package browser

import (
	"strings"

	"golang.org/x/net/html"
)

// Helpers over x/net/html node trees. The overlay treats the page as a
// plain mutable tree; everything here is synchronous and allocation-light.

// NewElement builds a detached element node. Attrs are key/value pairs.
func NewElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// NewText builds a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// GetAttr returns the value of the named attribute.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or replaces the named attribute.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Walk visits every node under root (root included) until visit returns
// false.
func Walk(root *html.Node, visit func(*html.Node) bool) {
	if root == nil {
		return
	}
	if !visit(root) {
		return
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, visit)
	}
}

// FindByID returns the first element with the given id attribute.
func FindByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := GetAttr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

// CountByID counts elements carrying the given id. A well-formed document
// has at most one; the overlay's idempotency tests lean on this.
func CountByID(root *html.Node, id string) int {
	count := 0
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := GetAttr(n, "id"); ok && v == id {
				count++
			}
		}
		return true
	})
	return count
}

// HasClass reports whether the element's class attribute contains the class.
func HasClass(n *html.Node, class string) bool {
	v, ok := GetAttr(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// FindByClass returns the first element carrying the class.
func FindByClass(root *html.Node, class string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && HasClass(n, class) {
			found = n
			return false
		}
		return true
	})
	return found
}

// Body returns the document's body element, or nil.
func Body(root *html.Node) *html.Node {
	var body *html.Node
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return false
		}
		return true
	})
	return body
}

// TextContains reports whether any text node under root contains the
// phrase, case-insensitively.
func TextContains(root *html.Node, phrase string) bool {
	phrase = strings.ToLower(phrase)
	found := false
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.TextNode && strings.Contains(strings.ToLower(n.Data), phrase) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Text concatenates all text nodes under root.
func Text(root *html.Node) string {
	var b strings.Builder
	Walk(root, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		return true
	})
	return b.String()
}

// RemoveNode detaches n from its parent. Detached nodes are tolerated.
func RemoveNode(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// ReplaceChildren drops every child of n and appends the given ones.
func ReplaceChildren(n *html.Node, children ...*html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	for _, c := range children {
		n.AppendChild(c)
	}
}

// PrependChild inserts c as the first child of n.
func PrependChild(n, c *html.Node) {
	if n.FirstChild != nil {
		n.InsertBefore(c, n.FirstChild)
		return
	}
	n.AppendChild(c)
}
