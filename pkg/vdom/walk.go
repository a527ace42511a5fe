package vdom

import (
	"fmt"
	"strings"
)

// Walk visits node and its descendants depth-first, in document order.
// Component nodes are expanded by calling Render. Returning false from fn
// skips the children of the visited node.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent {
		if node.Comp != nil {
			Walk(node.Comp.Render(), fn)
		}
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}

// FindAll returns every element with the given tag, in document order.
func FindAll(root *VNode, tag string) []*VNode {
	var found []*VNode
	Walk(root, func(n *VNode) bool {
		if n.Kind == KindElement && n.Tag == tag {
			found = append(found, n)
		}
		return true
	})
	return found
}

// TextContent concatenates the text of every text node below node.
// Raw nodes contribute nothing.
func TextContent(node *VNode) string {
	var b strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			b.WriteString(n.Text)
		}
		return true
	})
	return b.String()
}

// Equal reports whether two trees are structurally identical: same kinds,
// tags, keys, text and attributes, with children compared in order.
// Components are compared by what they render.
func Equal(a, b *VNode) bool {
	a, b = expand(a), expand(b)
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Tag != b.Tag || a.Key != b.Key || a.Text != b.Text {
		return false
	}
	if len(a.Props) != len(b.Props) {
		return false
	}
	for k, av := range a.Props {
		bv, ok := b.Props[k]
		if !ok || fmt.Sprint(av) != fmt.Sprint(bv) {
			return false
		}
	}
	if len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

func expand(n *VNode) *VNode {
	for n != nil && n.Kind == KindComponent {
		if n.Comp == nil {
			return nil
		}
		n = n.Comp.Render()
	}
	return n
}
