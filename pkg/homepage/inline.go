package homepage

import (
	"strings"

	"github.com/gdgoc-ctf/site/pkg/vdom"
)

// Segment is one run of inline description content: TextSegment,
// EmphasisSegment or BreakSegment.
type Segment interface {
	Node() *vdom.VNode
	plain() string
}

// TextSegment is plain text.
type TextSegment string

// EmphasisSegment is text rendered with emphasis.
type EmphasisSegment string

// BreakSegment is a line break.
type BreakSegment struct{}

func (s TextSegment) Node() *vdom.VNode     { return vdom.Text(string(s)) }
func (s EmphasisSegment) Node() *vdom.VNode { return vdom.Em(string(s)) }
func (BreakSegment) Node() *vdom.VNode      { return vdom.Br() }

func (s TextSegment) plain() string     { return string(s) }
func (s EmphasisSegment) plain() string { return string(s) }
func (BreakSegment) plain() string      { return "\n" }

// Inline is a sequence of segments rendered in order inside a paragraph.
type Inline []Segment

// Plain is shorthand for an Inline holding a single text segment.
func Plain(text string) Inline {
	return Inline{TextSegment(text)}
}

// Nodes returns the rendered segments. Nil segments are skipped.
func (in Inline) Nodes() []*vdom.VNode {
	nodes := make([]*vdom.VNode, 0, len(in))
	for _, seg := range in {
		if seg == nil {
			continue
		}
		nodes = append(nodes, seg.Node())
	}
	return nodes
}

// String returns the text of the description with breaks as newlines.
func (in Inline) String() string {
	var b strings.Builder
	for _, seg := range in {
		if seg != nil {
			b.WriteString(seg.plain())
		}
	}
	return b.String()
}
