package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gdgoc-ctf/site/pkg/vdom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables indented output. Inline elements stay on one line.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer renders VNode trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	ew := &errWriter{w: w}
	if err := r.renderNode(ew, node, 0); err != nil {
		return err
	}
	return ew.err
}

// errWriter latches the first write error so the tree walk can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (r *Renderer) renderNode(w *errWriter, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		w.write(escapeHTML(node.Text))
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child, depth); err != nil {
				return err
			}
		}
	case vdom.KindComponent:
		if node.Comp != nil {
			return r.renderNode(w, node.Comp.Render(), depth)
		}
	case vdom.KindRaw:
		w.write(node.Text)
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
	return w.err
}

func (r *Renderer) renderElement(w *errWriter, node *vdom.VNode, depth int) error {
	tag := node.Tag
	if tag == "" {
		return fmt.Errorf("render: element without tag")
	}

	pretty := r.config.Pretty && !isInlineElement(tag)
	if pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	w.write("<")
	w.write(tag)
	r.renderAttributes(w, node)
	w.write(">")

	if isVoidElement(tag) {
		if pretty {
			w.write("\n")
		}
		return w.err
	}

	block := pretty && hasBlockChild(node)
	if block {
		w.write("\n")
	}
	for _, child := range node.Children {
		ownLine := block && isLineContent(child)
		if ownLine {
			r.writeIndent(w, depth+1)
		}
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
		if ownLine {
			w.write("\n")
		}
	}
	if block {
		r.writeIndent(w, depth)
	}

	w.write("</")
	w.write(tag)
	w.write(">")
	if pretty {
		w.write("\n")
	}
	return w.err
}

// hasBlockChild reports whether any child is a non-inline element, which is
// what decides if pretty mode breaks the element over several lines.
func hasBlockChild(node *vdom.VNode) bool {
	for _, c := range node.Children {
		if c != nil && c.Kind == vdom.KindElement && !isInlineElement(c.Tag) {
			return true
		}
	}
	return false
}

// isLineContent reports whether a child does not lay itself out in pretty
// mode: text, raw HTML and inline elements.
func isLineContent(n *vdom.VNode) bool {
	if n == nil {
		return false
	}
	switch n.Kind {
	case vdom.KindText, vdom.KindRaw:
		return true
	case vdom.KindElement:
		return isInlineElement(n.Tag)
	}
	return false
}

func (r *Renderer) renderAttributes(w *errWriter, node *vdom.VNode) {
	if len(node.Props) == 0 {
		return
	}

	// Sort keys for deterministic output
	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		// Internal props never reach the markup
		if strings.HasPrefix(key, "_") || key == "key" {
			continue
		}
		value := node.Props[key]

		name := key
		switch key {
		case "className":
			name = "class"
		case "htmlFor":
			name = "for"
		}

		if isBooleanAttr(name) {
			if b, ok := value.(bool); ok {
				if b {
					w.write(" ")
					w.write(name)
				}
				continue
			}
		}

		s := attrToString(value)
		if s == "" {
			continue
		}
		w.write(" ")
		w.write(name)
		w.write(`="`)
		w.write(escapeAttr(s))
		w.write(`"`)
	}
}

// attrToString converts an attribute value to a string.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) writeIndent(w *errWriter, depth int) {
	w.write(strings.Repeat(r.config.Indent, depth))
}
