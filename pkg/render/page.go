package render

import (
	"io"

	"github.com/gdgoc-ctf/site/pkg/vdom"
)

// PageData contains everything needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// Meta contains extra meta tags for the page.
	Meta []MetaTag

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string // name attribute
	Property string // property attribute (for OpenGraph)
	Content  string // content attribute
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, pageTree(page)); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// pageTree builds the html element for a page.
func pageTree(page PageData) *vdom.VNode {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	head := []*vdom.VNode{
		vdom.Meta(vdom.Attr{Key: "charset", Value: "utf-8"}),
		vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
		vdom.If(page.Title != "", vdom.Title(page.Title)),
	}
	for _, m := range page.Meta {
		head = append(head, vdom.Meta(
			metaAttrs(m),
			vdom.Content(m.Content),
		))
	}
	for _, href := range page.StyleSheets {
		head = append(head, vdom.Link(vdom.Rel("stylesheet"), vdom.Href(href)))
	}

	return vdom.Html(vdom.Lang(lang),
		vdom.Head(head),
		vdom.Body(page.Body),
	)
}

func metaAttrs(m MetaTag) []vdom.Attr {
	var attrs []vdom.Attr
	if m.Name != "" {
		attrs = append(attrs, vdom.Name(m.Name))
	}
	if m.Property != "" {
		attrs = append(attrs, vdom.Attr{Key: "property", Value: m.Property})
	}
	return attrs
}
