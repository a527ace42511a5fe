// Package render turns vdom trees into HTML.
//
// Output is HTML5: text and attribute values are escaped, void elements
// have no closing tag, boolean attributes render bare, and attributes are
// sorted so the same tree always yields the same bytes. Node keys are
// identity metadata and never reach the markup.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(node)
//
// RenderPage wraps a body tree in a complete document:
//
//	err := r.RenderPage(w, render.PageData{Title: "Home", Body: body})
//
// A Renderer holds no per-render state and may be shared between goroutines.
package render
