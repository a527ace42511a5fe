// Package vdom provides the view-node tree the site is built from.
//
// A VNode describes an element, a text run, a fragment, a nested component
// or a raw HTML snippet. Trees are plain data: they are built by the element
// constructors, rendered by package render, and can be inspected with Walk,
// FindAll and TextContent.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H2(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Arguments may be Attr, []Attr, *VNode, []*VNode, Component, string or nil.
// A nil argument is skipped, which keeps conditional children readable.
package vdom
