package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gdgoc-ctf/site/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	err := renderer.RenderPage(&buf, PageData{
		Title:       "Home & Away",
		Body:        vdom.Main(vdom.H1("Hi")),
		Meta:        []MetaTag{{Name: "description", Content: "CTF club"}, {Property: "og:title", Content: "Home"}},
		StyleSheets: []string{"/css/site.css"},
	})
	if err != nil {
		t.Fatalf("RenderPage() error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>\n<html lang=\"en\">",
		`<meta charset="utf-8">`,
		`<meta content="width=device-width, initial-scale=1" name="viewport">`,
		`<title>Home &amp; Away</title>`,
		`<meta content="CTF club" name="description">`,
		`<meta content="Home" property="og:title">`,
		`<link href="/css/site.css" rel="stylesheet">`,
		`<body><main><h1>Hi</h1></main></body></html>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestRenderPageLangAndNoTitle(t *testing.T) {
	renderer := NewRenderer(RendererConfig{})

	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, PageData{Lang: "id"}); err != nil {
		t.Fatalf("RenderPage() error: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `<html lang="id">`) {
		t.Errorf("missing lang: %s", html)
	}
	if strings.Contains(html, "<title>") {
		t.Errorf("empty title should be omitted: %s", html)
	}
	if !strings.Contains(html, "<body></body>") {
		t.Errorf("nil body should render an empty body: %s", html)
	}
}
