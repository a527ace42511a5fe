package homepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		as   string
		want string
	}{
		{"h2", "h2"},
		{"H3", "h3"},
		{"h1", "h1"},
		{"h6", "h6"},
		{"h7", "h2"},
		{"", "h2"},
		{"div", "h2"},
	}
	for _, tt := range tests {
		t.Run(tt.as, func(t *testing.T) {
			assert.Equal(t, tt.want, Heading(tt.as, "x").Tag)
		})
	}
}

func TestAnchoredHeading(t *testing.T) {
	h := AnchoredHeading("h2", "vision", "Vision")
	assert.Equal(t, `<h2 class="anchor" id="vision">Vision<a aria-label="Direct link to Vision" class="hash-link" href="#vision" title="Direct link to Vision">`+"\u200b"+`</a></h2>`,
		renderHTML(t, h))

	assert.Equal(t, "<h1>Top</h1>", renderHTML(t, AnchoredHeading("h1", "top", "Top")))
	assert.Equal(t, "<h3>Plain</h3>", renderHTML(t, AnchoredHeading("h3", "", "Plain")))
}

func TestSlug(t *testing.T) {
	tests := map[string]string{
		"About Us":             "about-us",
		"Vision":               "vision",
		"  CTF -- 2024!  ":     "ctf-2024",
		"Keamanan & Komunitas": "keamanan-komunitas",
		"":                     "",
		"!!!":                  "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slug(in), "Slug(%q)", in)
	}
}
