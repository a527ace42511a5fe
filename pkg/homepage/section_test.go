package homepage

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdgoc-ctf/site/pkg/assets"
	"github.com/gdgoc-ctf/site/pkg/render"
	"github.com/gdgoc-ctf/site/pkg/style"
	"github.com/gdgoc-ctf/site/pkg/vdom"
)

func renderHTML(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(node)
	require.NoError(t, err)
	return html
}

// rowItems returns the item blocks of a rendered section.
func rowItems(t *testing.T, section *vdom.VNode) []*vdom.VNode {
	t.Helper()
	var row *vdom.VNode
	vdom.Walk(section, func(n *vdom.VNode) bool {
		if n.Kind == vdom.KindElement && n.ClassName() == "row" {
			row = n
			return false
		}
		return true
	})
	require.NotNil(t, row, "section has no row")
	return row.Children
}

func TestHomepageFeaturesItems(t *testing.T) {
	section := HomepageFeatures()
	items := rowItems(t, section)
	require.Len(t, items, 3)

	want := Features()
	for i, item := range items {
		assert.Equal(t, "col col--4", item.ClassName())

		require.Len(t, item.Children, 1)
		inner := item.Children[0]
		assert.Equal(t, "text--center padding-horiz--md", inner.ClassName())

		require.Len(t, inner.Children, 2, "heading followed immediately by paragraph")
		heading, para := inner.Children[0], inner.Children[1]
		assert.Equal(t, "h2", heading.Tag)
		assert.Equal(t, want[i].Title, vdom.TextContent(heading))
		assert.Equal(t, "p", para.Tag)
		assert.Equal(t, want[i].Description.String(), vdom.TextContent(para))
	}
}

func TestHomepageFeaturesHeadingOrder(t *testing.T) {
	html := renderHTML(t, HomepageFeatures())

	about := strings.Index(html, "<h2>About Us</h2><p>")
	vision := strings.Index(html, "<h2>Vision</h2><p>")
	mission := strings.Index(html, "<h2>Mission</h2><p>")
	require.True(t, about >= 0 && vision >= 0 && mission >= 0, html)
	assert.Less(t, about, vision)
	assert.Less(t, vision, mission)
	assert.Equal(t, 3, strings.Count(html, "<h2>"))
}

func TestHomepageFeaturesMarkup(t *testing.T) {
	html := renderHTML(t, HomepageFeatures())

	assert.True(t, strings.HasPrefix(html,
		`<section class="features"><div class="container">`+
			`<div class="text--center margin-bottom--lg">`+
			`<img class="featureSvg" role="img" src="/img/logobanner.svg" style="max-height:75px">`+
			`</div><div class="row"><div class="col col--4"><div class="text--center padding-horiz--md">`+
			`<h2>About Us</h2><p>GDGoC are community groups`), html)
	assert.True(t, strings.HasSuffix(html, "</p></div></div></div></div></section>"), html)
}

func TestHomepageFeaturesIdempotent(t *testing.T) {
	first, second := HomepageFeatures(), HomepageFeatures()
	assert.True(t, vdom.Equal(first, second))
	assert.Equal(t, renderHTML(t, first), renderHTML(t, second))
}

func TestBannerAppearsOnceBeforeItems(t *testing.T) {
	many := append(Features(), Features()...)

	for _, entries := range [][]FeatureEntry{nil, Features(), many} {
		s := DefaultSection()
		s.Entries = entries
		node := s.Render()

		imgs := vdom.FindAll(node, "img")
		require.Len(t, imgs, 1)

		var order []string
		vdom.Walk(node, func(n *vdom.VNode) bool {
			if n.Tag == "img" || n.Tag == "h2" {
				order = append(order, n.Tag)
			}
			return true
		})
		assert.Equal(t, "img", order[0])
		assert.Len(t, order, len(entries)+1)
	}
}

func TestItemKeysFollowIndex(t *testing.T) {
	s := DefaultSection()
	items := rowItems(t, s.Render())
	for i, item := range items {
		assert.Equal(t, []string{"0", "1", "2"}[i], item.Key)
	}

	s.Entries = []FeatureEntry{s.Entries[2], s.Entries[0], s.Entries[1]}
	items = rowItems(t, s.Render())
	require.Len(t, items, 3)

	var titles []string
	for _, h := range vdom.FindAll(s.Render(), "h2") {
		titles = append(titles, vdom.TextContent(h))
	}
	assert.Equal(t, []string{"Mission", "About Us", "Vision"}, titles)
	assert.Equal(t, "0", items[0].Key)
}

func TestEmptyEntries(t *testing.T) {
	s := DefaultSection()
	s.Entries = nil

	html := renderHTML(t, s.Render())
	assert.Contains(t, html, `<div class="row"></div>`)
	assert.Len(t, vdom.FindAll(s.Render(), "img"), 1)
	assert.Empty(t, vdom.FindAll(s.Render(), "h2"))
}

func TestZeroSection(t *testing.T) {
	html := renderHTML(t, Section{}.Render())
	assert.Equal(t,
		`<section class="features"><div class="container"><div class="text--center margin-bottom--lg">`+
			`<img class="featureSvg" role="img" src="/img/logobanner.svg" style="max-height:75px">`+
			`</div><div class="row"></div></div></section>`,
		html)
}

func TestInjectedStylesAndAssets(t *testing.T) {
	manifest := assets.NewManifest()
	manifest.Set(assets.BannerSource, "img/logobanner.0badf00d.svg")

	s := DefaultSection()
	s.Styles = style.Table{style.Features: "features_Xy1"}
	s.Assets = assets.NewResolver(manifest, "/static/")
	s.Banner.MaxHeight = "4rem"
	s.Banner.Label = "GDGoC logo"

	html := renderHTML(t, s.Render())
	assert.Contains(t, html, `<section class="features_Xy1">`)
	assert.Contains(t, html,
		`<img aria-label="GDGoC logo" role="img" src="/static/img/logobanner.0badf00d.svg" style="max-height:4rem">`,
		"unknown style key leaves the class off")
}

func TestAnchorHeadings(t *testing.T) {
	s := DefaultSection()
	s.AnchorHeadings = true

	html := renderHTML(t, s.Render())
	assert.Contains(t, html, `<h2 class="anchor" id="about-us">About Us<a aria-label="Direct link to About Us" class="hash-link" href="#about-us" title="Direct link to About Us">`)
	for i, h := range vdom.FindAll(s.Render(), "h2") {
		title := Features()[i].Title
		assert.True(t, strings.HasPrefix(vdom.TextContent(h), title))
	}
}

func TestConcurrentRender(t *testing.T) {
	want := renderHTML(t, HomepageFeatures())

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(HomepageFeatures())
			if err == nil {
				results[i] = html
			}
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}
