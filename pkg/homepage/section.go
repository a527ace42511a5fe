package homepage

import (
	"github.com/gdgoc-ctf/site/pkg/assets"
	"github.com/gdgoc-ctf/site/pkg/style"
	"github.com/gdgoc-ctf/site/pkg/vdom"
)

// DefaultBannerMaxHeight caps the banner's display height.
const DefaultBannerMaxHeight = "75px"

// Banner describes the logo image shown above the grid.
type Banner struct {
	// Source is the logical asset name passed to the resolver.
	Source string

	// MaxHeight is a CSS length. Empty means DefaultBannerMaxHeight.
	MaxHeight string

	// Label, when set, becomes the image's aria-label.
	Label string
}

// Section renders the features section. The zero value renders the default
// style table, the embedded banner served from "/" and no entries.
type Section struct {
	Styles  style.Table
	Assets  assets.Resolver
	Banner  Banner
	Entries []FeatureEntry

	// AnchorHeadings gives each feature heading an id and a self-link.
	AnchorHeadings bool
}

// DefaultSection returns the homepage configuration: default styles, the
// embedded banner and the fixed feature list.
func DefaultSection() Section {
	return Section{
		Styles:  style.DefaultTable(),
		Assets:  assets.NewPassthroughResolver("/"),
		Banner:  Banner{Source: assets.BannerSource, MaxHeight: DefaultBannerMaxHeight},
		Entries: Features(),
	}
}

// HomepageFeatures renders the homepage features section.
func HomepageFeatures() *vdom.VNode {
	return DefaultSection().Render()
}

// Render implements vdom.Component.
func (s Section) Render() *vdom.VNode {
	styles := s.Styles
	if styles == nil {
		styles = style.DefaultTable()
	}

	return vdom.Section(vdom.Class(styles.Resolve(style.Features)),
		vdom.Div(vdom.Class("container"),
			vdom.Div(vdom.Class("text--center margin-bottom--lg"),
				s.bannerImage(styles),
			),
			vdom.Div(vdom.Class("row"),
				vdom.Range(s.Entries, func(e FeatureEntry, i int) *vdom.VNode {
					return featureItem(e, i, s.AnchorHeadings)
				}),
			),
		),
	)
}

func (s Section) bannerImage(styles style.Table) *vdom.VNode {
	resolver := s.Assets
	if resolver == nil {
		resolver = assets.NewPassthroughResolver("/")
	}
	source := s.Banner.Source
	if source == "" {
		source = assets.BannerSource
	}
	maxHeight := s.Banner.MaxHeight
	if maxHeight == "" {
		maxHeight = DefaultBannerMaxHeight
	}

	return vdom.Img(
		vdom.Class(styles.Resolve(style.FeatureSvg)),
		vdom.Role("img"),
		vdom.StyleAttr("max-height:"+maxHeight),
		vdom.Src(resolver.Asset(source)),
		labelAttr(s.Banner.Label),
	)
}

func labelAttr(label string) any {
	if label == "" {
		return nil
	}
	return vdom.AriaLabel(label)
}
