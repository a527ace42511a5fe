package homepage

import (
	"github.com/gdgoc-ctf/site/pkg/style"
	"github.com/gdgoc-ctf/site/pkg/vdom"
)

// FeatureEntry is one block of the features grid.
type FeatureEntry struct {
	Title       string
	Description Inline
}

// featureList is shown left to right in this order.
var featureList = [...]FeatureEntry{
	{
		Title: "About Us",
		Description: Plain("GDGoC are community groups for college and university students interested in Google developer technologies. " +
			"Students from all undergraduate or graduate programs with an interest in growing as a developer are welcome. " +
			"By joining a GDGoC, students grow their knowledge in a peer-to-peer learning environment and build solutions for local businesses and their community."),
	},
	{
		Title:       "Vision",
		Description: Plain("To cultivate an engaging and vibrant community of cybersecurity enthusiasts while paving the way for a safer digital world."),
	},
	{
		Title: "Mission",
		Description: Plain("We foster learning, collaboration, and innovation in cybersecurity through engaging CTF challenges and community activities. " +
			"By providing opportunities to enhance skills and build connections, " +
			"we empower individuals to contribute meaningfully to digital security in our rapidly evolving technological landscape."),
	},
}

// Features returns a copy of the homepage feature list.
func Features() []FeatureEntry {
	out := make([]FeatureEntry, len(featureList))
	for i, e := range featureList {
		out[i] = FeatureEntry{
			Title:       e.Title,
			Description: append(Inline(nil), e.Description...),
		}
	}
	return out
}

// Feature renders one grid column: a centered, padded block holding the
// title as a second-level heading and the description as a paragraph.
// index is the entry's position in its list and becomes the node key.
func Feature(entry FeatureEntry, index int) *vdom.VNode {
	return featureItem(entry, index, false)
}

func featureItem(entry FeatureEntry, index int, anchored bool) *vdom.VNode {
	heading := Heading("h2", entry.Title)
	if anchored {
		heading = AnchoredHeading("h2", Slug(entry.Title), entry.Title)
	}
	return vdom.Div(vdom.Key(index), vdom.Class(style.Clsx("col col--4")),
		vdom.Div(vdom.Class("text--center padding-horiz--md"),
			heading,
			vdom.P(entry.Description.Nodes()),
		),
	)
}
