package homepage

import (
	"strings"
	"unicode"

	"github.com/gdgoc-ctf/site/pkg/vdom"
)

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// Heading renders children inside the heading element named by as
// ("h1".."h6"). Any other value falls back to "h2".
func Heading(as string, children ...any) *vdom.VNode {
	return vdom.Element(headingTag(as), children...)
}

// AnchoredHeading renders a heading with the given id and a trailing
// self-link. Top-level headings and an empty id get no anchor, so they
// render exactly like Heading.
func AnchoredHeading(as, id string, children ...any) *vdom.VNode {
	tag := headingTag(as)
	if tag == "h1" || id == "" {
		return Heading(tag, children...)
	}

	label := "Direct link to " + vdom.TextContent(vdom.Fragment(children...))
	link := vdom.A(
		vdom.Href("#"+id),
		vdom.Class("hash-link"),
		vdom.AriaLabel(label),
		vdom.Attr{Key: "title", Value: label},
		"\u200b",
	)

	args := make([]any, 0, len(children)+3)
	args = append(args, vdom.ID(id), vdom.Class("anchor"))
	args = append(args, children...)
	args = append(args, link)
	return vdom.Element(tag, args...)
}

func headingTag(as string) string {
	as = strings.ToLower(as)
	if headingTags[as] {
		return as
	}
	return "h2"
}

// Slug derives an anchor id from heading text: lower case, with each run of
// characters that are not letters or digits replaced by a single hyphen.
func Slug(text string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}
