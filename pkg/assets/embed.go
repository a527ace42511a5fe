package assets

import (
	"embed"
	"io/fs"
)

// BannerSource is the logical name of the homepage logo banner.
const BannerSource = "img/logobanner.svg"

//go:embed static
var staticFiles embed.FS

// Static returns the embedded static tree, rooted so that BannerSource
// opens directly.
func Static() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "static" is valid.
		panic(err)
	}
	return sub
}
