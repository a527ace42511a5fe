// Package site assembles the homepage from configuration: it resolves the
// style table, picks the asset resolver and static filesystem, and renders
// the full document around the features section.
package site

import (
	"io"
	"io/fs"
	"os"

	"github.com/gdgoc-ctf/site/internal/config"
	"github.com/gdgoc-ctf/site/internal/errors"
	"github.com/gdgoc-ctf/site/pkg/assets"
	"github.com/gdgoc-ctf/site/pkg/homepage"
	"github.com/gdgoc-ctf/site/pkg/render"
	"github.com/gdgoc-ctf/site/pkg/style"
	"github.com/gdgoc-ctf/site/pkg/vdom"
)

// StylesheetSource is the logical name of the site stylesheet.
const StylesheetSource = "css/site.css"

// Site is a configured homepage.
type Site struct {
	cfg      *config.Config
	styles   style.Table
	resolver assets.Resolver
	static   fs.FS
}

// New builds a Site from cfg. It fails if the style map or manifest named
// in cfg cannot be loaded, or if the banner is missing from the static
// filesystem.
func New(cfg *config.Config) (*Site, error) {
	styles := style.DefaultTable()
	if cfg.Styles.Map != "" {
		loaded, err := style.LoadTable(cfg.Resolve(cfg.Styles.Map))
		if err != nil {
			return nil, errors.New("E202").WithDetail(cfg.Styles.Map).Wrap(err)
		}
		styles = styles.Merge(loaded)
	}
	styles = styles.Merge(style.Table(cfg.Styles.Classes))

	static := assets.Static()
	if cfg.Static.Dir != "" {
		static = os.DirFS(cfg.Resolve(cfg.Static.Dir))
	}
	if _, err := fs.Stat(static, cfg.Banner.Source); err != nil {
		return nil, errors.New("E200").WithDetail(cfg.Banner.Source).Wrap(err)
	}

	resolver := assets.NewPassthroughResolver(cfg.Static.Prefix)
	if cfg.Static.Manifest != "" {
		manifest, err := assets.Load(cfg.Resolve(cfg.Static.Manifest))
		if err != nil {
			return nil, errors.New("E201").WithDetail(cfg.Static.Manifest).Wrap(err)
		}
		resolver = assets.NewResolver(manifest, cfg.Static.Prefix)
	}

	return &Site{
		cfg:      cfg,
		styles:   styles,
		resolver: resolver,
		static:   static,
	}, nil
}

// WithResolver returns a copy of s that resolves asset URLs through r.
func (s *Site) WithResolver(r assets.Resolver) *Site {
	c := *s
	c.resolver = r
	return &c
}

// Static returns the filesystem static assets are served from.
func (s *Site) Static() fs.FS {
	return s.static
}

// Config returns the configuration the site was built from.
func (s *Site) Config() *config.Config {
	return s.cfg
}

// Section returns the configured features section.
func (s *Site) Section() homepage.Section {
	return homepage.Section{
		Styles: s.styles,
		Assets: s.resolver,
		Banner: homepage.Banner{
			Source:    s.cfg.Banner.Source,
			MaxHeight: s.cfg.Banner.MaxHeight,
			Label:     s.cfg.Banner.Label,
		},
		Entries:        homepage.Features(),
		AnchorHeadings: s.cfg.AnchorHeadings,
	}
}

// Page returns the document around the features section.
func (s *Site) Page() render.PageData {
	return render.PageData{
		Title: s.cfg.Title,
		Lang:  s.cfg.Lang,
		Meta: []render.MetaTag{
			{Property: "og:title", Content: s.cfg.Title},
		},
		StyleSheets: []string{s.resolver.Asset(StylesheetSource)},
		Body:        vdom.Main(s.Section()),
	}
}

// Renderer returns a renderer honoring build.pretty.
func (s *Site) Renderer() *render.Renderer {
	return render.NewRenderer(render.RendererConfig{Pretty: s.cfg.Build.Pretty})
}

// WritePage renders the full homepage document to w.
func (s *Site) WritePage(w io.Writer) error {
	if err := s.Renderer().RenderPage(w, s.Page()); err != nil {
		return errors.New("E300").Wrap(err)
	}
	return nil
}

// WriteSection renders only the features section to w.
func (s *Site) WriteSection(w io.Writer) error {
	if err := s.Renderer().RenderToWriter(w, s.Section().Render()); err != nil {
		return errors.New("E300").Wrap(err)
	}
	return nil
}
