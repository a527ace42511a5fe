package site

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gdgoc-ctf/site/internal/config"
	siteerrors "github.com/gdgoc-ctf/site/internal/errors"
	"github.com/gdgoc-ctf/site/pkg/assets"
)

func TestNewDefaults(t *testing.T) {
	s, err := New(config.New())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WritePage(&buf))
	html := buf.String()

	assert.Contains(t, html, "<title>GDGoC Cybersecurity</title>")
	assert.Contains(t, html, `<link href="/css/site.css" rel="stylesheet">`)
	assert.Contains(t, html, `<main><section class="features">`)
	assert.Contains(t, html, `src="/img/logobanner.svg"`)
	assert.Contains(t, html, "<h2>About Us</h2>")
}

func TestWriteSectionOnly(t *testing.T) {
	s, err := New(config.New())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteSection(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte(`<section class="features">`)))
	assert.NotContains(t, buf.String(), "<html")
}

func TestStylesFromMapAndClasses(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.json"),
		[]byte(`{"features":"features_map","featureSvg":"svg_map"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName),
		[]byte(`{"styles":{"map":"styles.json","classes":{"featureSvg":"svg_inline"}}}`), 0o644))

	cfg, err := config.LoadFile(filepath.Join(dir, config.ConfigFileName))
	require.NoError(t, err)
	s, err := New(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteSection(&buf))
	assert.Contains(t, buf.String(), `<section class="features_map">`)
	assert.Contains(t, buf.String(), `class="svg_inline"`)
}

func TestManifestResolver(t *testing.T) {
	dir := t.TempDir()
	m := assets.NewManifest()
	m.Set(assets.BannerSource, "img/logobanner.12345678.svg")
	require.NoError(t, m.Save(filepath.Join(dir, "manifest.json")))

	cfg := config.New()
	cfg.Static.Prefix = "/static/"
	cfg.Static.Manifest = filepath.Join(dir, "manifest.json")
	s, err := New(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WritePage(&buf))
	assert.Contains(t, buf.String(), `src="/static/img/logobanner.12345678.svg"`)
	assert.Contains(t, buf.String(), `href="/static/css/site.css"`)
}

func TestNewErrors(t *testing.T) {
	dir := t.TempDir()

	cfg := config.New()
	cfg.Banner.Source = "img/missing.svg"
	_, err := New(cfg)
	assert.Equal(t, "E200", siteerrors.Code(err))

	cfg = config.New()
	cfg.Static.Dir = dir
	_, err = New(cfg)
	assert.Equal(t, "E200", siteerrors.Code(err), "on-disk static dir without banner")

	cfg = config.New()
	cfg.Static.Manifest = filepath.Join(dir, "nope.json")
	_, err = New(cfg)
	assert.Equal(t, "E201", siteerrors.Code(err))

	cfg = config.New()
	cfg.Styles.Map = filepath.Join(dir, "nope.json")
	_, err = New(cfg)
	assert.Equal(t, "E202", siteerrors.Code(err))
}

func TestOnDiskStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logobanner.svg"), []byte("<svg/>"), 0o644))

	cfg := config.New()
	cfg.Static.Dir = dir
	s, err := New(cfg)
	require.NoError(t, err)

	data, err := fs.ReadFile(s.Static(), "img/logobanner.svg")
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(data))
}

func TestAnchorHeadingsFromConfig(t *testing.T) {
	cfg := config.New()
	cfg.AnchorHeadings = true
	s, err := New(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteSection(&buf))
	assert.Contains(t, buf.String(), `id="mission"`)
}
