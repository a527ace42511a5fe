package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	siteerrors "github.com/gdgoc-ctf/site/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "localhost:8080", cfg.Address())
	assert.Equal(t, "/", cfg.Static.Prefix)
	assert.Equal(t, DefaultBannerSource, cfg.Banner.Source)
	assert.Equal(t, "75px", cfg.Banner.MaxHeight)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ConfigFileName, `{
		"title": "CTF Club",
		"server": {"port": 9000},
		"static": {"prefix": "static"},
		"styles": {"classes": {"features": "features_x1"}},
		"publish": {"bucket": "site-bucket", "prefix": "/www/"}
	}`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "CTF Club", cfg.Title)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, DefaultHost, cfg.Server.Host, "unset fields keep defaults")
	assert.Equal(t, "/static/", cfg.Static.Prefix)
	assert.Equal(t, "features_x1", cfg.Styles.Classes["features"])
	assert.Equal(t, "www", cfg.Publish.Prefix)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, filepath.Join(dir, "styles.json"), cfg.Resolve("styles.json"))
	assert.Equal(t, "/abs/x", cfg.Resolve("/abs/x"))
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.Equal(t, "E100", siteerrors.Code(err))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.json", `{"server":`)
	_, err = LoadFile(bad)
	assert.Equal(t, "E101", siteerrors.Code(err))
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	dotenv := writeFile(t, dir, ".env", "SITE_PUBLISH_BUCKET=from-dotenv\nSITE_SERVER_PORT=7000\n")

	cfg := New()
	err := cfg.ApplyEnv(dotenv, []string{
		"SITE_SERVER_PORT=9100",
		"SITE_BANNER_LABEL=GDGoC logo",
		"SITE_STYLES_CLASSES=features:f_1,featureSvg:svg_2",
		"SITE_ANCHOR_HEADINGS=true",
		"UNRELATED=1",
	})
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port, "process environment wins over .env")
	assert.Equal(t, "from-dotenv", cfg.Publish.Bucket)
	assert.Equal(t, "GDGoC logo", cfg.Banner.Label)
	assert.Equal(t, map[string]string{"features": "f_1", "featureSvg": "svg_2"}, cfg.Styles.Classes)
	assert.True(t, cfg.AnchorHeadings)
	assert.Equal(t, DefaultBannerSource, cfg.Banner.Source, "unset variables keep current values")
}

func TestApplyEnvMissingDotenv(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), ".env"), nil))
	assert.Equal(t, DefaultPort, cfg.Server.Port)
}

func TestApplyEnvInvalid(t *testing.T) {
	cfg := New()
	err := cfg.ApplyEnv("", []string{"SITE_SERVER_PORT=eighty"})
	assert.Equal(t, "E102", siteerrors.Code(err))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"negative port", func(c *Config) { c.Server.Port = -1 }},
		{"bad timeout", func(c *Config) { c.Server.ShutdownTimeout = "soon" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"style injection", func(c *Config) { c.Banner.MaxHeight = "75px;display:none" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Equal(t, "E103", siteerrors.Code(err))
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, "dist", cfg.Resolve("dist"))
}

func TestSlogLevel(t *testing.T) {
	cfg := New()
	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	cfg.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
