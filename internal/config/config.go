package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/gdgoc-ctf/site/internal/errors"
)

const (
	// ConfigFileName is the default configuration file.
	ConfigFileName = "site.json"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SITE_"

	DefaultHost            = "localhost"
	DefaultPort            = 8080
	DefaultShutdownTimeout = "10s"
	DefaultStaticPrefix    = "/"
	DefaultOutput          = "dist"
	DefaultBannerSource    = "img/logobanner.svg"
	DefaultBannerMaxHeight = "75px"
)

// Config is the complete site configuration.
type Config struct {
	// Title is the page title of the homepage.
	Title string `json:"title,omitempty" env:"TITLE"`

	// Lang is the html lang attribute.
	Lang string `json:"lang,omitempty" env:"LANG"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty" env:"LOG_LEVEL"`

	// AnchorHeadings gives feature headings ids and self-links.
	AnchorHeadings bool `json:"anchorHeadings,omitempty" env:"ANCHOR_HEADINGS"`

	Server  ServerConfig  `json:"server,omitempty" envPrefix:"SERVER_"`
	Static  StaticConfig  `json:"static,omitempty" envPrefix:"STATIC_"`
	Styles  StylesConfig  `json:"styles,omitempty" envPrefix:"STYLES_"`
	Banner  BannerConfig  `json:"banner,omitempty" envPrefix:"BANNER_"`
	Build   BuildConfig   `json:"build,omitempty" envPrefix:"BUILD_"`
	Publish PublishConfig `json:"publish,omitempty" envPrefix:"PUBLISH_"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig configures `site serve`.
type ServerConfig struct {
	Host string `json:"host,omitempty" env:"HOST"`
	Port int    `json:"port,omitempty" env:"PORT"`

	// ShutdownTimeout bounds graceful shutdown (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" env:"SHUTDOWN_TIMEOUT"`
}

// StaticConfig configures where static assets come from.
type StaticConfig struct {
	// Dir is an on-disk static directory. Empty serves the embedded assets.
	Dir string `json:"dir,omitempty" env:"DIR"`

	// Prefix is the URL prefix static files are served under.
	Prefix string `json:"prefix,omitempty" env:"PREFIX"`

	// Manifest is an optional manifest.json of fingerprinted names.
	Manifest string `json:"manifest,omitempty" env:"MANIFEST"`
}

// StylesConfig configures the style table.
type StylesConfig struct {
	// Map is an optional JSON file of logical name to class.
	Map string `json:"map,omitempty" env:"MAP"`

	// Classes are inline overrides applied over Map.
	Classes map[string]string `json:"classes,omitempty" env:"CLASSES"`
}

// BannerConfig configures the logo banner.
type BannerConfig struct {
	Source    string `json:"source,omitempty" env:"SOURCE"`
	MaxHeight string `json:"maxHeight,omitempty" env:"MAX_HEIGHT"`
	Label     string `json:"label,omitempty" env:"LABEL"`
}

// BuildConfig configures `site build`.
type BuildConfig struct {
	Output string `json:"output,omitempty" env:"OUTPUT"`
	Pretty bool   `json:"pretty,omitempty" env:"PRETTY"`
}

// PublishConfig configures `site publish`.
type PublishConfig struct {
	Bucket string `json:"bucket,omitempty" env:"BUCKET"`
	Prefix string `json:"prefix,omitempty" env:"PREFIX"`
	Region string `json:"region,omitempty" env:"REGION"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Title:    "GDGoC Cybersecurity",
		Lang:     "en",
		LogLevel: "info",
		Server: ServerConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Static: StaticConfig{
			Prefix: DefaultStaticPrefix,
		},
		Banner: BannerConfig{
			Source:    DefaultBannerSource,
			MaxHeight: DefaultBannerMaxHeight,
		},
		Build: BuildConfig{
			Output: DefaultOutput,
		},
	}
}

// LoadFile reads configuration from path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E100").WithDetail(path).Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + path + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Load resolves the full configuration: defaults, then the file at path
// (skipped when path is empty), then the environment. dotenv names an
// optional .env file; a missing one is ignored.
func Load(path, dotenv string) (*Config, error) {
	cfg := New()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(dotenv, os.Environ()); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays SITE_* variables from environ and, for names environ
// does not set, from the dotenv file.
func (c *Config) ApplyEnv(dotenv string, environ []string) error {
	vars := map[string]string{}
	if dotenv != "" {
		fileVars, err := godotenv.Read(dotenv)
		if err != nil && !os.IsNotExist(err) {
			return errors.New("E102").WithDetail(dotenv).Wrap(err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}

	if err := env.ParseWithOptions(c, env.Options{
		Prefix:      EnvPrefix,
		Environment: vars,
	}); err != nil {
		return errors.New("E102").Wrap(err)
	}

	c.applyDefaults()
	return nil
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Lang == "" {
		c.Lang = "en"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if c.Static.Prefix == "" {
		c.Static.Prefix = DefaultStaticPrefix
	}
	if !strings.HasSuffix(c.Static.Prefix, "/") {
		c.Static.Prefix += "/"
	}
	if !strings.HasPrefix(c.Static.Prefix, "/") {
		c.Static.Prefix = "/" + c.Static.Prefix
	}
	if c.Banner.Source == "" {
		c.Banner.Source = DefaultBannerSource
	}
	if c.Banner.MaxHeight == "" {
		c.Banner.MaxHeight = DefaultBannerMaxHeight
	}
	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
	c.Publish.Prefix = strings.Trim(c.Publish.Prefix, "/")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return errors.New("E103").
			WithDetail("server.port must be between 0 and 65535, got " + strconv.Itoa(c.Server.Port))
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return errors.New("E103").
			WithDetail("server.shutdownTimeout: " + err.Error())
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return errors.New("E103").WithDetail(err.Error())
	}
	if strings.ContainsAny(c.Banner.MaxHeight, ";{}") {
		return errors.New("E103").
			WithDetail("banner.maxHeight must be a single CSS length, got " + c.Banner.MaxHeight)
	}
	return nil
}

// Address returns the host:port the server listens on.
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// ShutdownTimeout returns the parsed graceful shutdown bound.
func (c *Config) ShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("logLevel: %w", err)
	}
	return lvl, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Resolve makes a config-relative path absolute. Absolute and empty paths
// are returned unchanged; without a config file paths stay relative to the
// working directory.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.configPath == "" {
		return path
	}
	return filepath.Join(filepath.Dir(c.configPath), path)
}
