package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gdgoc-ctf/site/internal/config"
	"github.com/gdgoc-ctf/site/internal/errors"
	"github.com/gdgoc-ctf/site/pkg/site"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	config string
	env    string
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprint(os.Stderr, errors.FormatError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "site",
		Short: "Render and ship the GDGoC homepage",
		Long: `site renders the homepage features section: the logo banner and the
About Us, Vision and Mission blocks.

It can print the HTML, serve it over HTTP, write a static build with
fingerprinted assets, and publish that build to S3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Config file (default ./"+config.ConfigFileName+" when present)")
	root.PersistentFlags().StringVar(&flags.env, "env", ".env", "Optional .env file with SITE_* overrides")

	root.AddCommand(
		renderCmd(flags),
		serveCmd(flags),
		buildCmd(flags),
		publishCmd(flags),
		versionCmd(),
	)

	return root
}

// loadConfig resolves the configuration for a command. Without --config it
// uses ./site.json if that file exists.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	path := f.config
	if path == "" {
		if _, err := os.Stat(config.ConfigFileName); err == nil {
			path = config.ConfigFileName
		}
	}
	return config.Load(path, f.env)
}

// loadSite loads the configuration, lets mutate apply flag overrides, and
// builds the site.
func (f *globalFlags) loadSite(mutate func(*config.Config)) (*site.Site, error) {
	cfg, err := f.loadConfig()
	if err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(cfg)
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return site.New(cfg)
}

// newLogger returns a text logger for one-shot commands.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
