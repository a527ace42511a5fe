package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gdgoc-ctf/site/internal/config"
	"github.com/gdgoc-ctf/site/pkg/server"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the homepage over HTTP",
		Long: `Serve the homepage, its static assets, /healthz and /metrics.

The server stops gracefully on SIGINT or SIGTERM.

Examples:
  site serve
  site serve --port 3000
  SITE_SERVER_HOST=0.0.0.0 site serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := flags.loadSite(func(c *config.Config) {
				if cmd.Flags().Changed("host") {
					c.Server.Host = host
				}
				if cmd.Flags().Changed("port") {
					c.Server.Port = port
				}
			})
			if err != nil {
				return err
			}

			cfg := st.Config()
			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("serving homepage", slog.String("addr", cfg.Address()))
			return server.New(server.Config{Site: st, Logger: logger}).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", config.DefaultHost, "Listen host")
	cmd.Flags().IntVarP(&port, "port", "p", config.DefaultPort, "Listen port")

	return cmd
}
