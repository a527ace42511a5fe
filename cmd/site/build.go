package main

import (
	"github.com/spf13/cobra"

	"github.com/gdgoc-ctf/site/internal/config"
	"github.com/gdgoc-ctf/site/pkg/build"
)

func buildCmd(flags *globalFlags) *cobra.Command {
	var (
		output string
		clean  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write a static build",
		Long: `Write index.html, every static asset under a fingerprinted name,
and manifest.json into the output directory.

Examples:
  site build
  site build --output=public --clean`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := flags.loadSite(func(c *config.Config) {
				if output != "" {
					c.Build.Output = output
				}
			})
			if err != nil {
				return err
			}

			cfg := st.Config()
			out := cmd.OutOrStdout()
			info(out, "Building into %s", cfg.Build.Output)

			res, err := build.Run(cmd.Context(), st, build.Options{
				Output: cfg.Build.Output,
				Clean:  clean,
				Logger: newLogger(cmd.ErrOrStderr(), cfg),
			})
			if err != nil {
				return err
			}

			for _, f := range res.Files {
				info(out, "%s", f)
			}
			success(out, "Built %d files", len(res.Files))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from "+config.ConfigFileName+")")
	cmd.Flags().BoolVar(&clean, "clean", false, "Remove the output directory first")

	return cmd
}
