package main

import (
	"github.com/spf13/cobra"

	"github.com/gdgoc-ctf/site/internal/errors"
	"github.com/gdgoc-ctf/site/pkg/build"
	"github.com/gdgoc-ctf/site/pkg/publish"
)

func publishCmd(flags *globalFlags) *cobra.Command {
	var (
		dir     string
		bucket  string
		prefix  string
		rebuild bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload a static build to S3",
		Long: `Upload every file of the build directory to s3://bucket/prefix/.

Credentials come from the standard AWS chain (environment, shared config,
instance role).

Examples:
  site publish --bucket gdgoc-site
  site publish --build --prefix www`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := flags.loadSite(nil)
			if err != nil {
				return err
			}
			cfg := st.Config()
			if bucket == "" {
				bucket = cfg.Publish.Bucket
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = cfg.Publish.Prefix
			}
			if dir == "" {
				dir = cfg.Build.Output
			}
			if bucket == "" {
				return errors.New("E500")
			}

			out := cmd.OutOrStdout()
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			ctx := cmd.Context()

			if rebuild {
				if _, err := build.Run(ctx, st, build.Options{Output: dir, Clean: true, Logger: logger}); err != nil {
					return err
				}
				info(out, "Rebuilt %s", dir)
			}

			client, err := publish.NewS3Client(ctx, cfg.Publish.Region)
			if err != nil {
				return err
			}
			p, err := publish.New(client, publish.Target{Bucket: bucket, Prefix: prefix}, logger)
			if err != nil {
				return err
			}

			keys, err := p.Dir(ctx, dir)
			if err != nil {
				return err
			}
			success(out, "Published %d objects to s3://%s/%s", len(keys), bucket, prefix)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Build directory to upload (default build.output)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket (default publish.bucket)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default publish.prefix)")
	cmd.Flags().BoolVar(&rebuild, "build", false, "Run a clean build first")

	return cmd
}
