package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/gdgoc-ctf/site/internal/config"
	"github.com/gdgoc-ctf/site/internal/errors"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		page   bool
		pretty bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the features section as HTML",
		Long: `Render the features section to stdout, or to a file with --output.

Examples:
  site render
  site render --page --pretty
  site render --page -o index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := flags.loadSite(func(c *config.Config) {
				if pretty {
					c.Build.Pretty = true
				}
			})
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if page {
				err = st.WritePage(&buf)
			} else {
				err = st.WriteSection(&buf)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return errors.New("E301").WithDetail(output).Wrap(err)
			}
			success(cmd.ErrOrStderr(), "Wrote %s", output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&page, "page", false, "Render the full HTML document instead of the section")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
