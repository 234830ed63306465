package panel

import (
	"fmt"

	"github.com/spf13/cobra"
)

func NewCaptureCmd() *cobra.Command {
	var (
		file   string
		rawURL string
		limit  int
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "capture",
		Short: "capture a page and print the artifact.",
		Long:  "capture a saved page and print the harvested JSON artifact to stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			rec, err := e.capture(cmd, file, rawURL, limit)
			if err != nil {
				return err
			}

			out, err := rec.JSON(pretty)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	addPageFlags(cmd, &file, &rawURL, &limit)
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the artifact")
	cmd.MarkFlagRequired("file")
	cmd.MarkFlagRequired("url")

	return cmd
}
