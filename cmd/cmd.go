package cmd

import (
	"fmt"
	"os"

	"github.com/dreamerjackson/harvester/cmd/panel"
	"github.com/dreamerjackson/harvester/config"
	"github.com/dreamerjackson/harvester/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print version.",
		Long:  "print version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.Printer(cmd.OutOrStdout())
		},
	}
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "harvester",
		Short:         "harvest structured data from saved web pages.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "config file")
	rootCmd.AddCommand(panel.NewCaptureCmd(), panel.NewExportCmd(), panel.NewLimitCmd(), newVersionCmd())

	return rootCmd
}

// Execute runs the command line; a failure is printed where the artifact
// would have gone.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStdout(), "Error: "+err.Error())
		os.Exit(1)
	}
}
