package panel

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func NewLimitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit",
		Short: "show or change the artifact size limit.",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "print the stored limit.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			n, err := e.prefs.LimitChars()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set N",
		Short: "store a new limit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("limit %q is not a number", args[0])
			}

			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.prefs.SetLimitChars(n); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)

			return nil
		},
	}

	cmd.AddCommand(get, set)

	return cmd
}
