package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	var idOnly bool

	cmd := &cobra.Command{
		Use:   "show <identity-file>",
		Short: "Print a persisted identity file and its package ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.app.Show(args[0])
			if err != nil {
				return err
			}

			if idOnly {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.PackageID)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", result.PackageID, result.Identity.Dumps())
			return nil
		},
	}

	cmd.Flags().BoolVar(&idOnly, "id", false, "Print only the package ID")
	return cmd
}
