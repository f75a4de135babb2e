package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// defaultManifest is the manifest used when no paths are given.
const defaultManifest = "stash.yaml"

func (c *CLI) newComputeCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "compute [manifests...]",
		Short: "Compute package identities from build manifests",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{defaultManifest}
			}

			results, err := c.app.ComputeAll(cmd.Context(), paths, write)
			if err != nil {
				return err
			}

			for _, result := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", result.PackageID, result.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Persist identity files in the store")
	return cmd
}
