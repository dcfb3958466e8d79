package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Filter the base list and write words.txt and merkle-proofs.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := wire.Builder.Build()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Kept: %d\nRemoved: %d\n", res.Kept, len(res.Removed))
			fmt.Fprintf(out, "Merkle root: %s\n", res.Root)
			return nil
		},
	}
}
