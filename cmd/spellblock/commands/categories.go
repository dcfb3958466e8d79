package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spellblock/internal/blocklist"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Print entry counts per blocklist category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range blocklist.Categories() {
				fmt.Fprintf(out, "%4d  %s\n", len(c.Words), c.Name)
			}
			fmt.Fprintf(out, "%4d  distinct total\n", blocklist.Len())
			return nil
		},
	}
}
