package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spellblock/internal/blocklist"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write blocklist.json to the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words := blocklist.Get().Sorted()
			if err := wire.Blocklist.SaveBlocklist(words); err != nil {
				return fmt.Errorf("export blocklist: %w", err)
			}
			wire.Log.Info("export: blocklist written", "dir", wire.Config.OutDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d blocked words\n", len(words))
			return nil
		},
	}
}
