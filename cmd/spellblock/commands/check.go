package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spellblock/internal/blocklist"
)

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD...",
		Short: "Report whether each word is blocked",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, w := range args {
				status := "ok"
				if blocklist.Contains(w) {
					status = "blocked"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", w, status)
			}
			return nil
		},
	}
}
