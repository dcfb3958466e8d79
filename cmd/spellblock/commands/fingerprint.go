package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spellblock/internal/blocklist"
	"spellblock/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print blocklist fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fp := crypto.Fingerprint(blocklist.Get().Sorted())
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
	return cmd
}
