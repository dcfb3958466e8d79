package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"spellblock/internal/blocklist"
	"spellblock/internal/validate"
)

func validateCmd() *cobra.Command {
	var pool string
	cmd := &cobra.Command{
		Use:   "validate WORD",
		Short: "Check whether WORD is a legal play for the letter pool",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pool == "" {
				return fmt.Errorf("letter pool required (--pool)")
			}
			base, err := wire.Dictionary.LoadBase()
			if err != nil {
				return err
			}
			v := validate.New(blocklist.NewSet(base...), blocklist.Get())
			if err := v.Check(args[0], pool); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&pool, "pool", "", "today's letter pool, e.g. AEIRSTN")
	return cmd
}
