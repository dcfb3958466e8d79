package commands

import (
	"github.com/spf13/cobra"

	"spellblock/internal/blocklist"
	"spellblock/internal/report"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show which blocked words occur in the base word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := wire.Dictionary.LoadBase()
			if err != nil {
				return err
			}
			wire.Log.Debug("report: base list loaded", "path", wire.Config.BaseList, "words", len(base))
			return report.Diff(blocklist.Get(), base).Write(cmd.OutOrStdout())
		},
	}
}
