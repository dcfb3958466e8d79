package commands

import (
	"io"

	"github.com/spf13/cobra"

	"spellblock/internal/app"
)

var (
	baseList string
	outDir   string
	wire     *app.Wire
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "spellblock",
		Short:        "Exact-match blocklist tooling for the SpellBlock dictionary",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig()
			if baseList != "" {
				cfg.BaseList = baseList
			}
			if outDir != "" {
				cfg.OutDir = outDir
			}
			wire = app.NewWire(cfg, logWriter(cmd))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&baseList, "base", "", "base word list (default $SPELLBLOCK_BASE_LIST or "+app.DefaultBaseList+")")
	root.PersistentFlags().StringVar(&outDir, "dir", "", "output directory (default $SPELLBLOCK_OUT_DIR or "+app.DefaultOutDir+")")

	root.AddCommand(
		reportCmd(),
		checkCmd(),
		categoriesCmd(),
		fingerprintCmd(),
		exportCmd(),
		buildCmd(),
		validateCmd(),
	)
	return root
}

func logWriter(cmd *cobra.Command) io.Writer { return cmd.ErrOrStderr() }
