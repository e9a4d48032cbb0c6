package cmd

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/anchore/libversion/libversion"
)

var compareOpts struct {
	flagsA []string
	flagsB []string
}

var compareCmd = &cobra.Command{
	Use:   "compare VERSION_A VERSION_B",
	Short: "Compare two versions, printing <, = or >",
	Example: `  libversion compare 1.0alpha1 1.0
  libversion compare --flags-a p-is-patch 1.0p1 1.0
  libversion compare --flags-b upper-bound 1.0.5 1.0`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		aFlags, err := versionFlags(compareOpts.flagsA)
		if err != nil {
			return fmt.Errorf("invalid --flags-a: %w", err)
		}
		bFlags, err := versionFlags(compareOpts.flagsB)
		if err != nil {
			return fmt.Errorf("invalid --flags-b: %w", err)
		}
		return runCompare(cmd.OutOrStdout(), libversion.NewVersion(args[0], aFlags), libversion.NewVersion(args[1], bFlags), useColor())
	},
}

func init() {
	compareCmd.Flags().StringSliceVar(&compareOpts.flagsA, "flags-a", nil, "comparison flags for the first version (p-is-patch, any-is-patch, lower-bound, upper-bound)")
	compareCmd.Flags().StringSliceVar(&compareOpts.flagsB, "flags-b", nil, "comparison flags for the second version (p-is-patch, any-is-patch, lower-bound, upper-bound)")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(output io.Writer, a, b libversion.Version, withColor bool) error {
	symbol, style := "=", color.Green
	switch a.Compare(b) {
	case -1:
		symbol, style = "<", color.Yellow
	case 1:
		symbol, style = ">", color.Cyan
	}
	if withColor {
		symbol = style.Sprint(symbol)
	}

	_, err := fmt.Fprintf(output, "%s %s %s\n", a.Raw, symbol, b.Raw)
	return err
}
