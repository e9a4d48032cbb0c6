package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anchore/libversion/libversion"
	"github.com/anchore/libversion/libversion/constraint"
)

var checkOpts struct {
	flags []string
}

var checkCmd = &cobra.Command{
	Use:   "check VERSION CONSTRAINT",
	Short: "Check whether a version satisfies a constraint (exits non-zero if not)",
	Long: `Constraints are units like ">= 1.0" joined by "," (all must hold) and "||" (any group must hold).
A version ending in ".*" stands for every version starting with it.`,
	Example: `  libversion check 1.2.3 ">= 1.0, < 2.0"
  libversion check 1.0.9 "1.0.*, != 1.0.3 || >= 3"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := versionFlags(checkOpts.flags)
		if err != nil {
			return err
		}
		return runCheck(cmd.OutOrStdout(), libversion.NewVersion(args[0], flags), args[1])
	},
}

func init() {
	checkCmd.Flags().StringSliceVar(&checkOpts.flags, "flags", nil, "comparison flags for the version (p-is-patch, any-is-patch, lower-bound, upper-bound)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(output io.Writer, v libversion.Version, phrase string) error {
	c, err := constraint.NewWithFlags(phrase, v.Flags)
	if err != nil {
		return err
	}

	if !c.SatisfiedBy(v) {
		return fmt.Errorf("%s does not satisfy %q", v.Raw, c)
	}

	_, err = fmt.Fprintf(output, "%s satisfies %q\n", v.Raw, c)
	return err
}
