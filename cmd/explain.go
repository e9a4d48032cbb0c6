package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/anchore/libversion/libversion"
)

var explainOpts struct {
	flags []string
}

var explainCmd = &cobra.Command{
	Use:   "explain VERSION",
	Short: "Show the components a version is compared by",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags, err := versionFlags(explainOpts.flags)
		if err != nil {
			return err
		}
		return runExplain(cmd.OutOrStdout(), libversion.NewVersion(args[0], flags))
	},
}

func init() {
	explainCmd.Flags().StringSliceVar(&explainOpts.flags, "flags", nil, "comparison flags for the version (p-is-patch, any-is-patch, lower-bound, upper-bound)")

	rootCmd.AddCommand(explainCmd)
}

func runExplain(output io.Writer, v libversion.Version) error {
	components := libversion.Components(v.Raw, v.Flags)
	if len(components) == 0 {
		_, err := fmt.Fprintf(output, "%q has no components, it compares as the padding of every version\n", v.Raw)
		return err
	}

	table := tablewriter.NewWriter(output)
	table.SetHeader([]string{"#", "Kind", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for i, c := range components {
		table.Append([]string{strconv.Itoa(i), c.Kind.String(), componentValue(c)})
	}
	table.Render()
	return nil
}

func componentValue(c libversion.Component) string {
	switch c.Kind {
	case libversion.NonZeroKind:
		return c.Number
	case libversion.ZeroKind:
		return "0"
	case libversion.PreReleaseKind, libversion.PostReleaseKind, libversion.LetterSuffixKind:
		return string(c.Letter)
	}
	return ""
}
