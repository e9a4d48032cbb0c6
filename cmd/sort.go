package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/anchore/libversion/internal"
	"github.com/anchore/libversion/internal/format"
	"github.com/anchore/libversion/internal/log"
	"github.com/anchore/libversion/internal/presenter"
	"github.com/anchore/libversion/internal/presenter/models"
	"github.com/anchore/libversion/libversion"
	"github.com/anchore/libversion/libversion/pkgorder"
)

type sortOptions struct {
	reverse  bool
	unique   bool
	packages bool
}

var sortOpts sortOptions

var sortCmd = &cobra.Command{
	Use:   "sort [FILE]",
	Short: "Sort versions read from a file or stdin, one per line",
	Long: `Sorts versions (one per line, "#" starts a comment) in ascending order.

With --packages every line is "NAME VERSION [FLAG,...]" using package flags such as
rolling, sink or p-is-patch; packages are grouped by name, newest first.`,
	Example: `  libversion sort versions.txt
  printf '1.0\n1.0rc1\n1.0.1\n' | libversion sort -o table
  libversion sort --packages -o json packages.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readInputLines(args)
		if err != nil {
			return err
		}

		doc, err := sortDocument(lines, appConfig.Flags.Flags(), sortOpts)
		if err != nil {
			return err
		}

		pres := presenter.GetPresenter(format.Parse(appConfig.Output), presenter.Config{
			TemplateFilePath: appConfig.OutputTemplate,
			WithColor:        useColor(),
		}, doc)
		if pres == nil {
			return fmt.Errorf("unsupported output format %q", appConfig.Output)
		}
		return pres.Present(cmd.OutOrStdout())
	},
}

func init() {
	sortCmd.Flags().BoolVarP(&sortOpts.reverse, "reverse", "r", false, "reverse the order")
	sortCmd.Flags().BoolVarP(&sortOpts.unique, "unique", "u", false, "keep only the first of versions comparing equal")
	sortCmd.Flags().BoolVar(&sortOpts.packages, "packages", false, `read "NAME VERSION [FLAGS]" lines and order them as packages`)

	flag := "output"
	sortCmd.Flags().StringP(
		flag, "o", format.TextFormat.String(),
		fmt.Sprintf("report output formatter, options=%v", format.Names().List()),
	)
	bindFlag(flag, sortCmd.Flags().Lookup(flag))

	flag = "template"
	sortCmd.Flags().StringP(
		flag, "t", "",
		"specify the path to a Go template file (requires '-o template')",
	)
	bindFlag("output-template-file", sortCmd.Flags().Lookup(flag))

	rootCmd.AddCommand(sortCmd)
}

func readInputLines(args []string) ([]string, error) {
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("unable to open input: %w", err)
		}
		defer log.CloseAndLogError(f, args[0])
		return internal.ReadLines(f)
	}

	isPipedInput, err := internal.IsPipedInput()
	if err != nil {
		return nil, err
	}
	if !isPipedInput {
		return nil, fmt.Errorf("no input given: provide a file or pipe versions to stdin")
	}
	return internal.ReadLines(os.Stdin)
}

func sortDocument(lines []string, flags libversion.Flags, opts sortOptions) (models.Document, error) {
	if opts.packages {
		return sortPackages(lines, flags, opts)
	}

	versions := make([]libversion.Version, 0, len(lines))
	for _, line := range lines {
		versions = append(versions, libversion.NewVersion(line, flags))
	}

	if opts.reverse {
		libversion.SortDescending(versions)
	} else {
		libversion.Sort(versions)
	}

	if opts.unique {
		versions = uniqueVersions(versions)
	}

	log.Debugf("sorted %s versions", humanize.Comma(int64(len(versions))))
	return models.NewDocument(versions), nil
}

func sortPackages(lines []string, flags libversion.Flags, opts sortOptions) (models.Document, error) {
	packages := make([]pkgorder.Entry, 0, len(lines))
	for _, line := range lines {
		entry, err := pkgorder.ParseEntry(line)
		if err != nil {
			return models.Document{}, err
		}
		// configured comparison flags apply to every package
		if flags.Has(libversion.PIsPatch) {
			entry.PackageFlags |= pkgorder.PIsPatch
		}
		if flags.Has(libversion.AnyIsPatch) {
			entry.PackageFlags |= pkgorder.AnyIsPatch
		}
		packages = append(packages, entry)
	}

	pkgorder.SortByNameAscVersionDescending(packages)
	if opts.reverse {
		for i, j := 0, len(packages)-1; i < j; i, j = i+1, j-1 {
			packages[i], packages[j] = packages[j], packages[i]
		}
	}

	if opts.unique {
		unique := packages[:0]
		for i, p := range packages {
			if i == 0 || p.Name() != packages[i-1].Name() || pkgorder.CompareByVersion(p, packages[i-1]) != 0 {
				unique = append(unique, p)
			}
		}
		packages = unique
	}

	log.Debugf("sorted %s packages", humanize.Comma(int64(len(packages))))
	return models.NewPackageDocument(packages), nil
}

// uniqueVersions drops versions comparing equal to their predecessor, the slice must be sorted.
func uniqueVersions(versions []libversion.Version) []libversion.Version {
	unique := versions[:0]
	for i, v := range versions {
		if i == 0 || !v.Equal(versions[i-1]) {
			unique = append(unique, v)
		}
	}
	return unique
}
