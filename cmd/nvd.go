package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anchore/libversion/internal/log"
	"github.com/anchore/libversion/libversion/vrange"
)

var nvdCmd = &cobra.Command{
	Use:   "nvd FEED VENDOR:PRODUCT VERSION",
	Short: "List the CVEs of an NVD JSON feed affecting a product version",
	Example: `  libversion nvd nvdcve-1.1-2020.json gnu:bash 4.3.48
  libversion nvd nvdcve-1.1-2020.json openssl:openssl 1.1.1f`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		vendor, product, ok := strings.Cut(args[1], ":")
		if !ok || vendor == "" || product == "" {
			return fmt.Errorf("expected VENDOR:PRODUCT, got %q", args[1])
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("unable to open feed: %w", err)
		}
		defer log.CloseAndLogError(f, args[0])

		return runNVD(cmd.OutOrStdout(), f, vendor, product, args[2])
	},
}

func init() {
	rootCmd.AddCommand(nvdCmd)
}

func runNVD(output io.Writer, feedReader io.Reader, vendor, product, version string) error {
	feed, err := vrange.ReadFeed(feedReader)
	if err != nil {
		return err
	}

	vulns := vrange.FromFeed(feed)
	log.Debugf("read %d CVEs with usable CPE matches", len(vulns))

	for _, id := range vrange.AffectedBy(vulns, vendor, product, version) {
		if _, err := fmt.Fprintln(output, id); err != nil {
			return err
		}
	}
	return nil
}
