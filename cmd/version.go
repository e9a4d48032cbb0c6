package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/anchore/libversion/internal"
	"github.com/anchore/libversion/internal/format"
	"github.com/anchore/libversion/internal/log"
	"github.com/anchore/libversion/internal/version"
)

var versionOutputFormat string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "show the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := printVersion(cmd.OutOrStdout(), format.Parse(versionOutputFormat), version.FromBuild()); err != nil {
			return err
		}
		if appConfig != nil && appConfig.CheckForAppUpdate {
			checkForApplicationUpdate(cmd.ErrOrStderr())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutputFormat, "output", "o", format.TextFormat.String(), fmt.Sprintf("format to show version information (available=%v)", format.Names(format.TextFormat, format.JSONFormat).List()))

	rootCmd.AddCommand(versionCmd)
}

func printVersion(output io.Writer, f format.Format, versionInfo version.Version) error {
	switch f {
	case format.TextFormat:
		_, err := fmt.Fprintf(output, `Application:    %s
Version:        %s
BuildDate:      %s
GitCommit:      %s
GitDescription: %s
Platform:       %s
GoVersion:      %s
Compiler:       %s
`,
			internal.ApplicationName,
			versionInfo.Version,
			versionInfo.BuildDate,
			versionInfo.GitCommit,
			versionInfo.GitDescription,
			versionInfo.Platform,
			versionInfo.GoVersion,
			versionInfo.Compiler,
		)
		return err
	case format.JSONFormat:
		enc := json.NewEncoder(output)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", " ")
		err := enc.Encode(&struct {
			version.Version
			Application string `json:"application"`
		}{
			Version:     versionInfo,
			Application: internal.ApplicationName,
		})
		if err != nil {
			return fmt.Errorf("failed to show version information: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unsupported output format: %s", f)
}

func checkForApplicationUpdate(output io.Writer) {
	log.Debugf("checking if new version of %s is available", internal.ApplicationName)
	isAvailable, newVersion, err := version.IsUpdateAvailable()
	if err != nil {
		// this should never stop the application
		log.Errorf("unable to check for an application update: %v", err)
	}
	if isAvailable {
		log.Infof("new version of %s is available: %s", internal.ApplicationName, newVersion)
		_, _ = fmt.Fprintf(output, "A newer version of %s is available: %s\n", internal.ApplicationName, newVersion)
	} else {
		log.Debugf("no new %s update available", internal.ApplicationName)
	}
}
