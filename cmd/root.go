package cmd

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/anchore/libversion/internal"
	"github.com/anchore/libversion/internal/config"
	"github.com/anchore/libversion/libversion"
)

var cliOpts = config.CliOnlyOptions{}

var rootCmd = &cobra.Command{
	Use:   internal.ApplicationName,
	Short: "Compare and order version strings from any packaging ecosystem",
	Long: `Compares version strings the way a human reads them, without knowing which ecosystem they come from:

    1.0alpha1 < 1.0 < 1.0patch1 < 1.0.1 < 1.0a < 1.1
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	setGlobalCliOptions()
}

func setGlobalCliOptions() {
	rootCmd.PersistentFlags().StringVarP(&cliOpts.ConfigPath, "config", "c", "", "application config file")
	rootCmd.PersistentFlags().CountVarP(&cliOpts.Verbosity, "verbose", "v", "increase verbosity (-v = info, -vv = debug)")

	flag := "quiet"
	rootCmd.PersistentFlags().BoolP(
		flag, "q", false,
		"suppress all logging output",
	)
	bindFlag(flag, rootCmd.PersistentFlags().Lookup(flag))

	flag = "p-is-patch"
	rootCmd.PersistentFlags().Bool(
		flag, false,
		`treat a lone "p" as a post-release ("1.0p1" is a patch to 1.0, as in OpenSSH)`,
	)
	bindFlag("flags."+flag, rootCmd.PersistentFlags().Lookup(flag))

	flag = "any-is-patch"
	rootCmd.PersistentFlags().Bool(
		flag, false,
		"treat every unknown word as a post-release",
	)
	bindFlag("flags."+flag, rootCmd.PersistentFlags().Lookup(flag))
}

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag.Name, err)
		os.Exit(1)
	}
}

// useColor reports whether stdout is a terminal able to show colors.
func useColor() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && color.SupportColor()
}

// versionFlags combines the configured comparison flags with the named ones.
func versionFlags(names []string) (libversion.Flags, error) {
	flags, err := libversion.ParseFlags(names...)
	if err != nil {
		return libversion.NoFlags, err
	}
	if appConfig != nil {
		flags |= appConfig.Flags.Flags()
	}
	return flags, nil
}
