package config

import (
	"github.com/spf13/viper"

	"github.com/anchore/libversion/libversion"
)

// versionFlags are the comparison flags applied to versions read from input, unless the command line says otherwise.
type versionFlags struct {
	PIsPatch   bool `yaml:"p-is-patch" json:"p-is-patch" mapstructure:"p-is-patch"`       // treat a lone "p" as a post-release ("1.0p1" is a patch)
	AnyIsPatch bool `yaml:"any-is-patch" json:"any-is-patch" mapstructure:"any-is-patch"` // treat every unknown word as a post-release
}

func (cfg versionFlags) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("flags.p-is-patch", false)
	v.SetDefault("flags.any-is-patch", false)
}

// Flags returns the comparison flags the options stand for.
func (cfg versionFlags) Flags() libversion.Flags {
	flags := libversion.NoFlags
	if cfg.PIsPatch {
		flags |= libversion.PIsPatch
	}
	if cfg.AnyIsPatch {
		flags |= libversion.AnyIsPatch
	}
	return flags
}
