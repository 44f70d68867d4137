package config

import (
	"github.com/spf13/viper"

	"github.com/LeJamon/goXRPLkit/internal/core/probe"
)

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.time_format", "15:04:05")
	v.SetDefault("log.no_color", false)

	// The empty passphrase is the throwaway key fee probes are signed with.
	v.SetDefault("probe.definitions_file", "")
	v.SetDefault("probe.passphrase", "")
	v.SetDefault("probe.definitions_cache_size", probe.DefaultDefinitionsCacheSize)

	v.SetDefault("output.indent", "  ")
	v.SetDefault("output.language", "en")
}
