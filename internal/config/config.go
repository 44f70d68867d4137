package config

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/LeJamon/goXRPLkit/internal/logger"
)

// Config represents the complete xrplkit configuration
type Config struct {
	Log    LogConfig    `toml:"log" mapstructure:"log"`
	Probe  ProbeConfig  `toml:"probe" mapstructure:"probe"`
	Output OutputConfig `toml:"output" mapstructure:"output"`

	configPath string
}

// LogConfig represents the [log] section
type LogConfig struct {
	Level      string `toml:"level" mapstructure:"level"`
	TimeFormat string `toml:"time_format" mapstructure:"time_format"`
	NoColor    bool   `toml:"no_color" mapstructure:"no_color"`
}

// ProbeConfig represents the [probe] section
type ProbeConfig struct {
	// DefinitionsFile is a server_definitions JSON document used instead of
	// the built-in XRPL table. Empty keeps the built-in table.
	DefinitionsFile      string `toml:"definitions_file" mapstructure:"definitions_file"`
	Passphrase           string `toml:"passphrase" mapstructure:"passphrase"`
	DefinitionsCacheSize int    `toml:"definitions_cache_size" mapstructure:"definitions_cache_size"`
}

// OutputConfig represents the [output] section
type OutputConfig struct {
	Indent   string `toml:"indent" mapstructure:"indent"`
	Language string `toml:"language" mapstructure:"language"`
}

// SlogLevel returns the configured level. Validation has already rejected
// unknown names.
func (l *LogConfig) SlogLevel() slog.Level {
	level, _ := logger.ParseLevel(l.Level)
	return level
}

// LoggerOptions returns the logger options for this section.
func (l *LogConfig) LoggerOptions() *logger.Options {
	return &logger.Options{
		Level:      l.SlogLevel(),
		TimeFormat: l.TimeFormat,
		NoColor:    l.NoColor,
	}
}

// LoadDefinitions reads the configured definitions file. It returns nil
// when no file is configured.
func (p *ProbeConfig) LoadDefinitions() ([]byte, error) {
	if p.DefinitionsFile == "" {
		return nil, nil
	}
	data, err := os.ReadFile(p.DefinitionsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions file %s: %w", p.DefinitionsFile, err)
	}
	return data, nil
}

// Tag returns the language descriptions are rendered in.
func (o *OutputConfig) Tag() language.Tag {
	tag, err := language.Parse(o.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// GetConfigPath returns the path of the loaded config file, empty when
// only defaults and environment were used.
func (c *Config) GetConfigPath() string {
	return c.configPath
}
