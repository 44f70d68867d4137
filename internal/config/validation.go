package config

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/LeJamon/goXRPLkit/internal/logger"
)

// ValidateConfig performs validation on the complete configuration
func ValidateConfig(config *Config) error {
	if err := config.Log.Validate(); err != nil {
		return fmt.Errorf("log validation failed: %w", err)
	}
	if err := config.Probe.Validate(); err != nil {
		return fmt.Errorf("probe validation failed: %w", err)
	}
	if err := config.Output.Validate(); err != nil {
		return fmt.Errorf("output validation failed: %w", err)
	}
	return nil
}

// Validate performs validation on the output configuration
func (o *OutputConfig) Validate() error {
	if _, err := language.Parse(o.Language); err != nil {
		return fmt.Errorf("language %q: %w", o.Language, err)
	}
	return nil
}

// Validate performs validation on the log configuration
func (l *LogConfig) Validate() error {
	if _, err := logger.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("level: %w (valid options: debug, info, warn, error)", err)
	}
	return nil
}

// Validate performs validation on the probe configuration
func (p *ProbeConfig) Validate() error {
	if p.DefinitionsCacheSize < 1 {
		return fmt.Errorf("definitions_cache_size must be positive, got %d", p.DefinitionsCacheSize)
	}
	return nil
}
