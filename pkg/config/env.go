package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are the ARENA_* variables. A nil field is unset and leaves
// the config alone; a variable set to an empty value still applies.
type EnvOverrides struct {
	SourceURL     *string        `env:"ARENA_SOURCE_URL"`
	SourceTimeout *time.Duration `env:"ARENA_SOURCE_TIMEOUT"`
	DefaultSort   *string        `env:"ARENA_DEFAULT_SORT"`
}

// ApplyEnv overlays the environment onto c.
func (c *Config) ApplyEnv() error {
	overrides, err := env.ParseAs[EnvOverrides]()
	if err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	overrides.fillEmpty(os.LookupEnv)
	c.apply(overrides)
	return nil
}

// fillEmpty marks variables that are present but empty. env skips empty
// values, which would make them indistinguishable from unset ones.
func (o *EnvOverrides) fillEmpty(lookup func(string) (string, bool)) {
	if v, ok := lookup("ARENA_SOURCE_URL"); ok && v == "" && o.SourceURL == nil {
		o.SourceURL = new(string)
	}
	if v, ok := lookup("ARENA_SOURCE_TIMEOUT"); ok && v == "" && o.SourceTimeout == nil {
		o.SourceTimeout = new(time.Duration)
	}
	if v, ok := lookup("ARENA_DEFAULT_SORT"); ok && v == "" && o.DefaultSort == nil {
		o.DefaultSort = new(string)
	}
}

func (c *Config) apply(o EnvOverrides) {
	if o.SourceURL != nil {
		c.Source.URL = *o.SourceURL
	}
	if o.SourceTimeout != nil {
		c.Source.Timeout = Duration{*o.SourceTimeout}
	}
	if o.DefaultSort != nil {
		c.UI.DefaultSort = *o.DefaultSort
	}
}
