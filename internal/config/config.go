// Package config loads the settings a generation run needs from the
// environment and an optional .env file, following the same viper-backed
// shape this corpus's EHR API server uses for its own configuration.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything Generate needs to run one pass: where to read
// input rows from, where to write the SS-MIX2 tree, how much parallelism
// to use, whether the inputs are already known-valid, and the seed that
// makes the run reproducible.
type Config struct {
	SourceDir        string `mapstructure:"SOURCE_DIR"`
	OutputDir        string `mapstructure:"OUTPUT_DIR"`
	MaxWorkers       int    `mapstructure:"MAX_WORKERS"`
	AlreadyValidated bool   `mapstructure:"ALREADY_VALIDATED"`
	Seed             int64  `mapstructure:"SEED"`
	FacilityCode     string `mapstructure:"FACILITY_CODE"`
	FacilityName     string `mapstructure:"FACILITY_NAME"`
}

// Load reads configuration from environment variables (and a .env file,
// if present), applying defaults for everything but SourceDir and
// OutputDir.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("MAX_WORKERS", 4)
	v.SetDefault("ALREADY_VALIDATED", false)
	v.SetDefault("SEED", int64(42))
	v.SetDefault("FACILITY_NAME", "Sample General Hospital")

	v.BindEnv("SOURCE_DIR")
	v.BindEnv("OUTPUT_DIR")
	v.BindEnv("MAX_WORKERS")
	v.BindEnv("ALREADY_VALIDATED")
	v.BindEnv("SEED")
	v.BindEnv("FACILITY_CODE")
	v.BindEnv("FACILITY_NAME")

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that a Config is complete enough to run a generation
// pass.
func (c *Config) Validate() error {
	if c.SourceDir == "" {
		return fmt.Errorf("config: SOURCE_DIR is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: OUTPUT_DIR is required")
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("config: MAX_WORKERS must be >= 1, got %d", c.MaxWorkers)
	}
	if c.FacilityCode == "" {
		return fmt.Errorf("config: FACILITY_CODE is required")
	}
	return nil
}
