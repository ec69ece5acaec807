package internal

import (
	"fmt"

	"github.com/hbomb79/Strata/internal/ffmpeg"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the struct used to contain the various user config
// supplied by file, environment, or manually inside the code.
type Config struct {
	Ffmpeg   ffmpeg.Config `yaml:"ffmpeg"`
	LogLevel string        `yaml:"log_level" env:"STRATA_LOG_LEVEL" env-default:"info"`

	// TargetGop is the segment length (in seconds) used when a request
	// does not specify one.
	TargetGop int `yaml:"target_gop" env:"STRATA_TARGET_GOP" env-default:"5"`

	// Profiles lists the tags of the profiles to enable, in the order they
	// should be considered. When empty, every built-in profile is enabled in
	// its default order.
	Profiles []string `yaml:"profiles" env:"STRATA_PROFILES" env-separator:","`
}

// LoadFromFile loads a YAML configuration file in to the Config, applying
// environment overrides and defaults.
func (config *Config) LoadFromFile(configPath string) error {
	if err := cleanenv.ReadConfig(configPath, config); err != nil {
		return fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}

	return config.validate()
}

// LoadFromEnv populates the Config using only the environment and defaults.
func (config *Config) LoadFromEnv() error {
	if err := cleanenv.ReadEnv(config); err != nil {
		return fmt.Errorf("failed to load configuration from environment: %w", err)
	}

	return config.validate()
}

func (config *Config) validate() error {
	if config.TargetGop <= 0 {
		return fmt.Errorf("target_gop must be greater than zero, got %d", config.TargetGop)
	}

	return nil
}
