package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the hostwatch settings loaded from a YAML file. Fields left
// unset fall back to the defaults below.
type Config struct {
	WatchIntervalSeconds  int    `yaml:"watch_interval_seconds"`
	SampleIntervalSeconds int    `yaml:"sample_interval_seconds"`
	LogFile               string `yaml:"log_file"`
	LogLevel              string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		WatchIntervalSeconds:  2,
		SampleIntervalSeconds: 1,
		LogLevel:              "info",
	}
}

// Load reads the configuration from path. A missing file is not an error and
// yields the defaults, so the settings file stays optional.
func Load(path string) (*Config, error) {
	config := Default()

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(contents, config); err != nil {
		return nil, err
	}

	if config.WatchIntervalSeconds <= 0 {
		config.WatchIntervalSeconds = 2
	}
	if config.SampleIntervalSeconds <= 0 {
		config.SampleIntervalSeconds = 1
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	return config, nil
}

func (config *Config) WatchInterval() time.Duration {
	return time.Duration(config.WatchIntervalSeconds) * time.Second
}

func (config *Config) SampleInterval() time.Duration {
	return time.Duration(config.SampleIntervalSeconds) * time.Second
}
