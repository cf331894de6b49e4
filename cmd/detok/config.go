package main

import (
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the detok configuration file (~/.config/detok/config.yaml).
// It supplies defaults for flags the user did not set explicitly; a set flag
// always wins.
type Config struct {
	Output       string `yaml:"output"`
	InputFormat  string `yaml:"input_format"`
	OutputFormat string `yaml:"output_format"`
	ExtraOptions string `yaml:"extra_options"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "detok", "config.yaml")
}

// applyDecodeConfig applies config file defaults to decode command variables
// when the corresponding CLI flag was not explicitly set.
func applyDecodeConfig(c *cli.Command, cfg Config,
	output, inputFormat, outputFormat, extraOptions *string,
) {
	if cfg.Output != "" && !c.IsSet("output") {
		*output = cfg.Output
	}
	if cfg.InputFormat != "" && !c.IsSet("input-format") && !c.IsSet("input_format") {
		*inputFormat = cfg.InputFormat
	}
	if cfg.OutputFormat != "" && !c.IsSet("output-format") && !c.IsSet("output_format") {
		*outputFormat = cfg.OutputFormat
	}
	if cfg.ExtraOptions != "" && !c.IsSet("extra-options") && !c.IsSet("extra_options") {
		*extraOptions = cfg.ExtraOptions
	}
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		logFormat = cfg.LogFormat
	}
}

// LoadConfig reads the config file. Returns a zero Config if the file doesn't exist.
func LoadConfig() Config {
	path := configPath()
	if path == "" {
		return Config{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}
	return cfg
}
