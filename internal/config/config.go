// Internal/config/config.go.

package config

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

type Config struct {
	InputFile  string `yaml:"input_file"`
	LogLevel   string `yaml:"log_level"`
	ConfigFile string `yaml:"-"`
}

var (
	parseOnce sync.Once
	flagInput string
	flagLevel string
	flagFile  string
)

// Precedence: defaults, then flags, then config file, then environment.
func NewConfig() (*Config, error) {
	parseOnce.Do(func() {
		flag.StringVar(&flagInput, "f", "urls.csv", "path to input CSV file with URLs")
		flag.StringVar(&flagLevel, "l", "info", "log level for diagnostics")
		flag.StringVar(&flagFile, "c", "", "path to YAML config file")
		flag.Parse()
	})

	cfg := Config{
		InputFile:  flagInput,
		LogLevel:   flagLevel,
		ConfigFile: flagFile,
	}

	if envConfigFile, ok := os.LookupEnv("CONFIG_FILE"); ok {
		cfg.ConfigFile = envConfigFile
	}
	if cfg.ConfigFile != "" {
		if err := cfg.applyFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}
	if envInputFile, ok := os.LookupEnv("INPUT_FILE"); ok {
		cfg.InputFile = envInputFile
	}
	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}
	return &cfg, nil
}

// applyFile overrides only the fields the YAML file actually sets.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if fileCfg.InputFile != "" {
		c.InputFile = fileCfg.InputFile
	}
	if fileCfg.LogLevel != "" {
		c.LogLevel = fileCfg.LogLevel
	}
	return nil
}
