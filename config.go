package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls where inputs are found and how days are run. It is read
// from aoc.yaml.
type Config struct {
	Year     int               `yaml:"year"`
	DataDir  string            `yaml:"data_dir"`
	Input    string            `yaml:"input"`
	LogLevel string            `yaml:"log_level"`
	Days     map[int]DayConfig `yaml:"days"`
}

// DayConfig holds per-day settings.
type DayConfig struct {
	// Params are passed to days implementing Configurable.
	Params map[string]int `yaml:"params"`
	// Want optionally lists the expected answers for parts 1 and 2. An empty
	// entry is not checked.
	Want []string `yaml:"want"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.Year = Or(c.Year, 2022)
	c.DataDir = Or(c.DataDir, "data")
	c.Input = Or(c.Input, "input.txt")
	c.LogLevel = Or(c.LogLevel, "info")
}

// Day returns the settings for day n, which may be empty.
func (c *Config) Day(n int) DayConfig {
	return c.Days[n]
}

// LoadConfig reads the YAML file at path. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for n, d := range c.Days {
		if len(d.Want) > 2 {
			return nil, fmt.Errorf("config %s: day %d: want has %d answers, at most 2 allowed", path, n, len(d.Want))
		}
	}
	c.setDefaults()
	return &c, nil
}
