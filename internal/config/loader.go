package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Lander LanderConfig `yaml:"lander"`
	Thor   ThorConfig   `yaml:"thor"`
}

// Default returns the tuning the bots were scored with on the platform.
func Default() *Config {
	return &Config{
		Lander: DefaultLander(),
		Thor:   DefaultThor(),
	}
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads a tuning file on top of the defaults. Keys absent from the
// file keep their default value. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.Lander.Validate(); err != nil {
		return err
	}
	return c.Thor.Validate()
}

// YAML renders the effective tuning table.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
