package config

import "fmt"

type ThorConfig struct {
	MaxX int `yaml:"max_x"`
	MaxY int `yaml:"max_y"`
}

func DefaultThor() ThorConfig {
	return ThorConfig{MaxX: 39, MaxY: 17}
}

func (c ThorConfig) Validate() error {
	if c.MaxX < 0 || c.MaxY < 0 {
		return fmt.Errorf("%w: thor map %dx%d", ErrInvalid, c.MaxX, c.MaxY)
	}
	return nil
}
