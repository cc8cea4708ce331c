package config

import (
	"errors"
	"fmt"
)

var ErrInvalid = errors.New("invalid tuning")

// LanderConfig holds every constant the Mars Lander bots steer by.
// Speeds are m/s, distances are map units, powers are thrust levels.
type LanderConfig struct {
	MaxHorizontalSpeed int `yaml:"max_horizontal_speed"` // touchdown limit
	MaxVerticalSpeed   int `yaml:"max_vertical_speed"`   // touchdown limit
	SpeedBuffer        int `yaml:"speed_buffer"`
	MaxWidth           int `yaml:"max_width"`
	MaxHeight          int `yaml:"max_height"` // vertices at or above are ignored as peaks
	FlatWidth          int `yaml:"flat_width"` // minimum pad length
	PadRadius          int `yaml:"pad_radius"`
	LandingDistance    int `yaml:"landing_distance"`

	Gravity   float64 `yaml:"gravity"`
	MaxThrust float64 `yaml:"max_thrust"`
	MaxPower  int     `yaml:"max_power"`
	MaxRotate int     `yaml:"max_rotate"`

	SlowSpeed     int `yaml:"slow_speed"`
	FastSpeed     int `yaml:"fast_speed"`
	CeilingY      int `yaml:"ceiling_y"`
	CeilingPower  int `yaml:"ceiling_power"`
	ApproachPower int `yaml:"approach_power"`
	GlidePower    int `yaml:"glide_power"`
	BrakeSpeed    int `yaml:"brake_speed"` // level 1 only, negative is falling
}

func DefaultLander() LanderConfig {
	return LanderConfig{
		MaxHorizontalSpeed: 20,
		MaxVerticalSpeed:   40,
		SpeedBuffer:        10,
		MaxWidth:           7000,
		MaxHeight:          3000,
		FlatWidth:          1000,
		PadRadius:          500,
		LandingDistance:    50,

		Gravity:   3.711,
		MaxThrust: 4,
		MaxPower:  4,
		MaxRotate: 90,

		SlowSpeed:     40,
		FastSpeed:     80,
		CeilingY:      2900,
		CeilingPower:  2,
		ApproachPower: 3,
		GlidePower:    1,
		BrakeSpeed:    -35,
	}
}

// MaxAccel is the net upward acceleration of a vertical full burn.
func (c LanderConfig) MaxAccel() float64 {
	return c.MaxThrust - c.Gravity
}

func (c LanderConfig) Validate() error {
	switch {
	case c.SpeedBuffer < 0:
		return fmt.Errorf("%w: speed_buffer %d is negative", ErrInvalid, c.SpeedBuffer)
	case c.MaxHorizontalSpeed <= c.SpeedBuffer || c.MaxVerticalSpeed <= c.SpeedBuffer:
		return fmt.Errorf("%w: touchdown speeds must exceed speed_buffer %d", ErrInvalid, c.SpeedBuffer)
	case c.MaxWidth <= 0 || c.MaxHeight <= 0:
		return fmt.Errorf("%w: map %dx%d", ErrInvalid, c.MaxWidth, c.MaxHeight)
	case c.FlatWidth <= 0:
		return fmt.Errorf("%w: flat_width %d", ErrInvalid, c.FlatWidth)
	case c.PadRadius < 0 || c.LandingDistance < 0:
		return fmt.Errorf("%w: pad_radius and landing_distance must not be negative", ErrInvalid)
	case c.Gravity <= 0 || c.MaxThrust <= c.Gravity:
		return fmt.Errorf("%w: max_thrust %.3f cannot beat gravity %.3f", ErrInvalid, c.MaxThrust, c.Gravity)
	case c.MaxPower <= 0 || c.MaxRotate <= 0 || c.MaxRotate > 180:
		return fmt.Errorf("%w: max_power %d, max_rotate %d", ErrInvalid, c.MaxPower, c.MaxRotate)
	case c.SlowSpeed > c.FastSpeed:
		return fmt.Errorf("%w: slow_speed %d above fast_speed %d", ErrInvalid, c.SlowSpeed, c.FastSpeed)
	}
	for _, p := range []struct {
		name  string
		power int
	}{
		{"ceiling_power", c.CeilingPower},
		{"approach_power", c.ApproachPower},
		{"glide_power", c.GlidePower},
	} {
		if p.power < 0 || p.power > c.MaxPower {
			return fmt.Errorf("%w: %s %d outside 0..%d", ErrInvalid, p.name, p.power, c.MaxPower)
		}
	}
	return nil
}
