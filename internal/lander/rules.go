package lander

import (
	"math"

	"puzzle_bots/internal/config"
)

// State is one turn of lander telemetry.
type State struct {
	X, Y   int
	HSpeed int // m/s, negative is leftwards
	VSpeed int // m/s, negative is falling
	Fuel   int
	Rotate int
	Power  int
}

// Command is what the lander is told to do this turn.
type Command struct {
	Rotate int
	Power  int
}

// Rules evaluates the landing heuristics against one tuning table.
type Rules struct {
	cfg config.LanderConfig
}

func NewRules(cfg config.LanderConfig) Rules { return Rules{cfg: cfg} }

func DefaultRules() Rules { return NewRules(config.DefaultLander()) }

func (r Rules) Config() config.LanderConfig { return r.cfg }

func (r Rules) LandingSite(t Terrain) (Point, error) {
	return FindLandingSite(t, r.cfg.FlatWidth)
}

// SafeSpeeds reports whether touching down now would survive, with the
// speed buffer held back as margin.
func (r Rules) SafeSpeeds(hs, vs int) bool {
	return abs(vs) <= r.cfg.MaxVerticalSpeed-r.cfg.SpeedBuffer &&
		abs(hs) <= r.cfg.MaxHorizontalSpeed-r.cfg.SpeedBuffer
}

// StopRotation is the tilt that points a full burn straight against the
// current velocity.
func StopRotation(hs, vs int) int {
	speed := math.Hypot(float64(hs), float64(vs))
	if int(speed) == 0 {
		return 0
	}
	return int(degrees(math.Asin(float64(hs) / speed)))
}

// MoveRotation is the steepest tilt toward the pad that still holds
// altitude at full thrust.
func (r Rules) MoveRotation(x, padX int) int {
	angle := int(degrees(math.Acos(r.cfg.Gravity / r.cfg.MaxThrust)))
	if x < padX-r.cfg.PadRadius {
		return -angle
	}
	return angle
}

// HoverThrust burns flat out while falling and cuts the engine otherwise.
func (r Rules) HoverThrust(vs int) int {
	if vs < 0 {
		return r.cfg.MaxPower
	}
	return 0
}

func (r Rules) AbovePad(x, padX int) bool {
	return x >= padX-r.cfg.PadRadius && x <= padX+r.cfg.PadRadius
}

func (r Rules) AboutToLand(y, padY int) bool {
	return y < padY+r.cfg.LandingDistance
}

func (r Rules) TooSlow(hs int) bool { return abs(hs) < r.cfg.SlowSpeed }

func (r Rules) TooFast(hs int) bool { return abs(hs) > r.cfg.FastSpeed }

// Command clamps a raw rotation and power into what the lander accepts.
func (r Rules) Command(rotate, power int) Command {
	return Command{
		Rotate: max(-r.cfg.MaxRotate, min(rotate, r.cfg.MaxRotate)),
		Power:  max(0, min(power, r.cfg.MaxPower)),
	}
}
