package lander

import "fmt"

// Descender lands a lander that starts right above a pad and only has to
// control its fall. Rotation is never changed.
type Descender struct {
	rules Rules
	pad   Point
	drop  int // spawn altitude above the pad
}

func NewDescender(r Rules, t Terrain, spawn State) (*Descender, error) {
	pad, err := r.LandingSite(t)
	if err != nil {
		return nil, fmt.Errorf("locate landing site: %w", err)
	}
	return &Descender{rules: r, pad: pad, drop: spawn.Y - pad.Y}, nil
}

func (d *Descender) Pad() Point { return d.pad }

// StopTime is the number of whole turns a full vertical burn needs to
// cancel vs.
func (d *Descender) StopTime(vs int) int {
	return int(float64(-vs) / d.rules.cfg.MaxAccel())
}

// StopPosition predicts the altitude at which a full burn started now
// would bring the lander to rest.
func (d *Descender) StopPosition(vs, y, stopTime int) int {
	t := float64(stopTime)
	return int(d.rules.cfg.MaxAccel()/2*t*t + float64(vs)*t + float64(y))
}

// Step throttles up once the predicted stop point drops below the spawn
// drop distance, and brakes hard past the brake speed. Otherwise the
// current settings are held.
func (d *Descender) Step(s State) Command {
	stop := d.StopPosition(s.VSpeed, s.Y, d.StopTime(s.VSpeed))
	if stop >= d.drop {
		return d.rules.Command(s.Rotate, s.Power)
	}
	power := d.rules.cfg.GlidePower
	if s.VSpeed < d.rules.cfg.BrakeSpeed {
		power = d.rules.cfg.MaxPower
	}
	return d.rules.Command(0, power)
}
