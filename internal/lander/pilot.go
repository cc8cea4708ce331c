package lander

import "fmt"

// Phase names the branch of the landing heuristic that produced a
// command. It is recomputed from telemetry every turn.
type Phase int

const (
	Approach Phase = iota // not above the pad yet
	Descent               // above the pad, still high
	Final                 // within landing distance of the pad
)

func (p Phase) String() string {
	switch p {
	case Approach:
		return "approach"
	case Descent:
		return "descent"
	case Final:
		return "final"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Course is everything carried from one turn to the next.
type Course struct {
	Pad   Point
	Dir   Direction
	Peaks PeakTracker
}

type Decision struct {
	Command
	Phase Phase
	Peak  Point
	// HasPeak is false once every peak on the way has been cleared.
	HasPeak bool
}

// Decide maps one turn of telemetry and the carried course to a command
// and the course for the next turn.
func Decide(r Rules, c Course, s State) (Decision, Course) {
	var d Decision
	var rotate, power int

	switch {
	case r.AbovePad(s.X, c.Pad.X) && r.AboutToLand(s.Y, c.Pad.Y):
		d.Phase = Final
		rotate, power = 0, r.HoverThrust(s.VSpeed)
		if !r.SafeSpeeds(s.HSpeed, s.VSpeed) {
			power = r.cfg.MaxPower
		}

	case r.AbovePad(s.X, c.Pad.X):
		d.Phase = Descent
		if !r.SafeSpeeds(s.HSpeed, s.VSpeed) {
			rotate, power = StopRotation(s.HSpeed, s.VSpeed), r.cfg.MaxPower
		} else {
			rotate, power = 0, r.cfg.GlidePower
		}

	default:
		d.Phase = Approach
		c.Peaks = c.Peaks.Advance(s.X)
		peak, ok := c.Peaks.Peak()

		switch {
		case ok && s.Y < peak.Y && !c.Peaks.Passed(s.X):
			rotate, power = StopRotation(s.HSpeed, s.VSpeed), r.cfg.MaxPower
		case r.TooSlow(s.HSpeed):
			rotate, power = r.MoveRotation(s.X, c.Pad.X), r.cfg.ApproachPower
		case r.TooFast(s.HSpeed):
			rotate, power = StopRotation(s.HSpeed, s.VSpeed), r.cfg.MaxPower
		default:
			rotate, power = 0, r.HoverThrust(s.VSpeed)
		}

		if s.Y >= r.cfg.CeilingY {
			power = r.cfg.CeilingPower
		}
	}

	d.Command = r.Command(rotate, power)
	d.Peak, d.HasPeak = c.Peaks.Peak()
	return d, c
}

// Pilot runs Decide turn after turn for one game.
type Pilot struct {
	rules  Rules
	course Course
}

// NewPilot locates the pad and fixes the travel direction and first peak
// from the opening telemetry. It fails before any turn is played if the
// terrain has no usable pad.
func NewPilot(r Rules, t Terrain, first State) (*Pilot, error) {
	pad, err := r.LandingSite(t)
	if err != nil {
		return nil, fmt.Errorf("locate landing site: %w", err)
	}
	dir := DirectionTo(first.X, pad.X)
	return &Pilot{
		rules: r,
		course: Course{
			Pad:   pad,
			Dir:   dir,
			Peaks: NewPeakTracker(t, dir, first.X, pad.X, r.cfg.MaxHeight),
		},
	}, nil
}

func (p *Pilot) Course() Course { return p.course }

func (p *Pilot) Step(s State) Decision {
	d, c := Decide(p.rules, p.course, s)
	p.course = c
	return d
}
