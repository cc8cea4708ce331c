// Package thor walks Thor to the light of power one cell per turn,
// moving diagonally until one axis lines up.
package thor

import (
	"errors"
	"fmt"

	"puzzle_bots/internal/config"
)

var ErrOffMap = errors.New("position outside the map")

type Pos struct{ X, Y int }

type Stepper struct {
	light Pos
	pos   Pos
}

func New(cfg config.ThorConfig, light, start Pos) (*Stepper, error) {
	for _, p := range []Pos{light, start} {
		if p.X < 0 || p.X > cfg.MaxX || p.Y < 0 || p.Y > cfg.MaxY {
			return nil, fmt.Errorf("%w: (%d,%d) on a %dx%d map", ErrOffMap, p.X, p.Y, cfg.MaxX+1, cfg.MaxY+1)
		}
	}
	return &Stepper{light: light, pos: start}, nil
}

func (s *Stepper) Pos() Pos { return s.pos }

// Arrived reports whether Thor stands on the light.
func (s *Stepper) Arrived() bool { return s.pos == s.light }

// Step moves Thor one cell toward the light and returns the compass
// direction taken, e.g. "SE". Y grows southwards. The result is empty when
// Thor is already on the light.
func (s *Stepper) Step() string {
	var ns, ew string
	switch {
	case s.pos.Y < s.light.Y:
		ns = "S"
		s.pos.Y++
	case s.pos.Y > s.light.Y:
		ns = "N"
		s.pos.Y--
	}
	switch {
	case s.pos.X < s.light.X:
		ew = "E"
		s.pos.X++
	case s.pos.X > s.light.X:
		ew = "W"
		s.pos.X--
	}
	return ns + ew
}
