package lander

import (
	"errors"
	"fmt"
)

var (
	ErrNoTerrain     = errors.New("terrain needs at least two points")
	ErrNoLandingSite = errors.New("no flat segment wide enough to land on")
)

// FindLandingSite returns the centre of the first horizontal segment at
// least minWidth long.
func FindLandingSite(t Terrain, minWidth int) (Point, error) {
	if len(t) < 2 {
		return Point{}, fmt.Errorf("%w: got %d", ErrNoTerrain, len(t))
	}
	for i := 0; i+1 < len(t); i++ {
		a, b := t[i], t[i+1]
		if a.Y != b.Y || abs(b.X-a.X) < minWidth {
			continue
		}
		return Point{X: (a.X + b.X) / 2, Y: a.Y}, nil
	}
	return Point{}, fmt.Errorf("%w: %d segments scanned, need %d wide", ErrNoLandingSite, len(t)-1, minWidth)
}
