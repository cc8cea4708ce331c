package lander

import "slices"

// PeakTracker follows the tallest terrain vertex the lander still has to
// clear on its way to the pad. It is a value: Advance returns the updated
// tracker and leaves the receiver untouched.
type PeakTracker struct {
	terrain   Terrain
	dir       Direction
	limitX    int // vertices past the pad centre are ignored
	maxHeight int // vertices at or above are ignored

	peak Point
	ok   bool
}

// NewPeakTracker starts tracking from fromX, counting a vertex exactly at
// fromX as still ahead.
func NewPeakTracker(t Terrain, dir Direction, fromX, limitX, maxHeight int) PeakTracker {
	pt := PeakTracker{
		terrain:   slices.Clone(t),
		dir:       dir,
		limitX:    limitX,
		maxHeight: maxHeight,
	}
	pt.peak, pt.ok = pt.tallest(fromX, true)
	return pt
}

// Peak returns the tracked vertex. ok is false once nothing is left to clear.
func (pt PeakTracker) Peak() (Point, bool) { return pt.peak, pt.ok }

func (pt PeakTracker) Direction() Direction { return pt.dir }

// Passed reports whether a lander at x has gone past the tracked peak.
func (pt PeakTracker) Passed(x int) bool {
	if !pt.ok {
		return true
	}
	return !pt.dir.beyond(pt.peak.X, x)
}

// Advance moves on to the next peak once the lander at x has passed the
// current one.
func (pt PeakTracker) Advance(x int) PeakTracker {
	if !pt.ok || !pt.Passed(x) {
		return pt
	}
	pt.peak, pt.ok = pt.tallest(x, false)
	return pt
}

func (pt PeakTracker) tallest(fromX int, inclusive bool) (Point, bool) {
	var best Point
	found := false
	consider := func(p Point) {
		if p.Y >= pt.maxHeight || pt.dir.beyond(p.X, pt.limitX) {
			return
		}
		if !pt.dir.beyond(p.X, fromX) && !(inclusive && p.X == fromX) {
			return
		}
		// strict: on a tie the vertex met first in travel order stays
		if !found || p.Y > best.Y {
			best, found = p, true
		}
	}
	if pt.dir == Left {
		for i := len(pt.terrain) - 1; i >= 0; i-- {
			consider(pt.terrain[i])
		}
	} else {
		for _, p := range pt.terrain {
			consider(p)
		}
	}
	return best, found
}
