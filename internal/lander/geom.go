package lander

import (
	"fmt"
	"math"
)

type Point struct{ X, Y int }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Terrain is the Mars surface as given by the platform: consecutive
// points are joined by straight segments.
type Terrain []Point

// Direction is the way the lander has to travel to reach the pad.
type Direction int

const (
	Right Direction = 1  // pad at larger X
	Left  Direction = -1 // pad at smaller X
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// DirectionTo picks the travel direction from x to the pad centre.
func DirectionTo(x, padX int) Direction {
	if x < padX {
		return Right
	}
	return Left
}

// beyond reports whether x lies strictly past ref when travelling in d.
func (d Direction) beyond(x, ref int) bool {
	if d == Left {
		return x < ref
	}
	return x > ref
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
