package lander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// canyon has its pad centred at (4750,150) and a 1500 high ridge on the way.
var canyon = Terrain{
	{0, 100}, {1000, 500}, {1500, 1500}, {3000, 1000},
	{4000, 150}, {5500, 150}, {6999, 800},
}

func newCanyonPilot(t *testing.T) *Pilot {
	t.Helper()
	p, err := NewPilot(DefaultRules(), canyon, State{X: 500, Y: 2700})
	require.NoError(t, err)
	return p
}

func TestNewPilot(t *testing.T) {
	p := newCanyonPilot(t)
	c := p.Course()
	assert.Equal(t, Point{4750, 150}, c.Pad)
	assert.Equal(t, Right, c.Dir)
	requirePeak(t, c.Peaks, Point{1500, 1500})
}

func TestNewPilotFailsFast(t *testing.T) {
	_, err := NewPilot(DefaultRules(), nil, State{})
	require.ErrorIs(t, err, ErrNoTerrain)

	_, err = NewPilot(DefaultRules(), Terrain{{0, 100}, {500, 100}, {1000, 300}}, State{})
	require.ErrorIs(t, err, ErrNoLandingSite)
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Command
		phase Phase
	}{
		{
			name:  "below the ridge burns against velocity",
			state: State{X: 1200, Y: 1400, HSpeed: 30, VSpeed: -10},
			want:  Command{Rotate: 71, Power: 4},
			phase: Approach,
		},
		{
			name:  "too slow tilts toward the pad",
			state: State{X: 500, Y: 2700},
			want:  Command{Rotate: -21, Power: 3},
			phase: Approach,
		},
		{
			name:  "near the ceiling power is capped",
			state: State{X: 500, Y: 2950},
			want:  Command{Rotate: -21, Power: 2},
			phase: Approach,
		},
		{
			name:  "too fast brakes",
			state: State{X: 2000, Y: 2000, HSpeed: 90, VSpeed: -10},
			want:  Command{Rotate: 83, Power: 4},
			phase: Approach,
		},
		{
			name:  "cruising while falling",
			state: State{X: 2000, Y: 2000, HSpeed: 50, VSpeed: -5},
			want:  Command{Rotate: 0, Power: 4},
			phase: Approach,
		},
		{
			name:  "cruising while climbing",
			state: State{X: 2000, Y: 2000, HSpeed: 50, VSpeed: 5},
			want:  Command{Rotate: 0, Power: 0},
			phase: Approach,
		},
		{
			name:  "descent at safe speed glides",
			state: State{X: 4750, Y: 1000, HSpeed: 5, VSpeed: -20},
			want:  Command{Rotate: 0, Power: 1},
			phase: Descent,
		},
		{
			name:  "descent too fast cancels velocity",
			state: State{X: 4500, Y: 1000, HSpeed: 3, VSpeed: -40},
			want:  Command{Rotate: 4, Power: 4},
			phase: Descent,
		},
		{
			name:  "final falling slowly",
			state: State{X: 4750, Y: 180, VSpeed: -10},
			want:  Command{Rotate: 0, Power: 4},
			phase: Final,
		},
		{
			name:  "final rising",
			state: State{X: 4750, Y: 180, VSpeed: 2},
			want:  Command{Rotate: 0, Power: 0},
			phase: Final,
		},
		{
			name:  "final unsafe keeps level and brakes",
			state: State{X: 4750, Y: 180, HSpeed: 15, VSpeed: 2, Rotate: 30},
			want:  Command{Rotate: 0, Power: 4},
			phase: Final,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := Decide(DefaultRules(), newCanyonPilot(t).Course(), tt.state)
			assert.Equal(t, tt.want, d.Command)
			assert.Equal(t, tt.phase, d.Phase)
		})
	}
}

func TestDecideOverPadAtMaxVerticalSpeed(t *testing.T) {
	terrain := Terrain{{0, 500}, {2000, 100}, {3000, 100}, {6999, 800}}
	p, err := NewPilot(DefaultRules(), terrain, State{X: 2500, Y: 2000, VSpeed: -39})
	require.NoError(t, err)
	require.Equal(t, Point{2500, 100}, p.Course().Pad)

	d := p.Step(State{X: 2500, Y: 2000, HSpeed: 0, VSpeed: -39})
	assert.Equal(t, Descent, d.Phase)
	assert.Equal(t, Command{Rotate: 0, Power: 4}, d.Command)
}

func TestDecideLeavesInputCourseAlone(t *testing.T) {
	c := newCanyonPilot(t).Course()
	s := State{X: 2000, Y: 2000, HSpeed: 50, VSpeed: -5}

	d1, next := Decide(DefaultRules(), c, s)
	d2, _ := Decide(DefaultRules(), c, s)

	assert.Equal(t, d1, d2)
	requirePeak(t, c.Peaks, Point{1500, 1500})
	requirePeak(t, next.Peaks, Point{3000, 1000})
}

func TestPilotCarriesPeakAcrossTurns(t *testing.T) {
	p := newCanyonPilot(t)

	d := p.Step(State{X: 800, Y: 2500, HSpeed: 45, VSpeed: -5})
	assert.Equal(t, Point{1500, 1500}, d.Peak)
	assert.True(t, d.HasPeak)

	d = p.Step(State{X: 1600, Y: 2400, HSpeed: 45, VSpeed: -5})
	assert.Equal(t, Point{3000, 1000}, d.Peak)

	d = p.Step(State{X: 3100, Y: 900, HSpeed: 45, VSpeed: -5})
	assert.Equal(t, Point{4000, 150}, d.Peak)
	assert.Equal(t, Command{Rotate: 0, Power: 4}, d.Command, "above the remaining peak")

	// once over the pad the tracker is left as it was
	d = p.Step(State{X: 4300, Y: 800, HSpeed: 5, VSpeed: -5})
	assert.Equal(t, Descent, d.Phase)
	assert.Equal(t, Point{4000, 150}, d.Peak)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "approach", Approach.String())
	assert.Equal(t, "descent", Descent.String())
	assert.Equal(t, "final", Final.String())
	assert.Equal(t, "phase(7)", Phase(7).String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
}
