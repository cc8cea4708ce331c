// Package turnio speaks the puzzle platform's line protocol: whitespace
// separated integers in, one short text line out per turn.
package turnio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"puzzle_bots/internal/lander"
)

var ErrBadCount = errors.New("bad point count")

// maxPoints bounds the terrain header so a corrupt count cannot make the
// reader allocate without limit.
const maxPoints = 1 << 16

type Reader struct {
	sc *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

func (r *Reader) next() (int, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	v, err := strconv.Atoi(r.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", r.sc.Text(), err)
	}
	return v, nil
}

// Ints fills dst in order. It returns io.EOF only when the input ends
// before the first value, and io.ErrUnexpectedEOF when it ends part way.
func (r *Reader) Ints(dst ...*int) error {
	for i, p := range dst {
		v, err := r.next()
		if err == io.EOF && i > 0 {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// Terrain reads the point count followed by that many X Y pairs.
func (r *Reader) Terrain() (lander.Terrain, error) {
	var n int
	if err := r.Ints(&n); err != nil {
		return nil, err
	}
	if n < 0 || n > maxPoints {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	t := make(lander.Terrain, n)
	for i := range t {
		if err := r.Ints(&t[i].X, &t[i].Y); err != nil {
			return nil, fmt.Errorf("terrain point %d: %w", i, noEOF(err))
		}
	}
	return t, nil
}

// LanderState reads X Y HS VS F R P.
func (r *Reader) LanderState() (lander.State, error) {
	var s lander.State
	err := r.Ints(&s.X, &s.Y, &s.HSpeed, &s.VSpeed, &s.Fuel, &s.Rotate, &s.Power)
	return s, err
}

// noEOF turns a clean end of input into a truncation.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
