package geom

import (
	"errors"
	"fmt"
)

var (
	ErrDegenerateSegment = errors.New("segment endpoints coincide")
	ErrZeroDirection     = errors.New("zero-length direction vector")
)

// Segment is the closed line segment from Start to End. Segments built
// with NewSegment always have a non-zero Direction.
type Segment struct {
	start, end Vector
}

func NewSegment(start, end Vector) (Segment, error) {
	return Default.NewSegment(start, end)
}

func (tol Tolerance) NewSegment(start, end Vector) (Segment, error) {
	if tol.IsZero(end.Sub(start)) {
		return Segment{}, fmt.Errorf("%w: %v", ErrDegenerateSegment, start)
	}
	return Segment{start: start, end: end}, nil
}

// MustSegment is like NewSegment but panics on degenerate input.
func MustSegment(start, end Vector) Segment {
	s, err := NewSegment(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

func (s Segment) Start() Vector     { return s.start }
func (s Segment) End() Vector       { return s.end }
func (s Segment) Direction() Vector { return s.end.Sub(s.start) }

// Reversed swaps the endpoints.
func (s Segment) Reversed() Segment {
	return Segment{start: s.end, end: s.start}
}

// At returns start + t*direction.
func (s Segment) At(t float64) Vector {
	return s.start.Add(s.Direction().Mul(t))
}

func (s Segment) String() string {
	return fmt.Sprintf("%v-%v", s.start, s.end)
}

// Parameter projects point onto the infinite line through s and returns t
// such that s.At(t) is the closest point on that line.
func Parameter(point Vector, s Segment) (float64, error) {
	return Default.Parameter(point, s)
}

func (tol Tolerance) Parameter(point Vector, s Segment) (float64, error) {
	dir := s.Direction()
	if tol.IsZero(dir) {
		return 0, ErrZeroDirection
	}
	return Dot(point.Sub(s.start), dir) / Dot(dir, dir), nil
}
