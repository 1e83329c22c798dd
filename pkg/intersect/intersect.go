// Package intersect classifies the relationship between two segments in
// 3-D space.
package intersect

import (
	"fmt"

	"github.com/cfoust/segint/pkg/geom"

	"github.com/rs/zerolog"
)

// Intersector holds the tolerance used for every comparison made while
// classifying a pair of segments. A zero Tolerance means geom.Default.
type Intersector struct {
	Tolerance geom.Tolerance
	Log       zerolog.Logger
}

func New(tol geom.Tolerance) Intersector {
	return Intersector{
		Tolerance: tol,
		Log:       zerolog.Nop(),
	}
}

func (in Intersector) WithLogger(logger zerolog.Logger) Intersector {
	in.Log = logger
	return in
}

var defaultIntersector = New(geom.Default)

func (in Intersector) tolerance() geom.Tolerance {
	if in.Tolerance <= 0 {
		return geom.Default
	}
	return in.Tolerance
}

// Intersection classifies s1 against s2 using geom.Default.
func Intersection(s1, s2 geom.Segment) (Result, error) {
	return defaultIntersector.Intersection(s1, s2)
}

// Intersection classifies s1 against s2. An error is only returned for
// segments that bypassed geom.NewSegment and have no direction; the result
// is then KindNoIntersection without a point.
func (in Intersector) Intersection(s1, s2 geom.Segment) (Result, error) {
	tol := in.tolerance()

	for _, s := range []geom.Segment{s1, s2} {
		if tol.IsZero(s.Direction()) {
			return kindResult(KindNoIntersection), fmt.Errorf("%w: %v", geom.ErrDegenerateSegment, s)
		}
	}

	v1 := s1.Direction()
	v2 := s2.Direction()
	connection := s2.Start().Sub(s1.Start())

	if !tol.Coplanar(v1, v2, connection) {
		in.Log.Debug().Msgf("%v and %v are not coplanar", s1, s2)
		return kindResult(KindNonCoplanar), nil
	}

	if tol.Collinear(v1, v2) {
		collinearity, point, err := in.ClassifyCollinear(s1, s2)
		if err != nil {
			return kindResult(KindNoIntersection), fmt.Errorf("could not classify collinear segments: %w", err)
		}

		in.Log.Debug().
			Str("collinearity", collinearity.String()).
			Msgf("%v and %v are collinear", s1, s2)

		return Result{
			Kind:  collinearity.Kind(),
			Point: point,
		}, nil
	}

	// s1.Start + t1*v1 = s2.Start + t2*v2. Crossing both sides with v2
	// (or v1) eliminates the other parameter.
	normal := geom.Cross(v1, v2)
	denominator := geom.Dot(normal, normal)
	t1 := tol.Snap(geom.Dot(geom.Cross(connection, v2), normal) / denominator)
	t2 := tol.Snap(geom.Dot(geom.Cross(connection, v1), normal) / denominator)

	in.Log.Trace().
		Float64("t1", t1).
		Float64("t2", t2).
		Msg("solved segment parameters")

	if !inUnit(t1) || !inUnit(t2) {
		return kindResult(KindNoIntersection), nil
	}

	return pointResult(s1.At(t1)), nil
}

func inUnit(t float64) bool {
	return t >= 0 && t <= 1
}
