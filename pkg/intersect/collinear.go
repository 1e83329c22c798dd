package intersect

import (
	"math"

	"github.com/cfoust/segint/pkg/geom"

	"github.com/golang/geo/r1"
	opt "github.com/repeale/fp-go/option"
)

// Collinearity describes two segments with parallel directions.
type Collinearity uint8

const (
	// Parallel lines that never meet.
	CollinearParallel Collinearity = iota + 1
	// Same line, disjoint.
	CollinearOnOneLine
	// Same line, sharing a single point.
	CollinearTouch
	// Same line, sharing an interval.
	CollinearOverlap
)

func (c Collinearity) String() string {
	switch c {
	case CollinearParallel:
		return "parallel"
	case CollinearOnOneLine:
		return "on-one-line"
	case CollinearTouch:
		return "touch"
	case CollinearOverlap:
		return "overlap"
	}
	return "unknown"
}

// Kind maps a collinear configuration onto the top-level classification.
func (c Collinearity) Kind() Kind {
	switch c {
	case CollinearParallel:
		return KindParallel
	case CollinearOnOneLine:
		return KindCollinearNoOverlap
	case CollinearTouch:
		return KindIntersection
	}
	return KindOverlapping
}

// ClassifyCollinear determines how two segments with collinear directions
// share their supporting line. For CollinearTouch the shared point is
// returned as well.
func ClassifyCollinear(s1, s2 geom.Segment) (Collinearity, opt.Option[geom.Vector], error) {
	return defaultIntersector.ClassifyCollinear(s1, s2)
}

func (in Intersector) ClassifyCollinear(s1, s2 geom.Segment) (Collinearity, opt.Option[geom.Vector], error) {
	tol := in.tolerance()
	none := opt.None[geom.Vector]()

	offset := s1.Start().Sub(s2.Start())
	if !tol.IsZero(geom.Cross(s1.Direction(), offset)) {
		return CollinearParallel, none, nil
	}

	tStart, err := tol.Parameter(s2.Start(), s1)
	if err != nil {
		return 0, none, err
	}
	tEnd, err := tol.Parameter(s2.End(), s1)
	if err != nil {
		return 0, none, err
	}

	// Both parameters are relative to s1, so s1 itself spans [0, 1].
	overlay := r1.IntervalFromPoint(tStart).AddPoint(tEnd).Intersection(r1.Interval{Lo: 0, Hi: 1})
	length := overlay.Length()

	in.Log.Trace().
		Float64("lo", overlay.Lo).
		Float64("hi", overlay.Hi).
		Float64("length", length).
		Msg("collinear overlay")

	switch {
	case length > float64(tol):
		return CollinearOverlap, none, nil
	case math.Abs(length) < float64(tol):
		return CollinearTouch, opt.Some(touchPoint(tol, s1, overlay.Center())), nil
	}
	return CollinearOnOneLine, none, nil
}

// touchPoint resolves the single shared parameter on s1 to a point,
// preferring the exact endpoint when the point lands on one. Endpoints are
// matched in point space since t is scaled by the length of s1.
func touchPoint(tol geom.Tolerance, s1 geom.Segment, t float64) geom.Vector {
	t = math.Max(0, math.Min(1, t))
	switch t {
	case 0:
		return s1.Start()
	case 1:
		return s1.End()
	}

	point := s1.At(t)
	if tol.Equal(point, s1.Start()) {
		return s1.Start()
	}
	if tol.Equal(point, s1.End()) {
		return s1.End()
	}
	return point
}
