package geom

import (
	"fmt"
	"math"
)

// Epsilon is the threshold below which two quantities are treated as equal.
const Epsilon = 1e-12

// Tolerance is the epsilon used by comparisons and predicates. Every
// tolerance-dependent operation takes its tolerance explicitly; the
// package-level helpers use Default.
type Tolerance float64

const Default Tolerance = Epsilon

func (tol Tolerance) Validate() error {
	eps := float64(tol)
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return fmt.Errorf("tolerance must be a positive finite number, got %v", eps)
	}
	return nil
}

// Near reports whether |a - b| < tol.
func (tol Tolerance) Near(a, b float64) bool {
	return math.Abs(a-b) < float64(tol)
}

// Equal compares each component of a and b independently.
func (tol Tolerance) Equal(a, b Vector) bool {
	return tol.Near(a.X(), b.X()) && tol.Near(a.Y(), b.Y()) && tol.Near(a.Z(), b.Z())
}

func (tol Tolerance) IsZero(v Vector) bool {
	return v.Len() < float64(tol)
}

// Collinear reports whether a and b are parallel or anti-parallel.
func (tol Tolerance) Collinear(a, b Vector) bool {
	return tol.IsZero(Cross(a, b))
}

// Coplanar tests the scalar triple product of a, b and c.
func (tol Tolerance) Coplanar(a, b, c Vector) bool {
	return math.Abs(Dot(Cross(a, b), c)) < float64(tol)
}

// Snap pulls a segment parameter onto 0 or 1 when it lies within tol of
// either end.
func (tol Tolerance) Snap(t float64) float64 {
	if tol.Near(t, 0) {
		return 0
	}
	if tol.Near(t, 1) {
		return 1
	}
	return t
}
