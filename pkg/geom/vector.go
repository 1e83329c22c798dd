package geom

import (
	"errors"
	"fmt"

	"github.com/golang/geo/r3"
)

var ErrIndexOutOfRange = errors.New("vector index out of range")

// Vector is an immutable point or direction in 3-D space.
type Vector struct {
	v r3.Vector
}

func NewVector(x, y, z float64) Vector {
	return Vector{r3.Vector{X: x, Y: y, Z: z}}
}

func (v Vector) X() float64 { return v.v.X }
func (v Vector) Y() float64 { return v.v.Y }
func (v Vector) Z() float64 { return v.v.Z }

// At returns the component at index i, where 0, 1 and 2 are x, y and z.
func (v Vector) At(i int) (float64, error) {
	switch i {
	case 0:
		return v.v.X, nil
	case 1:
		return v.v.Y, nil
	case 2:
		return v.v.Z, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
}

func (v Vector) Add(o Vector) Vector  { return Vector{v.v.Add(o.v)} }
func (v Vector) Sub(o Vector) Vector  { return Vector{v.v.Sub(o.v)} }
func (v Vector) Mul(k float64) Vector { return Vector{v.v.Mul(k)} }

// Div follows IEEE division, so a zero k yields infinities or NaN.
func (v Vector) Div(k float64) Vector {
	return NewVector(v.v.X/k, v.v.Y/k, v.v.Z/k)
}

func (v Vector) Dot(o Vector) float64  { return v.v.Dot(o.v) }
func (v Vector) Cross(o Vector) Vector { return Vector{v.v.Cross(o.v)} }
func (v Vector) Len() float64          { return v.v.Norm() }

func (v Vector) IsZero() bool        { return Default.IsZero(v) }
func (v Vector) Equal(o Vector) bool { return Default.Equal(v, o) }

func (v Vector) Array() [3]float64 { return [3]float64{v.v.X, v.v.Y, v.v.Z} }

func FromArray(a [3]float64) Vector { return NewVector(a[0], a[1], a[2]) }

func (v Vector) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.v.X, v.v.Y, v.v.Z)
}

func Dot(a, b Vector) float64  { return a.Dot(b) }
func Cross(a, b Vector) Vector { return a.Cross(b) }

func Collinear(a, b Vector) bool { return Default.Collinear(a, b) }

func Coplanar(a, b, c Vector) bool { return Default.Coplanar(a, b, c) }
