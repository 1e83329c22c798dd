package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorArithmetic(t *testing.T) {
	a := NewVector(1, 2, 3)
	b := NewVector(4, -5, 6)

	assert.Equal(t, NewVector(5, -3, 9), a.Add(b))
	assert.Equal(t, NewVector(-3, 7, -3), a.Sub(b))
	assert.Equal(t, NewVector(2, 4, 6), a.Mul(2))
	assert.Equal(t, NewVector(0.5, 1, 1.5), a.Div(2))
	assert.Equal(t, 12.0, Dot(a, b))
	assert.Equal(t, NewVector(27, 6, -13), Cross(a, b))
	assert.Equal(t, 5.0, NewVector(3, 4, 0).Len())
}

func TestVectorDivByZero(t *testing.T) {
	v := NewVector(1, -1, 0).Div(0)
	assert.True(t, math.IsInf(v.X(), 1))
	assert.True(t, math.IsInf(v.Y(), -1))
	assert.True(t, math.IsNaN(v.Z()))
}

func TestVectorAt(t *testing.T) {
	v := NewVector(7, 8, 9)
	for i, want := range []float64{7, 8, 9} {
		got, err := v.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, i := range []int{-1, 3, 100} {
		_, err := v.At(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestVectorEquality(t *testing.T) {
	a := NewVector(1, 1, 1)
	assert.True(t, a.Equal(NewVector(1+Epsilon/2, 1, 1-Epsilon/2)))
	assert.False(t, a.Equal(NewVector(1+2*Epsilon, 1, 1)))

	assert.True(t, NewVector(Epsilon/4, 0, 0).IsZero())
	assert.False(t, NewVector(2*Epsilon, 0, 0).IsZero())

	loose := Tolerance(1e-3)
	assert.True(t, loose.Equal(a, NewVector(1.0005, 1, 1)))
	assert.True(t, loose.IsZero(NewVector(1e-4, 0, 0)))
}

func TestPredicates(t *testing.T) {
	x := NewVector(1, 0, 0)
	y := NewVector(0, 1, 0)
	z := NewVector(0, 0, 1)

	assert.True(t, Collinear(x, x.Mul(-3)))
	assert.False(t, Collinear(x, y))

	assert.True(t, Coplanar(x, y, x.Add(y)))
	assert.False(t, Coplanar(x, y, z))
	assert.True(t, Coplanar(x, x, z))
}

func TestToleranceValidate(t *testing.T) {
	assert.NoError(t, Default.Validate())
	assert.Error(t, Tolerance(0).Validate())
	assert.Error(t, Tolerance(-1).Validate())
	assert.Error(t, Tolerance(math.NaN()).Validate())
	assert.Error(t, Tolerance(math.Inf(1)).Validate())
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 0.0, Default.Snap(Epsilon/2))
	assert.Equal(t, 0.0, Default.Snap(-Epsilon/2))
	assert.Equal(t, 1.0, Default.Snap(1+Epsilon/2))
	assert.Equal(t, 0.5, Default.Snap(0.5))
	assert.Equal(t, -0.1, Default.Snap(-0.1))
}

func TestSegment(t *testing.T) {
	_, err := NewSegment(NewVector(1, 1, 0), NewVector(1, 1, 0))
	assert.ErrorIs(t, err, ErrDegenerateSegment)

	_, err = NewSegment(NewVector(1, 2, 3), NewVector(1, 2, 3+Epsilon/10))
	assert.ErrorIs(t, err, ErrDegenerateSegment)

	_, err = NewSegment(NewVector(0, 0, 0), NewVector(0.000001, 0.000001, 0.000001))
	assert.NoError(t, err)

	s, err := NewSegment(NewVector(1, 0, 0), NewVector(3, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, NewVector(2, 2, 0), s.Direction())
	assert.Equal(t, NewVector(2, 1, 0), s.At(0.5))
	assert.Equal(t, s.End(), s.Reversed().Start())

	assert.Panics(t, func() {
		MustSegment(NewVector(0, 0, 0), NewVector(0, 0, 0))
	})
}

func TestParameter(t *testing.T) {
	s := MustSegment(NewVector(0, 0, 0), NewVector(4, 0, 0))

	for _, test := range []struct {
		point Vector
		want  float64
	}{
		{NewVector(0, 0, 0), 0},
		{NewVector(4, 0, 0), 1},
		{NewVector(2, 5, -1), 0.5},
		{NewVector(-4, 1, 0), -1},
		{NewVector(6, 0, 3), 1.5},
	} {
		got, err := Parameter(test.point, s)
		require.NoError(t, err)
		assert.InDelta(t, test.want, got, Epsilon, "point %v", test.point)
	}

	_, err := Parameter(NewVector(1, 1, 1), Segment{})
	assert.ErrorIs(t, err, ErrZeroDirection)
}
