package veech

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/teichmath/veech/exact"
	"github.com/teichmath/veech/hyperbolic"
)

func TestNewHalfPlaneErrors(t *testing.T) {
	f := exact.Rationals()

	// A constant inequality has no boundary geodesic.
	hp, err := NewHalfPlane(f.Zero(), f.Zero(), f.One())
	assert.Nil(t, hp)
	assert.True(t, errors.Is(err, hyperbolic.ErrDegenerateHalfPlane), "got %v", err)

	// u² + v² + 1 ≥ 0 holds everywhere; the circle is imaginary.
	hp, err = NewHalfPlane(f.One(), f.Zero(), f.One())
	assert.Nil(t, hp)
	assert.True(t, errors.Is(err, hyperbolic.ErrDegenerateHalfPlane))

	hp, err = NewHalfPlane(f.Zero(), f.Int(2), f.Int(2))
	assert.NoError(t, err)
	assert.True(t, hp.IsLine())
}

func TestNewTriangleErrors(t *testing.T) {
	f := exact.Rationals()
	vec := func(x, y int64) exact.Vec {
		return exact.NewVec(f.Int(x), f.Int(y))
	}

	_, err := NewTriangle(vec(1, 0), vec(0, 1), vec(0, -1))
	assert.True(t, errors.Is(err, hyperbolic.ErrNonClosingPolygon), "got %v", err)

	// Clockwise edge vectors.
	_, err = NewTriangle(vec(0, 1), vec(1, 0), vec(-1, -1))
	assert.True(t, errors.Is(err, hyperbolic.ErrWrongOrientation), "got %v", err)

	tri, err := NewTriangle(vec(1, 0), vec(0, 1), vec(-1, -1))
	assert.NoError(t, err)
	assert.True(t, tri.Area().Equal(f.Rat(1, 2)))

	// Barycentric coordinates must be a convex combination.
	_, err = NewTriangle(vec(1, 0), vec(0, 1), vec(-1, -1), MarkedPoint{
		Coords: [3]exact.Num{f.One(), f.One(), f.One()},
	})
	assert.True(t, errors.Is(err, hyperbolic.ErrInvalidBarycentric), "got %v", err)
}

func TestNewHingeErrors(t *testing.T) {
	f := exact.Rationals()
	vec := func(x, y int64) exact.Vec {
		return exact.NewVec(f.Int(x), f.Int(y))
	}
	tri, err := NewTriangle(vec(1, 0), vec(0, 1), vec(-1, -1))
	assert.NoError(t, err)

	_, err = NewHinge(tri, 0, tri, 0)
	assert.True(t, errors.Is(err, hyperbolic.ErrMismatchedGluing), "got %v", err)
}

func TestNewTriangulationErrors(t *testing.T) {
	f := exact.Rationals()
	vec := func(x, y int64) exact.Vec {
		return exact.NewVec(f.Int(x), f.Int(y))
	}
	lower, err := NewTriangle(vec(1, 0), vec(0, 1), vec(-1, -1))
	assert.NoError(t, err)
	upper, err := NewTriangle(vec(1, 1), vec(-1, 0), vec(0, -1))
	assert.NoError(t, err)

	_, err = NewTriangulation([]Triangle{lower, upper}, map[EdgeRef]EdgeRef{
		{Triangle: 0, Edge: 0}: {Triangle: 1, Edge: 1},
		{Triangle: 1, Edge: 1}: {Triangle: 0, Edge: 0},
	}, f)
	assert.True(t, errors.Is(err, hyperbolic.ErrMismatchedGluing), "got %v", err)
}

func TestApplyMatrixErrors(t *testing.T) {
	f := exact.Rationals()
	torus := SquareTorus()

	// A reflection reverses every triangle's orientation.
	flip := exact.NewMat(f.One(), f.Zero(), f.Zero(), f.Int(-1))
	_, err := ApplyMatrix(torus, flip)
	assert.True(t, errors.Is(err, hyperbolic.ErrWrongOrientation), "got %v", err)

	shear := exact.NewMat(f.One(), f.One(), f.Zero(), f.One())
	sheared, err := ApplyMatrix(torus, shear)
	assert.NoError(t, err)
	assert.False(t, sheared.IsDelaunay(false))
}

func TestSquareTorusEndToEnd(t *testing.T) {
	torus := SquareTorus()

	assert.True(t, torus.IsDelaunay(false))
	assert.Len(t, torus.HalfPlanes(), 3)
}
