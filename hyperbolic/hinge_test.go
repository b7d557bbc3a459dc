package hyperbolic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teichmath/veech/exact"
)

func squareTorusTriangles() (Triangle, Triangle) {
	lower := NewTriangle(rationalVec(1, 0), rationalVec(0, 1), rationalVec(-1, -1))
	upper := NewTriangle(rationalVec(1, 1), rationalVec(-1, 0), rationalVec(0, -1))
	return lower, upper
}

func TestHingeFromTriangles(t *testing.T) {
	lower, upper := squareTorusTriangles()

	// The diagonal gluing: lower edge 2 against upper edge 0.
	hinge := HingeFromTriangles(lower, 2, upper, 0)
	assert.True(t, hinge.W0.Equal(rationalVec(-1, 0)))
	assert.True(t, hinge.W1.Equal(rationalVec(-1, -1)))
	assert.True(t, hinge.W2.Equal(rationalVec(0, -1)))
}

func TestHingeFromTrianglesRejectsBadGluing(t *testing.T) {
	lower, upper := squareTorusTriangles()

	// Lower edge 0 is (1, 0); upper edge 0 is (1, 1) — not a negation.
	assert.Panics(t, func() { HingeFromTriangles(lower, 0, upper, 0) })
	// Same vector twice is parallel but oriented the same way.
	assert.Panics(t, func() { HingeFromTriangles(lower, 0, lower, 0) })
}

func TestIncircleTest(t *testing.T) {
	f := exact.Rationals()
	lower, upper := squareTorusTriangles()

	// The square torus diagonal is exactly cocircular.
	diagonal := HingeFromTriangles(lower, 2, upper, 0)
	assert.Equal(t, 0, diagonal.IncircleTest().Sign())

	// The side hinges are strict.
	bottom := HingeFromTriangles(lower, 0, upper, 1)
	assert.True(t, bottom.IncircleTest().Equal(f.Int(2)))
	side := HingeFromTriangles(lower, 1, upper, 2)
	assert.Equal(t, 1, side.IncircleTest().Sign())
}

func TestHingeHalfPlane(t *testing.T) {
	f := exact.Rationals()
	lower, upper := squareTorusTriangles()

	// The bottom hinge gives the circle 2(u² + v²) + 2u ≥ 0.
	hp, ok := HingeFromTriangles(lower, 0, upper, 1).HalfPlane()
	assert.True(t, ok)
	assert.True(t, hp.Equal(FromIneq(f.Int(2), f.Int(2), f.Zero())))

	// The diagonal hinge gives the line −2u ≥ 0.
	hp, ok = HingeFromTriangles(lower, 2, upper, 0).HalfPlane()
	assert.True(t, ok)
	assert.True(t, hp.Equal(FromIneq(f.Zero(), f.Int(-2), f.Zero())))

	// The side hinge gives the line 2u + 2 ≥ 0.
	hp, ok = HingeFromTriangles(lower, 1, upper, 2).HalfPlane()
	assert.True(t, ok)
	assert.True(t, hp.Equal(FromIneq(f.Zero(), f.Int(2), f.Int(2))))
}

func TestHingeHalfPlaneDegenerate(t *testing.T) {
	f := exact.Rationals()
	vec := func(x, y int64) exact.Vec {
		return exact.NewVec(f.Int(x), f.Int(y))
	}

	// Symmetric hinge vectors make both the a and b determinants vanish:
	// the Delaunay inequality holds for every deformation, so there is no
	// constraint to extract.
	degenerate := Hinge{W0: vec(1, 0), W1: vec(0, 1), W2: vec(-1, 0)}
	hp, ok := degenerate.HalfPlane()
	assert.False(t, ok)
	assert.Nil(t, hp)

	// The incircle test itself is still meaningful.
	assert.Equal(t, 1, degenerate.IncircleTest().Sign())
}
