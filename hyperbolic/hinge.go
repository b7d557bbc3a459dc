package hyperbolic

import (
	"github.com/teichmath/veech/exact"
)

// Hinge is the quadrilateral configuration spanning two triangles glued
// along an edge, reduced to the three vectors that matter for the Delaunay
// condition at that edge. It is the source of both the incircle test and the
// half-plane constraint.
type Hinge struct {
	W0, W1, W2 exact.Vec
}

// HingeFromTriangles builds the hinge across the gluing t1.Edge(e1) ↔
// t2.Edge(e2). The two edge vectors must be exact negations of each other;
// anything else means the claimed gluing is not a gluing.
func HingeFromTriangles(t1 Triangle, e1 int, t2 Triangle, e2 int) Hinge {
	edge1, edge2 := t1.Edge(e1), t2.Edge(e2)
	if !edge1.Equal(edge2.Neg()) {
		throwf(ErrMismatchedGluing, "edges %v and %v are either nonparallel or oriented incorrectly", edge1, edge2)
	}
	return Hinge{
		W0: t2.Edge((e2 + 1) % 3),
		W1: edge1,
		W2: t1.Edge((e1 + 2) % 3).Neg(),
	}
}

func (h Hinge) vectors() [3]exact.Vec {
	return [3]exact.Vec{h.W0, h.W1, h.W2}
}

// IncircleTest is the determinant with rows [x, y, x² + y²] over the hinge
// vectors. Non-negative means the hinge satisfies the weak Delaunay
// condition, positive means strict.
func (h Hinge) IncircleTest() exact.Num {
	var rows [3][3]exact.Num
	for i, v := range h.vectors() {
		rows[i] = [3]exact.Num{v.X, v.Y, v.X.Mul(v.X).Add(v.Y.Mul(v.Y))}
	}
	return exact.Det3(rows)
}

// HalfPlane is the set of deformation parameters under which this hinge's
// Delaunay inequality keeps holding, as a half-plane in the upper half-plane
// model. A hinge whose inequality holds identically (or fails identically)
// produces a degenerate coefficient triple and contributes no constraint,
// reported by ok = false.
func (h Hinge) HalfPlane() (*HalfPlane, bool) {
	var rowsA, rowsB, rowsC [3][3]exact.Num
	for i, v := range h.vectors() {
		x, y := v.X, v.Y
		rowsA[i] = [3]exact.Num{x, y, y.Mul(y)}
		rowsB[i] = [3]exact.Num{x, y, x.Mul(y)}
		rowsC[i] = [3]exact.Num{x, y, x.Mul(x)}
	}
	two := h.W0.X.Field().Int(2)
	a := exact.Det3(rowsA)
	b := two.Mul(exact.Det3(rowsB))
	c := exact.Det3(rowsC)

	if a.IsZero() && b.IsZero() {
		return nil, false
	}
	if !a.IsZero() && discriminant(a, b, c).Sign() <= 0 {
		return nil, false
	}
	return FromIneq(a, b, c), true
}
