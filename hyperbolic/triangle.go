package hyperbolic

import (
	"github.com/teichmath/veech/exact"
)

// MarkedPoint is a point of interest inside a triangle, carried along
// through reflections and deformations: barycentric coordinates plus an RGB
// color for whoever eventually draws it. The color is display metadata only
// and takes no part in any geometry.
type MarkedPoint struct {
	Coords [3]exact.Num
	Color  [3]float64
}

func (mp MarkedPoint) valid() bool {
	sum := mp.Coords[0].Add(mp.Coords[1]).Add(mp.Coords[2])
	if !sum.Equal(sum.Field().One()) {
		return false
	}
	for _, coord := range mp.Coords {
		if coord.Sign() < 0 {
			return false
		}
	}
	return true
}

// Triangle is three edge vectors that close up (v0 + v1 + v2 = 0) and wind
// counter-clockwise (det[v0, −v2] > 0), plus an optional list of marked
// points. Immutable; all transformations return a new Triangle.
type Triangle struct {
	v0, v1, v2 exact.Vec
	marked     []MarkedPoint
}

func NewTriangle(v0, v1, v2 exact.Vec, marked ...MarkedPoint) Triangle {
	if !v0.Add(v1).Add(v2).IsZero() {
		throwf(ErrNonClosingPolygon, "edges %v, %v, %v", v0, v1, v2)
	}
	if v0.Det(v2.Neg()).Sign() <= 0 {
		throwf(ErrWrongOrientation, "edges %v, %v, %v", v0, v1, v2)
	}
	for _, mp := range marked {
		if !mp.valid() {
			throwf(ErrInvalidBarycentric, "(%v, %v, %v)", mp.Coords[0], mp.Coords[1], mp.Coords[2])
		}
	}
	t := Triangle{v0: v0, v1: v1, v2: v2}
	t.marked = append(t.marked, marked...)
	return t
}

// Edge returns the edge vector at index 0, 1, or 2. Any other index is a
// caller bug.
func (t Triangle) Edge(i int) exact.Vec {
	switch i {
	case 0:
		return t.v0
	case 1:
		return t.v1
	case 2:
		return t.v2
	}
	throwf(ErrIndexOutOfRange, "edge %d: a triangle has only three edges", i)
	return exact.Vec{}
}

func (t Triangle) MarkedPoints() []MarkedPoint {
	out := make([]MarkedPoint, len(t.marked))
	copy(out, t.marked)
	return out
}

// MarkPoint returns a copy of the triangle with the point marked. Marking
// coordinates that are already marked updates their color in place instead
// of adding a duplicate.
func (t Triangle) MarkPoint(coords [3]exact.Num, color [3]float64) Triangle {
	mp := MarkedPoint{Coords: coords, Color: color}
	if !mp.valid() {
		throwf(ErrInvalidBarycentric, "(%v, %v, %v)", coords[0], coords[1], coords[2])
	}
	for i, existing := range t.marked {
		if existing.Coords[0].Equal(coords[0]) &&
			existing.Coords[1].Equal(coords[1]) &&
			existing.Coords[2].Equal(coords[2]) {
			updated := t.MarkedPoints()
			updated[i] = mp
			return Triangle{v0: t.v0, v1: t.v1, v2: t.v2, marked: updated}
		}
	}
	return Triangle{v0: t.v0, v1: t.v1, v2: t.v2, marked: append(t.MarkedPoints(), mp)}
}

// Reflect flips the triangle across the edge at idx, producing the triangle
// on the far side of that edge. The axis edge reverses and the other two
// edges reflect across the axis direction; the cyclic relabeling keeps the
// result counter-clockwise.
func (t Triangle) Reflect(idx int) Triangle {
	axis := t.Edge(idx)
	succ := t.Edge((idx + 1) % 3)
	pred := t.Edge((idx + 2) % 3)

	var sides [3]exact.Vec
	sides[idx] = axis.Neg()
	sides[(idx+1)%3] = reflectVector(axis, pred.Neg())
	sides[(idx+2)%3] = reflectVector(axis, succ.Neg())
	return NewTriangle(sides[0], sides[1], sides[2], t.marked...)
}

// reflectVector reflects w across the line spanned by v: w − 2·w⊥ where w⊥
// is the component of w perpendicular to v.
func reflectVector(v, w exact.Vec) exact.Vec {
	two := v.X.Field().Int(2)
	parallel := v.Scale(v.Dot(w).Div(v.Dot(v)))
	perp := w.Sub(parallel)
	return w.Sub(perp.Scale(two))
}

// ApplyMatrix deforms the triangle by m. The third edge is recomputed from
// the closing invariant; an orientation-reversing matrix fails the usual
// construction checks.
func (t Triangle) ApplyMatrix(m exact.Mat) Triangle {
	w0 := m.Apply(t.v0)
	w1 := m.Apply(t.v1)
	w2 := w0.Add(w1).Neg()
	return NewTriangle(w0, w1, w2, t.marked...)
}

// Vertices lays the triangle out from a basepoint: base, base + v0,
// base − v2.
func (t Triangle) Vertices(basepoint exact.Vec) [3]exact.Vec {
	return [3]exact.Vec{
		basepoint,
		basepoint.Add(t.v0),
		basepoint.Sub(t.v2),
	}
}

func (t Triangle) Area() exact.Num {
	half := t.v0.X.Field().Rat(1, 2)
	det := t.v0.Det(t.v2.Neg())
	if det.Sign() < 0 {
		det = det.Neg()
	}
	return half.Mul(det)
}

func (t Triangle) Equal(o Triangle) bool {
	return t.v0.Equal(o.v0) && t.v1.Equal(o.v1) && t.v2.Equal(o.v2)
}

func (t Triangle) Key() string {
	return t.v0.Key() + ";" + t.v1.Key() + ";" + t.v2.Key()
}

func (t Triangle) String() string {
	return "Triangle(" + t.v0.String() + ", " + t.v1.String() + ", " + t.v2.String() + ")"
}
