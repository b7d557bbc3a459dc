package hyperbolic

import (
	"github.com/teichmath/veech/exact"
)

// Point is a position on the closed ideal boundary of the upper half-plane
// model: a coordinate on the real axis, a point above it, or the point at
// infinity. V2 holds the squared Euclidean height — squared because boundary
// intersections produce the height only up to a square root, and no consumer
// of these points ever needs the root itself (see IntersectBoundaries).
// Ideal boundary points have V2 zero.
type Point struct {
	U   exact.Radical
	V2  exact.Num
	Inf bool
}

func NewPoint(u exact.Radical, v2 exact.Num) Point {
	if v2.Sign() < 0 {
		panic("hyperbolic: negative squared height")
	}
	return Point{U: u, V2: v2}
}

// Infinity is the point at infinity. Its U and V2 fields carry no meaning.
func Infinity() Point {
	return Point{Inf: true}
}

// boundaryPoint puts a field element on the real axis.
func boundaryPoint(u exact.Num) Point {
	return Point{U: u.Radical(), V2: u.Field().Zero()}
}

func (p Point) IsInfinity() bool {
	return p.Inf
}

func (p Point) Equal(o Point) bool {
	if p.Inf || o.Inf {
		return p.Inf == o.Inf
	}
	return p.U.Equal(o.U) && p.V2.Cmp(o.V2) == 0
}

func (p Point) Key() string {
	if p.Inf {
		return "inf"
	}
	return p.U.Key() + ";" + p.V2.Key()
}

func (p Point) String() string {
	if p.Inf {
		return "(∞, 0)"
	}
	return "(" + p.U.String() + ", √(" + p.V2.String() + "))"
}

// CCW reports whether the three ideal boundary points are in strictly
// counter-clockwise cyclic order. On the boundary of the upper half-plane
// this is cyclic order on R ∪ {∞} with infinity as the limiting direction of
// +∞: for finite coordinates the triple is counter-clockwise iff
// (u₁−u₂)(u₂−u₃)(u₃−u₁) > 0. Degenerate triples (repeated points) are not
// counter-clockwise. This is the orientation oracle used by ideal edge
// clipping; it never measures anything.
func CCW(p1, p2, p3 Point) bool {
	switch {
	case p1.Inf:
		return !p2.Inf && !p3.Inf && p2.U.Cmp(p3.U) < 0
	case p2.Inf:
		return !p3.Inf && p3.U.Cmp(p1.U) < 0
	case p3.Inf:
		return p1.U.Cmp(p2.U) < 0
	}
	return p1.U.Cmp(p2.U)*p2.U.Cmp(p3.U)*p3.U.Cmp(p1.U) > 0
}

// plugPoint evaluates a(u² + v²) + bu + c at a finite point. The result
// stays in the point's radical layer, so its sign is exact.
func plugPoint(hp *HalfPlane, p Point) exact.Radical {
	quad := p.U.Square().Plus(p.V2).MulNum(hp.A)
	linear := p.U.MulNum(hp.B)
	return quad.Add(linear).Plus(hp.C)
}
