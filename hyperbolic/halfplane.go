package hyperbolic

import (
	"github.com/teichmath/veech/exact"
)

// HalfPlane is the region a(u² + v²) + bu + c ≥ 0 in the upper half-plane
// model. Its boundary geodesic is either a vertical line (a = 0) or a
// half-circle centered on the real axis (a ≠ 0 with positive discriminant);
// anything else is degenerate and refused at construction. The coefficient
// triple is immutable and is the half-plane's identity: Key/Equal compare
// coefficients, which drives deduplication in Triangulation.
type HalfPlane struct {
	A, B, C exact.Num
	curve   curve
}

// curve is the variant-specific half of the half-plane contract. The two
// implementations are line and circle; requiring the full method set at the
// type level is what replaces the original's "not implemented" base class.
type curve interface {
	isOriented() bool
	start() Point
	end() Point

	// Witness points on the real axis, used purely as anchors for
	// orientation tests during ideal edge clipping.
	pointInside() Point
	pointOutside() Point

	// Dummy method ensuring only line and circle can be a curve.
	curveTypeHint()
}

func (line) curveTypeHint()   {}
func (circle) curveTypeHint() {}

// FromIneq classifies the coefficient triple and builds the half-plane.
// Degenerate triples (a = b = 0, or a ≠ 0 with non-positive discriminant)
// throw ErrDegenerateHalfPlane.
func FromIneq(a, b, c exact.Num) *HalfPlane {
	switch {
	case a.IsZero() && !b.IsZero():
		return &HalfPlane{A: a, B: b, C: c, curve: line{b: b, c: c}}
	case !a.IsZero() && discriminant(a, b, c).Sign() > 0:
		return &HalfPlane{A: a, B: b, C: c, curve: circle{a: a, b: b, c: c}}
	}
	throwf(ErrDegenerateHalfPlane, "FromIneq(%v, %v, %v)", a, b, c)
	return nil
}

func discriminant(a, b, c exact.Num) exact.Num {
	four := a.Field().Int(4)
	return b.Mul(b).Sub(four.Mul(a).Mul(c))
}

func (hp *HalfPlane) IsLine() bool {
	_, ok := hp.curve.(line)
	return ok
}

func (hp *HalfPlane) IsCircle() bool {
	_, ok := hp.curve.(circle)
	return ok
}

// IsOriented distinguishes which side of the boundary is the inside: an
// oriented line keeps the left of its real endpoint, an oriented circle
// keeps its disk.
func (hp *HalfPlane) IsOriented() bool {
	return hp.curve.isOriented()
}

// Start and End are the two boundary endpoints on the ideal boundary, in the
// canonical order that puts the region on the left when walking the
// geodesic. A line always has exactly one endpoint at infinity; a circle has
// both finite.
func (hp *HalfPlane) Start() Point {
	return hp.curve.start()
}

func (hp *HalfPlane) End() Point {
	return hp.curve.end()
}

func (hp *HalfPlane) Endpoints() (Point, Point) {
	return hp.curve.start(), hp.curve.end()
}

func (hp *HalfPlane) Equal(o *HalfPlane) bool {
	return hp.A.Equal(o.A) && hp.B.Equal(o.B) && hp.C.Equal(o.C)
}

func (hp *HalfPlane) Key() string {
	return hp.A.Key() + "|" + hp.B.Key() + "|" + hp.C.Key()
}

func (hp *HalfPlane) String() string {
	out := ""
	if !hp.A.IsZero() {
		out += "[" + hp.A.String() + "](u²+v²)+"
	}
	if !hp.B.IsZero() {
		out += "[" + hp.B.String() + "]u+"
	}
	if !hp.C.IsZero() {
		out += "[" + hp.C.String() + "]"
	}
	return out + " ≥ 0"
}

// ContainsPoint reports whether the point lies in the region; with
// onBoundary set it reports whether the point lies exactly on the boundary
// geodesic. The point at infinity is on the boundary of every line, and
// inside every line and every unoriented circle.
func (hp *HalfPlane) ContainsPoint(p Point, onBoundary bool) bool {
	if p.IsInfinity() {
		if onBoundary {
			return hp.IsLine()
		}
		return hp.IsLine() || !hp.IsOriented()
	}
	r := plugPoint(hp, p).Sign()
	return r == 0 || (!onBoundary && r > 0)
}

// IntersectBoundaries finds the point where the two boundary geodesics meet,
// if they do. Two lines always meet at infinity. Otherwise the linear system
// in (u² + v², u) is solved by Cramer's rule; a singular system means
// parallel boundaries and a negative v² means the curves miss over the
// reals, both reported as no intersection.
//
// The returned point carries v² in its squared-height field and every caller
// reads only the u coordinate.
func (hp *HalfPlane) IntersectBoundaries(other *HalfPlane) (Point, bool) {
	if hp.IsLine() && other.IsLine() {
		return Infinity(), true
	}
	det := hp.A.Mul(other.B).Sub(other.A.Mul(hp.B))
	if det.IsZero() {
		return Point{}, false
	}
	uu := other.C.Mul(hp.B).Sub(hp.C.Mul(other.B)).Div(det)   // u² + v²
	u := other.A.Mul(hp.C).Sub(hp.A.Mul(other.C)).Div(det)
	v2 := uu.Sub(u.Mul(u))
	if v2.Sign() < 0 {
		return Point{}, false
	}
	return NewPoint(u.Radical(), v2), true
}

// IntersectEdge clips the edge against the region, returning the surviving
// pieces: zero, one, or (for an ideal edge broken by the region) two edges.
func (hp *HalfPlane) IntersectEdge(e Edge) []Edge {
	if e.IsIdeal() {
		return hp.intersectEdgeIdeal(e)
	}
	return hp.intersectEdgeReal(e)
}

func (hp *HalfPlane) intersectEdgeReal(e Edge) []Edge {
	containsStart := hp.ContainsPoint(e.Start, false)
	containsEnd := hp.ContainsPoint(e.End, false)

	switch {
	case containsStart && containsEnd:
		return []Edge{e}
	case !containsStart && !containsEnd:
		return nil
	}

	crossing, _ := hp.IntersectBoundaries(e.Plane)
	if containsStart {
		return []Edge{{Plane: e.Plane, Start: e.Start, End: crossing}}
	}
	return []Edge{{Plane: e.Plane, Start: crossing, End: e.End}}
}

func (hp *HalfPlane) intersectEdgeIdeal(e Edge) []Edge {
	containsStart := hp.ContainsPoint(e.Start, false)
	containsEnd := hp.ContainsPoint(e.End, false)

	switch {
	case containsStart && containsEnd:
		if CCW(e.Start, e.End, hp.curve.pointOutside()) {
			return []Edge{e}
		}
		// The arc between the endpoints detours outside the region:
		// replace it with the two boundary-hugging pieces.
		return []Edge{
			{Start: e.Start, End: hp.Start()},
			{Start: hp.End(), End: e.End},
		}
	case containsStart:
		return []Edge{{Start: e.Start, End: hp.Start()}}
	case containsEnd:
		return []Edge{{Start: hp.End(), End: e.End}}
	}

	if CCW(e.Start, e.End, hp.curve.pointInside()) {
		return nil
	}
	// Both tested endpoints are outside, but the arc still passes through
	// the region: keep the complementary piece.
	return []Edge{{Start: hp.End(), End: hp.Start()}}
}

// line is the a = 0 variant: the boundary is the vertical geodesic over
// −c/b. Oriented means b < 0, which keeps the left side.
type line struct {
	b, c exact.Num
}

func (l line) isOriented() bool {
	return l.b.Sign() < 0
}

func (l line) endpointReal() exact.Num {
	return l.c.Neg().Div(l.b)
}

func (l line) start() Point {
	if l.isOriented() {
		return boundaryPoint(l.endpointReal())
	}
	return Infinity()
}

func (l line) end() Point {
	if l.isOriented() {
		return Infinity()
	}
	return boundaryPoint(l.endpointReal())
}

func (l line) pointInside() Point {
	a := l.endpointReal()
	one := a.Field().One()
	if l.isOriented() {
		return boundaryPoint(a.Sub(one))
	}
	return boundaryPoint(a.Add(one))
}

func (l line) pointOutside() Point {
	a := l.endpointReal()
	one := a.Field().One()
	if l.isOriented() {
		return boundaryPoint(a.Add(one))
	}
	return boundaryPoint(a.Sub(one))
}

// circle is the a ≠ 0 variant: the boundary is the half-circle with center
// −b/2a and squared radius (b² − 4ac)/4a². Oriented means the region is the
// disk, detected by plugging in the center.
type circle struct {
	a, b, c exact.Num
}

func (cc circle) centerU() exact.Num {
	two := cc.a.Field().Int(2)
	return cc.b.Neg().Div(two.Mul(cc.a))
}

func (cc circle) radius2() exact.Num {
	four := cc.a.Field().Int(4)
	return discriminant(cc.a, cc.b, cc.c).Div(four.Mul(cc.a).Mul(cc.a))
}

func (cc circle) isOriented() bool {
	u := cc.centerU()
	value := cc.a.Mul(u.Mul(u)).Add(cc.b.Mul(u)).Add(cc.c)
	return value.Sign() >= 0
}

func (cc circle) endpointU(sign int64) exact.Radical {
	f := cc.a.Field()
	return exact.NewRadical(cc.centerU(), f.Int(sign), cc.radius2())
}

func (cc circle) start() Point {
	if cc.isOriented() {
		return Point{U: cc.endpointU(1), V2: cc.a.Field().Zero()}
	}
	return Point{U: cc.endpointU(-1), V2: cc.a.Field().Zero()}
}

func (cc circle) end() Point {
	if cc.isOriented() {
		return Point{U: cc.endpointU(-1), V2: cc.a.Field().Zero()}
	}
	return Point{U: cc.endpointU(1), V2: cc.a.Field().Zero()}
}

func (cc circle) pointInside() Point {
	f := cc.a.Field()
	if cc.isOriented() {
		return boundaryPoint(cc.centerU())
	}
	// Just beyond the far boundary endpoint.
	return Point{U: cc.end().U.Plus(f.One()), V2: f.Zero()}
}

func (cc circle) pointOutside() Point {
	f := cc.a.Field()
	if cc.isOriented() {
		return Point{U: cc.start().U.Plus(f.One()), V2: f.Zero()}
	}
	return boundaryPoint(cc.centerU())
}
