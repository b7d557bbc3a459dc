// An exact-arithmetic engine for the half-plane arrangements of
// Delaunay-triangulated translation surfaces.
//
// Each edge of the triangulation spans a hinge, each hinge's Delaunay
// condition cuts out a half-plane in the upper half-plane model, and the
// arrangement of these half-planes bounds the region of deformation matrices
// under which the triangulation stays Delaunay. All coordinates are elements
// of a quadratic number field (see the exact package), so every containment
// and clipping decision is a true sign test with no tolerances anywhere.
package veech

import (
	"github.com/teichmath/veech/exact"
	"github.com/teichmath/veech/hyperbolic"
)

type Point = hyperbolic.Point
type Edge = hyperbolic.Edge
type HalfPlane = hyperbolic.HalfPlane
type Triangle = hyperbolic.Triangle
type MarkedPoint = hyperbolic.MarkedPoint
type Hinge = hyperbolic.Hinge
type Triangulation = hyperbolic.Triangulation
type EdgeRef = hyperbolic.EdgeRef

// The engine reports precondition violations by panicking; these wrappers
// recover them into ordinary errors at the package boundary. Compare against
// the hyperbolic package's sentinel errors with errors.Is.

// NewHalfPlane builds the region a(u²+v²) + bu + c ≥ 0. Coefficients that
// describe neither a vertical line nor a real circle are rejected.
func NewHalfPlane(a, b, c exact.Num) (hp *HalfPlane, err error) {
	defer func() {
		if recoveredErr := hyperbolic.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			hp = nil
			err = recoveredErr
		}
	}()
	return hyperbolic.FromIneq(a, b, c), nil
}

// NewTriangle builds a triangle from three closing, counter-clockwise edge
// vectors, optionally with marked points.
func NewTriangle(v0, v1, v2 exact.Vec, marked ...MarkedPoint) (t Triangle, err error) {
	defer func() {
		if recoveredErr := hyperbolic.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			t = Triangle{}
			err = recoveredErr
		}
	}()
	return hyperbolic.NewTriangle(v0, v1, v2, marked...), nil
}

// NewHinge builds the hinge across the gluing t1.Edge(e1) ↔ t2.Edge(e2).
func NewHinge(t1 Triangle, e1 int, t2 Triangle, e2 int) (h Hinge, err error) {
	defer func() {
		if recoveredErr := hyperbolic.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			h = Hinge{}
			err = recoveredErr
		}
	}()
	return hyperbolic.HingeFromTriangles(t1, e1, t2, e2), nil
}

// NewTriangulation builds a triangulated surface from triangles and a gluing
// map, verifying the map is a fixed-point-free involution.
func NewTriangulation(triangles []Triangle, gluings map[EdgeRef]EdgeRef, field *exact.Field) (tr Triangulation, err error) {
	defer func() {
		if recoveredErr := hyperbolic.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			tr = Triangulation{}
			err = recoveredErr
		}
	}()
	return hyperbolic.NewTriangulation(triangles, gluings, field), nil
}

// ApplyMatrix deforms a triangulation, converting the orientation and
// closure failures of a bad matrix into an error.
func ApplyMatrix(tr Triangulation, m exact.Mat) (out Triangulation, err error) {
	defer func() {
		if recoveredErr := hyperbolic.HandleGeometryPanicRecover(recover()); recoveredErr != nil {
			out = Triangulation{}
			err = recoveredErr
		}
	}()
	return tr.ApplyMatrix(m), nil
}

// SquareTorus is the two-triangle square torus; see hyperbolic.SquareTorus.
func SquareTorus() Triangulation {
	return hyperbolic.SquareTorus()
}

// RegularOctagon is the six-triangle regular octagon surface over Q(√2).
func RegularOctagon() Triangulation {
	return hyperbolic.RegularOctagon()
}
