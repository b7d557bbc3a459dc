package hyperbolic

import (
	"github.com/teichmath/veech/exact"
)

// EdgeRef addresses one edge of one triangle in a triangulation.
type EdgeRef struct {
	Triangle, Edge int
}

// Less is lexicographic order; the smaller reference of a glued pair is the
// pair's canonical representative.
func (e EdgeRef) Less(o EdgeRef) bool {
	if e.Triangle != o.Triangle {
		return e.Triangle < o.Triangle
	}
	return e.Edge < o.Edge
}

// Triangulation is a Delaunay-triangulated translation surface: an ordered
// list of triangles, a gluing map pairing up their edges, and the field the
// coordinates live in. The gluing map must be a fixed-point-free involution
// over every (triangle, edge) pair — each edge glued to exactly one distinct
// other edge, symmetrically. Constructed once and immutable; deformations
// return a new Triangulation.
type Triangulation struct {
	triangles []Triangle
	gluings   map[EdgeRef]EdgeRef
	field     *exact.Field
}

func NewTriangulation(triangles []Triangle, gluings map[EdgeRef]EdgeRef, field *exact.Field) Triangulation {
	tr := Triangulation{
		triangles: make([]Triangle, len(triangles)),
		gluings:   make(map[EdgeRef]EdgeRef, len(gluings)),
		field:     field,
	}
	copy(tr.triangles, triangles)
	for ref, img := range gluings {
		tr.gluings[ref] = img
	}

	for i := range tr.triangles {
		for e := 0; e < 3; e++ {
			ref := EdgeRef{Triangle: i, Edge: e}
			img, ok := tr.gluings[ref]
			if !ok {
				throwf(ErrMismatchedGluing, "edge %v is not glued to anything", ref)
			}
			if img.Triangle < 0 || img.Triangle >= len(tr.triangles) || img.Edge < 0 || img.Edge > 2 {
				throwf(ErrIndexOutOfRange, "gluing image %v of edge %v", img, ref)
			}
			if img == ref {
				throwf(ErrMismatchedGluing, "edge %v is glued to itself", ref)
			}
			if back := tr.gluings[img]; back != ref {
				throwf(ErrMismatchedGluing, "gluing is not an involution at %v", ref)
			}
		}
	}
	if len(tr.gluings) != 3*len(tr.triangles) {
		throwf(ErrMismatchedGluing, "gluing map has %d entries for %d triangles", len(tr.gluings), len(tr.triangles))
	}
	return tr
}

func (tr Triangulation) NumTriangles() int {
	return len(tr.triangles)
}

func (tr Triangulation) Triangle(i int) Triangle {
	if i < 0 || i >= len(tr.triangles) {
		throwf(ErrIndexOutOfRange, "triangle %d of %d", i, len(tr.triangles))
	}
	return tr.triangles[i]
}

func (tr Triangulation) Field() *exact.Field {
	return tr.field
}

func (tr Triangulation) Gluing(ref EdgeRef) EdgeRef {
	img, ok := tr.gluings[ref]
	if !ok {
		throwf(ErrIndexOutOfRange, "no edge %v", ref)
	}
	return img
}

// Edges enumerates one canonical representative per physical edge, in
// (triangle, edge) order. A closed surface of n triangles has 3n/2 of them.
func (tr Triangulation) Edges() []EdgeRef {
	var reps []EdgeRef
	for i := range tr.triangles {
		for e := 0; e < 3; e++ {
			ref := EdgeRef{Triangle: i, Edge: e}
			if ref.Less(tr.gluings[ref]) {
				reps = append(reps, ref)
			}
		}
	}
	return reps
}

// GluedEdges is Edges together with each representative's gluing image.
func (tr Triangulation) GluedEdges() [][2]EdgeRef {
	reps := tr.Edges()
	out := make([][2]EdgeRef, len(reps))
	for i, ref := range reps {
		out[i] = [2]EdgeRef{ref, tr.gluings[ref]}
	}
	return out
}

func (tr Triangulation) hinge(ref EdgeRef) Hinge {
	opposite := tr.Gluing(ref)
	return HingeFromTriangles(
		tr.Triangle(ref.Triangle), ref.Edge,
		tr.Triangle(opposite.Triangle), opposite.Edge,
	)
}

// Hinges builds one hinge per canonical edge.
func (tr Triangulation) Hinges() []Hinge {
	reps := tr.Edges()
	out := make([]Hinge, len(reps))
	for i, ref := range reps {
		out[i] = tr.hinge(ref)
	}
	return out
}

// IsDelaunay reports whether every hinge passes the incircle test,
// stopping at the first failure. Strict requires every test to be positive;
// otherwise cocircular hinges (test exactly zero) are allowed.
func (tr Triangulation) IsDelaunay(strict bool) bool {
	for _, ref := range tr.Edges() {
		sign := tr.hinge(ref).IncircleTest().Sign()
		if sign < 0 || (strict && sign == 0) {
			return false
		}
	}
	return true
}

// HalfPlanes collects the deduplicated half-plane constraints of all hinges,
// in first-appearance order. Hinges with no meaningful constraint are
// skipped.
func (tr Triangulation) HalfPlanes() []*HalfPlane {
	var out []*HalfPlane
	seen := make(map[string]bool)
	for _, hinge := range tr.Hinges() {
		hp, ok := hinge.HalfPlane()
		if !ok {
			continue
		}
		if seen[hp.Key()] {
			continue
		}
		seen[hp.Key()] = true
		out = append(out, hp)
	}
	return out
}

// ApplyMatrix deforms every triangle by m, keeping the gluing map and field.
func (tr Triangulation) ApplyMatrix(m exact.Mat) Triangulation {
	deformed := make([]Triangle, len(tr.triangles))
	for i, t := range tr.triangles {
		deformed[i] = t.ApplyMatrix(m)
	}
	return NewTriangulation(deformed, tr.gluings, tr.field)
}
