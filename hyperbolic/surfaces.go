package hyperbolic

import (
	"github.com/teichmath/veech/exact"
)

// Built-in translation surfaces, already Delaunay triangulated. These are
// the standard small examples; anything else comes in through
// NewTriangulation from an external source.

// involution expands a list of glued pairs into the symmetric gluing map.
func involution(pairs [][2]EdgeRef) map[EdgeRef]EdgeRef {
	gluings := make(map[EdgeRef]EdgeRef, 2*len(pairs))
	for _, pair := range pairs {
		gluings[pair[0]] = pair[1]
		gluings[pair[1]] = pair[0]
	}
	return gluings
}

// SquareTorus is the unit square with opposite sides identified, split into
// two triangles by the main diagonal. Its diagonal hinge is exactly
// cocircular, which makes it the canonical weakly-but-not-strictly Delaunay
// surface.
func SquareTorus() Triangulation {
	f := exact.Rationals()
	vec := func(x, y int64) exact.Vec {
		return exact.NewVec(f.Int(x), f.Int(y))
	}

	lower := NewTriangle(vec(1, 0), vec(0, 1), vec(-1, -1))
	upper := NewTriangle(vec(1, 1), vec(-1, 0), vec(0, -1))

	gluings := involution([][2]EdgeRef{
		{{Triangle: 0, Edge: 0}, {Triangle: 1, Edge: 1}},
		{{Triangle: 0, Edge: 1}, {Triangle: 1, Edge: 2}},
		{{Triangle: 0, Edge: 2}, {Triangle: 1, Edge: 0}},
	})
	return NewTriangulation([]Triangle{lower, upper}, gluings, f)
}

// RegularOctagon is the regular octagon with opposite sides identified,
// fanned into six triangles from one vertex. Coordinates live in Q(√2).
func RegularOctagon() Triangulation {
	f := exact.NewField(2)
	s := f.Surd(1, 2) // √2/2, the octagon's diagonal step

	zero, one := f.Zero(), f.One()
	onePlusS := one.Add(s)
	onePlus2S := one.Add(s).Add(s)

	vertices := []exact.Vec{
		exact.NewVec(zero, zero),
		exact.NewVec(one, zero),
		exact.NewVec(onePlusS, s),
		exact.NewVec(onePlusS, onePlusS),
		exact.NewVec(one, onePlus2S),
		exact.NewVec(zero, onePlus2S),
		exact.NewVec(s.Neg(), onePlusS),
		exact.NewVec(s.Neg(), s),
	}

	triangles := make([]Triangle, 6)
	for i := 0; i < 6; i++ {
		p0, p1, p2 := vertices[0], vertices[i+1], vertices[i+2]
		triangles[i] = NewTriangle(p1.Sub(p0), p2.Sub(p1), p0.Sub(p2))
	}

	// Fan diagonals glue neighboring triangles; the six boundary sides of
	// the fan glue to their opposite octagon sides.
	gluings := involution([][2]EdgeRef{
		{{Triangle: 0, Edge: 0}, {Triangle: 3, Edge: 1}},
		{{Triangle: 0, Edge: 1}, {Triangle: 4, Edge: 1}},
		{{Triangle: 1, Edge: 1}, {Triangle: 5, Edge: 1}},
		{{Triangle: 2, Edge: 1}, {Triangle: 5, Edge: 2}},
		{{Triangle: 0, Edge: 2}, {Triangle: 1, Edge: 0}},
		{{Triangle: 1, Edge: 2}, {Triangle: 2, Edge: 0}},
		{{Triangle: 2, Edge: 2}, {Triangle: 3, Edge: 0}},
		{{Triangle: 3, Edge: 2}, {Triangle: 4, Edge: 0}},
		{{Triangle: 4, Edge: 2}, {Triangle: 5, Edge: 0}},
	})
	return NewTriangulation(triangles, gluings, f)
}
