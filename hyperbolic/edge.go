package hyperbolic

// Edge is an oriented segment between two boundary points. A real edge runs
// along the boundary geodesic of the half-plane it references; an ideal edge
// (nil Plane) runs along the boundary circle at infinity instead. The Plane
// reference classifies the edge, it never controls the half-plane's
// lifetime.
type Edge struct {
	Plane      *HalfPlane
	Start, End Point
}

func (e Edge) IsIdeal() bool {
	return e.Plane == nil
}

func (e Edge) Equal(o Edge) bool {
	if (e.Plane == nil) != (o.Plane == nil) {
		return false
	}
	if e.Plane != nil && !e.Plane.Equal(o.Plane) {
		return false
	}
	return e.Start.Equal(o.Start) && e.End.Equal(o.End)
}

func (e Edge) String() string {
	kind := "edge"
	if e.IsIdeal() {
		kind = "ideal edge"
	}
	return kind + " " + e.Start.String() + " → " + e.End.String()
}
