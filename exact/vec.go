package exact

// Vec is a 2-vector of field elements, the edge vectors of triangles on a
// translation surface.
type Vec struct {
	X, Y Num
}

func NewVec(x, y Num) Vec {
	x.check(y)
	return Vec{X: x, Y: y}
}

func (v Vec) Add(w Vec) Vec {
	return Vec{X: v.X.Add(w.X), Y: v.Y.Add(w.Y)}
}

func (v Vec) Sub(w Vec) Vec {
	return Vec{X: v.X.Sub(w.X), Y: v.Y.Sub(w.Y)}
}

func (v Vec) Neg() Vec {
	return Vec{X: v.X.Neg(), Y: v.Y.Neg()}
}

func (v Vec) Scale(x Num) Vec {
	return Vec{X: v.X.Mul(x), Y: v.Y.Mul(x)}
}

func (v Vec) Dot(w Vec) Num {
	return v.X.Mul(w.X).Add(v.Y.Mul(w.Y))
}

// Det is the 2×2 determinant of the matrix with rows v and w.
func (v Vec) Det(w Vec) Num {
	return v.X.Mul(w.Y).Sub(v.Y.Mul(w.X))
}

func (v Vec) IsZero() bool {
	return v.X.IsZero() && v.Y.IsZero()
}

func (v Vec) Equal(w Vec) bool {
	return v.X.Equal(w.X) && v.Y.Equal(w.Y)
}

func (v Vec) Key() string {
	return v.X.Key() + "," + v.Y.Key()
}

func (v Vec) String() string {
	return "(" + v.X.String() + ", " + v.Y.String() + ")"
}

// Mat is a 2×2 matrix of field elements, row major: [[A, B], [C, D]]. It is
// the deformation applied to a triangulated surface.
type Mat struct {
	A, B, C, D Num
}

func NewMat(a, b, c, d Num) Mat {
	a.check(b)
	a.check(c)
	a.check(d)
	return Mat{A: a, B: b, C: c, D: d}
}

func (m Mat) Apply(v Vec) Vec {
	return Vec{
		X: m.A.Mul(v.X).Add(m.B.Mul(v.Y)),
		Y: m.C.Mul(v.X).Add(m.D.Mul(v.Y)),
	}
}

func (m Mat) Det() Num {
	return m.A.Mul(m.D).Sub(m.B.Mul(m.C))
}

// Det3 is the 3×3 determinant by cofactor expansion along the first row. The
// incircle and half-plane coefficient determinants go through here.
func Det3(m [3][3]Num) Num {
	minor0 := m[1][1].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][1]))
	minor1 := m[1][0].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][0]))
	minor2 := m[1][0].Mul(m[2][1]).Sub(m[1][1].Mul(m[2][0]))
	return m[0][0].Mul(minor0).Sub(m[0][1].Mul(minor1)).Add(m[0][2].Mul(minor2))
}
