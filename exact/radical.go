package exact

// Radical is an immutable value A + B·√C with A, B, C all field elements and
// C non-negative: a degree-2 extension layered over the field. Circle
// boundary endpoints (center ± √radius²) live here, since a radius is
// generally not a perfect square in the field.
//
// Construction normalizes: when C is a perfect square within the field the
// root folds into A and the value collapses to a plain field element.
type Radical struct {
	A, B, C Num
}

func NewRadical(a, b, c Num) Radical {
	if c.Sign() < 0 {
		panic("exact: negative nested radicand")
	}
	zero := a.Field().Zero()
	if b.IsZero() || c.IsZero() {
		return Radical{A: a, B: zero, C: zero}
	}
	if root, ok := c.Sqrt(); ok {
		return Radical{A: a.Add(b.Mul(root)), B: zero, C: zero}
	}
	return Radical{A: a, B: b, C: c}
}

// Radical lifts a field element into the radical layer.
func (x Num) Radical() Radical {
	zero := x.Field().Zero()
	return Radical{A: x, B: zero, C: zero}
}

// IsNum reports whether the value is a plain field element (no surviving
// nested root).
func (r Radical) IsNum() bool {
	return r.B.IsZero()
}

// Num unwraps a radical with no nested root.
func (r Radical) Num() Num {
	if !r.IsNum() {
		panic("exact: radical has an irrational nested part")
	}
	return r.A
}

func (r Radical) Neg() Radical {
	return Radical{A: r.A.Neg(), B: r.B.Neg(), C: r.C}
}

// Plus shifts the value by a field element.
func (r Radical) Plus(x Num) Radical {
	return Radical{A: r.A.Add(x), B: r.B, C: r.C}
}

// MulNum scales the value by a field element.
func (r Radical) MulNum(x Num) Radical {
	return NewRadical(r.A.Mul(x), r.B.Mul(x), r.C)
}

// Square stays in the same layer: (A + B√C)² = A² + B²C + 2AB·√C.
func (r Radical) Square() Radical {
	two := r.A.Field().Int(2)
	a := r.A.Mul(r.A).Add(r.B.Mul(r.B).Mul(r.C))
	b := two.Mul(r.A).Mul(r.B)
	return NewRadical(a, b, r.C)
}

// Add combines two radicals. The nested radicands must agree unless one side
// is a plain field element; radicals over genuinely different radicands have
// no common layer to land in.
func (r Radical) Add(o Radical) Radical {
	switch {
	case o.B.IsZero():
		return Radical{A: r.A.Add(o.A), B: r.B, C: r.C}
	case r.B.IsZero():
		return Radical{A: o.A.Add(r.A), B: o.B, C: o.C}
	case r.C.Equal(o.C):
		return NewRadical(r.A.Add(o.A), r.B.Add(o.B), r.C)
	}
	panic("exact: cannot add radicals over different nested radicands")
}

// Sign is exact. When A and B pull in opposite directions the winner is
// decided by comparing A² against B²C.
func (r Radical) Sign() int {
	sa, sb := r.A.Sign(), r.B.Sign()
	if sb == 0 {
		return sa
	}
	if sa == 0 {
		return sb
	}
	if sa == sb {
		return sa
	}
	a2 := r.A.Mul(r.A)
	b2c := r.B.Mul(r.B).Mul(r.C)
	switch a2.Cmp(b2c) {
	case 1:
		return sa
	case -1:
		return sb
	}
	return 0
}

// Cmp orders two radicals, even over different nested radicands: the sign of
// A₁−A₂ + B₁√C₁ − B₂√C₂ is resolved by moving B₂√C₂ across and squaring
// once, which lands back in the C₁ layer.
func (r Radical) Cmp(o Radical) int {
	switch {
	case o.B.IsZero():
		return NewRadical(r.A.Sub(o.A), r.B, r.C).Sign()
	case r.B.IsZero():
		return -NewRadical(o.A.Sub(r.A), o.B, o.C).Sign()
	case r.C.Equal(o.C):
		return NewRadical(r.A.Sub(o.A), r.B.Sub(o.B), r.C).Sign()
	}
	left := NewRadical(r.A.Sub(o.A), r.B, r.C)
	sl := left.Sign()
	sr := o.B.Sign()
	if sl != sr {
		if sl > sr {
			return 1
		}
		return -1
	}
	if sl == 0 {
		return 0
	}
	// Same nonzero sign on both sides: |left| vs |right| is left² vs right².
	l2 := left.Square()
	r2 := o.B.Mul(o.B).Mul(o.C)
	cmp := NewRadical(l2.A.Sub(r2), l2.B, l2.C).Sign()
	if sl < 0 {
		return -cmp
	}
	return cmp
}

func (r Radical) Equal(o Radical) bool {
	return r.Cmp(o) == 0
}

// Key is a canonical map key for the value. The surd is keyed as
// sign(B)·√(B²C), which equal values always agree on: construction folds
// perfect squares, so a surviving √C is irrational over the field and the
// representation is unique up to square factors moving between B and C.
func (r Radical) Key() string {
	if r.IsNum() {
		return r.A.Key()
	}
	sign := "+"
	if r.B.Sign() < 0 {
		sign = "-"
	}
	return r.A.Key() + "|" + sign + "√" + r.B.Mul(r.B).Mul(r.C).Key()
}

func (r Radical) String() string {
	if r.IsNum() {
		return r.A.String()
	}
	return r.A.String() + "+" + r.B.String() + "·√(" + r.C.String() + ")"
}
