package exact

import (
	"math/big"
)

// Num is an immutable element p + q·√d of its Field. The zero value is not
// usable; Nums are always created through a Field.
type Num struct {
	f    *Field
	p, q *big.Rat
}

// New builds p + q·√d. Nil components are treated as zero. When the field is
// rational the q component folds into p (d = 1) or vanishes (d = 0).
func (f *Field) New(p, q *big.Rat) Num {
	n := Num{f: f, p: new(big.Rat), q: new(big.Rat)}
	if p != nil {
		n.p.Set(p)
	}
	if q != nil && q.Sign() != 0 {
		if f.irrational() {
			n.q.Set(q)
		} else if f.d.Cmp(bigOne) == 0 {
			n.p.Add(n.p, q)
		}
	}
	return n
}

func (f *Field) FromRat(p *big.Rat) Num {
	return f.New(p, nil)
}

func (f *Field) Int(n int64) Num {
	return f.New(big.NewRat(n, 1), nil)
}

func (f *Field) Rat(num, den int64) Num {
	return f.New(big.NewRat(num, den), nil)
}

// Surd builds (num/den)·√d, the purely irrational part of the field.
func (f *Field) Surd(num, den int64) Num {
	return f.New(nil, big.NewRat(num, den))
}

func (f *Field) Zero() Num {
	return f.New(nil, nil)
}

func (f *Field) One() Num {
	return f.Int(1)
}

func (x Num) Field() *Field {
	return x.f
}

// RatParts exposes the two rational components of p + q·√d, for callers that
// render or serialize values.
func (x Num) RatParts() (p, q *big.Rat) {
	return new(big.Rat).Set(x.p), new(big.Rat).Set(x.q)
}

func (x Num) check(y Num) {
	if x.f.d.Cmp(y.f.d) != 0 {
		panic("exact: mixed values from fields with different radicands")
	}
}

func (x Num) Add(y Num) Num {
	x.check(y)
	return Num{
		f: x.f,
		p: new(big.Rat).Add(x.p, y.p),
		q: new(big.Rat).Add(x.q, y.q),
	}
}

func (x Num) Sub(y Num) Num {
	x.check(y)
	return Num{
		f: x.f,
		p: new(big.Rat).Sub(x.p, y.p),
		q: new(big.Rat).Sub(x.q, y.q),
	}
}

func (x Num) Neg() Num {
	return Num{
		f: x.f,
		p: new(big.Rat).Neg(x.p),
		q: new(big.Rat).Neg(x.q),
	}
}

func (x Num) Mul(y Num) Num {
	x.check(y)
	// (p₁ + q₁√d)(p₂ + q₂√d) = p₁p₂ + q₁q₂d + (p₁q₂ + q₁p₂)√d
	p := new(big.Rat).Mul(x.p, y.p)
	qq := new(big.Rat).Mul(x.q, y.q)
	qq.Mul(qq, x.f.ratD())
	p.Add(p, qq)

	q := new(big.Rat).Mul(x.p, y.q)
	qp := new(big.Rat).Mul(x.q, y.p)
	q.Add(q, qp)
	return Num{f: x.f, p: p, q: q}
}

// Inv is the multiplicative inverse, computed by the conjugate trick:
// 1/(p + q√d) = (p − q√d)/(p² − q²d).
func (x Num) Inv() Num {
	den := new(big.Rat).Mul(x.p, x.p)
	q2d := new(big.Rat).Mul(x.q, x.q)
	q2d.Mul(q2d, x.f.ratD())
	den.Sub(den, q2d)
	if den.Sign() == 0 {
		panic("exact: division by zero")
	}
	p := new(big.Rat).Quo(x.p, den)
	q := new(big.Rat).Quo(x.q, den)
	q.Neg(q)
	return Num{f: x.f, p: p, q: q}
}

func (x Num) Div(y Num) Num {
	return x.Mul(y.Inv())
}

// Sign is exact: when the rational and irrational parts pull in opposite
// directions the winner is decided by comparing p² against q²d.
func (x Num) Sign() int {
	sp, sq := x.p.Sign(), x.q.Sign()
	if sq == 0 {
		return sp
	}
	if sp == 0 {
		return sq
	}
	if sp == sq {
		return sp
	}
	p2 := new(big.Rat).Mul(x.p, x.p)
	q2d := new(big.Rat).Mul(x.q, x.q)
	q2d.Mul(q2d, x.f.ratD())
	switch p2.Cmp(q2d) {
	case 1:
		return sp
	case -1:
		return sq
	}
	return 0
}

func (x Num) Cmp(y Num) int {
	return x.Sub(y).Sign()
}

func (x Num) Equal(y Num) bool {
	x.check(y)
	return x.p.Cmp(y.p) == 0 && x.q.Cmp(y.q) == 0
}

func (x Num) IsZero() bool {
	return x.p.Sign() == 0 && x.q.Sign() == 0
}

// Sqrt extracts the square root of x when x is a perfect square within the
// field, reporting failure otherwise. The returned root is the non-negative
// one.
func (x Num) Sqrt() (Num, bool) {
	if x.Sign() < 0 {
		return Num{}, false
	}
	if x.q.Sign() == 0 {
		// Rational case: either √p is rational, or √p = t·√d for
		// rational t (when p/d is a rational square).
		if root, ok := ratSqrt(x.p); ok {
			return x.f.FromRat(root), true
		}
		if x.f.irrational() {
			quo := new(big.Rat).Quo(x.p, x.f.ratD())
			if t, ok := ratSqrt(quo); ok {
				return x.f.New(nil, t), true
			}
		}
		return Num{}, false
	}
	// Solve (a + b√d)² = p + q√d: then a² = (p ± s)/2 where s = √(p² − q²d),
	// and b = q/(2a).
	s2 := new(big.Rat).Mul(x.p, x.p)
	q2d := new(big.Rat).Mul(x.q, x.q)
	q2d.Mul(q2d, x.f.ratD())
	s2.Sub(s2, q2d)
	if s2.Sign() < 0 {
		return Num{}, false
	}
	s, ok := ratSqrt(s2)
	if !ok {
		return Num{}, false
	}
	half := big.NewRat(1, 2)
	for _, sign := range []int{1, -1} {
		a2 := new(big.Rat).Set(s)
		if sign < 0 {
			a2.Neg(a2)
		}
		a2.Add(a2, x.p)
		a2.Mul(a2, half)
		a, ok := ratSqrt(a2)
		if !ok || a.Sign() == 0 {
			continue
		}
		b := new(big.Rat).Quo(x.q, new(big.Rat).Add(a, a))
		root := x.f.New(a, b)
		if root.Sign() < 0 {
			root = root.Neg()
		}
		return root, true
	}
	return Num{}, false
}

func (x Num) String() string {
	if x.q.Sign() == 0 {
		return x.p.RatString()
	}
	surd := x.q.RatString() + "√" + x.f.d.String()
	if x.p.Sign() == 0 {
		return surd
	}
	if x.q.Sign() > 0 {
		return x.p.RatString() + "+" + surd
	}
	return x.p.RatString() + surd
}

// Key is a canonical map key for the value. big.Rat keeps itself in lowest
// terms, so equal values always produce equal keys.
func (x Num) Key() string {
	return x.p.RatString() + "|" + x.q.RatString() + "√" + x.f.d.String()
}

// ratSqrt extracts the exact rational square root of r, if there is one. A
// rational in lowest terms is a perfect square iff its numerator and
// denominator both are.
func ratSqrt(r *big.Rat) (*big.Rat, bool) {
	if r.Sign() < 0 {
		return nil, false
	}
	num, ok := intSqrt(r.Num())
	if !ok {
		return nil, false
	}
	den, ok := intSqrt(r.Denom())
	if !ok {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

func intSqrt(n *big.Int) (*big.Int, bool) {
	root := new(big.Int).Sqrt(n)
	check := new(big.Int).Mul(root, root)
	if check.Cmp(n) != 0 {
		return nil, false
	}
	return root, true
}
