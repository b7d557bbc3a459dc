// Package exact implements the arithmetic the geometry engine is written
// against: elements of a real quadratic field Q(√d), and degree-2 radical
// extensions layered over it. Everything is arbitrary precision and
// immutable; nothing in this package ever rounds. This is what lets the
// half-plane computations use plain sign tests where a floating point
// implementation would need tolerances.
package exact

import (
	"math/big"
)

// Field is a real quadratic field Q(√d), fixed by its radicand d. A radicand
// of zero or one collapses the field to the plain rationals. The radicand
// should be square-free; fields with equal radicands are interchangeable, but
// Nums from fields with different radicands must never meet in one
// expression.
type Field struct {
	d *big.Int
}

func NewField(radicand int64) *Field {
	if radicand < 0 {
		panic("exact: radicand must be non-negative")
	}
	return &Field{d: big.NewInt(radicand)}
}

// Rationals is the field with no irrational part, the base ring of surfaces
// like the square torus.
func Rationals() *Field {
	return NewField(0)
}

func (f *Field) Radicand() *big.Int {
	return new(big.Int).Set(f.d)
}

// irrational reports whether √d contributes anything, i.e. whether the q
// component of a Num is ever meaningful.
func (f *Field) irrational() bool {
	return f.d.Cmp(bigOne) > 0
}

func (f *Field) ratD() *big.Rat {
	return new(big.Rat).SetInt(f.d)
}

func (f *Field) String() string {
	if !f.irrational() {
		return "Q"
	}
	return "Q(√" + f.d.String() + ")"
}

var bigOne = big.NewInt(1)
