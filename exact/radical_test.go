package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRadicalFoldsPerfectSquares(t *testing.T) {
	f := Rationals()

	// 1 + 2√9 collapses to the plain rational 7.
	r := NewRadical(f.One(), f.Int(2), f.Int(9))
	assert.True(t, r.IsNum())
	assert.True(t, r.Num().Equal(f.Int(7)))

	// A zero coefficient or radicand also collapses.
	assert.True(t, NewRadical(f.Int(5), f.Zero(), f.Int(2)).IsNum())
	assert.True(t, NewRadical(f.Int(5), f.Int(3), f.Zero()).IsNum())

	// √2 survives over Q.
	assert.False(t, NewRadical(f.Zero(), f.One(), f.Int(2)).IsNum())

	// In Q(√2) the radicand 2 is a perfect square, so 1 + √2 folds into
	// the field itself.
	f2 := NewField(2)
	r = NewRadical(f2.One(), f2.One(), f2.Int(2))
	assert.True(t, r.IsNum())
	assert.True(t, r.Num().Equal(f2.One().Add(f2.Surd(1, 1))))
}

func TestRadicalSign(t *testing.T) {
	f := Rationals()
	radical := func(a, b, c int64) Radical {
		return NewRadical(f.Int(a), f.Int(b), f.Int(c))
	}

	// −3 + √8 < 0 because 9 > 8; −2 + √8 > 0 because 4 < 8.
	assert.Equal(t, -1, radical(-3, 1, 8).Sign())
	assert.Equal(t, 1, radical(-2, 1, 8).Sign())
	assert.Equal(t, 1, radical(3, -1, 8).Sign())
	assert.Equal(t, -1, radical(2, -1, 8).Sign())

	// 2 − √4... never survives normalization, but 2 − 2√1 does not either;
	// exact cancellation needs a non-square radicand scaled right:
	// 6 − 3√4 = 0 folds at construction.
	assert.Equal(t, 0, radical(-6, 3, 4).Sign())

	assert.Equal(t, 1, radical(0, 2, 3).Sign())
	assert.Equal(t, -1, radical(0, -2, 3).Sign())
	assert.Equal(t, 0, radical(0, 0, 3).Sign())
}

func TestRadicalCmpAcrossRadicands(t *testing.T) {
	f := Rationals()
	radical := func(a, b, c int64) Radical {
		return NewRadical(f.Int(a), f.Int(b), f.Int(c))
	}

	// √2 < √3.
	assert.Equal(t, -1, radical(0, 1, 2).Cmp(radical(0, 1, 3)))
	// 1 + √2 < √6 (2.414… vs 2.449…), a genuinely nested comparison.
	assert.Equal(t, -1, radical(1, 1, 2).Cmp(radical(0, 1, 6)))
	assert.Equal(t, 1, radical(0, 1, 6).Cmp(radical(1, 1, 2)))
	// 2√2 = √8 even though the representations differ.
	assert.Equal(t, 0, radical(0, 2, 2).Cmp(radical(0, 1, 8)))
	assert.True(t, radical(0, 2, 2).Equal(radical(0, 1, 8)))
	// Negative side mirrors: −1 − √2 > −√6.
	assert.Equal(t, 1, radical(-1, -1, 2).Cmp(radical(0, -1, 6)))
}

func TestRadicalCmpAgainstNums(t *testing.T) {
	f := Rationals()
	sqrt2 := NewRadical(f.Zero(), f.One(), f.Int(2))

	assert.Equal(t, -1, sqrt2.Cmp(f.Int(2).Radical()))
	assert.Equal(t, 1, sqrt2.Cmp(f.One().Radical()))
	assert.Equal(t, 1, f.Int(2).Radical().Cmp(sqrt2))
}

func TestRadicalArithmetic(t *testing.T) {
	f := Rationals()
	sqrt2 := NewRadical(f.Zero(), f.One(), f.Int(2))

	// (1 + √2)² = 3 + 2√2.
	sq := sqrt2.Plus(f.One()).Square()
	assert.True(t, sq.Equal(NewRadical(f.Int(3), f.Int(2), f.Int(2))))

	// Scaling by zero collapses to a plain zero.
	assert.True(t, sqrt2.MulNum(f.Zero()).IsNum())

	// Adding radicals over the same radicand stays in the layer; adding a
	// plain number shifts A.
	sum := sqrt2.Add(sqrt2.Neg())
	assert.Equal(t, 0, sum.Sign())
	assert.Equal(t, 1, sqrt2.Add(f.One().Radical()).Sign())

	assert.Panics(t, func() {
		sqrt2.Add(NewRadical(f.Zero(), f.One(), f.Int(3)))
	})
	assert.Panics(t, func() {
		NewRadical(f.Zero(), f.One(), f.Int(-2))
	})
}

func TestRadicalKeyIsCanonical(t *testing.T) {
	f := Rationals()
	radical := func(a, b, c int64) Radical {
		return NewRadical(f.Int(a), f.Int(b), f.Int(c))
	}

	// 2√2 = √8 and 1 + 3√2 = 1 + √18: equal values share a key even when
	// the square factor sits in different components.
	assert.Equal(t, radical(0, 2, 2).Key(), radical(0, 1, 8).Key())
	assert.Equal(t, radical(1, 3, 2).Key(), radical(1, 1, 18).Key())

	// Mirror surds and shifted values stay apart.
	assert.NotEqual(t, radical(0, 1, 8).Key(), radical(0, -1, 8).Key())
	assert.NotEqual(t, radical(0, 2, 2).Key(), radical(1, 2, 2).Key())

	// A folded radical keys like the plain field element it collapsed to.
	assert.Equal(t, f.Int(7).Key(), radical(1, 2, 9).Key())
}
