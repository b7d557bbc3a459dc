package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teichmath/veech/exact"
	"github.com/teichmath/veech/hyperbolic"
)

func TestNameMemoization(t *testing.T) {
	// The same key keeps its name for the life of the process; distinct
	// keys get distinct names.
	first := Name("some-key")
	assert.Equal(t, first, Name("some-key"))
	assert.NotEqual(t, first, Name("some-other-key"))
	assert.NotEmpty(t, first)
}

func TestHalfPlaneName(t *testing.T) {
	f := exact.Rationals()
	disk := hyperbolic.FromIneq(f.Int(-1), f.Zero(), f.One())
	vertical := hyperbolic.FromIneq(f.Zero(), f.Int(2), f.Int(2))

	// Names follow the coefficient triple, so equal half-planes share a
	// name and distinct ones don't.
	assert.Equal(t, HalfPlaneName(disk), HalfPlaneName(disk))
	assert.NotEqual(t, HalfPlaneName(disk), HalfPlaneName(vertical))
	assert.Equal(t, "Ø", HalfPlaneName(nil))
}

func TestHingeName(t *testing.T) {
	f := exact.Rationals()
	vec := func(x, y int64) exact.Vec {
		return exact.NewVec(f.Int(x), f.Int(y))
	}
	hinge := hyperbolic.Hinge{W0: vec(-1, 0), W1: vec(-1, -1), W2: vec(0, -1)}
	other := hyperbolic.Hinge{W0: vec(0, -1), W1: vec(1, 1), W2: vec(1, 0)}

	assert.Equal(t, HingeName(hinge), HingeName(hinge))
	assert.NotEqual(t, HingeName(hinge), HingeName(other))
}
