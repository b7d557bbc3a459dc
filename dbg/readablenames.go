package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/teichmath/veech/hyperbolic"
)

// This gives geometric values random readable names. It flagrantly leaks
// memory but generates the names lazily, so it's not a problem unless you're
// actually using it. Half-plane coefficient triples and hinge vectors are
// unreadable walls of rationals when debugging an arrangement; a name per
// distinct value is much easier to follow across a clipping trace.

var memo map[string]string

func init() {
	memo = make(map[string]string)
	// Since the ids are generated in order of demand, we make them
	// nondetemrinistic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

// Name memoizes a readable name for any canonical key.
func Name(key string) string {
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

func HalfPlaneName(hp *hyperbolic.HalfPlane) string {
	if hp == nil {
		return "Ø"
	}
	return Name(hp.Key())
}

func HingeName(h hyperbolic.Hinge) string {
	return Name(h.W0.Key() + ";" + h.W1.Key() + ";" + h.W2.Key())
}
