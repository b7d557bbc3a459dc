package hyperbolic

import "github.com/pkg/errors"

// Threading error returns through the clipping and hinge call chains would
// add a ton of complexity for conditions that are always caller bugs.
// Instead, precondition violations panic, and the public API recovers to
// convert to an error.

// The precondition taxonomy. Every panic raised by this package wraps
// exactly one of these, so callers can match with errors.Is after the public
// API has recovered it.
var (
	ErrDegenerateHalfPlane = errors.New("coefficients determine a degenerate half-plane")
	ErrNonClosingPolygon   = errors.New("triangle sides do not close up")
	ErrWrongOrientation    = errors.New("triangle sides are not oriented correctly")
	ErrInvalidBarycentric  = errors.New("invalid barycentric coordinates")
	ErrMismatchedGluing    = errors.New("glued edges are not opposite vectors")
	ErrIndexOutOfRange     = errors.New("index out of range")
)

type GeometryError error

// Panic with a GeometryError wrapping the given sentinel.
func throwf(cause error, format string, args ...interface{}) {
	panic(GeometryError(errors.Wrapf(cause, format, args...)))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryErr, ok := r.(GeometryError); ok {
			return geometryErr
		}
		panic(r)
	}
	return nil
}
