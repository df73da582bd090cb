package londinium

import "github.com/cockroachdb/errors"

// Error kinds returned by the conversions in this package. Callers match them
// with errors.Is; the returned errors carry additional context.
var (
	// ErrInvalidEllipsoidParameters is returned when an ellipsoid is
	// constructed with axes that do not satisfy a > b > 0.
	ErrInvalidEllipsoidParameters = errors.New("invalid ellipsoid parameters")

	// ErrInvalidProjectionParameters is returned when a projection origin,
	// scale factor or zone is out of range.
	ErrInvalidProjectionParameters = errors.New("invalid projection parameters")

	// ErrInputShape is returned when coordinate input cannot be arranged
	// into pairs.
	ErrInputShape = errors.New("input cannot be reshaped into two columns")

	// ErrConvergenceFailure is returned when an iterative inverse does not
	// meet its tolerance within the iteration bound.
	ErrConvergenceFailure = errors.New("iteration did not converge")

	// ErrSingularTransformMatrix is returned when datum transformation
	// parameters yield a matrix that cannot be inverted.
	ErrSingularTransformMatrix = errors.New("singular datum transformation matrix")
)
