package throw

import "github.com/pkg/errors"

// Threading errors up and down all the recursive operations during point
// location, splitting and legalization would add a ton of complexity to the
// code. Instead, we use panics, and the public API recovers to convert to an
// error.

var (
	// The input does not satisfy the construction contract. Always reported
	// before any work is done.
	ErrPreconditionViolation = errors.New("precondition violation")

	// Point location found something other than one or two containing
	// triangles, typically because of duplicate points.
	ErrDegenerateInput = errors.New("degenerate input")

	// A defect in the algorithm rather than in the input.
	ErrInternalInvariantViolation = errors.New("internal invariant violation")
)

// The panic value used by this package. Keeping it private means a recover
// handler can tell our panics apart from runtime faults.
type triangulateError struct {
	err error
}

func fatal(kind error, format string, args ...interface{}) {
	panic(triangulateError{errors.Wrapf(kind, format, args...)})
}

// Panic with an ErrDegenerateInput.
func Degeneratef(format string, args ...interface{}) {
	fatal(ErrDegenerateInput, format, args...)
}

// Panic with an ErrInternalInvariantViolation.
func Invariantf(format string, args ...interface{}) {
	fatal(ErrInternalInvariantViolation, format, args...)
}

// Panic with an already constructed error, which should wrap one of the
// sentinels above.
func Throw(err error) {
	panic(triangulateError{err})
}

// Precondition builds (but does not throw) an ErrPreconditionViolation.
// Preconditions are checked up front and returned directly.
func Precondition(format string, args ...interface{}) error {
	return errors.Wrapf(ErrPreconditionViolation, format, args...)
}

// Convert a recovered value into an error. Anything that didn't come from this
// package is a real panic, and is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(triangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}
