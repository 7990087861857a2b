// SPDX-License-Identifier: MIT
// Package symm: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the ArgError
// carrier used across the symm package. All routines MUST return these
// sentinels and tests MUST check them via errors.Is. No routine panics on
// user-triggered error conditions.

package symm

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "symm: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; contextual wrapping happens only at the facade boundary (via
// ArgError or routine-tagged fmt.Errorf) — callers still match with
// errors.Is.

var (
	// ErrInvalidArgument is the umbrella sentinel for every argument
	// validation failure. Each failure also unwraps to one of the specific
	// sentinels below; use ArgError (via errors.As) to recover the 1-based
	// argument index.
	ErrInvalidArgument = errors.New("symm: invalid argument")

	// ErrBadSide signals a side selector outside {Left, Right}.
	ErrBadSide = errors.New("symm: bad side selector")

	// ErrBadTriangle signals a triangle selector outside {Upper, Lower}.
	ErrBadTriangle = errors.New("symm: bad triangle selector")

	// ErrNegativeDimension signals m < 0 or n < 0.
	ErrNegativeDimension = errors.New("symm: negative dimension")

	// ErrBadLeadingDim signals a leading dimension smaller than the number
	// of rows the call uses in that buffer (stride < max(1, rows)).
	ErrBadLeadingDim = errors.New("symm: leading dimension too small")

	// ErrMissingImaginary is returned by the complex entry point when any of
	// A, B, C is presented without an imaginary buffer. Raised before any
	// numeric access; C is untouched.
	ErrMissingImaginary = errors.New("symm: complex matrix missing imaginary buffer")

	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// negative at construction time (NewMatrix / NewComplexMatrix).
	ErrInvalidDimensions = errors.New("symm: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("symm: index out of range")
)

// ArgError reports the first invalid argument of a routine, tagged with its
// 1-based position in the documented check order:
//
//	1=side, 2=triangle, 3=m, 4=n, 5=lda, 6=ldb, 7=ldc
//
// ArgError matches both ErrInvalidArgument and the specific per-argument
// sentinel through errors.Is; recover the index with errors.As.
type ArgError struct {
	Routine string // public routine name, e.g. "Multiply"
	Index   int    // 1-based position of the offending argument
	reason  error  // specific sentinel describing the violation
}

// argErrorf builds an ArgError for the given routine, argument position and
// specific sentinel. Internal: validators are the only producer.
func argErrorf(routine string, index int, reason error) *ArgError {
	return &ArgError{Routine: routine, Index: index, reason: reason}
}

// Error renders the diagnostic as "<sentinel> (routine R, argument N)".
func (e *ArgError) Error() string {
	return fmt.Sprintf("%v (routine %s, argument %d)", e.reason, e.Routine, e.Index)
}

// Unwrap exposes both the umbrella sentinel and the specific reason, so
// errors.Is(err, ErrInvalidArgument) and errors.Is(err, ErrBadSide) hold
// simultaneously.
func (e *ArgError) Unwrap() []error {
	return []error{ErrInvalidArgument, e.reason}
}
