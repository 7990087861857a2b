// SPDX-License-Identifier: MIT
// Package symm: canonical argument validation.
//
// Purpose:
//   - Provide a single source of truth for the ordered argument checks shared
//     by the real and complex entry points.
//   - Keep the facades minimal by delegating every structural guard here.
//   - Return ArgError values carrying the 1-based offending argument index;
//     the first failing check wins, so error codes are reproducible.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on failure.
//   - No numeric buffer is touched during validation.

package symm

// validateArgs runs the documented ordered checks for a symmetric-multiply
// call and reports the first violation:
//
//	1. side ∉ {Left, Right}
//	2. tri  ∉ {Upper, Lower}
//	3. m < 0
//	4. n < 0
//	5. lda < max(1, rowsOfA), rowsOfA = m if side == Left else n
//	6. ldb < max(1, m)
//	7. ldc < max(1, m)
//
// Check 5 deliberately runs after the side check so rowsOfA is well defined.
// Returns nil or an *ArgError tagged with the routine name and the 1-based
// index above. Complexity: O(1).
func validateArgs(routine string, side Side, tri Triangle, m, n, lda, ldb, ldc int) error {
	// Selector checks come first: the dimension checks below depend on side.
	if side != Left && side != Right {
		return argErrorf(routine, 1, ErrBadSide)
	}
	if tri != Upper && tri != Lower {
		return argErrorf(routine, 2, ErrBadTriangle)
	}
	// Dimensions must be non-negative; zero is legal (degenerate no-op).
	if m < 0 {
		return argErrorf(routine, 3, ErrNegativeDimension)
	}
	if n < 0 {
		return argErrorf(routine, 4, ErrNegativeDimension)
	}
	// A is m×m when it multiplies from the left, n×n from the right.
	rowsOfA := m
	if side == Right {
		rowsOfA = n
	}
	if lda < max(1, rowsOfA) {
		return argErrorf(routine, 5, ErrBadLeadingDim)
	}
	if ldb < max(1, m) {
		return argErrorf(routine, 6, ErrBadLeadingDim)
	}
	if ldc < max(1, m) {
		return argErrorf(routine, 7, ErrBadLeadingDim)
	}

	return nil
}

// validateComplexViews enforces the complex-variant precondition: every
// operand must carry an imaginary buffer. Runs after validateArgs and before
// any numeric access, so a failing call leaves C untouched.
//
// Returns ErrMissingImaginary (plain sentinel; errors.Is-matchable) or nil.
// Complexity: O(1).
func validateComplexViews(a, b, c *ComplexMatrix) error {
	if a.Im == nil || b.Im == nil || c.Im == nil {
		return ErrMissingImaginary
	}

	return nil
}
