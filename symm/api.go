// SPDX-License-Identifier: MIT
// Package symm: public facades. Each entry point follows the same fixed
// pipeline — Validate → scalar fast path → strategy kernel — and returns
// with C untouched on any validation failure. Facades convert public scalar
// and matrix types onto the internal element/view abstractions; all
// arithmetic lives in impl_symm.go.

package symm

import "fmt"

// Routine name constants for unified error tagging and reducing magic
// strings in ArgError diagnostics.
const (
	routineMultiply        = "Multiply"
	routineMultiplyComplex = "MultiplyComplex"
)

// Multiply performs dense symmetric matrix–matrix multiplication over
// float64 elements, in place:
//
//	C := α·A·B + β·C   (side == Left,  A is m×m symmetric)
//	C := α·B·A + β·C   (side == Right, A is n×n symmetric)
//
// Implementation:
//   - Stage 1: ordered argument validation (validateArgs); the first failing
//     check wins and is reported with its 1-based argument index.
//   - Stage 2: scalar fast path — m==0/n==0 or α==0∧β==1 is a no-op; α==0
//     reduces to zero-fill (β==0, C never read) or an in-place β scale.
//   - Stage 3: one of four side×triangle strategy kernels.
//
// Behavior highlights:
//   - Only the triangle of A named by tri is read; the mirrored half of A's
//     storage may hold arbitrary values.
//   - C's prior contents are read only when β ≠ 0, so C may start
//     uninitialized (even NaN) under β == 0.
//   - Deterministic: fixed traversal orders, zero allocations, no global
//     state; identical inputs give bit-identical C.
//
// Inputs:
//   - side: Left or Right — which side A multiplies from.
//   - tri:  Upper or Lower — which triangle of A's storage holds data.
//   - m, n: rows and columns of B and C; both must be ≥ 0.
//   - alpha, beta: scaling factors for the product and for C's prior value.
//   - a, b, c: column-major views; a.Stride/b.Stride/c.Stride are the
//     leading dimensions (lda/ldb/ldc). m and n may address a sub-window of
//     larger allocations, as in the BLAS convention.
//
// Returns:
//   - error: nil on success (the result is the side effect on c.Data);
//     otherwise an *ArgError and C is untouched.
//
// Errors:
//   - ErrInvalidArgument (always), plus the specific sentinel: ErrBadSide
//     (arg 1), ErrBadTriangle (arg 2), ErrNegativeDimension (args 3–4),
//     ErrBadLeadingDim (args 5–7).
//
// Complexity:
//   - Time O(m²·n) for side == Left, O(m·n²) for side == Right; Space O(1).
//
// Notes:
//   - Buffer lengths are the caller's contract: an undersized Data slice
//     with a conforming Stride is not detected and will panic on access.
//   - B and C must not alias; overlapping buffers are undefined behavior.
func Multiply(side Side, tri Triangle, m, n int, alpha float64, a Matrix, b Matrix, beta float64, c Matrix) error {
	// Stage 1: fail fast, before any write to C.
	if err := validateArgs(routineMultiply, side, tri, m, n, a.Stride, b.Stride, c.Stride); err != nil {
		return err
	}

	// Bind the public views onto the internal element/storage abstractions.
	av := realView{data: a.Data, ld: a.Stride}
	bv := realView{data: b.Data, ld: b.Stride}
	cv := realView{data: c.Data, ld: c.Stride}

	// Stage 2: scalar short-circuits (α == 0 and degenerate windows).
	if fastPath(m, n, real64(alpha), real64(beta), cv) {
		return nil
	}

	// Stage 3: the four-branch engine.
	dispatch(side, tri, m, n, real64(alpha), av, bv, real64(beta), cv)

	return nil
}

// MultiplyComplex is the complex-element variant of Multiply over split
// real/imaginary float64 buffer pairs:
//
//	C := α·A·B + β·C   (side == Left,  A is m×m symmetric)
//	C := α·B·A + β·C   (side == Right, A is n×n symmetric)
//
// Every scalar product uses the full complex multiply
// (x.Re·y.Re − x.Im·y.Im, x.Re·y.Im + x.Im·y.Re) and accumulation adds the
// two components independently. No conjugation is applied anywhere: this is
// the symmetric operation, not the Hermitian one.
//
// Implementation mirrors Multiply exactly (Validate → fast path → kernel),
// with one extra precondition between validation and numerics: every operand
// must carry an imaginary buffer.
//
// Errors:
//   - *ArgError as in Multiply (same argument indices);
//   - ErrMissingImaginary (wrapped with the routine tag; errors.Is-matchable)
//     when any of a, b, c has a nil Im buffer — raised before any numeric
//     access, C untouched.
//
// Complexity: as Multiply, with a constant-factor increase for the complex
// arithmetic; Space O(1).
func MultiplyComplex(side Side, tri Triangle, m, n int, alpha Complex, a ComplexMatrix, b ComplexMatrix, beta Complex, c ComplexMatrix) error {
	// Stage 1: ordered argument checks, then the imaginary-buffer
	// precondition — both complete before any numeric access.
	if err := validateArgs(routineMultiplyComplex, side, tri, m, n, a.Stride, b.Stride, c.Stride); err != nil {
		return err
	}
	if err := validateComplexViews(&a, &b, &c); err != nil {
		return fmt.Errorf("%s: %w", routineMultiplyComplex, err)
	}

	av := cplxView{re: a.Re, im: a.Im, ld: a.Stride}
	bv := cplxView{re: b.Re, im: b.Im, ld: b.Stride}
	cv := cplxView{re: c.Re, im: c.Im, ld: c.Stride}

	// Stage 2: scalar short-circuits; exact zero/one means both components.
	if fastPath(m, n, alpha, beta, cv) {
		return nil
	}

	// Stage 3: the same four-branch engine, instantiated for Complex.
	dispatch(side, tri, m, n, alpha, av, bv, beta, cv)

	return nil
}
