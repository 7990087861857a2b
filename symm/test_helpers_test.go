// Package symm_test: shared helpers for the symm test suite. Helpers build
// column-major fixtures deterministically (fixed seeds), poison every buffer
// region the routines must never touch, and provide an independent
// full-matrix reference implementation to check the triangular kernels
// against.
package symm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlblas/symm"
)

// junkNaN poisons storage the routines must never read: the unreferenced
// triangle of A and all leading-dimension padding. Any illegal read shows up
// as NaN in the output.
var junkNaN = math.NaN()

// colMajorIndex returns the flat offset of element (i, j) for stride ld.
func colMajorIndex(i, j, ld int) int { return j*ld + i }

// fillRandInts fills dst with small integer-valued floats in [-3, 3].
// Integer data keeps every product and sum exact in float64, so tests that
// assert bit-identical results are checking traversal equivalence, not
// rounding luck.
func fillRandInts(rng *rand.Rand, dst []float64) {
	for i := range dst {
		dst[i] = float64(rng.Intn(7) - 3)
	}
}

// fillRandFloats fills dst with floats in [-1, 1).
func fillRandFloats(rng *rand.Rand, dst []float64) {
	for i := range dst {
		dst[i] = 2*rng.Float64() - 1
	}
}

// fullSymmetric builds a dense ka×ka logical symmetric matrix (stride ka)
// from the given generator: entry (i,j) equals entry (j,i) exactly.
func fullSymmetric(rng *rand.Rand, ka int, ints bool) []float64 {
	full := make([]float64, ka*ka)
	for i := 0; i < ka; i++ {
		for j := i; j < ka; j++ {
			var v float64
			if ints {
				v = float64(rng.Intn(7) - 3)
			} else {
				v = 2*rng.Float64() - 1
			}
			full[colMajorIndex(i, j, ka)] = v // upper entry
			full[colMajorIndex(j, i, ka)] = v // mirrored lower entry
		}
	}

	return full
}

// triangleStorage extracts the stored triangle of a full ka×ka symmetric
// matrix into a fresh buffer with leading dimension lda (lda ≥ ka), writing
// junk into the unreferenced triangle and into all padding so illegal reads
// poison the result.
func triangleStorage(tri symm.Triangle, full []float64, ka, lda int, junk float64) []float64 {
	a := make([]float64, lda*ka)
	for i := range a {
		a[i] = junk // poison everything first
	}
	for j := 0; j < ka; j++ {
		for i := 0; i <= j; i++ {
			if tri == symm.Upper {
				a[colMajorIndex(i, j, lda)] = full[colMajorIndex(i, j, ka)]
			} else {
				a[colMajorIndex(j, i, lda)] = full[colMajorIndex(j, i, ka)]
			}
		}
	}

	return a
}

// generalStorage copies an m×n column-major matrix (stride m) into a fresh
// buffer with leading dimension ld, poisoning the padding rows with junk.
func generalStorage(src []float64, m, n, ld int, junk float64) []float64 {
	dst := make([]float64, ld*n)
	for i := range dst {
		dst[i] = junk
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			dst[colMajorIndex(i, j, ld)] = src[colMajorIndex(i, j, m)]
		}
	}

	return dst
}

// refSymm is the independent oracle: a plain dense multiply over the FULL
// symmetric matrix, with no triangle logic to share bugs with the package
// under test. It returns β·C + α·A·B (side Left) or β·C + α·B·A (side
// Right) as a tight m×n column-major buffer (stride m). cInit is read with
// stride ldc; β==0 never reads it.
func refSymm(side symm.Side, m, n int, alpha float64, full []float64, b []float64, ldb int, beta float64, cInit []float64, ldc int) []float64 {
	want := make([]float64, m*n)
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var sum float64
			if side == symm.Left {
				// (A·B)(i,j) with A m×m full symmetric.
				for k := 0; k < m; k++ {
					sum += full[colMajorIndex(i, k, m)] * b[colMajorIndex(k, j, ldb)]
				}
			} else {
				// (B·A)(i,j) with A n×n full symmetric.
				for k := 0; k < n; k++ {
					sum += b[colMajorIndex(i, k, ldb)] * full[colMajorIndex(k, j, n)]
				}
			}
			v := alpha * sum
			if beta != 0 {
				v += beta * cInit[colMajorIndex(i, j, ldc)]
			}
			want[colMajorIndex(i, j, m)] = v
		}
	}

	return want
}

// refSymmComplex mirrors refSymm for split complex buffers, using the
// package's own Complex value arithmetic for scalar products (the arithmetic
// definition is part of the public contract).
func refSymmComplex(side symm.Side, m, n int, alpha symm.Complex, fullRe, fullIm []float64, bRe, bIm []float64, ldb int, beta symm.Complex, cRe, cIm []float64, ldc int) ([]float64, []float64) {
	wantRe := make([]float64, m*n)
	wantIm := make([]float64, m*n)
	ka := m
	if side == symm.Right {
		ka = n
	}
	at := func(re, im []float64, i, j, ld int) symm.Complex {
		k := colMajorIndex(i, j, ld)
		return symm.Complex{Re: re[k], Im: im[k]}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var sum symm.Complex
			for k := 0; k < ka; k++ {
				if side == symm.Left {
					sum = sum.Add(at(fullRe, fullIm, i, k, ka).Mul(at(bRe, bIm, k, j, ldb)))
				} else {
					sum = sum.Add(at(bRe, bIm, i, k, ldb).Mul(at(fullRe, fullIm, k, j, ka)))
				}
			}
			v := alpha.Mul(sum)
			if !beta.IsZero() {
				v = v.Add(beta.Mul(at(cRe, cIm, i, j, ldc)))
			}
			idx := colMajorIndex(i, j, m)
			wantRe[idx], wantIm[idx] = v.Re, v.Im
		}
	}

	return wantRe, wantIm
}

// requireWindow asserts that the active m×n window of got (stride ldc)
// matches want (tight, stride m) within tol, and that every padding element
// of got still carries its original value from before (exact bit compare, so
// NaN padding counts as untouched).
func requireWindow(t *testing.T, m, n, ldc int, got, before, want []float64, tol float64) {
	t.Helper()
	for j := 0; j < n; j++ {
		for i := 0; i < ldc; i++ {
			idx := colMajorIndex(i, j, ldc)
			if i < m {
				w := want[colMajorIndex(i, j, m)]
				if math.Abs(got[idx]-w) > tol {
					t.Fatalf("C(%d,%d) = %v, want %v (±%v)", i, j, got[idx], w, tol)
				}
				continue
			}
			// Padding row: must be byte-identical to the pre-call contents.
			if math.Float64bits(got[idx]) != math.Float64bits(before[idx]) {
				t.Fatalf("padding C[%d] mutated: %v -> %v", idx, before[idx], got[idx])
			}
		}
	}
}

// cloneFloats returns an independent copy of src.
func cloneFloats(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)

	return dst
}

// sides and triangles enumerate the four kernel branches in a stable order.
var (
	sides     = []symm.Side{symm.Left, symm.Right}
	triangles = []symm.Triangle{symm.Upper, symm.Lower}
)
