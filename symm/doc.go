// SPDX-License-Identifier: MIT

// Package symm implements dense symmetric matrix–matrix multiplication with
// scaling and accumulation:
//
//	C := α·A·B + β·C   (side = Left)
//	C := α·B·A + β·C   (side = Right)
//
// where A is symmetric and only one of its triangles is stored, and B, C are
// general rectangular matrices. Two element variants share one algorithm:
//
//   - Multiply        — float64 elements
//   - MultiplyComplex — complex elements held in parallel real/imaginary
//     float64 buffers (no native complex type; see Complex and ComplexMatrix)
//
// Storage model:
//
//   - All matrices are column-major flat buffers with an explicit leading
//     dimension (Stride): element (i, j), 0-based, lives at Data[j*Stride+i].
//   - Only the triangle of A named by the Triangle selector is ever read;
//     the mirrored half is inferred from symmetry and its storage may hold
//     arbitrary values.
//   - C is mutated in place. When β is exactly zero, C's prior contents are
//     never read, so C may start uninitialized (even NaN).
//
// Contract and guarantees:
//
//   - Every argument is validated before a single write; on error C is
//     untouched. Failures unwrap to ErrInvalidArgument (with the 1-based
//     offending argument index carried by ArgError) or ErrMissingImaginary.
//   - Deterministic: fixed traversal orders, no allocation in the kernels,
//     no global state, single-threaded. Identical inputs give bit-identical
//     outputs.
//   - Reference semantics: no tiling, no SIMD, no threading. The package is
//     a correctness contract, not a tuned BLAS.
//
// Aliasing: B and C must not overlap; behavior is undefined if they do.
// Callers own all buffers and are responsible for synchronization when C is
// shared across goroutines.
package symm
