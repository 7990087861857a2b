// Package lvlblas is a small, deterministic dense linear-algebra toolkit —
// reference BLAS-style kernels written in pure Go with fail-fast validation
// and sentinel errors.
//
// 🚀 What is lvlblas?
//
//	A focused, zero-magic library that currently provides:
//		• symm/ — symmetric matrix–matrix multiply (C := αAB + βC or C := αBA + βC)
//		  over column-major buffers, for real (float64) and complex
//		  (split real/imaginary buffer) elements
//
// ✨ Why choose lvlblas?
//
//   - Reference semantics – readable loops, fixed traversal orders, no tiling
//     or threading; correctness contract first
//   - Rock-solid guarantees – every argument validated before a single write,
//     sentinel errors matched via errors.Is
//   - Pure Go – no cgo, no assembly, no hidden deps
//
// See the symm package documentation and the examples/ directory for usage.
package lvlblas
