// SPDX-License-Identifier: MIT
// Package symm: internal column-major element views. These bind an element
// type to its backing buffer(s) and are the ONLY place where (row, col)
// coordinates are translated into flat offsets — the kernels reason in
// matrix coordinates and never touch buffers directly.

package symm

// view is the storage contract the engine traverses. Coordinates are
// 0-based; implementations perform no bounds checking (the facades validate
// leading dimensions before any view is built, and buffer sizing is the
// caller's contract).
type view[T any] interface {
	// at reads element (i, j).
	at(i, j int) T
	// set writes element (i, j).
	set(i, j int, v T)
}

// realView is a column-major float64 window: element (i, j) at
// data[j*ld+i].
type realView struct {
	data []float64 // flat column-major storage
	ld   int       // leading dimension (column stride)
}

func (v realView) at(i, j int) real64 { return real64(v.data[j*v.ld+i]) }

func (v realView) set(i, j int, x real64) { v.data[j*v.ld+i] = float64(x) }

// cplxView is a column-major split-complex window: the real and imaginary
// parts of element (i, j) sit at the identical offset j*ld+i of the two
// component buffers.
type cplxView struct {
	re []float64 // real parts
	im []float64 // imaginary parts
	ld int       // leading dimension (column stride), shared by both buffers
}

func (v cplxView) at(i, j int) Complex {
	k := j*v.ld + i

	return Complex{Re: v.re[k], Im: v.im[k]}
}

func (v cplxView) set(i, j int, x Complex) {
	k := j*v.ld + i
	v.re[k], v.im[k] = x.Re, x.Im
}

// Compile-time assertions: both windows satisfy the view contract for their
// element type.
var (
	_ view[real64]  = realView{}
	_ view[Complex] = cplxView{}
)
