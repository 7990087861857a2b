// SPDX-License-Identifier: MIT
// Package symm: the numeric-element abstraction shared by both engine
// instantiations. The four side×triangle kernels are written once over this
// contract; Multiply binds it to float64 and MultiplyComplex to the split
// Complex pair, so the algorithm text is never duplicated per element type.

package symm

// element is the minimal scalar contract the engine needs: addition,
// multiplication, and exact comparisons against the additive and
// multiplicative identities (the fast paths key off exact zero/one, never a
// tolerance). The constraint is self-referential so arithmetic stays fully
// typed and inlines to plain float64 ops for the real instantiation.
type element[T any] interface {
	// Add returns the receiver plus the argument.
	Add(T) T
	// Mul returns the receiver times the argument.
	Mul(T) T
	// IsZero reports exact equality with the additive identity.
	IsZero() bool
	// IsOne reports exact equality with the multiplicative identity.
	IsOne() bool
}

// real64 adapts float64 to the element contract. Internal: the public real
// API speaks plain float64 and converts at the facade boundary only.
type real64 float64

// Add returns x + y.
func (x real64) Add(y real64) real64 { return x + y }

// Mul returns x · y.
func (x real64) Mul(y real64) real64 { return x * y }

// IsZero reports x == 0 exactly.
func (x real64) IsZero() bool { return x == 0 }

// IsOne reports x == 1 exactly.
func (x real64) IsOne() bool { return x == 1 }

// Complex (types.go) satisfies element[Complex] through its exported
// Add/Mul/IsZero/IsOne methods; the compile-time assertions below keep both
// instantiations honest.
var (
	_ element[real64]  = real64(0)
	_ element[Complex] = Complex{}
)
