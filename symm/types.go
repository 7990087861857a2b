// SPDX-License-Identifier: MIT

// Package symm: domain types — side/triangle selectors with normalization
// helpers, the split complex scalar, and the public column-major matrix
// views with their constructors and bounds-checked accessors. Errors live in
// errors.go and validators in validators.go per the global conventions.

package symm

// Side selects which side the symmetric operand A multiplies from:
// C := α·A·B + β·C (Left) or C := α·B·A + β·C (Right).
type Side byte

// Canonical side selector values. These are what the validators accept;
// ParseSide normalizes the single-character convention onto them.
const (
	// Left places the symmetric matrix A on the left: C := α·A·B + β·C.
	Left Side = 'L'
	// Right places the symmetric matrix A on the right: C := α·B·A + β·C.
	Right Side = 'R'
)

// Triangle declares which half of A's square storage holds valid data. The
// other half is inferred by symmetry and is never read.
type Triangle byte

// Canonical triangle selector values.
const (
	// Upper means A's upper triangle (including the diagonal) is stored.
	Upper Triangle = 'U'
	// Lower means A's lower triangle (including the diagonal) is stored.
	Lower Triangle = 'L'
)

// ParseSide normalizes the case-insensitive single-character side token
// ('l'/'L' or 'r'/'R') onto the canonical Side constants.
//
// Returns ErrBadSide for any other token. Complexity: O(1).
func ParseSide(tok byte) (Side, error) {
	switch tok {
	case 'l', 'L':
		return Left, nil
	case 'r', 'R':
		return Right, nil
	default:
		return 0, ErrBadSide
	}
}

// ParseTriangle normalizes the case-insensitive single-character triangle
// token ('u'/'U' or 'l'/'L') onto the canonical Triangle constants.
//
// Returns ErrBadTriangle for any other token. Complexity: O(1).
func ParseTriangle(tok byte) (Triangle, error) {
	switch tok {
	case 'u', 'U':
		return Upper, nil
	case 'l', 'L':
		return Lower, nil
	default:
		return 0, ErrBadTriangle
	}
}

// Complex is a complex scalar held as an explicit (real, imaginary) pair.
// It stands in for a native complex type so that scalars and matrix elements
// share one arithmetic definition (see Mul) with the split-buffer storage of
// ComplexMatrix.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// Add returns x + y with real and imaginary parts added independently.
// Complexity: O(1).
func (x Complex) Add(y Complex) Complex {
	return Complex{Re: x.Re + y.Re, Im: x.Im + y.Im}
}

// Mul returns the full complex product
//
//	(x.Re·y.Re − x.Im·y.Im, x.Re·y.Im + x.Im·y.Re).
//
// No conjugation is applied anywhere in this package (symmetric, not
// Hermitian, semantics). Complexity: O(1).
func (x Complex) Mul(y Complex) Complex {
	return Complex{
		Re: x.Re*y.Re - x.Im*y.Im,
		Im: x.Re*y.Im + x.Im*y.Re,
	}
}

// IsZero reports whether x is exactly zero in both components. Exactness
// matters: the fast paths of Multiply/MultiplyComplex key off it.
func (x Complex) IsZero() bool { return x.Re == 0 && x.Im == 0 }

// IsOne reports whether x is exactly the multiplicative identity (1, 0).
func (x Complex) IsOne() bool { return x.Re == 1 && x.Im == 0 }

// Matrix is a column-major view over a dense float64 buffer.
//
// Element (i, j), 0-based, lives at Data[j*Stride+i]. Stride is the leading
// dimension: the offset between the starts of consecutive columns, and must
// be ≥ max(1, rows-used-by-a-call). Rows/Cols describe the allocated extent
// and bound the At/Set helpers; a Multiply call may address a smaller m×n
// window, exactly as in the BLAS convention.
//
// Undersized Data relative to Stride and the call's dimensions is a caller
// error and is not detected at run time (spec'd leading-dimension checks are
// the only structural guard).
type Matrix struct {
	Rows   int       // allocated row count
	Cols   int       // allocated column count
	Stride int       // leading dimension, ≥ max(1, Rows)
	Data   []float64 // flat column-major storage, length ≥ Stride*(Cols-1)+Rows
}

// NewMatrix allocates a zero-initialized rows×cols column-major Matrix with
// Stride = max(1, rows).
//
// Returns ErrInvalidDimensions when rows < 0 or cols < 0. Zero-sized
// matrices are legal (degenerate calls are no-ops). Complexity: O(rows·cols).
func NewMatrix(rows, cols int) (*Matrix, error) {
	// Validate requested extents; zero is allowed, negative is not.
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	stride := max(1, rows)

	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		Stride: stride,
		Data:   make([]float64, stride*cols),
	}, nil
}

// At retrieves element (i, j), 0-based.
// Returns ErrOutOfRange when the index falls outside Rows×Cols.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return 0, ErrOutOfRange
	}

	return m.Data[j*m.Stride+i], nil
}

// Set assigns element (i, j), 0-based.
// Returns ErrOutOfRange when the index falls outside Rows×Cols.
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return ErrOutOfRange
	}
	m.Data[j*m.Stride+i] = v

	return nil
}

// ComplexMatrix is a column-major view over a dense complex buffer pair.
//
// The real and imaginary parts of element (i, j) live at the identical
// offset j*Stride+i of the Re and Im buffers. A ComplexMatrix with a nil Im
// buffer is rejected by the complex entry point with ErrMissingImaginary.
type ComplexMatrix struct {
	Rows   int       // allocated row count
	Cols   int       // allocated column count
	Stride int       // leading dimension, ≥ max(1, Rows)
	Re     []float64 // real parts, column-major
	Im     []float64 // imaginary parts, column-major, same offsets as Re
}

// NewComplexMatrix allocates a zero-initialized rows×cols ComplexMatrix with
// both component buffers present and Stride = max(1, rows).
//
// Returns ErrInvalidDimensions when rows < 0 or cols < 0.
// Complexity: O(rows·cols).
func NewComplexMatrix(rows, cols int) (*ComplexMatrix, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	stride := max(1, rows)

	return &ComplexMatrix{
		Rows:   rows,
		Cols:   cols,
		Stride: stride,
		Re:     make([]float64, stride*cols),
		Im:     make([]float64, stride*cols),
	}, nil
}

// At retrieves element (i, j), 0-based, as a Complex pair.
// Returns ErrOutOfRange when the index falls outside Rows×Cols.
// Complexity: O(1).
func (m *ComplexMatrix) At(i, j int) (Complex, error) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return Complex{}, ErrOutOfRange
	}
	k := j*m.Stride + i

	return Complex{Re: m.Re[k], Im: m.Im[k]}, nil
}

// Set assigns element (i, j), 0-based, writing both components.
// Returns ErrOutOfRange when the index falls outside Rows×Cols.
// Complexity: O(1).
func (m *ComplexMatrix) Set(i, j int, v Complex) error {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		return ErrOutOfRange
	}
	k := j*m.Stride + i
	m.Re[k], m.Im[k] = v.Re, v.Im

	return nil
}
