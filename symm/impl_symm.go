// SPDX-License-Identifier: MIT
// Package symm: the symmetric-multiply engine. One generic algorithm, four
// explicit side×triangle strategy kernels — the storage triangle and the row
// traversal direction are baked into each kernel's loop bounds so the hot
// path carries no per-element storage branching. The scalar fast paths live
// here too and run before any kernel is selected.
//
// Shared rule across all kernels: α scales the symmetric operand's
// contribution; β scales C's prior value and that prior value is READ ONLY
// when β is not exactly zero. The β==0 path must stay a skip, not a
// read-modify-write: it is what makes uninitialized (NaN/garbage) C legal
// input under β=0.

package symm

// fastPath applies the scalar short-circuits that make the kernels
// unnecessary. It assumes validated arguments and reports whether the call
// is already complete:
//
//   - m == 0 or n == 0, or (α == 0 and β == 1): pure no-op, C untouched;
//   - α == 0, β == 0: zero-fill C's active m×n window without reading it;
//   - α == 0, β ∉ {0, 1}: scale C's active window in place by β.
//
// When α ≠ 0 it returns false and the engine runs with the original α, β.
// Determinism: fixed j→i column-major traversal. Complexity: O(m·n) worst
// case, O(1) for the no-op outcomes.
func fastPath[T element[T], V view[T]](m, n int, alpha, beta T, c V) bool {
	// Degenerate window, or nothing to add and nothing to rescale.
	if m == 0 || n == 0 || (alpha.IsZero() && beta.IsOne()) {
		return true
	}
	// α ≠ 0: the multiplication itself is required; hand over to the engine.
	if !alpha.IsZero() {
		return false
	}
	// α == 0: C's window reduces to β·C.
	var zero T
	if beta.IsZero() {
		// Overwrite without reading — prior C contents may be uninitialized.
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				c.set(i, j, zero)
			}
		}

		return true
	}
	// General β: in-place scale of the active window.
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			c.set(i, j, beta.Mul(c.at(i, j)))
		}
	}

	return true
}

// symmLeftUpper computes C := α·A·B + β·C with A m×m symmetric, upper
// triangle stored.
//
// Rows are visited in ascending order: each row i both consumes the
// contributions accumulated from rows k < i (temp2, read through A's stored
// column i above the diagonal) and seeds the symmetric reflection of its own
// contribution into those earlier rows (the c.set inside the k loop). The
// strict lower triangle of A's storage is never read.
// Complexity: O(m²·n).
func symmLeftUpper[T element[T], V view[T]](m, n int, alpha T, a, b V, beta T, c V) {
	betaZero := beta.IsZero()
	var zero, temp1, temp2 T
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			temp1 = alpha.Mul(b.at(i, j))
			temp2 = zero
			// k < i: A(k,i) in the stored upper triangle equals the
			// symmetric entry A(i,k).
			for k := 0; k < i; k++ {
				c.set(k, j, c.at(k, j).Add(temp1.Mul(a.at(k, i))))
				temp2 = temp2.Add(b.at(k, j).Mul(a.at(k, i)))
			}
			// Diagonal term plus the accumulated sub-diagonal contribution;
			// C's prior value joins only when β ≠ 0.
			if betaZero {
				c.set(i, j, temp1.Mul(a.at(i, i)).Add(alpha.Mul(temp2)))
			} else {
				c.set(i, j, beta.Mul(c.at(i, j)).Add(temp1.Mul(a.at(i, i))).Add(alpha.Mul(temp2)))
			}
		}
	}
}

// symmLeftLower computes C := α·A·B + β·C with A m×m symmetric, lower
// triangle stored.
//
// Mirror of symmLeftUpper: rows are visited in DESCENDING order and the
// inner accumulation runs over k > i through A's stored column i below the
// diagonal. The strict upper triangle of A's storage is never read.
// Complexity: O(m²·n).
func symmLeftLower[T element[T], V view[T]](m, n int, alpha T, a, b V, beta T, c V) {
	betaZero := beta.IsZero()
	var zero, temp1, temp2 T
	for j := 0; j < n; j++ {
		for i := m - 1; i >= 0; i-- {
			temp1 = alpha.Mul(b.at(i, j))
			temp2 = zero
			// k > i: A(k,i) in the stored lower triangle equals the
			// symmetric entry A(i,k).
			for k := i + 1; k < m; k++ {
				c.set(k, j, c.at(k, j).Add(temp1.Mul(a.at(k, i))))
				temp2 = temp2.Add(b.at(k, j).Mul(a.at(k, i)))
			}
			if betaZero {
				c.set(i, j, temp1.Mul(a.at(i, i)).Add(alpha.Mul(temp2)))
			} else {
				c.set(i, j, beta.Mul(c.at(i, j)).Add(temp1.Mul(a.at(i, i))).Add(alpha.Mul(temp2)))
			}
		}
	}
}

// symmRightUpper computes C := α·B·A + β·C with A n×n symmetric, upper
// triangle stored.
//
// Each output column j is seeded with the diagonal term α·A(j,j)·B(·,j)
// (blended with β·C when β ≠ 0), then accumulates every off-diagonal column
// k ≠ j of B scaled by the symmetric entry A(k,j): stored at (k,j) for
// k < j, and at (j,k) for k > j — the storage side flips across the
// diagonal. Complexity: O(m·n²).
func symmRightUpper[T element[T], V view[T]](m, n int, alpha T, a, b V, beta T, c V) {
	betaZero := beta.IsZero()
	var temp1 T
	for j := 0; j < n; j++ {
		// Seed with the diagonal contribution; no triangle disambiguation
		// is needed for A(j,j).
		temp1 = alpha.Mul(a.at(j, j))
		if betaZero {
			for i := 0; i < m; i++ {
				c.set(i, j, temp1.Mul(b.at(i, j)))
			}
		} else {
			for i := 0; i < m; i++ {
				c.set(i, j, beta.Mul(c.at(i, j)).Add(temp1.Mul(b.at(i, j))))
			}
		}
		// k < j: entry (k,j) lives in the stored upper triangle.
		for k := 0; k < j; k++ {
			temp1 = alpha.Mul(a.at(k, j))
			for i := 0; i < m; i++ {
				c.set(i, j, c.at(i, j).Add(temp1.Mul(b.at(i, k))))
			}
		}
		// k > j: entry (k,j) reflects to the stored (j,k) above the diagonal.
		for k := j + 1; k < n; k++ {
			temp1 = alpha.Mul(a.at(j, k))
			for i := 0; i < m; i++ {
				c.set(i, j, c.at(i, j).Add(temp1.Mul(b.at(i, k))))
			}
		}
	}
}

// symmRightLower computes C := α·B·A + β·C with A n×n symmetric, lower
// triangle stored.
//
// Identical traversal to symmRightUpper with the triangle roles swapped:
// entry (k,j) is stored at (j,k) for k < j and at (k,j) for k > j.
// Complexity: O(m·n²).
func symmRightLower[T element[T], V view[T]](m, n int, alpha T, a, b V, beta T, c V) {
	betaZero := beta.IsZero()
	var temp1 T
	for j := 0; j < n; j++ {
		temp1 = alpha.Mul(a.at(j, j))
		if betaZero {
			for i := 0; i < m; i++ {
				c.set(i, j, temp1.Mul(b.at(i, j)))
			}
		} else {
			for i := 0; i < m; i++ {
				c.set(i, j, beta.Mul(c.at(i, j)).Add(temp1.Mul(b.at(i, j))))
			}
		}
		// k < j: entry (k,j) reflects to the stored (j,k) below the diagonal.
		for k := 0; k < j; k++ {
			temp1 = alpha.Mul(a.at(j, k))
			for i := 0; i < m; i++ {
				c.set(i, j, c.at(i, j).Add(temp1.Mul(b.at(i, k))))
			}
		}
		// k > j: entry (k,j) lives in the stored lower triangle.
		for k := j + 1; k < n; k++ {
			temp1 = alpha.Mul(a.at(k, j))
			for i := 0; i < m; i++ {
				c.set(i, j, c.at(i, j).Add(temp1.Mul(b.at(i, k))))
			}
		}
	}
}

// dispatch routes a validated, non-fast-path call to the strategy kernel
// matching (side, triangle). Selectors were validated upstream, so the
// four-way switch is exhaustive.
func dispatch[T element[T], V view[T]](side Side, tri Triangle, m, n int, alpha T, a, b V, beta T, c V) {
	switch {
	case side == Left && tri == Upper:
		symmLeftUpper(m, n, alpha, a, b, beta, c)
	case side == Left && tri == Lower:
		symmLeftLower(m, n, alpha, a, b, beta, c)
	case side == Right && tri == Upper:
		symmRightUpper(m, n, alpha, a, b, beta, c)
	default: // side == Right && tri == Lower
		symmRightLower(m, n, alpha, a, b, beta, c)
	}
}
