package solver

import "math"

// zeroPivot is the sentinel for detecting a singular pivot during
// elimination. Exact comparison is intentional: the systems built here
// are singular only for degenerate inputs, never "almost singular".
const zeroPivot = 0.0

// solveLinear solves the square system a·x = rhs exactly via Gaussian
// elimination with partial pivoting. Both a and rhs are mutated; callers
// own the scratch. Returns ErrSingular when no unique solution exists.
//
// Adapted from dense LU/forward-backward substitution; for the fixed
// 2×2 and 3×3 systems built in this package a single elimination pass
// is simpler than a separate decomposition.
//
// Complexity: O(n³) time, O(1) extra space — n is 2 or 3 here.
func solveLinear(a [][]float64, rhs []float64) ([]float64, error) {
	n := len(rhs)

	// Stage 1: forward elimination with partial pivoting.
	var col, row, pivotRow, k int
	var pivot, factor float64
	for col = 0; col < n; col++ {
		// 1) Choose the largest-magnitude pivot in this column; these
		//    systems are tiny enough that pivoting costs nothing.
		pivotRow = col
		for row = col + 1; row < n; row++ {
			if math.Abs(a[row][col]) > math.Abs(a[pivotRow][col]) {
				pivotRow = row
			}
		}
		if pivotRow != col {
			a[col], a[pivotRow] = a[pivotRow], a[col]
			rhs[col], rhs[pivotRow] = rhs[pivotRow], rhs[col]
		}

		// 2) A zero pivot after pivoting means the system is singular.
		pivot = a[col][col]
		if pivot == zeroPivot {
			return nil, ErrSingular
		}

		// 3) Eliminate the column below the pivot.
		for row = col + 1; row < n; row++ {
			factor = a[row][col] / pivot
			if factor == 0 {
				continue
			}
			for k = col; k < n; k++ {
				a[row][k] -= factor * a[col][k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	// Stage 2: back substitution into rhs (reused as the solution).
	var sum float64
	for row = n - 1; row >= 0; row-- {
		sum = rhs[row]
		for k = row + 1; k < n; k++ {
			sum -= a[row][k] * rhs[k]
		}
		rhs[row] = sum / a[row][row]
	}

	return rhs, nil
}
