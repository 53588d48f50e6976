// Package layout converts between the column-major order of matrix files
// and the row-major order gonum stores.
package layout

import "math"

// ColumnToRowMajor returns a row-major copy of flat, which holds a
// rows x cols matrix column by column.
func ColumnToRowMajor[T any](flat []T, rows, cols int) []T {
	if len(flat) != rows*cols {
		panic("layout: length mismatch")
	}

	data := make([]T, len(flat))
	for i, v := range flat {
		r, c := i%rows, i/rows
		data[r*cols+c] = v
	}

	return data
}

// RowToColumnMajor is the inverse of ColumnToRowMajor.
func RowToColumnMajor[T any](data []T, rows, cols int) []T {
	if len(data) != rows*cols {
		panic("layout: length mismatch")
	}

	flat := make([]T, len(data))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			flat[c*rows+r] = data[r*cols+c]
		}
	}

	return flat
}

// Deinterleave splits flat into the elements at 1-based odd positions and
// those at 1-based even positions. len(flat) must be even.
func Deinterleave[T any](flat []T) (odd, even []T) {
	if len(flat)%2 != 0 {
		panic("layout: odd length")
	}

	n := len(flat) / 2
	odd = make([]T, n)
	even = make([]T, n)
	for i := 0; i < n; i++ {
		odd[i] = flat[2*i]
		even[i] = flat[2*i+1]
	}

	return odd, even
}

// Interleave is the inverse of Deinterleave.
func Interleave[T any](odd, even []T) []T {
	if len(odd) != len(even) {
		panic("layout: length mismatch")
	}

	flat := make([]T, 0, 2*len(odd))
	for i := range odd {
		flat = append(flat, odd[i], even[i])
	}

	return flat
}

// CheckedProduct returns a*b for non-negative a and b, and false if the
// product does not fit in an int.
func CheckedProduct(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, false
	}
	return a * b, true
}
