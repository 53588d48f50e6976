package fullmat

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/fjourdes/fullmat/layout"
	"github.com/fjourdes/fullmat/number"
)

// Read parses the matrix file at path. Errors match ErrIO when the file
// cannot be opened or read and ErrFormat when its contents are malformed.
func Read(path string, opts ...ReadOption) (Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return Matrix{}, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	m, err := ReadFrom(file, opts...)
	if err != nil {
		return Matrix{}, withPath(err, path)
	}

	return m, nil
}

// ReadFrom parses a matrix from r. The first line is discarded whatever it
// contains.
//
// Values are parsed with strconv.ParseFloat, so the literal tokens "nan" and
// "inf" are accepted and a "nan" token yields NaN in the result. Only the
// 1e308 sentinels are mapped to infinities. Values out of float64 range
// become ±Inf.
func ReadFrom(r io.Reader, opts ...ReadOption) (Matrix, error) {
	cfg := newReadConfig(opts)

	br := bufio.NewReader(r)
	ok, err := skipLine(br)
	if err != nil {
		return Matrix{}, err
	}
	if !ok {
		return Matrix{}, &FormatError{Reason: "missing header line"}
	}

	ts := newTokenScanner(br, cfg.maxTokenSize)
	rows, err := scanDim(ts, "rows")
	if err != nil {
		return Matrix{}, err
	}
	cols, err := scanDim(ts, "cols")
	if err != nil {
		return Matrix{}, err
	}

	n, ok := layout.CheckedProduct(rows, cols)
	if !ok {
		return Matrix{}, &FormatError{Reason: "dimensions too large"}
	}
	n2, ok := layout.CheckedProduct(n, 2)
	if !ok {
		return Matrix{}, &FormatError{Reason: "dimensions too large"}
	}

	values, count, err := scanValues(ts, n2, cfg.lenient)
	if err != nil {
		return Matrix{}, err
	}
	number.DecodeAll(values)

	switch count {
	case n:
		data := layout.ColumnToRowMajor(values, rows, cols)
		return NewReal(mat.NewDense(rows, cols, data)), nil
	case n2:
		re, im := layout.Deinterleave(values)
		flat := make([]complex128, n)
		for i := range flat {
			flat[i] = complex(re[i], im[i])
		}
		data := layout.ColumnToRowMajor(flat, rows, cols)
		return NewComplex(mat.NewCDense(rows, cols, data)), nil
	default:
		return Matrix{}, &FormatError{
			Reason:   "mismatched element count",
			Expected: []int{n, n2},
			Actual:   count,
		}
	}
}

func scanDim(ts *tokenScanner, name string) (int, error) {
	tok, ok, err := ts.next()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &FormatError{Reason: "missing " + name}
	}

	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &FormatError{Reason: "non-integer " + name, Token: tok}
	}
	if v <= 0 {
		return 0, &FormatError{Reason: "non-positive " + name, Token: tok}
	}

	return v, nil
}

// scanValues reads numeric tokens until end of input. At most limit values
// are kept; count is the total number of values seen.
func scanValues(ts *tokenScanner, limit int, lenient bool) (values []float64, count int, _ error) {
	for {
		tok, ok, err := ts.next()
		if err != nil {
			return nil, 0, err
		}
		if !ok {
			break
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			if lenient {
				break
			}
			return nil, 0, &FormatError{
				Reason: "malformed value " + strconv.Itoa(count+1),
				Token:  tok,
			}
		}

		if count < limit {
			values = append(values, v)
		}
		count++
	}

	return values, count, nil
}

// Write stores m at path, creating or truncating the file.
func Write(path string, m Matrix) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := WriteTo(file, m); err != nil {
		return withPath(err, path)
	}

	return nil
}

// WriteTo writes m to w in the format Read accepts, one element per line in
// column-major order. Infinities are written as sentinels, and NaN is
// written as the +Inf sentinel.
func WriteTo(w io.Writer, m Matrix) error {
	var header string
	var flat []float64
	step := 1
	rows, cols := m.Dims()
	switch m.Kind() {
	case KindReal:
		header = "%%MatrixMarket matrix array real general\n"
		raw := m.re.RawMatrix()
		flat = layout.RowToColumnMajor(compactRows(raw.Data, raw.Stride, rows, cols), rows, cols)
	case KindComplex:
		header = "%%MatrixMarket matrix array complex general\n"
		raw := m.cx.RawCMatrix()
		cflat := layout.RowToColumnMajor(compactRows(raw.Data, raw.Stride, rows, cols), rows, cols)
		re := make([]float64, len(cflat))
		im := make([]float64, len(cflat))
		for i, v := range cflat {
			re[i], im[i] = real(v), imag(v)
		}
		flat = layout.Interleave(re, im)
		step = 2
	default:
		return &FormatError{Reason: "empty matrix"}
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(header)
	bw.WriteString(strconv.Itoa(rows) + " " + strconv.Itoa(cols) + "\n")
	for i := 0; i < len(flat); i += step {
		bw.WriteString(formatValue(flat[i]))
		if step == 2 {
			bw.WriteByte(' ')
			bw.WriteString(formatValue(flat[i+1]))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return &IOError{Op: "write", Err: err}
	}

	return nil
}

// compactRows drops the padding between rows of a strided gonum buffer.
func compactRows[T any](data []T, stride, rows, cols int) []T {
	if stride == cols {
		return data[:rows*cols]
	}

	out := make([]T, 0, rows*cols)
	for r := 0; r < rows; r++ {
		out = append(out, data[r*stride:r*stride+cols]...)
	}
	return out
}

func formatValue(v float64) string {
	return strconv.FormatFloat(number.Encode(v), 'g', -1, 64)
}
