package fullmat

import (
	"bufio"
	"io"

	"github.com/cockroachdb/errors"
)

const initialTokenBuffer = 64 * 1024

// tokenScanner yields whitespace separated tokens after the header line.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader, maxTokenSize int) *tokenScanner {
	sc := bufio.NewScanner(r)
	bufSize := initialTokenBuffer
	if maxTokenSize < bufSize {
		bufSize = maxTokenSize
	}
	sc.Buffer(make([]byte, 0, bufSize), maxTokenSize)
	sc.Split(bufio.ScanWords)

	return &tokenScanner{sc: sc}
}

// next returns the next token, or ok == false at end of input.
func (ts *tokenScanner) next() (tok string, ok bool, err error) {
	if !ts.sc.Scan() {
		if err := ts.sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", false, &FormatError{Reason: "token too long"}
			}
			return "", false, &IOError{Op: "read", Err: err}
		}
		return "", false, nil
	}

	return ts.sc.Text(), true, nil
}

// skipLine consumes input up to and including the first newline, without
// holding more than one buffer of it. It reports false if the input was
// empty.
func skipLine(br *bufio.Reader) (bool, error) {
	seen := false
	for {
		chunk, err := br.ReadSlice('\n')
		seen = seen || len(chunk) > 0
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err == io.EOF:
			return seen, nil
		default:
			return false, &IOError{Op: "read", Err: err}
		}
	}
}
