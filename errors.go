package fullmat

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrIO and ErrFormat classify every error returned by Read, ReadFrom,
// Write and WriteTo. Match them with errors.Is.
var (
	ErrIO     = errors.New("fullmat: io error")
	ErrFormat = errors.New("fullmat: invalid file")
)

// IOError reports a failure to open, read, write or close a matrix file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("fullmat: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fullmat: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// FormatError reports malformed file contents. Expected and Actual are
// value counts and are only set for count mismatches.
type FormatError struct {
	Path     string
	Reason   string
	Token    string
	Expected []int
	Actual   int
}

func (e *FormatError) Error() string {
	msg := "fullmat: "
	if e.Path != "" {
		msg += e.Path + ": "
	}
	msg += "invalid file: " + e.Reason
	if e.Token != "" {
		msg += fmt.Sprintf(" %q", e.Token)
	}
	if len(e.Expected) > 0 {
		msg += fmt.Sprintf(" (expected %s values, got %d)", joinCounts(e.Expected), e.Actual)
	}
	return msg
}

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func joinCounts(counts []int) string {
	s := ""
	for i, c := range counts {
		if i > 0 {
			s += " or "
		}
		s += fmt.Sprint(c)
	}
	return s
}

// withPath fills in the file path on errors produced by the reader and writer.
func withPath(err error, path string) error {
	var fe *FormatError
	if errors.As(err, &fe) && fe.Path == "" {
		fe.Path = path
	}
	var ie *IOError
	if errors.As(err, &ie) && ie.Path == "" {
		ie.Path = path
	}
	return err
}
