package reporter

import (
	"errors"
	"fmt"

	"github.com/apexcompile/apexcompile/ast"
)

// ErrInvalidSource is the sentinel returned when syntax errors were found
// but the configured ErrorReporter returned nil for all of them.
var ErrInvalidSource = errors.New("parse failed: invalid apex source")

// ErrorWithLoc is an error about a source file that carries the location
// that caused it. Error() includes the location; Unwrap() yields only the
// underlying error.
type ErrorWithLoc interface {
	error
	Location() ast.Location
	Unwrap() error
}

// Error wraps err with a location.
func Error(loc ast.Location, err error) ErrorWithLoc {
	return errorWithLoc{loc: loc, underlying: err}
}

// Errorf creates a located error from a format string.
func Errorf(loc ast.Location, format string, args ...any) ErrorWithLoc {
	return errorWithLoc{loc: loc, underlying: fmt.Errorf(format, args...)}
}

type errorWithLoc struct {
	underlying error
	loc        ast.Location
}

func (e errorWithLoc) Error() string {
	if e.loc.IsUnknown() {
		return e.underlying.Error()
	}
	return fmt.Sprintf("%d:%d: %v", e.loc.StartLine, e.loc.StartColumn, e.underlying)
}

func (e errorWithLoc) Location() ast.Location { return e.loc }

func (e errorWithLoc) Unwrap() error { return e.underlying }

var _ ErrorWithLoc = errorWithLoc{}
