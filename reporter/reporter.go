// Package reporter contains the types used to report errors encountered
// while lexing and parsing Apex source. A Handler aggregates errors for one
// file; the configured ErrorReporter decides whether scanning continues
// after each one.
package reporter

import (
	"sync"

	"github.com/apexcompile/apexcompile/ast"
)

// ErrorReporter is responsible for reporting the given error. If the
// reporter returns a non-nil error, lexing/parsing will abort with that
// error. If the reporter returns nil, work continues, allowing the parser
// to report as many syntax errors as it can find.
type ErrorReporter func(err ErrorWithLoc) error

// WarningReporter is responsible for reporting the given warning: something
// that does not fail the parse but is considered bad practice. The details
// are supplied via an error type.
type WarningReporter func(ErrorWithLoc)

// Reporter receives errors and warnings as they are found.
type Reporter interface {
	Error(ErrorWithLoc) error
	Warning(ErrorWithLoc)
}

// NewReporter builds a Reporter from the two callbacks; either may be nil.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithLoc) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithLoc) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler aggregates the errors found while processing one source file. It
// latches the first error that aborts processing and remembers whether any
// error was reported at all.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a Handler. A nil Reporter aborts on the first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports a formatted error at the given location. It returns a
// non-nil error if processing should abort.
func (h *Handler) HandleErrorf(loc ast.Location, format string, args ...any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	err := h.reporter.Error(Errorf(loc, format, args...))
	h.err = err
	return err
}

// HandleError reports err. ErrorWithLoc values go through the configured
// reporter; any other error aborts directly.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewl, ok := err.(ErrorWithLoc); ok {
		h.errsReported = true
		err = h.reporter.Error(ewl)
	}
	h.err = err
	return err
}

// HandleWarning reports a warning at the given location.
func (h *Handler) HandleWarning(loc ast.Location, err error) {
	// no lock; warnings don't touch the mutable fields
	h.reporter.Warning(errorWithLoc{loc: loc, underlying: err})
}

// Error returns the error that aborted processing, or ErrInvalidSource if
// errors were reported but the reporter swallowed them all.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}
