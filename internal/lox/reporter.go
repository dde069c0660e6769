package lox

import (
	"errors"

	"github.com/ltungv/lox/loxparse/internal/token"
)

// Reporter defines the interface for structure that can collect errors found
// while scanning and parsing. A reporter is defined to separate errors
// reporting code from errors displaying code, the front-end never formats
// anything for the user.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// DiagnosticCollector keeps every reported error as a Diagnostic.
type DiagnosticCollector struct {
	diagnostics []*Diagnostic
}

func NewDiagnosticCollector() *DiagnosticCollector {
	return &DiagnosticCollector{make([]*Diagnostic, 0)}
}

// Report records err. Errors that are not diagnostics are kept as internal
// errors without a location.
func (collector *DiagnosticCollector) Report(err error) {
	if err == nil {
		return
	}
	var d *Diagnostic
	if !errors.As(err, &d) {
		d = &Diagnostic{Kind: InternalError, Message: err.Error(), Span: token.Span{}}
	}
	collector.diagnostics = append(collector.diagnostics, d)
}

func (collector *DiagnosticCollector) HadError() bool {
	return len(collector.diagnostics) != 0
}

func (collector *DiagnosticCollector) Reset() {
	collector.diagnostics = collector.diagnostics[:0:0]
}

// Diagnostics returns the collected diagnostics in report order.
func (collector *DiagnosticCollector) Diagnostics() []*Diagnostic {
	return collector.diagnostics
}

// Err returns a *ParseError holding the collected diagnostics, or nil when
// nothing was reported.
func (collector *DiagnosticCollector) Err() error {
	if !collector.HadError() {
		return nil
	}
	diags := make([]*Diagnostic, len(collector.diagnostics))
	copy(diags, collector.diagnostics)
	return &ParseError{diags}
}
