package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/muesli/termenv"

	"github.com/ltungv/lox/loxparse/internal/lox"
	"github.com/ltungv/lox/loxparse/internal/token"
)

// diagnosticRenderer prints diagnostics with their location, the offending
// source line and a marker under the reported span:
//
//	main.lox:1:5: syntax error: Expect variable name.
//	    var = 42;
//	        ^
//	    expected identifier
type diagnosticRenderer struct {
	w   io.Writer
	out *termenv.Output
}

func newRenderer(w io.Writer, cfg config) *diagnosticRenderer {
	var out *termenv.Output
	switch {
	case cfg.noColor:
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	case cfg.forceColor:
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI))
	default:
		out = termenv.NewOutput(w)
	}
	return &diagnosticRenderer{w, out}
}

// renderError prints every diagnostic of a *lox.ParseError, any other error
// is printed as is.
func (r *diagnosticRenderer) renderError(path string, source string, err error) {
	var perr *lox.ParseError
	if !errors.As(err, &perr) {
		fmt.Fprintf(r.w, "%s %v\n", r.out.String(path+":").Bold(), err)
		return
	}
	for _, d := range perr.Diagnostics {
		r.render(path, source, d)
	}
}

func (r *diagnosticRenderer) render(path string, source string, d *lox.Diagnostic) {
	line, column := token.Position(source, d.Span.Start)
	location := r.out.String(fmt.Sprintf("%s:%d:%d:", path, line, column)).Bold()

	kindColor := termenv.ANSIRed
	if d.Kind == lox.InternalError {
		kindColor = termenv.ANSIMagenta
	}
	kind := r.out.String(d.Kind.String() + ":").Foreground(kindColor).Bold()
	fmt.Fprintf(r.w, "%s %s %s\n", location, kind, d.Message)

	text, lineStart := token.LineAt(source, d.Span.Start)
	marker := r.out.String(caret(text, d.Span.Start-lineStart, d.Span.Len())).Foreground(termenv.ANSIGreen)
	fmt.Fprintf(r.w, "    %s\n    %s\n", text, marker)

	if expected := d.ExpectedString(); expected != "" {
		fmt.Fprintf(r.w, "    expected %s\n", expected)
	}
}

// caret builds the marker line for a span of width bytes starting at byte
// offset col of text. Tabs before the span are kept so the marker lines up
// with the printed source. The marker is never empty and never runs past the
// end of the line.
func caret(text string, col int, width int) string {
	if col > len(text) {
		col = len(text)
	}
	var b strings.Builder
	for _, r := range text[:col] {
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}

	end := col + width
	if end > len(text) {
		end = len(text)
	}
	n := utf8.RuneCountInString(text[col:end])
	if n == 0 {
		n = 1
	}
	b.WriteString(strings.Repeat("^", n))
	return b.String()
}
