package token

import (
	"fmt"
	"unicode/utf8"
)

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"` //exclusive
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Position returns the 1-based line and column of the byte offset in source.
// Columns are counted in code points. Offsets past the end of the source are
// clamped to it.
func Position(source string, offset int) (line, column int) {
	if offset > len(source) {
		offset = len(source)
	}
	line, column = 1, 1
	for i := 0; i < offset; {
		r, size := utf8.DecodeRuneInString(source[i:])
		i += size
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// LineAt returns the text of the line containing the byte offset, without its
// line terminator, together with the offset at which that line starts.
func LineAt(source string, offset int) (text string, start int) {
	if offset > len(source) {
		offset = len(source)
	}
	start = offset
	for start > 0 && source[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(source) && source[end] != '\n' {
		end++
	}
	text = source[start:end]
	if len(text) > 0 && text[len(text)-1] == '\r' {
		text = text[:len(text)-1]
	}
	return text, start
}
