package lox

import (
	"unicode/utf8"

	"github.com/ltungv/lox/loxparse/internal/token"
)

// Scanner parses the input source and collects all the tokens that can be
// found from it. Positions are byte offsets into the source.
type Scanner struct {
	line      int
	startLine int
	start     int
	current   int
	source    string
	tokens    []*token.Token
	reporter  Reporter
}

// NewScanner creates a new Lox token scanner
func NewScanner(source string, reporter Reporter) *Scanner {
	scanner := new(Scanner)
	scanner.line = 1
	scanner.startLine = 1
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*token.Token, 0, len(source)/4+1)
	scanner.reporter = reporter
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. Scanning never stops early: characters that start no token become
// error tokens and are reported, the sequence always ends with an EOF token.
func (scanner *Scanner) Scan() []*token.Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		scanner.startLine = scanner.line
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(token.LEFT_PAREN)
		case ')':
			scanner.addToken(token.RIGHT_PAREN)
		case '-':
			scanner.addToken(token.MINUS)
		case '+':
			scanner.addToken(token.PLUS)
		case ';':
			scanner.addToken(token.SEMICOLON)
		case '*':
			scanner.addToken(token.STAR)
		// Double character tokens
		case '!':
			if scanner.match('=') {
				scanner.addToken(token.BANG_EQUAL)
			} else {
				scanner.addToken(token.BANG)
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(token.EQUAL_EQUAL)
			} else {
				scanner.addToken(token.EQUAL)
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(token.LESS_EQUAL)
			} else {
				scanner.addToken(token.LESS)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(token.GREATER_EQUAL)
			} else {
				scanner.addToken(token.GREATER)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so line
				// counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else {
				scanner.addToken(token.SLASH)
			}
		// Literals
		case '"':
			scanner.scanString()
		default:
			if r < utf8.RuneSelf && isDigit(byte(r)) {
				scanner.scanNumber()
			} else if r < utf8.RuneSelf && isBeginIdent(byte(r)) {
				scanner.scanIdentifier()
			} else {
				tok := scanner.addToken(token.ERROR)
				scanner.reporter.Report(newScanError(tok, "Unexpected character."))
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		token.New(token.EOF, "", token.Span{Start: len(scanner.source), End: len(scanner.source)}, scanner.line),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	// read until EOF or a matching unescaped '"', our string can span lines
	for scanner.peek() != '"' && scanner.hasNext() {
		r := scanner.advance()
		if r == '\\' && scanner.hasNext() {
			r = scanner.advance()
		}
		if r == '\n' {
			scanner.line++
		}
	}

	if !scanner.hasNext() {
		// The whole rest of the input is covered by the error token so the
		// parser fails on it instead of on whatever it would have read next.
		tok := scanner.addToken(token.ERROR)
		diag := newScanError(tok, "Unterminated string.")
		diag.AtEOF = true
		scanner.reporter.Report(diag)
		return
	}
	// consume '"'
	scanner.advance()
	scanner.addToken(token.STRING)
}

// scanNumber only delimits the literal, its value is computed by the parser.
func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for isDigit(scanner.peek()) {
		scanner.advance()
	}
	// check if there's a '.' with following digits
	if scanner.peek() == '.' && isDigit(scanner.peekNext()) {
		scanner.advance()
		for isDigit(scanner.peek()) {
			scanner.advance()
		}
	}
	scanner.addToken(token.NUMBER)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := scanner.source[scanner.start:scanner.current]
	if tokenType, isKeyword := token.Keywords[lexeme]; isKeyword {
		scanner.addToken(tokenType)
	} else {
		scanner.addToken(token.IDENTIFIER)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type
func (scanner *Scanner) addToken(typ token.Type) *token.Token {
	span := token.Span{Start: scanner.start, End: scanner.current}
	tok := token.New(typ, scanner.source[span.Start:span.End], span, scanner.startLine)
	scanner.tokens = append(scanner.tokens, tok)
	return tok
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the code point at the current position.
// Invalid UTF-8 is consumed one byte at a time as utf8.RuneError.
func (scanner *Scanner) advance() rune {
	r, size := utf8.DecodeRuneInString(scanner.source[scanner.current:])
	scanner.current += size
	return r
}

// match checks if the byte at the current position is equal to the given
// ASCII character, if they are equal, consumes it.
func (scanner *Scanner) match(expected byte) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the byte at the current position, but does not consume it.
// Lookahead only ever compares against ASCII, so bytes are enough.
func (scanner *Scanner) peek() byte {
	if !scanner.hasNext() {
		return 0
	}
	return scanner.source[scanner.current]
}

// peekNext returns the byte at the next position, but does not consume it
func (scanner *Scanner) peekNext() byte {
	if scanner.current+1 >= len(scanner.source) {
		return 0
	}
	return scanner.source[scanner.current+1]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isBeginIdent(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphanumeric(c byte) bool {
	return isBeginIdent(c) || isDigit(c)
}
