package lox

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ltungv/lox/loxparse/internal/ast"
	"github.com/ltungv/lox/loxparse/internal/token"
)

// expressionStart is the set of tokens an expression can begin with.
var expressionStart = []token.Type{
	token.IDENTIFIER, token.NUMBER, token.STRING,
	token.TRUE, token.FALSE, token.NIL,
	token.LEFT_PAREN, token.BANG, token.MINUS,
}

type ParserOptions struct {
	// Recover makes the parser skip to the next statement after a syntax
	// error instead of stopping. Every skipped statement is still reported.
	Recover bool

	// Logger receives debug traces of statement dispatch and recovery.
	// Nothing is logged when it is nil.
	Logger *zerolog.Logger
}

// Parser composes the syntax tree for the Lox language from the sequence of
// tokens produced by the Scanner. The grammar it accepts is described in the
// package documentation.
type Parser struct {
	current  int
	tokens   []*token.Token
	reporter Reporter
	recover  bool
	logger   zerolog.Logger
}

// NewParser creates a new parser for the Lox language. The token sequence
// must end with an EOF token, as returned by Scanner.Scan.
func NewParser(tokens []*token.Token, reporter Reporter, opts ...ParserOptions) *Parser {
	parser := &Parser{
		current:  0,
		tokens:   tokens,
		reporter: reporter,
		logger:   zerolog.Nop(),
	}
	if len(opts) > 0 {
		opt := opts[0]
		parser.recover = opt.Recover
		if opt.Logger != nil {
			parser.logger = opt.Logger.With().Str("component", "parser").Logger()
		}
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Typ != token.EOF {
		parser.tokens = append(tokens[:len(tokens):len(tokens)], token.New(token.EOF, "", token.Span{}, 1))
	}
	return parser
}

// Parse returns the program, or nil if a syntax error was reported. Errors
// are only delivered through the reporter.
//
//	program --> statement* EOF ;
func (parser *Parser) Parse() *ast.Program {
	statements := make([]ast.Stmt, 0)
	failed := false
	for !parser.isEOF() {
		start := parser.current
		stmt, err := parser.statement()
		if err != nil {
			failed = true
			parser.reporter.Report(err)
			if !parser.recover || isInternal(err) {
				return nil
			}
			parser.sync(start)
			continue
		}
		statements = append(statements, stmt)
	}
	if failed {
		return nil
	}
	parser.logger.Debug().Int("statements", len(statements)).Msg("parsed program")
	return ast.NewProgram(statements)
}

// statement --> printStmt | varDecl | exprStmt ;
func (parser *Parser) statement() (ast.Stmt, error) {
	parser.logger.Debug().
		Str("token", string(parser.peek().Typ)).
		Int("offset", parser.peek().Span.Start).
		Msg("statement")

	if parser.match(token.PRINT) {
		return parser.printStmt()
	}
	if parser.match(token.VAR) {
		return parser.varDecl()
	}
	return parser.exprStmt()
}

// printStmt --> "print" expression ";" ;
func (parser *Parser) printStmt() (ast.Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(token.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return ast.NewPrintStmt(expr), nil
}

// varDecl --> "var" IDENTIFIER ( "=" expression )? ";" ;
func (parser *Parser) varDecl() (ast.Stmt, error) {
	if err := parser.consume(token.IDENTIFIER, "Expect variable name."); err != nil {
		return nil, err
	}
	name := parser.prev()

	var initializer ast.Expr
	if parser.match(token.EQUAL) {
		var err error
		if initializer, err = parser.expression(); err != nil {
			return nil, err
		}
	}

	if parser.check(token.SEMICOLON) {
		parser.advance()
		return ast.NewVarStmt(name.Lexeme, initializer), nil
	}
	if initializer == nil {
		return nil, newParseError(
			parser.peek(),
			"Expect ';' after variable declaration.",
			token.EQUAL, token.SEMICOLON,
		)
	}
	return nil, newParseError(parser.peek(), "Expect ';' after variable declaration.", token.SEMICOLON)
}

// exprStmt --> expression ";" ;
func (parser *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return ast.NewExpressionStmt(expr), nil
}

// expression --> assignment ;
func (parser *Parser) expression() (ast.Expr, error) {
	return parser.assignment()
}

// Only commits to an assignment when an identifier is directly followed by
// "=", otherwise the identifier is the start of an ordinary expression. The
// rule recurses on its right-hand side, so assignments nest to the right.
//
// assignment --> IDENTIFIER "=" assignment
//              | or ;
func (parser *Parser) assignment() (ast.Expr, error) {
	if parser.check(token.IDENTIFIER) && parser.checkNext(token.EQUAL) {
		name := parser.advance()
		parser.advance()
		value, err := parser.assignment()
		if err != nil {
			return nil, err
		}
		return ast.NewAssignExpr(name.Lexeme, value), nil
	}
	return parser.or()
}

// or --> and ( "or" and )* ;
func (parser *Parser) or() (ast.Expr, error) {
	return parser.leftAssoc(parser.and, token.OR)
}

// and --> equality ( "and" equality )* ;
func (parser *Parser) and() (ast.Expr, error) {
	return parser.leftAssoc(parser.equality, token.AND)
}

// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (ast.Expr, error) {
	return parser.leftAssoc(parser.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (ast.Expr, error) {
	return parser.leftAssoc(
		parser.term,
		token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL,
	)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (ast.Expr, error) {
	return parser.leftAssoc(parser.factor, token.MINUS, token.PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (ast.Expr, error) {
	return parser.leftAssoc(parser.unary, token.SLASH, token.STAR)
}

// leftAssoc creates a left-associative nested tree of binary operator nodes.
// It matches the higher precedence rule `operand` and then folds every
// following (operator, operand) pair into the tree built so far.
func (parser *Parser) leftAssoc(
	operand func() (ast.Expr, error),
	operators ...token.Type,
) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.match(operators...) {
		op := binaryOps[parser.prev().Typ]
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryExpr(expr, op, right)
	}
	return expr, nil
}

var binaryOps = map[token.Type]ast.BinaryOp{
	token.PLUS:          ast.Add,
	token.MINUS:         ast.Subtract,
	token.STAR:          ast.Multiply,
	token.SLASH:         ast.Divide,
	token.GREATER:       ast.Greater,
	token.GREATER_EQUAL: ast.GreaterEqual,
	token.LESS:          ast.Less,
	token.LESS_EQUAL:    ast.LessEqual,
	token.EQUAL_EQUAL:   ast.Equal,
	token.BANG_EQUAL:    ast.NotEqual,
	token.AND:           ast.And,
	token.OR:            ast.Or,
}

// unary --> ( "!" | "-" ) unary
//         | primary ;
func (parser *Parser) unary() (ast.Expr, error) {
	if parser.match(token.BANG, token.MINUS) {
		op := ast.Minus
		if parser.prev().Typ == token.BANG {
			op = ast.Not
		}
		operand, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpr(op, operand), nil
	}
	return parser.primary()
}

// primary --> NUMBER | STRING | "true" | "false" | "nil"
//           | IDENTIFIER | "(" expression ")" ;
func (parser *Parser) primary() (ast.Expr, error) {
	if parser.match(token.FALSE) {
		return ast.NewLiteralExpr(ast.BoolValue(false)), nil
	}
	if parser.match(token.TRUE) {
		return ast.NewLiteralExpr(ast.BoolValue(true)), nil
	}
	if parser.match(token.NIL) {
		return ast.NewLiteralExpr(ast.NilValue()), nil
	}
	if parser.match(token.NUMBER) {
		tok := parser.prev()
		n, err := strconv.ParseFloat(tok.Lexeme, 64)
		// Out of range literals keep the rounded infinity, like any float
		// parser would. Anything else means the scanner let a bad lexeme through.
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, newInternalError(tok, "Invalid number literal: "+err.Error())
		}
		return ast.NewLiteralExpr(ast.NumberValue(n)), nil
	}
	if parser.match(token.STRING) {
		// The value is the text between the quotes as written, escapes included.
		lexeme := parser.prev().Lexeme
		return ast.NewLiteralExpr(ast.StringValue(lexeme[1 : len(lexeme)-1])), nil
	}
	if parser.match(token.IDENTIFIER) {
		return ast.NewVariableExpr(parser.prev().Lexeme), nil
	}
	if parser.match(token.LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			token.RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return ast.NewGroupingExpr(expr), nil
	}
	return nil, newParseError(parser.peek(), "Expect expression.", expressionStart...)
}

func (parser *Parser) match(types ...token.Type) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ token.Type, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return newParseError(parser.peek(), message, typ)
}

func (parser *Parser) check(tt token.Type) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

// checkNext looks one token past the current one.
func (parser *Parser) checkNext(tt token.Type) bool {
	if parser.current+1 >= len(parser.tokens) {
		return false
	}
	return parser.tokens[parser.current+1].Typ == tt
}

func (parser *Parser) advance() *token.Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == token.EOF
}

func (parser *Parser) peek() *token.Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *token.Token {
	return parser.tokens[parser.current-1]
}

// sync discards tokens until it reaches what is likely the beginning of the
// next statement: right after a ';' or right before "print" or "var". A
// keyword the failed statement ran into is kept, unless the statement began
// with it.
func (parser *Parser) sync(start int) {
	from := parser.peek().Span.Start
	if parser.current == start {
		parser.advance()
	}
	for !parser.isEOF() {
		if parser.prev().Typ == token.SEMICOLON {
			break
		}
		switch parser.peek().Typ {
		case token.VAR, token.PRINT:
			parser.logger.Debug().Int("from", from).Int("to", parser.peek().Span.Start).Msg("synchronized")
			return
		}
		parser.advance()
	}
	parser.logger.Debug().Int("from", from).Int("to", parser.peek().Span.Start).Msg("synchronized")
}

func isInternal(err error) bool {
	var d *Diagnostic
	return errors.As(err, &d) && d.Kind == InternalError
}
