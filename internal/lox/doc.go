/*
Package lox implements the front-end of a small Lox subset: a scanner that
turns source text into spanned tokens and a recursive-descent parser that
builds an ast.Program from them.

Grammars

	program    --> statement* EOF ;
	statement  --> printStmt
	             | varDecl
	             | exprStmt ;
	printStmt  --> "print" expr ";" ;
	varDecl    --> "var" IDENT ( "=" expr )? ";" ;
	exprStmt   --> expr ";" ;
	expr       --> assign ;
	assign     --> IDENT "=" assign
	             | or ;
	or         --> and ( "or" and )* ;
	and        --> equality ( "and" equality )* ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> NUMBER | STRING | IDENT
	             | "true" | "false" | "nil"
	             | "(" expr ")" ;

Binary rules fold left, so "8 - 4 - 2" is "(8 - 4) - 2". "assign" and
"unary" recurse on their right operand and nest to the right.

"print", "var", "and", "or", "true", "false" and "nil" are reserved words and
can never be used as variable names.

Errors

The scanner never fails: characters that start no token are turned into
error tokens and reported as lexical diagnostics. The parser stops at the
first syntax error unless ParserOptions.Recover is set, in which case it
skips to the next statement and keeps reporting. In both cases a source with
any diagnostic yields no program.
*/
package lox
