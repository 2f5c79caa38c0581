package interpreter

import (
	"fmt"
	"strconv"
)

// Parser pulls tokens from a Lexer one at a time and builds an AST.
// It only ever inspects the current token; it never backs up.
//
// Grammar:
//
//	program    = block EOF
//	block      = "{" statement* "}"
//	statement  = ";"
//	           | IDENTIFIER "=" or ";"
//	           | "print" "(" or ")" ";"
//	           | "var" IDENTIFIER ":" ("i32" | "bool" | "str") ("=" or)? ";"
//	           | "if" "(" or ")" block ("else" block)?
//	           | "while" "(" or ")" block
//	           | block
//	or         = and ("||" and)*
//	and        = relational ("&&" relational)*
//	relational = expression (("==" | ">" | "<") expression)*
//	expression = term (("+" | "-" | "++") term)*
//	term       = factor (("*" | "/") factor)*
//	factor     = INTEGER | BOOL | STRING | IDENTIFIER
//	           | ("+" | "-" | "!") factor
//	           | "(" or ")"
//	           | "read" "(" ")"
type Parser struct {
	lex *Lexer
	tok Token // current token
}

// NewParser primes the parser with the first token of l.
func NewParser(l *Lexer) (*Parser, error) {
	p := &Parser{lex: l}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse lexes and parses src as a single top-level block.
func Parse(src string) (*Block, error) {
	lines := splitSource(src)
	p, err := NewParser(NewLexer(src))
	if err != nil {
		return nil, lines.annotate(err)
	}
	prog, err := p.ParseProgram()
	if err != nil {
		return nil, lines.annotate(err)
	}
	return prog, nil
}

// ParseProgram parses exactly one block followed by end of input.
func (p *Parser) ParseProgram() (*Block, error) {
	block, err := p.parseBlock("to open program")
	if err != nil {
		return nil, err
	}
	if p.tok.Type != EOF {
		return nil, p.errorf("unexpected %s after end of program block", p.tok.describe())
	}
	return block, nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return newError(SyntaxError, p.tok.Line, format, args...)
}

// advance replaces the current token with the next one from the lexer.
func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// expect consumes the current token if it matches tt, otherwise fails
// with what followed by the offending token.
func (p *Parser) expect(tt TokenType, what string, args ...any) (Token, error) {
	tok := p.tok
	if tok.Type != tt {
		return tok, p.errorf("%s, got %s", fmt.Sprintf(what, args...), tok.describe())
	}
	return tok, p.advance()
}

// parseOr handles ||
func (p *Parser) parseOr() (Expr, error) {
	expr, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == OR {
		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		expr = &BinOp{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseAnd handles &&
func (p *Parser) parseAnd() (Expr, error) {
	expr, err := p.parseRelational()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == AND {
		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseRelational()
		if err != nil {
			return nil, err
		}
		expr = &BinOp{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseRelational handles ==, > and <
func (p *Parser) parseRelational() (Expr, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == EQUAL || p.tok.Type == GREATER || p.tok.Type == LESS {
		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		expr = &BinOp{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseExpression handles +, - and ++
func (p *Parser) parseExpression() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		tt := p.tok.Type
		if tt != PLUS && tt != MINUS && tt != CONCAT {
			break
		}
		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinOp{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseTerm handles * and /
func (p *Parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == MULT || p.tok.Type == DIV {
		op := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinOp{Op: op.Type, Left: expr, Right: right, Line: op.Line}
	}
	return expr, nil
}

// parseFactor handles literals, variables, unary operators, read() and
// parenthesised expressions.
func (p *Parser) parseFactor() (Expr, error) {
	tok := p.tok
	switch tok.Type {
	case INTEGER:
		val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf("integer literal %s is out of range", tok.Lexeme)
		}
		return &IntVal{Value: val, Line: tok.Line}, p.advance()

	case BOOL:
		return &BoolVal{Value: tok.Lexeme == "true", Line: tok.Line}, p.advance()

	case STRING:
		return &StrVal{Value: tok.Lexeme, Line: tok.Line}, p.advance()

	case IDENTIFIER:
		return &Identifier{Name: tok.Lexeme, Line: tok.Line}, p.advance()

	case PLUS, MINUS, NOT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnOp{Op: tok.Type, Operand: operand, Line: tok.Line}, nil

	case LPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, "expected ')' to close expression opened on line %d", tok.Line); err != nil {
			return nil, err
		}
		return expr, nil

	case READ:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.expect(LPAREN, "expected '(' after read"); err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN, "expected ')' after read("); err != nil {
			return nil, err
		}
		return &Read{Line: tok.Line}, nil

	default:
		return nil, p.errorf("expected expression, got %s", tok.describe())
	}
}

// parseStatement dispatches on the current token.
func (p *Parser) parseStatement() (Stmt, error) {
	switch p.tok.Type {
	case SEMI:
		line := p.tok.Line
		return &NoOp{Line: line}, p.advance()
	case IDENTIFIER:
		return p.parseAssignment()
	case PRINT:
		return p.parsePrint()
	case VAR:
		return p.parseVarDecl()
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case LBRACE:
		return p.parseBlock("")
	default:
		return nil, p.errorf("unexpected %s at start of statement", p.tok.describe())
	}
}

// parseBlock parses { stmt1 stmt2 ... }
// context completes the "expected '{'" message when the brace is missing.
func (p *Parser) parseBlock(context string) (*Block, error) {
	msg := "expected '{'"
	if context != "" {
		msg += " " + context
	}
	open, err := p.expect(LBRACE, "%s", msg)
	if err != nil {
		return nil, err
	}
	block := &Block{Line: open.Line}
	for p.tok.Type != RBRACE && p.tok.Type != EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	if _, err := p.expect(RBRACE, "expected '}' to close block opened on line %d", open.Line); err != nil {
		return nil, err
	}
	return block, nil
}

// parseAssignment parses  IDENTIFIER = expr ;
// Whether the name is declared is checked at evaluation time.
func (p *Parser) parseAssignment() (Stmt, error) {
	name := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN, "expected '=' after %q", name.Lexeme); err != nil {
		return nil, err
	}
	val, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMI, "expected ';' after assignment to %q", name.Lexeme); err != nil {
		return nil, err
	}
	return &Assignment{Name: name.Lexeme, Value: val, Line: name.Line}, nil
}

// parsePrint parses  print ( expr ) ;
func (p *Parser) parsePrint() (Stmt, error) {
	kw := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN, "expected '(' after print"); err != nil {
		return nil, err
	}
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, "expected ')' to close print argument"); err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMI, "expected ';' after print statement"); err != nil {
		return nil, err
	}
	return &Print{Expr: expr, Line: kw.Line}, nil
}

// parseVarDecl parses  var IDENTIFIER : type [= expr] ;
func (p *Parser) parseVarDecl() (Stmt, error) {
	kw := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	name, err := p.expect(IDENTIFIER, "expected variable name after var")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(COLON, "expected ':' after variable name %q", name.Lexeme); err != nil {
		return nil, err
	}
	typ, ok := typeForToken(p.tok.Type)
	if !ok {
		return nil, p.errorf("invalid type annotation %s for %q: expected i32, bool or str", p.tok.describe(), name.Lexeme)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}

	decl := &VarDeclaration{Name: name.Lexeme, Type: typ, Line: kw.Line}
	if p.tok.Type == ASSIGN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		value, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		decl.Init = value
	}
	if _, err := p.expect(SEMI, "expected ';' after declaration of %q", name.Lexeme); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseIf parses  if ( cond ) block [ else block ]
func (p *Parser) parseIf() (Stmt, error) {
	kw := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN, "expected '(' after if"); err != nil {
		return nil, err
	}
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, "expected ')' to close if condition"); err != nil {
		return nil, err
	}
	then, err := p.parseBlock("to open if body")
	if err != nil {
		return nil, err
	}

	stmt := &If{Condition: cond, Then: then, Line: kw.Line}
	if p.tok.Type == ELSE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		stmt.Else, err = p.parseBlock("to open else body")
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseWhile parses  while ( cond ) block
func (p *Parser) parseWhile() (Stmt, error) {
	kw := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	if _, err := p.expect(LPAREN, "expected '(' after while"); err != nil {
		return nil, err
	}
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(RPAREN, "expected ')' to close while condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("to open while body")
	if err != nil {
		return nil, err
	}
	return &While{Condition: cond, Body: body, Line: kw.Line}, nil
}
