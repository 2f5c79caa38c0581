package interpreter

import (
	"unicode"
)

// keywords maps source text to its keyword TokenType.
var keywords = map[string]TokenType{
	"i32":   TYPE_I32,
	"bool":  TYPE_BOOL,
	"str":   TYPE_STR,
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"var":   VAR,
	"print": PRINT,
	"read":  READ,
	"true":  BOOL,
	"false": BOOL,
}

// Lexer holds all mutable state for a single scanning pass over src.
// Tokens are produced on demand by Next; there is no pushback.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek2 returns the rune one position ahead of the current position.
func (l *Lexer) peek2() rune {
	if l.pos+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos+1]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\n', '\r':
			l.advance()
		default:
			return
		}
	}
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// scanIdent collects a full identifier or keyword token.
// The first letter must still be at l.peek().
func (l *Lexer) scanIdent() (Token, error) {
	line := l.line
	start := l.pos
	for !l.atEnd() && isIdentRune(l.peek()) {
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	if kw, ok := keywords[lexeme]; ok {
		return Token{Type: kw, Lexeme: lexeme, Line: line}, nil
	}
	if unicode.IsUpper(l.src[start]) {
		return Token{}, newError(LexicalError, line, "identifier %q must not start with an uppercase letter", lexeme)
	}
	return Token{Type: IDENTIFIER, Lexeme: lexeme, Line: line}, nil
}

// scanInt collects a decimal integer literal.
// The first digit must still be at l.peek().
func (l *Lexer) scanInt() (Token, error) {
	line := l.line
	start := l.pos
	for !l.atEnd() && unicode.IsDigit(l.peek()) {
		l.advance()
	}
	if unicode.IsLetter(l.peek()) {
		for !l.atEnd() && isIdentRune(l.peek()) {
			l.advance()
		}
		return Token{}, newError(LexicalError, line, "malformed number %q: digits followed by a letter", string(l.src[start:l.pos]))
	}
	return Token{Type: INTEGER, Lexeme: string(l.src[start:l.pos]), Line: line}, nil
}

// scanString collects a string literal "..."
func (l *Lexer) scanString() (Token, error) {
	line := l.line
	l.advance() // consume opening "
	var val []rune

	for !l.atEnd() {
		r := l.peek()
		if r == '"' {
			break
		}
		if r == '\\' && l.pos+1 < len(l.src) {
			l.advance() // consume backslash
			next := l.advance()
			switch next {
			case 'n':
				val = append(val, '\n')
			case 't':
				val = append(val, '\t')
			case '"':
				val = append(val, '"')
			case '\\':
				val = append(val, '\\')
			default:
				val = append(val, '\\', next)
			}
			continue
		}
		val = append(val, l.advance())
	}

	if l.atEnd() {
		return Token{}, newError(LexicalError, line, "unterminated string")
	}
	l.advance() // consume closing "

	return Token{Type: STRING, Lexeme: string(val), Line: line}, nil
}

// Next skips whitespace and returns the next Token. Once the input is
// exhausted every call returns an EOF token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.atEnd() {
		return Token{Type: EOF, Lexeme: "", Line: l.line}, nil
	}

	ch := l.peek()
	line := l.line

	if unicode.IsDigit(ch) {
		return l.scanInt()
	}
	if unicode.IsLetter(ch) {
		return l.scanIdent()
	}
	if ch == '"' {
		return l.scanString()
	}

	// two-character operators first
	switch {
	case ch == '=' && l.peek2() == '=':
		l.pos += 2
		return Token{EQUAL, "==", line}, nil
	case ch == '&' && l.peek2() == '&':
		l.pos += 2
		return Token{AND, "&&", line}, nil
	case ch == '|' && l.peek2() == '|':
		l.pos += 2
		return Token{OR, "||", line}, nil
	case ch == '+' && l.peek2() == '+':
		l.pos += 2
		return Token{CONCAT, "++", line}, nil
	}

	l.advance()
	switch ch {
	case '+':
		return Token{PLUS, "+", line}, nil
	case '-':
		return Token{MINUS, "-", line}, nil
	case '*':
		return Token{MULT, "*", line}, nil
	case '/':
		return Token{DIV, "/", line}, nil
	case '(':
		return Token{LPAREN, "(", line}, nil
	case ')':
		return Token{RPAREN, ")", line}, nil
	case '{':
		return Token{LBRACE, "{", line}, nil
	case '}':
		return Token{RBRACE, "}", line}, nil
	case ';':
		return Token{SEMI, ";", line}, nil
	case ':':
		return Token{COLON, ":", line}, nil
	case '=':
		return Token{ASSIGN, "=", line}, nil
	case '!':
		return Token{NOT, "!", line}, nil
	case '>':
		return Token{GREATER, ">", line}, nil
	case '<':
		return Token{LESS, "<", line}, nil
	default:
		return Token{}, newError(LexicalError, line, "invalid character %q", ch)
	}
}

// Lex tokenises src and returns all tokens including the final EOF token.
// It returns a non-nil error on the first lexical error.
func Lex(src string) ([]Token, error) {
	l := NewLexer(src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return tokens, splitSource(src).annotate(err)
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}
