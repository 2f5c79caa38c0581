package interpreter

import "fmt"

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input

	// Literals
	INTEGER    // decimal integer literal
	IDENTIFIER // variable name
	STRING     // string literal "..."
	BOOL       // true / false

	// Arithmetic operators
	PLUS   // +
	MINUS  // -
	MULT   // *
	DIV    // /
	CONCAT // ++

	// Paired delimiters
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }

	// Assignment / comparison  (order matters: ASSIGN before EQUAL)
	ASSIGN  // =
	EQUAL   // ==
	GREATER // >
	LESS    // <

	// Punctuation
	SEMI  // ;
	COLON // :

	// Logical operators
	AND // &&
	OR  // ||
	NOT // !

	// Type keywords
	TYPE_I32  // "i32"
	TYPE_BOOL // "bool"
	TYPE_STR  // "str"

	// Control keywords
	IF    // "if"
	ELSE  // "else"
	WHILE // "while"
	VAR   // "var"
	PRINT // "print"
	READ  // "read"
)

var tokenNames = [...]string{
	EOF:        "EOF",
	INTEGER:    "INTEGER",
	IDENTIFIER: "IDENTIFIER",
	STRING:     "STRING",
	BOOL:       "BOOL",
	PLUS:       "PLUS",
	MINUS:      "MINUS",
	MULT:       "MULT",
	DIV:        "DIV",
	CONCAT:     "CONCAT",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	LBRACE:     "LBRACE",
	RBRACE:     "RBRACE",
	ASSIGN:     "ASSIGN",
	EQUAL:      "EQUAL",
	GREATER:    "GREATER",
	LESS:       "LESS",
	SEMI:       "SEMI",
	COLON:      "COLON",
	AND:        "AND",
	OR:         "OR",
	NOT:        "NOT",
	TYPE_I32:   "TYPE_I32",
	TYPE_BOOL:  "TYPE_BOOL",
	TYPE_STR:   "TYPE_STR",
	IF:         "IF",
	ELSE:       "ELSE",
	WHILE:      "WHILE",
	VAR:        "VAR",
	PRINT:      "PRINT",
	READ:       "READ",
}

// tokenSymbols holds the source spelling used in diagnostics and AST dumps.
var tokenSymbols = map[TokenType]string{
	PLUS:    "+",
	MINUS:   "-",
	MULT:    "*",
	DIV:     "/",
	CONCAT:  "++",
	LPAREN:  "(",
	RPAREN:  ")",
	LBRACE:  "{",
	RBRACE:  "}",
	ASSIGN:  "=",
	EQUAL:   "==",
	GREATER: ">",
	LESS:    "<",
	SEMI:    ";",
	COLON:   ":",
	AND:     "&&",
	OR:      "||",
	NOT:     "!",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Symbol returns the operator spelling of tt, or its name for
// non-operator tokens.
func (tt TokenType) Symbol() string {
	if s, ok := tokenSymbols[tt]; ok {
		return s
	}
	return tt.String()
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type   TokenType
	Lexeme string // matched source text; decoded contents for STRING
	Line   int    // 1-based source line
}

func (t Token) String() string {
	return fmt.Sprintf("%-10s %-14q  line %d", t.Type, t.Lexeme, t.Line)
}

// describe renders t for "got ..." fragments of error messages.
func (t Token) describe() string {
	if t.Type == EOF {
		return "end of input"
	}
	return fmt.Sprintf("%s (%q)", t.Type, t.Lexeme)
}
