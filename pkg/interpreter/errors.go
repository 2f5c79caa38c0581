package interpreter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies a failure by the pipeline stage that detected it.
type ErrorKind int

const (
	LexicalError  ErrorKind = iota // bad character, unterminated string, malformed literal
	SyntaxError                    // unexpected token, missing delimiter, bad type annotation
	SemanticError                  // declaration discipline and type checks
	RuntimeError                   // division by zero, exhausted input
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical error"
	case SyntaxError:
		return "syntax error"
	case SemanticError:
		return "semantic error"
	case RuntimeError:
		return "runtime error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is returned by every stage of the interpreter. Line is 0 when
// the failure cannot be tied to a source position.
type Error struct {
	Kind    ErrorKind
	Line    int
	Msg     string
	Snippet string
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", e.Line)
	}
	fmt.Fprintf(&sb, "%s: %s", e.Kind, e.Msg)
	if e.Snippet != "" {
		fmt.Fprintf(&sb, "\n  |> %s", e.Snippet)
	}
	return sb.String()
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Kind == kind
	}
	return false
}

func newError(kind ErrorKind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// sourceLines supports attaching a trimmed source line to an error.
type sourceLines []string

func splitSource(src string) sourceLines {
	return strings.Split(src, "\n")
}

// annotate fills in e.Snippet from the line e points at, if any.
func (s sourceLines) annotate(err error) error {
	var ie *Error
	if !errors.As(err, &ie) || ie.Snippet != "" || ie.Line <= 0 {
		return err
	}
	idx := ie.Line - 1
	if idx < len(s) {
		ie.Snippet = strings.TrimSpace(s[idx])
	}
	return err
}
