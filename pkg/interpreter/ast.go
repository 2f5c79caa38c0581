package interpreter

import (
	"fmt"
	"strings"
)

// Node is implemented by every AST variant. The set is closed: only the
// types in this file implement it, and Eval switches over all of them.
type Node interface {
	String() string
	line() int
}

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// IntVal is an integer literal.
//
//	var x : i32 = 10;
//	              ^^  IntVal{Value: 10}
type IntVal struct {
	Value int64
	Line  int
}

func (*IntVal) exprNode()        {}
func (n *IntVal) line() int      { return n.Line }
func (n *IntVal) String() string { return fmt.Sprintf("%d", n.Value) }

// BoolVal is a true/false literal.
type BoolVal struct {
	Value bool
	Line  int
}

func (*BoolVal) exprNode()        {}
func (n *BoolVal) line() int      { return n.Line }
func (n *BoolVal) String() string { return fmt.Sprintf("%t", n.Value) }

// StrVal is a string literal "..."
type StrVal struct {
	Value string
	Line  int
}

func (*StrVal) exprNode()        {}
func (n *StrVal) line() int      { return n.Line }
func (n *StrVal) String() string { return fmt.Sprintf("%q", n.Value) }

// Identifier is a read of a named variable.
//
//	print(x);
//	      ^  Identifier{Name: "x"}
type Identifier struct {
	Name string
	Line int
}

func (*Identifier) exprNode()        {}
func (n *Identifier) line() int      { return n.Line }
func (n *Identifier) String() string { return n.Name }

// UnOp represents Op Operand for + - !
type UnOp struct {
	Op      TokenType
	Operand Expr
	Line    int
}

func (*UnOp) exprNode()        {}
func (n *UnOp) line() int      { return n.Line }
func (n *UnOp) String() string { return fmt.Sprintf("(%s %s)", n.Op.Symbol(), n.Operand) }

// BinOp represents a binary operation: Left Op Right.
//
//	x + 1
//	^ ^ ^
//	| | |
//	| | Right
//	| Op
//	Left
type BinOp struct {
	Op    TokenType
	Left  Expr
	Right Expr
	Line  int
}

func (*BinOp) exprNode()   {}
func (n *BinOp) line() int { return n.Line }
func (n *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left, n.Op.Symbol(), n.Right)
}

// Read reads one integer line from the interpreter's input.
type Read struct {
	Line int
}

func (*Read) exprNode()      {}
func (n *Read) line() int    { return n.Line }
func (*Read) String() string { return "read()" }

//  Statement nodes

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// VarDeclaration is  var Name : Type [= Init] ;
// Init is nil when the declaration has no initializer.
type VarDeclaration struct {
	Name string
	Type Type
	Init Expr
	Line int
}

func (*VarDeclaration) stmtNode()   {}
func (n *VarDeclaration) line() int { return n.Line }
func (n *VarDeclaration) String() string {
	if n.Init == nil {
		return fmt.Sprintf("var %s : %s;", n.Name, n.Type)
	}
	return fmt.Sprintf("var %s : %s = %s;", n.Name, n.Type, n.Init)
}

// Assignment is  Name = Value ;
type Assignment struct {
	Name  string
	Value Expr
	Line  int
}

func (*Assignment) stmtNode()        {}
func (n *Assignment) line() int      { return n.Line }
func (n *Assignment) String() string { return fmt.Sprintf("%s = %s;", n.Name, n.Value) }

// Print is  print ( Expr ) ;
type Print struct {
	Expr Expr
	Line int
}

func (*Print) stmtNode()        {}
func (n *Print) line() int      { return n.Line }
func (n *Print) String() string { return fmt.Sprintf("print(%s);", n.Expr) }

// If is  if ( Condition ) Then [ else Else ]
// Else is nil when absent.
type If struct {
	Condition Expr
	Then      *Block
	Else      *Block
	Line      int
}

func (*If) stmtNode()   {}
func (n *If) line() int { return n.Line }
func (n *If) String() string {
	if n.Else == nil {
		return fmt.Sprintf("if (%s) %s", n.Condition, n.Then)
	}
	return fmt.Sprintf("if (%s) %s else %s", n.Condition, n.Then, n.Else)
}

// While is  while ( Condition ) Body
type While struct {
	Condition Expr
	Body      *Block
	Line      int
}

func (*While) stmtNode()        {}
func (n *While) line() int      { return n.Line }
func (n *While) String() string { return fmt.Sprintf("while (%s) %s", n.Condition, n.Body) }

// Block is  { Stmts... }
type Block struct {
	Stmts []Stmt
	Line  int
}

func (*Block) stmtNode()   {}
func (n *Block) line() int { return n.Line }
func (n *Block) String() string {
	parts := make([]string, len(n.Stmts))
	for i, s := range n.Stmts {
		parts[i] = s.String()
	}
	return "{ " + strings.Join(parts, " ") + " }"
}

// NoOp is the empty statement ;
type NoOp struct {
	Line int
}

func (*NoOp) stmtNode()      {}
func (n *NoOp) line() int    { return n.Line }
func (*NoOp) String() string { return ";" }
