package interpreter

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Eval evaluates node against the interpreter's symbol table. Statements
// evaluate to Unit, except While which yields its last body result.
func (ip *Interpreter) Eval(node Node) (Value, error) {
	switch n := node.(type) {
	case *IntVal:
		return IntValue{V: n.Value}, nil
	case *BoolVal:
		return BoolValue{V: n.Value}, nil
	case *StrVal:
		return StrValue{V: n.Value}, nil
	case *Identifier:
		v, err := ip.symbols.Get(n.Name)
		if err != nil {
			return nil, newError(SemanticError, n.Line, "%v", err)
		}
		return v, nil
	case *UnOp:
		return ip.evalUnOp(n)
	case *BinOp:
		return ip.evalBinOp(n)
	case *Read:
		return ip.evalRead(n)
	case *VarDeclaration:
		return ip.evalVarDeclaration(n)
	case *Assignment:
		v, err := ip.Eval(n.Value)
		if err != nil {
			return nil, err
		}
		if err := ip.symbols.Assign(n.Name, v); err != nil {
			return nil, newError(SemanticError, n.Line, "%v", err)
		}
		return Unit{}, nil
	case *Print:
		v, err := ip.Eval(n.Expr)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(ip.out, v.String()); err != nil {
			return nil, newError(RuntimeError, n.Line, "print: %v", err)
		}
		return v, nil
	case *If:
		cond, err := ip.evalCondition(n.Condition, "if")
		if err != nil {
			return nil, err
		}
		if cond {
			return ip.Eval(n.Then)
		}
		if n.Else != nil {
			return ip.Eval(n.Else)
		}
		return Unit{}, nil
	case *While:
		var last Value = Unit{}
		for {
			cond, err := ip.evalCondition(n.Condition, "while")
			if err != nil {
				return nil, err
			}
			if !cond {
				return last, nil
			}
			last, err = ip.Eval(n.Body)
			if err != nil {
				return nil, err
			}
		}
	case *Block:
		for _, stmt := range n.Stmts {
			if _, err := ip.Eval(stmt); err != nil {
				return nil, err
			}
		}
		return Unit{}, nil
	case *NoOp:
		return Unit{}, nil
	}
	return nil, fmt.Errorf("eval: unknown node type %T", node)
}

func (ip *Interpreter) evalCondition(cond Expr, stmt string) (bool, error) {
	v, err := ip.Eval(cond)
	if err != nil {
		return false, err
	}
	b, ok := v.(BoolValue)
	if !ok {
		return false, newError(SemanticError, cond.line(), "%s condition must be bool, got %s", stmt, v.Type())
	}
	return b.V, nil
}

func (ip *Interpreter) evalVarDeclaration(n *VarDeclaration) (Value, error) {
	if err := ip.symbols.Declare(n.Name, n.Type); err != nil {
		return nil, newError(SemanticError, n.Line, "%v", err)
	}
	if n.Init == nil {
		return Unit{}, nil
	}
	v, err := ip.Eval(n.Init)
	if err != nil {
		return nil, err
	}
	if v.Type() != n.Type {
		return nil, newError(SemanticError, n.Line, "cannot initialize %q of type %s with %s value", n.Name, n.Type, v.Type())
	}
	if err := ip.symbols.Assign(n.Name, v); err != nil {
		return nil, newError(SemanticError, n.Line, "%v", err)
	}
	return Unit{}, nil
}

func (ip *Interpreter) evalUnOp(n *UnOp) (Value, error) {
	v, err := ip.Eval(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case PLUS, MINUS:
		i, ok := v.(IntValue)
		if !ok {
			return nil, newError(SemanticError, n.Line, "unary %s requires an i32 operand, got %s", n.Op.Symbol(), v.Type())
		}
		if n.Op == MINUS {
			return IntValue{V: -i.V}, nil
		}
		return i, nil
	case NOT:
		b, ok := v.(BoolValue)
		if !ok {
			return nil, newError(SemanticError, n.Line, "unary ! requires a bool operand, got %s", v.Type())
		}
		return BoolValue{V: !b.V}, nil
	}
	return nil, fmt.Errorf("eval: unknown unary operator %s", n.Op)
}

func (ip *Interpreter) evalBinOp(n *BinOp) (Value, error) {
	left, err := ip.Eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := ip.Eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case PLUS, MINUS, MULT, DIV:
		l, lok := left.(IntValue)
		r, rok := right.(IntValue)
		if !lok || !rok {
			return nil, newError(SemanticError, n.Line, "operator %s requires i32 operands, got %s and %s", n.Op.Symbol(), left.Type(), right.Type())
		}
		switch n.Op {
		case PLUS:
			return IntValue{V: l.V + r.V}, nil
		case MINUS:
			return IntValue{V: l.V - r.V}, nil
		case MULT:
			return IntValue{V: l.V * r.V}, nil
		default:
			if r.V == 0 {
				return nil, newError(RuntimeError, n.Line, "division by zero")
			}
			return IntValue{V: floorDiv(l.V, r.V)}, nil
		}

	case AND, OR:
		l, lok := left.(BoolValue)
		r, rok := right.(BoolValue)
		if !lok || !rok {
			return nil, newError(SemanticError, n.Line, "operator %s requires bool operands, got %s and %s", n.Op.Symbol(), left.Type(), right.Type())
		}
		if n.Op == AND {
			return BoolValue{V: l.V && r.V}, nil
		}
		return BoolValue{V: l.V || r.V}, nil

	case EQUAL, GREATER, LESS:
		if left.Type() != right.Type() {
			return nil, newError(SemanticError, n.Line, "operator %s requires operands of the same type, got %s and %s", n.Op.Symbol(), left.Type(), right.Type())
		}
		c := compareValues(left, right)
		switch n.Op {
		case EQUAL:
			return BoolValue{V: c == 0}, nil
		case GREATER:
			return BoolValue{V: c > 0}, nil
		default:
			return BoolValue{V: c < 0}, nil
		}

	case CONCAT:
		return StrValue{V: left.String() + right.String()}, nil
	}
	return nil, fmt.Errorf("eval: unknown binary operator %s", n.Op)
}

// compareValues orders two values of the same type.
func compareValues(a, b Value) int {
	switch a := a.(type) {
	case IntValue:
		return cmpInt(a.V, b.(IntValue).V)
	case BoolValue:
		return cmpInt(a.Int(), b.(BoolValue).Int())
	case StrValue:
		return strings.Compare(a.V, b.(StrValue).V)
	}
	return 0
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (ip *Interpreter) evalRead(n *Read) (Value, error) {
	line, err := ip.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return nil, newError(RuntimeError, n.Line, "read(): end of input")
		}
		return nil, newError(RuntimeError, n.Line, "read(): %v", err)
	}
	text := strings.TrimSpace(line)
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, newError(SemanticError, n.Line, "read(): invalid integer input %q", text)
	}
	return IntValue{V: v}, nil
}
