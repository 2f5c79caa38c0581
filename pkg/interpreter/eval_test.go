package interpreter

import (
	"bytes"
	"strings"
	"testing"
)

func run(src, input string) (string, error) {
	var out bytes.Buffer
	err := Interpret(src, strings.NewReader(input), &out)
	return out.String(), err
}

func TestEvalOutput(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		input    string
		expected string
	}{
		{"Declare and print", "{ var x : i32 = 5; print(x); }", "", "5\n"},
		{"Floor division", "{ print(7 / 2); print(-7 / 2); print(7 / -2); print(-7 / -2); }", "", "3\n-4\n-4\n3\n"},
		{"Precedence", "{ print(2 + 3 * 4); print((2 + 3) * 4); }", "", "14\n20\n"},
		{"Redundant parentheses", "{ print(((1)) + ((2 * (3)))); }", "", "7\n"},
		{"Unary operators", "{ print(-(3 - 5)); print(+4); print(--2); }", "", "2\n4\n2\n"},
		{"While loop", "{ var i : i32 = 0; while (i < 3) { print(i); i = i + 1; } }", "", "0\n1\n2\n"},
		{"Booleans print as words", "{ var b : bool = true; print(b); print(!b); }", "", "true\nfalse\n"},
		{"Concat yields str", `{ print(1 ++ 2); print("a" ++ true); }`, "", "12\natrue\n"},
		{"String comparison", `{ print("abc" == "abc"); print("abc" < "abd"); print("b" > "a"); }`, "", "true\ntrue\ntrue\n"},
		{"Bool comparison", "{ print(true == true); print(true > false); print(false < false); }", "", "true\ntrue\nfalse\n"},
		{"Logical operators", "{ print(true && false); print(false || true); print(1 < 2 && 2 < 3); }", "", "false\ntrue\ntrue\n"},
		{"If else", "{ var x : i32 = 3; if (x > 2) { print(\"big\"); } else { print(\"small\"); } if (x < 2) { print(\"never\"); } }", "", "big\n"},
		{"Else branch", "{ if (false) { print(1); } else { print(2); } }", "", "2\n"},
		{"Read integers", "{ var a : i32 = read(); var b : i32 = read(); print(a + b); }", "40\n 2 \n", "42\n"},
		{"Read without trailing newline", "{ print(read() * 2); }", "21", "42\n"},
		{"Nested blocks share table", "{ var x : i32 = 1; { x = x + 1; } print(x); }", "", "2\n"},
		{"String variable", `{ var s : str = "hi"; s = s ++ "!"; print(s); }`, "", "hi!\n"},
		{"Empty statements", "{ ; ; print(1); ; }", "", "1\n"},
		{"Comments stripped", "{\n  print(1); // one\n  // print(2);\n  print(\"//3\");\n}\n", "", "1\n//3\n"},
		{"Empty program", "{}", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(tt.src, tt.input)
			if err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("output = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		input string
		kind  ErrorKind
		msg   string
	}{
		{"Unassigned read", "{ var x : i32; print(x); }", "", SemanticError, "declared but has no value"},
		{"Undeclared read", "{ print(y); }", "", SemanticError, `undeclared variable "y"`},
		{"Redeclaration", "{ var x : i32; var x : i32; }", "", SemanticError, "already declared"},
		{"Declaration type mismatch", "{ var x : i32 = true; }", "", SemanticError, "cannot initialize \"x\" of type i32 with bool value"},
		{"Assignment to undeclared", "{ x = 1; }", "", SemanticError, "undeclared variable \"x\""},
		{"Assignment type mismatch", `{ var x : i32; x = "s"; }`, "", SemanticError, "cannot assign str value"},
		{"Arithmetic on bool", "{ print(true + 1); }", "", SemanticError, "requires i32 operands"},
		{"Logical on int", "{ print(1 && 0); }", "", SemanticError, "requires bool operands"},
		{"Compare mixed types", "{ print(1 == true); }", "", SemanticError, "same type"},
		{"Unary minus on bool", "{ print(-true); }", "", SemanticError, "requires an i32 operand"},
		{"Not on int", "{ print(!1); }", "", SemanticError, "requires a bool operand"},
		{"Non-bool if", "{ if (1) { } }", "", SemanticError, "if condition must be bool"},
		{"Non-bool while", `{ while ("x") { } }`, "", SemanticError, "while condition must be bool"},
		{"Division by zero", "{ var x : i32 = 5; print(x / 0); }", "", RuntimeError, "division by zero"},
		{"Invalid read input", "{ print(read()); }", "abc\n", SemanticError, "invalid integer input \"abc\""},
		{"Read at end of input", "{ print(read()); }", "", RuntimeError, "end of input"},
		{"Missing brace", "{ print(1);", "", SyntaxError, "expected '}'"},
		{"Uppercase identifier", "{ var Foo : i32 = 1; }", "", LexicalError, "uppercase"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(tt.src, tt.input)
			if err == nil {
				t.Fatalf("expected %s containing %q, got nil", tt.kind, tt.msg)
			}
			if !IsKind(err, tt.kind) {
				t.Errorf("expected %s, got %v", tt.kind, err)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestEvalKeepsOutputBeforeFailure(t *testing.T) {
	out, err := run("{ print(1); print(2); print(1 / 0); print(3); }", "")
	if !IsKind(err, RuntimeError) {
		t.Fatalf("expected runtime error, got %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("output = %q, want %q", out, "1\n2\n")
	}
}

func TestSyntaxErrorPrecedesOutput(t *testing.T) {
	out, err := run("{ print(1); if (true) { print(2); ", "")
	if !IsKind(err, SyntaxError) {
		t.Fatalf("expected syntax error, got %v", err)
	}
	if out != "" {
		t.Errorf("expected no output before a syntax error, got %q", out)
	}
}

func TestEvalReturnValues(t *testing.T) {
	ip := New(strings.NewReader(""), &bytes.Buffer{})

	v, err := ip.Eval(&Print{Expr: &IntVal{Value: 9}})
	if err != nil {
		t.Fatalf("Eval(Print) error = %v", err)
	}
	if v != (IntValue{V: 9}) {
		t.Errorf("Print returned %#v, want the printed value", v)
	}

	v, err = ip.Eval(&Block{Stmts: []Stmt{&NoOp{}}})
	if err != nil {
		t.Fatalf("Eval(Block) error = %v", err)
	}
	if v != (Unit{}) {
		t.Errorf("Block returned %#v, want Unit", v)
	}

	v, err = ip.Eval(&While{Condition: &BoolVal{Value: false}, Body: &Block{}})
	if err != nil {
		t.Fatalf("Eval(While) error = %v", err)
	}
	if v != (Unit{}) {
		t.Errorf("While that never runs returned %#v, want Unit", v)
	}
}

func TestRunSharesSymbolsAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	ip := New(strings.NewReader(""), &out)
	if err := ip.Run("{ var n : i32 = 41; }"); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	if err := ip.Run("{ n = n + 1; print(n); }"); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if out.String() != "42\n" {
		t.Errorf("output = %q", out.String())
	}
	if err := ip.Run("{ var n : i32; }"); !IsKind(err, SemanticError) {
		t.Errorf("redeclaration across runs: got %v", err)
	}
}

func TestDeterministicOutput(t *testing.T) {
	src := `{
  var i : i32 = 0;
  var acc : str = "";
  while (i < 5) {
    acc = acc ++ i;
    i = i + 1;
  }
  print(acc);
}`
	first, err := run(src, "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := run(src, "")
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if again != first {
			t.Errorf("run %d output %q differs from %q", i, again, first)
		}
	}
	if first != "01234\n" {
		t.Errorf("output = %q", first)
	}
}
