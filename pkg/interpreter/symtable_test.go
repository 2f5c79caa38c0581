package interpreter

import (
	"strings"
	"testing"
)

func TestSymbolTable(t *testing.T) {
	t.Run("DeclareThenAssign", func(t *testing.T) {
		s := NewSymbolTable()
		if err := s.Declare("x", TypeI32); err != nil {
			t.Fatalf("Declare: %v", err)
		}
		if err := s.Assign("x", IntValue{V: 5}); err != nil {
			t.Fatalf("Assign: %v", err)
		}
		v, err := s.Get("x")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != (IntValue{V: 5}) {
			t.Errorf("x = %v, want 5", v)
		}
	})

	t.Run("Redeclaration", func(t *testing.T) {
		s := NewSymbolTable()
		if err := s.Declare("x", TypeI32); err != nil {
			t.Fatalf("Declare: %v", err)
		}
		err := s.Declare("x", TypeBool)
		if err == nil || !strings.Contains(err.Error(), "already declared") {
			t.Errorf("expected redeclaration error, got %v", err)
		}
		sym, _ := s.Lookup("x")
		if sym.Type != TypeI32 {
			t.Errorf("redeclaration changed type to %s", sym.Type)
		}
	})

	t.Run("UnsetRead", func(t *testing.T) {
		s := NewSymbolTable()
		_ = s.Declare("x", TypeStr)
		_, err := s.Get("x")
		if err == nil || !strings.Contains(err.Error(), "has no value") {
			t.Errorf("expected unset error, got %v", err)
		}
	})

	t.Run("UndeclaredRead", func(t *testing.T) {
		s := NewSymbolTable()
		_, err := s.Get("y")
		if err == nil || !strings.Contains(err.Error(), "undeclared variable") {
			t.Errorf("expected undeclared error, got %v", err)
		}
	})

	t.Run("UndeclaredAssign", func(t *testing.T) {
		s := NewSymbolTable()
		err := s.Assign("y", IntValue{V: 1})
		if err == nil || !strings.Contains(err.Error(), "undeclared") {
			t.Errorf("expected undeclared error, got %v", err)
		}
		if _, ok := s.Lookup("y"); ok {
			t.Error("assignment to an undeclared name must not create it")
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		s := NewSymbolTable()
		_ = s.Declare("b", TypeBool)
		err := s.Assign("b", IntValue{V: 1})
		if err == nil || !strings.Contains(err.Error(), "cannot assign i32 value") {
			t.Errorf("expected type mismatch, got %v", err)
		}
	})

	t.Run("String", func(t *testing.T) {
		s := NewSymbolTable()
		if got := s.String(); got != "Symbols: (empty)\n" {
			t.Errorf("empty dump = %q", got)
		}
		_ = s.Declare("zeta", TypeStr)
		_ = s.Assign("zeta", StrValue{V: "z"})
		_ = s.Declare("alpha", TypeI32)
		dump := s.String()
		a := strings.Index(dump, "alpha")
		z := strings.Index(dump, "zeta")
		if a < 0 || z < 0 || a > z {
			t.Errorf("dump not sorted:\n%s", dump)
		}
		if !strings.Contains(dump, "<unset>") || !strings.Contains(dump, `"z"`) {
			t.Errorf("dump missing values:\n%s", dump)
		}
	})
}
