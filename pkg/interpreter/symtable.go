package interpreter

import (
	"fmt"
	"sort"
	"strings"
)

// Symbol is a declared variable. Value is nil until the first assignment.
type Symbol struct {
	Name  string
	Type  Type
	Value Value
}

// SymbolTable maps declared names to their type and current value.
// A name may be declared once per table lifetime; every read and write
// must name a declared symbol, and reads additionally require a prior
// assignment.
type SymbolTable struct {
	symbols map[string]*Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// Declare introduces name with type t and no value.
func (s *SymbolTable) Declare(name string, t Type) error {
	if _, ok := s.symbols[name]; ok {
		return fmt.Errorf("variable %q is already declared", name)
	}
	s.symbols[name] = &Symbol{Name: name, Type: t}
	return nil
}

// Assign stores v under a declared name. The value's type must match the
// declared type.
func (s *SymbolTable) Assign(name string, v Value) error {
	sym, ok := s.symbols[name]
	if !ok {
		return fmt.Errorf("assignment to undeclared variable %q", name)
	}
	if v.Type() != sym.Type {
		return fmt.Errorf("cannot assign %s value to variable %q of type %s", v.Type(), name, sym.Type)
	}
	sym.Value = v
	return nil
}

// Get returns the current value of name.
func (s *SymbolTable) Get(name string) (Value, error) {
	sym, ok := s.symbols[name]
	if !ok {
		return nil, fmt.Errorf("undeclared variable %q", name)
	}
	if sym.Value == nil {
		return nil, fmt.Errorf("variable %q is declared but has no value", name)
	}
	return sym.Value, nil
}

// Lookup returns the symbol and whether it was found.
func (s *SymbolTable) Lookup(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	if !ok {
		return Symbol{}, false
	}
	return *sym, true
}

func (s *SymbolTable) Len() int { return len(s.symbols) }

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	if len(s.symbols) == 0 {
		return "Symbols: (empty)\n"
	}
	var sb strings.Builder
	sb.WriteString("Symbols:\n")
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sym := s.symbols[name]
		val := "<unset>"
		if sym.Value != nil {
			val = sym.Value.String()
			if sym.Type == TypeStr {
				val = fmt.Sprintf("%q", val)
			}
		}
		fmt.Fprintf(&sb, "  %-20s  %-4s  %s\n", name, sym.Type, val)
	}
	return sb.String()
}
