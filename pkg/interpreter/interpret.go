package interpreter

import (
	"bufio"
	"io"
	"log"
)

// Interpreter evaluates parsed programs. It owns the symbol table, so
// consecutive Run calls on one Interpreter share variables.
type Interpreter struct {
	symbols *SymbolTable
	input   *bufio.Reader
	out     io.Writer

	// Logger receives pipeline trace lines. It never carries program output.
	Logger *log.Logger
}

// New returns an Interpreter reading read() input from r and writing
// print output to w.
func New(r io.Reader, w io.Writer) *Interpreter {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Interpreter{
		symbols: NewSymbolTable(),
		input:   br,
		out:     w,
		Logger:  log.New(io.Discard, "", 0),
	}
}

// Symbols exposes the interpreter's symbol table.
func (ip *Interpreter) Symbols() *SymbolTable {
	return ip.symbols
}

// Run parses src as one block and evaluates it. src is expected to be
// preprocessed already. Output printed before a failure stays written.
func (ip *Interpreter) Run(src string) error {
	prog, err := Parse(src)
	if err != nil {
		ip.Logger.Printf("parse failed: %v", err)
		return err
	}
	ip.Logger.Printf("parsed program: %d top-level statements", len(prog.Stmts))
	return ip.Exec(prog, src)
}

// Exec evaluates an already parsed program. src, when non-empty, is used
// to attach source snippets to errors.
func (ip *Interpreter) Exec(prog *Block, src string) error {
	ip.Logger.Printf("evaluation started")
	if _, err := ip.Eval(prog); err != nil {
		ip.Logger.Printf("evaluation failed: %v", err)
		if src != "" {
			return splitSource(src).annotate(err)
		}
		return err
	}
	ip.Logger.Printf("evaluation finished: %d symbols", ip.symbols.Len())
	return nil
}

// Interpret preprocesses, parses and evaluates src in a fresh interpreter.
func Interpret(src string, r io.Reader, w io.Writer) error {
	return New(r, w).Run(Preprocess(src))
}
