// Package interpreter provides the lexer, parser, symbol table and tree
// evaluator for minilang, a small statically typed imperative language.
//
// Pipeline: source → Preprocess → Lexer.Next → Parser → *Block → Interpreter.Eval
package interpreter
