package prettyprinter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/symbols"
	"github.com/flux-lang/fluxc/internal/token"
)

var sectionHeader = color.New(color.FgCyan, color.Bold)

// DumpTokens writes one line per token to w, under a colorized section
// header when w is a TTY (color.New auto-detects and no-ops otherwise).
func DumpTokens(w io.Writer, tokens []token.Token) {
	sectionHeader.Fprintln(w, "=== Tokens ===")
	for _, tok := range tokens {
		fmt.Fprintln(w, tok.String())
	}
}

// DumpAST writes an indented tree of program to w under its own section
// header.
func DumpAST(w io.Writer, program *ast.Program) {
	sectionHeader.Fprintln(w, "=== AST ===")
	printer := NewTreePrinter()
	program.Accept(printer)
	fmt.Fprint(w, printer.String())
}

// DumpIR writes the generated IR text to w under its own section header.
func DumpIR(w io.Writer, ir string) {
	sectionHeader.Fprintln(w, "=== IR ===")
	fmt.Fprintln(w, ir)
}

// DumpSymbols writes one line per declared binding, in the table's sorted
// name order, under its own section header.
func DumpSymbols(w io.Writer, st *symbols.SymbolTable) {
	sectionHeader.Fprintln(w, "=== Symbols ===")
	for _, name := range st.Names() {
		v, _ := st.Lookup(name)
		fmt.Fprintf(w, "%s: %s\n", name, v.Type)
	}
}
