package pipeline

import (
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/diagnostics"
	"github.com/flux-lang/fluxc/internal/symbols"
	"github.com/flux-lang/fluxc/internal/typesystem"
)

// PipelineContext is the mutable state threaded through the five
// compilation stages.
type PipelineContext struct {
	SourceCode  string
	FilePath    string
	TokenStream TokenStream
	AstRoot     *ast.Program
	SymbolTable *symbols.SymbolTable
	TypeMap     map[ast.Node]typesystem.Type
	Errors      []*diagnostics.DiagnosticError
	IR          string
	Debug       bool
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{
		SourceCode:  source,
		SymbolTable: symbols.NewSymbolTable(),
		TypeMap:     make(map[ast.Node]typesystem.Type),
		Errors:      []*diagnostics.DiagnosticError{},
	}
}
