// Package analyzer performs a single semantic pass: the five binding
// rules, structural type inference, and freeze/thaw/timeline call
// recognition.
package analyzer

import (
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/diagnostics"
	"github.com/flux-lang/fluxc/internal/symbols"
	"github.com/flux-lang/fluxc/internal/typesystem"
)

// Analyzer walks a Program once, collecting every diagnostic rather than
// stopping at the first.
type Analyzer struct {
	symbolTable *symbols.SymbolTable
	typeMap     map[ast.Node]typesystem.Type
	errors      []*diagnostics.DiagnosticError
	timestamp   float64
}

func New(st *symbols.SymbolTable) *Analyzer {
	return &Analyzer{
		symbolTable: st,
		typeMap:     make(map[ast.Node]typesystem.Type),
	}
}

// Analyze runs the pass and returns the collected diagnostics and the
// inferred type of every node that has one.
func (a *Analyzer) Analyze(program *ast.Program) ([]*diagnostics.DiagnosticError, map[ast.Node]typesystem.Type) {
	for _, stmt := range program.Statements {
		a.analyzeStatement(stmt)
	}
	return a.errors, a.typeMap
}

// tick advances the logical timestamp counter used to order timeline
// entries. Only an assignment to a temporal variable consumes a tick; a
// temporal declaration records its first entry at 0.0, and no other node
// advances the counter.
func (a *Analyzer) tick() float64 {
	a.timestamp++
	return a.timestamp
}

func (a *Analyzer) errf(code diagnostics.ErrorCode, tok ast.Node, args ...interface{}) {
	a.errors = append(a.errors, diagnostics.New(diagnostics.PhaseAnalyzer, code, tok.GetToken(), args...))
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		a.analyzeVarDecl(s)
	case *ast.Assignment:
		a.analyzeAssignment(s)
	case *ast.FunctionDecl:
		a.analyzeFunctionDecl(s)
	case *ast.ClassDecl:
		a.analyzeClassDecl(s)
	case *ast.Return:
		if s.Value != nil {
			a.inferExpr(s.Value)
		}
	case *ast.If:
		a.inferExpr(s.Condition)
		a.analyzeBlock(s.Then)
		a.analyzeBlock(s.Else)
	case *ast.While:
		a.inferExpr(s.Condition)
		a.analyzeBlock(s.Body)
	case *ast.ExpressionStatement:
		a.inferExpr(s.Expression)
	}
}

func (a *Analyzer) analyzeBlock(stmts []ast.Statement) {
	for _, s := range stmts {
		a.analyzeStatement(s)
	}
}

// analyzeVarDecl enforces rule 1 (redeclaration) and records the
// binding, including an initial timeline entry for temporal variables.
func (a *Analyzer) analyzeVarDecl(s *ast.VarDecl) {
	if _, exists := a.symbolTable.Lookup(s.Name); exists {
		a.errf(diagnostics.ErrA001, s, s.Name)
	}

	var t typesystem.Type = typesystem.Any
	if s.Value != nil {
		t = a.inferExpr(s.Value)
	}
	a.typeMap[s] = t

	v := &symbols.Variable{Name: s.Name, Type: t, IsConst: s.IsConst, IsTemporal: s.IsTemporal}
	if s.IsTemporal {
		v.Type = typesystem.Temporal{Inner: t}
		v.Record(0.0, t)
	}
	a.symbolTable.Declare(v)
}

// analyzeAssignment enforces rules 2-4 (const reassignment, frozen
// mutation, undefined use) and, for temporal variables, appends to the
// timeline.
func (a *Analyzer) analyzeAssignment(s *ast.Assignment) {
	v, ok := a.symbolTable.Lookup(s.Name)
	if !ok {
		a.errf(diagnostics.ErrA004, s, s.Name)
		if s.Value != nil {
			a.inferExpr(s.Value)
		}
		return
	}
	if v.IsConst {
		a.errf(diagnostics.ErrA002, s, s.Name)
	}
	if v.IsFrozen {
		a.errf(diagnostics.ErrA003, s, s.Name)
	}

	var t typesystem.Type = typesystem.Any
	if s.Value != nil {
		t = a.inferExpr(s.Value)
	}
	a.typeMap[s] = t
	if v.IsTemporal {
		v.Type = typesystem.Temporal{Inner: t}
		v.Record(a.tick(), t)
	} else {
		v.Type = t
	}
}

func (a *Analyzer) analyzeFunctionDecl(s *ast.FunctionDecl) {
	params := make([]typesystem.Type, len(s.Params))
	for i := range params {
		params[i] = typesystem.Any
	}
	a.symbolTable.Declare(&symbols.Variable{
		Name: s.Name,
		Type: typesystem.Function{Params: params, Return: typesystem.Any},
	})

	for _, p := range s.Params {
		if _, exists := a.symbolTable.Lookup(p); !exists {
			a.symbolTable.Declare(&symbols.Variable{Name: p, Type: typesystem.Any})
		}
	}
	a.analyzeBlock(s.Body)
}

func (a *Analyzer) analyzeClassDecl(s *ast.ClassDecl) {
	a.symbolTable.Declare(&symbols.Variable{Name: s.Name, Type: typesystem.Object{}})
	for _, m := range s.Methods {
		a.analyzeFunctionDecl(m)
	}
}
