package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-lang/fluxc/internal/analyzer"
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/diagnostics"
	"github.com/flux-lang/fluxc/internal/lexer"
	"github.com/flux-lang/fluxc/internal/parser"
	"github.com/flux-lang/fluxc/internal/pipeline"
	"github.com/flux-lang/fluxc/internal/symbols"
	"github.com/flux-lang/fluxc/internal/typesystem"
)

func analyze(t *testing.T, src string) []*diagnostics.DiagnosticError {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	stream := lexer.NewTokenStream(lexer.New(src))
	program := parser.New(stream, ctx).ParseProgram()
	require.Empty(t, ctx.Errors)

	a := analyzer.New(symbols.NewSymbolTable())
	errs, _ := a.Analyze(program)
	return errs
}

// Testable property 3: const immutability.
func TestConstReassignmentIsAnError(t *testing.T) {
	errs := analyze(t, "const x = 1\nx = 2")
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrA002, errs[0].Code)
}

func TestLetReassignmentIsFine(t *testing.T) {
	errs := analyze(t, "let x = 1\nx = 2")
	assert.Empty(t, errs)
}

func TestRedeclarationIsAnError(t *testing.T) {
	errs := analyze(t, "let x = 1\nlet x = 2")
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrA001, errs[0].Code)
}

func TestUndefinedAssignmentIsAnError(t *testing.T) {
	errs := analyze(t, "y = 2")
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrA004, errs[0].Code)
}

// Testable property 4: non-temporal indexing.
func TestNonTemporalIndexIsAnError(t *testing.T) {
	errs := analyze(t, "let x = 1\nlet y = x[0]")
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrA005, errs[0].Code)
}

func TestTemporalIndexIsFine(t *testing.T) {
	errs := analyze(t, "temporal let t = 1\nlet u = t[0]")
	assert.Empty(t, errs)
}

// A bare reference to a temporal binding carries its wrapped Temporal
// type; indexing it with [ts] strips the wrapper back to the inner type.
func TestTemporalVariableTypeIsWrappedUntilIndexed(t *testing.T) {
	ctx := pipeline.NewPipelineContext("temporal let t = 1\nlet u = t\nlet v = t[0]")
	stream := lexer.NewTokenStream(lexer.New(ctx.SourceCode))
	program := parser.New(stream, ctx).ParseProgram()
	require.Empty(t, ctx.Errors)

	a := analyzer.New(symbols.NewSymbolTable())
	errs, typeMap := a.Analyze(program)
	require.Empty(t, errs)

	uDecl := program.Statements[1].(*ast.VarDecl)
	_, isTemporal := typeMap[uDecl.Value].(typesystem.Temporal)
	assert.True(t, isTemporal, "bare reference to a temporal variable should carry a Temporal type")

	vDecl := program.Statements[2].(*ast.VarDecl)
	assert.Equal(t, typesystem.Number, typeMap[vDecl.Value])
}

func TestFrozenMutationIsAnError(t *testing.T) {
	errs := analyze(t, "let x = 1\nfreeze(x)\nx = 2")
	require.Len(t, errs, 1)
	assert.Equal(t, diagnostics.ErrA003, errs[0].Code)
}

func TestThawAllowsMutationAgain(t *testing.T) {
	errs := analyze(t, "let x = 1\nfreeze(x)\nthaw(x)\nx = 2")
	assert.Empty(t, errs)
}
