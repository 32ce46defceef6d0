package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/lexer"
	"github.com/flux-lang/fluxc/internal/parser"
	"github.com/flux-lang/fluxc/internal/pipeline"
)

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	stream := lexer.NewTokenStream(lexer.New(src))
	p := parser.New(stream, ctx)
	program := p.ParseProgram()
	require.Empty(t, ctx.Errors)
	require.Len(t, program.Statements, 1)
	es, ok := program.Statements[0].(*ast.ExpressionStatement)
	require.True(t, ok)
	return es.Expression
}

// Testable property 2: operator precedence.
func TestOperatorPrecedence(t *testing.T) {
	expr := parseExpr(t, "a + b * c")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Operator)
	assert.IsType(t, &ast.Identifier{}, bin.Left)
	rhs, ok := bin.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", rhs.Operator)
}

func TestLogicalPrecedence(t *testing.T) {
	expr := parseExpr(t, "a == b && c")
	bin, ok := expr.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "&&", bin.Operator)
	lhs, ok := bin.Left.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "==", lhs.Operator)
}

func TestPipelineParsesToPipelineNode(t *testing.T) {
	expr := parseExpr(t, "5 | double | add_ten")
	pipe, ok := expr.(*ast.Pipeline)
	require.True(t, ok)
	require.Len(t, pipe.Stages, 3)
}

func TestNoPipeUnwrapsToSoleStage(t *testing.T) {
	expr := parseExpr(t, "five")
	assert.IsType(t, &ast.Identifier{}, expr)
}

func TestTemporalAccessOnIdentifier(t *testing.T) {
	expr := parseExpr(t, "t[0]")
	ta, ok := expr.(*ast.TemporalAccess)
	require.True(t, ok)
	assert.Equal(t, "t", ta.Variable)
	num, ok := ta.Timestamp.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 0.0, num.Value)
}

func TestMatchParsesCasesInOrder(t *testing.T) {
	expr := parseExpr(t, `match 200 { 200 => 1 404 => 2 default => 3 }`)
	m, ok := expr.(*ast.Match)
	require.True(t, ok)
	require.Len(t, m.Cases, 3)
}

func TestNewDesugarsToCall(t *testing.T) {
	expr := parseExpr(t, "new Foo(1, 2)")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	callee, ok := call.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "Foo", callee.Name)
	assert.Len(t, call.Args, 2)
}
