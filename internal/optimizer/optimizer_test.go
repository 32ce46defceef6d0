package optimizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/lexer"
	"github.com/flux-lang/fluxc/internal/optimizer"
	"github.com/flux-lang/fluxc/internal/parser"
	"github.com/flux-lang/fluxc/internal/pipeline"
)

func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	stream := lexer.NewTokenStream(lexer.New(src))
	program := parser.New(stream, ctx).ParseProgram()
	require.Empty(t, ctx.Errors)
	return program
}

func firstValue(t *testing.T, program *ast.Program) ast.Expression {
	t.Helper()
	require.NotEmpty(t, program.Statements)
	vd, ok := program.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	return vd.Value
}

func TestConstantFoldingArithmetic(t *testing.T) {
	program := parseProgram(t, "let x = 2 + 3 * 4")
	optimizer.New().Optimize(program)
	num, ok := firstValue(t, program).(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 14.0, num.Value)
}

func TestDivisionByZeroIsNotFolded(t *testing.T) {
	program := parseProgram(t, "let x = 1 / 0")
	optimizer.New().Optimize(program)
	bin, ok := firstValue(t, program).(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "/", bin.Operator)
}

func TestUnaryNegationFolds(t *testing.T) {
	program := parseProgram(t, "let x = -5")
	optimizer.New().Optimize(program)
	num, ok := firstValue(t, program).(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, -5.0, num.Value)
}

func TestDeadBranchEliminationTakesTrueBranch(t *testing.T) {
	program := parseProgram(t, "if true { let x = 1 } else { let x = 2 }")
	optimizer.New().Optimize(program)
	require.Len(t, program.Statements, 1)
	vd, ok := program.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	num, ok := vd.Value.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 1.0, num.Value)
}

func TestDeadBranchEliminationTakesFalseBranch(t *testing.T) {
	program := parseProgram(t, "if false { let x = 1 } else { let x = 2 }")
	optimizer.New().Optimize(program)
	require.Len(t, program.Statements, 1)
	vd, ok := program.Statements[0].(*ast.VarDecl)
	require.True(t, ok)
	num, ok := vd.Value.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 2.0, num.Value)
}

// Equality/comparison operators are not constant-foldable, so a literal
// comparison condition does not trigger dead-branch elimination — only a
// literal Boolean condition does.
func TestComparisonConditionIsNotDeadBranchEliminated(t *testing.T) {
	program := parseProgram(t, "if 1 == 2 { let x = 1 } else { let x = 2 }")
	optimizer.New().Optimize(program)
	require.Len(t, program.Statements, 1)
	ifStmt, ok := program.Statements[0].(*ast.If)
	require.True(t, ok)
	cond, ok := ifStmt.Condition.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "==", cond.Operator)
}

// Testable property 5: pipeline lowering.
func TestPipelineLowersToNestedCalls(t *testing.T) {
	program := parseProgram(t, "let x = 5 | double | add_ten")
	optimizer.New().Optimize(program)
	outer, ok := firstValue(t, program).(*ast.Call)
	require.True(t, ok)
	outerCallee, ok := outer.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "add_ten", outerCallee.Name)
	require.Len(t, outer.Args, 1)

	inner, ok := outer.Args[0].(*ast.Call)
	require.True(t, ok)
	innerCallee, ok := inner.Callee.(*ast.Identifier)
	require.True(t, ok)
	assert.Equal(t, "double", innerCallee.Name)
	require.Len(t, inner.Args, 1)

	num, ok := inner.Args[0].(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 5.0, num.Value)
}

// Testable property 6: match lowering preserves first-match-wins order,
// with the first case's condition ending up outermost. Equality is not
// constant-folded, so even a constant scrutinee leaves the outer
// condition as Binary(==, Number(200), Number(200)) rather than
// collapsing via dead-branch elimination.
func TestMatchLowersToRightNestedIfsInOrder(t *testing.T) {
	program := parseProgram(t, `let m = match 200 { 200 => 1 404 => 2 default => 3 }`)
	optimizer.New().Optimize(program)

	require.Len(t, program.Statements, 1)
	outer, ok := program.Statements[0].(*ast.If)
	require.True(t, ok)
	cond, ok := outer.Condition.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "==", cond.Operator)
	left, ok := cond.Left.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 200.0, left.Value)
	right, ok := cond.Right.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 200.0, right.Value)

	require.Len(t, outer.Then, 1)
	thenVd, ok := outer.Then[0].(*ast.VarDecl)
	require.True(t, ok)
	thenNum, ok := thenVd.Value.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 1.0, thenNum.Value)
}

func TestMatchLoweringOrderWithNonConstantScrutinee(t *testing.T) {
	program := parseProgram(t, `let m = match s { 200 => 1 404 => 2 default => 3 }`)
	optimizer.New().Optimize(program)

	require.Len(t, program.Statements, 1)
	outer, ok := program.Statements[0].(*ast.If)
	require.True(t, ok)
	cond, ok := outer.Condition.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "==", cond.Operator)
	pattern, ok := cond.Right.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 200.0, pattern.Value)

	require.Len(t, outer.Else, 1)
	middle, ok := outer.Else[0].(*ast.If)
	require.True(t, ok)
	midPattern, ok := middle.Condition.(*ast.Binary)
	require.True(t, ok)
	midNum, ok := midPattern.Right.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 404.0, midNum.Value)

	require.Len(t, middle.Else, 1)
	// The default arm's literal-true If is collapsed by dead-branch
	// elimination, leaving its body directly in the middle If's else.
	defaultVd, ok := middle.Else[0].(*ast.VarDecl)
	require.True(t, ok)
	defaultNum, ok := defaultVd.Value.(*ast.Number)
	require.True(t, ok)
	assert.Equal(t, 3.0, defaultNum.Value)
}

// Testable property 7: idempotence.
func TestOptimizeIsIdempotent(t *testing.T) {
	src := `
let x = 2 + 3 * 4
if true { let a = 1 } else { let a = 2 }
let m = match s { 200 => 1 default => 2 }
let p = 5 | double | add_ten
`
	once := optimizer.New().Optimize(parseProgram(t, src))

	twice := optimizer.New().Optimize(parseProgram(t, src))
	twice = optimizer.New().Optimize(twice)

	assert.Equal(t, once, twice)
}
