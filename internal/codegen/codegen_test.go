package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-lang/fluxc/internal/codegen"
	"github.com/flux-lang/fluxc/internal/lexer"
	"github.com/flux-lang/fluxc/internal/parser"
	"github.com/flux-lang/fluxc/internal/pipeline"
)

func generate(t *testing.T, src string) string {
	t.Helper()
	ctx := pipeline.NewPipelineContext(src)
	stream := lexer.NewTokenStream(lexer.New(src))
	program := parser.New(stream, ctx).ParseProgram()
	require.Empty(t, ctx.Errors)
	return codegen.New().Generate(program)
}

func TestPreambleDeclaresExternalsAndStructs(t *testing.T) {
	ir := generate(t, "let x = 1")
	assert.Contains(t, ir, "declare i32 @printf")
	assert.Contains(t, ir, "declare i8* @malloc")
	assert.Contains(t, ir, "%temporal_entry = type { double, i8* }")
	assert.Contains(t, ir, "%temporal_var = type { i32, %temporal_entry* }")
	assert.Contains(t, ir, "@flux_timeline_at")
}

func TestFluxMainAndTrailingMainAreDefined(t *testing.T) {
	ir := generate(t, "let x = 1")
	assert.Contains(t, ir, "define void @flux_main()")
	assert.Contains(t, ir, "define i32 @main()")
	assert.Contains(t, ir, "call void @flux_main()")
}

// Testable property 8: round-trip literal.
func TestNumericLiteralRoundTrips(t *testing.T) {
	ir := generate(t, "let x = 42")
	assert.Contains(t, ir, "fadd double 0.0, 42")
}

func TestBinaryArithmeticLowersDirectly(t *testing.T) {
	ir := generate(t, "let x = 1\nlet y = x + 2")
	assert.Contains(t, ir, "fadd double")
}

func TestPrintOfStringUsesStringFormat(t *testing.T) {
	ir := generate(t, `print("hi")`)
	assert.Contains(t, ir, "@.fmt.string")
}

func TestPrintOfNumberUsesNumberFormat(t *testing.T) {
	ir := generate(t, "print(5)")
	assert.Contains(t, ir, "@.fmt.number")
}

func TestTemporalAccessCallsTimelineHelper(t *testing.T) {
	ir := generate(t, "temporal let t = 1\nlet u = t[0]")
	assert.Contains(t, ir, "call double @flux_timeline_at")
}

func TestFunctionDeclEmitsOwnFunction(t *testing.T) {
	ir := generate(t, "func add(a, b) { return a + b }")
	assert.Contains(t, ir, "define double @add(double %arg_a, double %arg_b)")
}

func TestIfEmitsThreeLabels(t *testing.T) {
	ir := generate(t, "if 1 == 1 { let x = 1 } else { let x = 2 }")
	assert.True(t, strings.Contains(ir, "if.then.") && strings.Contains(ir, "if.else.") && strings.Contains(ir, "if.end."))
}

func TestWhileEmitsThreeLabels(t *testing.T) {
	ir := generate(t, "let i = 0\nwhile i < 1 { i = 2 }")
	assert.True(t, strings.Contains(ir, "while.cond.") && strings.Contains(ir, "while.body.") && strings.Contains(ir, "while.end."))
}
