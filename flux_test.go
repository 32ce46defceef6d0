package flux_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flux "github.com/flux-lang/fluxc"
)

func TestPragmaBracesCompilesWithThreeVarDecls(t *testing.T) {
	src := "#pragma braces\nlet x = 10\nconst y = 20\nlet r = x + y * 2"
	ir, err := flux.New().Compile(src)
	require.NoError(t, err)
	assert.Contains(t, ir, "define void @flux_main()")
}

func TestConstReassignmentFailsWithConstInMessage(t *testing.T) {
	src := "const x = 10\nx = 20"
	_, err := flux.New().Compile(src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "const")
}

func TestTemporalAccessCompiles(t *testing.T) {
	src := "temporal let t = 1\nlet u = t[0]"
	ir, err := flux.New().Compile(src)
	require.NoError(t, err)
	assert.Contains(t, ir, "call double @flux_timeline_at")
}

func TestPipelineCompilesAfterLowering(t *testing.T) {
	src := "let v = 5 | double | add_ten"
	ir, err := flux.New().Compile(src)
	require.NoError(t, err)
	assert.Contains(t, ir, "define void @flux_main()")
}

func TestMatchOnConstantScrutineeCompiles(t *testing.T) {
	src := `let m = match 200 { 200 => 1 404 => 2 default => 3 }`
	ir, err := flux.New().Compile(src)
	require.NoError(t, err)
	assert.Contains(t, ir, "define void @flux_main()")
}

func TestConstantArithmeticFoldsBeforeCodegen(t *testing.T) {
	src := "let c = 2 + 3 * 4"
	ir, err := flux.New().Compile(src)
	require.NoError(t, err)
	assert.Contains(t, ir, "fadd double 0.0, 14")
}

func TestCompileFileReadsSource(t *testing.T) {
	path := t.TempDir() + "/program.flux"
	require.NoError(t, os.WriteFile(path, []byte("let x = 1"), 0o644))

	ir, err := flux.New().CompileFile(path)
	require.NoError(t, err)
	assert.Contains(t, ir, "define void @flux_main()")
}
