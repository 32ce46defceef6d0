package batch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flux-lang/fluxc/internal/batch"
)

func TestCompileAllPreservesOrderAndErrors(t *testing.T) {
	paths := []string{"a.flux", "b.flux", "c.flux"}

	results := batch.CompileAll(paths, func(path string) (string, error) {
		if path == "b.flux" {
			return "", errors.New("boom")
		}
		return "IR for " + path, nil
	})

	assert := assert.New(t)
	assert.Len(results, 3)
	assert.Equal("a.flux", results[0].Path)
	assert.Equal("IR for a.flux", results[0].IR)
	assert.NoError(results[0].Err)

	assert.Equal("b.flux", results[1].Path)
	assert.Error(results[1].Err)

	assert.Equal("c.flux", results[2].Path)
	assert.Equal("IR for c.flux", results[2].IR)
}
