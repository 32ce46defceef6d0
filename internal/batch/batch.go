// Package batch compiles independent sources concurrently. Compilation
// itself is single-threaded and synchronous; concurrency
// across sources is an embedder-layer concern that simply instantiates
// one independent compiler value per source.
package batch

import (
	"golang.org/x/sync/errgroup"
)

// Result is one source's compile outcome.
type Result struct {
	Path string
	IR   string
	Err  error
}

// CompileAll runs compile (typically flux.CompileFile) over every path
// concurrently and returns one Result per path, in input order.
func CompileAll(paths []string, compile func(path string) (string, error)) []Result {
	results := make([]Result, len(paths))
	var g errgroup.Group

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			ir, err := compile(path)
			results[i] = Result{Path: path, IR: ir, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
