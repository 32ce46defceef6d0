package analyzer

import "github.com/flux-lang/fluxc/internal/pipeline"

// Processor is the pipeline stage wrapping Analyzer.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	a := New(ctx.SymbolTable)
	errs, typeMap := a.Analyze(ctx.AstRoot)
	ctx.Errors = append(ctx.Errors, errs...)
	ctx.TypeMap = typeMap
	return ctx
}
