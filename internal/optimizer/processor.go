package optimizer

import "github.com/flux-lang/fluxc/internal/pipeline"

// Processor is the pipeline stage wrapping Optimizer.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.AstRoot = New().Optimize(ctx.AstRoot)
	return ctx
}
