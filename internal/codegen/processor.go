package codegen

import "github.com/flux-lang/fluxc/internal/pipeline"

// Processor is the pipeline stage wrapping Codegen.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.IR = New().Generate(ctx.AstRoot)
	return ctx
}
