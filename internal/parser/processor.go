package parser

import "github.com/flux-lang/fluxc/internal/pipeline"

// Processor is the pipeline stage wrapping Parser.
type Processor struct{}

func (pr *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	p := New(ctx.TokenStream, ctx)
	ctx.AstRoot = p.ParseProgram()
	return ctx
}
