package pipeline

import (
	"github.com/flux-lang/fluxc/internal/token"
)

// Processor is a single compilation stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// TokenStream is the contract the parser consumes, implemented by
// internal/lexer's buffered wrapper over Lexer.NextToken.
type TokenStream interface {
	Next() token.Token
	Peek(n int) []token.Token
}
