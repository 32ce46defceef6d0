package lexer

import (
	"github.com/flux-lang/fluxc/internal/pipeline"
	"github.com/flux-lang/fluxc/internal/token"
)

const lookaheadBufferSize = 10

// bufferedLexer adapts Lexer to pipeline.TokenStream, giving the parser
// the k-ahead peek its Pratt loop needs.
type bufferedLexer struct {
	l      *Lexer
	buffer []token.Token
	pos    int
}

func NewTokenStream(l *Lexer) pipeline.TokenStream {
	return &bufferedLexer{l: l}
}

func (bl *bufferedLexer) Next() token.Token {
	if bl.pos < len(bl.buffer) {
		tok := bl.buffer[bl.pos]
		bl.pos++
		return tok
	}
	return bl.l.NextToken()
}

func (bl *bufferedLexer) Peek(n int) []token.Token {
	if len(bl.buffer)-bl.pos == 0 {
		bl.buffer = append(bl.buffer, bl.l.NextToken())
	}
	for len(bl.buffer)-bl.pos < n {
		next := bl.l.NextToken()
		bl.buffer = append(bl.buffer, next)
		if next.Type == token.EOF {
			break
		}
	}
	if bl.pos > lookaheadBufferSize {
		bl.buffer = bl.buffer[bl.pos:]
		bl.pos = 0
	}
	end := bl.pos + n
	if end > len(bl.buffer) {
		end = len(bl.buffer)
	}
	return bl.buffer[bl.pos:end]
}

var _ pipeline.TokenStream = (*bufferedLexer)(nil)

// Processor is the pipeline stage wrapping Lexer.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	ctx.TokenStream = NewTokenStream(New(ctx.SourceCode))
	return ctx
}
