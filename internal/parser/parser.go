// Package parser implements Flux's recursive-descent, precedence-climbing
// parser: a Program is Statement*, expressions climb through a
// prefix/infix function table keyed by token type.
package parser

import (
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/config"
	"github.com/flux-lang/fluxc/internal/diagnostics"
	"github.com/flux-lang/fluxc/internal/pipeline"
	"github.com/flux-lang/fluxc/internal/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

// Parser holds parsing state. Errors are fatal and first-error-stops:
// once errored is set, ParseProgram stops adding statements.
type Parser struct {
	stream    pipeline.TokenStream
	curToken  token.Token
	peekToken token.Token
	ctx       *pipeline.PipelineContext

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	errored bool
}

var precedences = map[token.TokenType]int{
	token.OR:    config.PrecLogicOr,
	token.AND:   config.PrecLogicAnd,
	token.EQ:    config.PrecEquality,
	token.NEQ:   config.PrecEquality,
	token.LT:    config.PrecComparison,
	token.GT:    config.PrecComparison,
	token.LTE:   config.PrecComparison,
	token.GTE:   config.PrecComparison,
	token.PLUS:  config.PrecAdditive,
	token.MINUS: config.PrecAdditive,
	token.ASTERISK: config.PrecMultiply,
	token.SLASH:    config.PrecMultiply,
	token.PERCENT:  config.PrecMultiply,
}

// New creates a Parser, priming curToken/peekToken from stream.
func New(stream pipeline.TokenStream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.THIS, p.parseKeywordIdentifier)
	p.registerPrefix(token.SUPER, p.parseKeywordIdentifier)
	p.registerPrefix(token.FREEZE, p.parseKeywordIdentifier)
	p.registerPrefix(token.THAW, p.parseKeywordIdentifier)
	p.registerPrefix(token.TIMELINE, p.parseKeywordIdentifier)
	p.registerPrefix(token.DEFAULT, p.parseKeywordIdentifier)
	p.registerPrefix(token.NUMBER, p.parseNumber)
	p.registerPrefix(token.STRING, p.parseString)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.BANG, p.parseUnary)
	p.registerPrefix(token.MINUS, p.parseUnary)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.MATCH, p.parseMatchExpression)
	p.registerPrefix(token.NEW, p.parseNewExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for tt := range precedences {
		p.registerInfix(tt, p.parseBinaryExpression)
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(tt token.TokenType, fn prefixParseFn) { p.prefixParseFns[tt] = fn }
func (p *Parser) registerInfix(tt token.TokenType, fn infixParseFn)   { p.infixParseFns[tt] = fn }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	peeked := p.stream.Peek(1)
	if len(peeked) > 0 {
		p.peekToken = peeked[0]
	} else {
		p.peekToken = token.Token{Type: token.EOF}
	}
	p.stream.Next()
}

func (p *Parser) curTokenIs(tt token.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.TokenType) bool { return p.peekToken.Type == tt }

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return -1
}

// expectPeek advances past peek if it matches tt, else records a fatal
// P001 diagnostic and returns false.
func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.errorf(tt, p.peekToken)
	return false
}

func (p *Parser) errorf(expected token.TokenType, got token.Token) {
	p.errored = true
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.New(diagnostics.PhaseParser, diagnostics.ErrP001, got, string(expected), got.Lexeme))
}

// ParseProgram parses the full token stream into a Program. Parsing stops
// at the first error.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) && !p.errored {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		if p.errored {
			break
		}
		p.nextToken()
	}
	return program
}
