package parser

import (
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/config"
	"github.com/flux-lang/fluxc/internal/token"
)

// ParseExpression is the entry point for expression parsing everywhere
// (var decl values, call args, if/while conditions, grouped expressions):
// it is pipeline-aware, the lowest expression level.
func (p *Parser) ParseExpression() ast.Expression {
	first := p.parseBinaryExpression2(config.PrecPipe)
	if first == nil {
		return nil
	}
	stages := []ast.Expression{first}
	for p.peekTokenIs(token.PIPE) {
		p.nextToken() // consume |
		p.nextToken() // move to first token of next stage
		stage := p.parseBinaryExpression2(config.PrecPipe)
		if stage == nil {
			return nil
		}
		stages = append(stages, stage)
	}
	if len(stages) == 1 {
		return stages[0]
	}
	return &ast.Pipeline{Token: first.GetToken(), Stages: stages}
}

// parseBinaryExpression2 is the precedence-climbing core, excluding the
// pipeline operator (handled only at ParseExpression's top level).
func (p *Parser) parseBinaryExpression2(precedence int) ast.Expression {
	prefix, ok := p.prefixParseFns[p.curToken.Type]
	if !ok {
		p.errorf(token.IDENT, p.curToken)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.PIPE) && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseBinaryExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	op := tok.Lexeme
	prec := precedences[tok.Type]
	p.nextToken()
	right := p.parseBinaryExpression2(prec)
	return &ast.Binary{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.curToken
	op := tok.Lexeme
	p.nextToken()
	operand := p.parseBinaryExpression2(config.PrecUnary)
	return &ast.Unary{Token: tok, Operator: op, Operand: operand}
}

func (p *Parser) parseIdentifier() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	return p.parsePostfix(ident)
}

// parseKeywordIdentifier handles this/super/freeze/thaw/timeline/default,
// which lex as their own keyword token but are ordinary identifiers in
// expression position.
func (p *Parser) parseKeywordIdentifier() ast.Expression {
	ident := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	return p.parsePostfix(ident)
}

func (p *Parser) parseNumber() ast.Expression {
	val, _ := p.curToken.Literal.(float64)
	return p.parsePostfix(&ast.Number{Token: p.curToken, Value: val})
}

func (p *Parser) parseString() ast.Expression {
	return p.parsePostfix(&ast.String{Token: p.curToken, Value: p.curToken.Lexeme})
}

func (p *Parser) parseBoolean() ast.Expression {
	return p.parsePostfix(&ast.Boolean{Token: p.curToken, Value: p.curTokenIs(token.TRUE)})
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()
	expr := p.ParseExpression()
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return p.parsePostfix(expr)
}

// parseNewExpression desugars `new Name(args)` to a plain Call.
func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	callee := &ast.Identifier{Token: p.curToken, Name: p.curToken.Lexeme}
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	args := p.parseCallArgs()
	call := &ast.Call{Token: tok, Callee: callee, Args: args}
	return p.parsePostfix(call)
}

// parsePostfix repeatedly matches call, member access, and (when the
// operand is a bare Identifier) temporal index forms.
func (p *Parser) parsePostfix(left ast.Expression) ast.Expression {
	for {
		switch {
		case p.peekTokenIs(token.LPAREN):
			tok := p.peekToken
			p.nextToken()
			args := p.parseCallArgs()
			left = &ast.Call{Token: tok, Callee: left, Args: args}
		case p.peekTokenIs(token.DOT):
			tok := p.peekToken
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return left
			}
			left = &ast.MemberAccess{Token: tok, Object: left, Property: p.curToken.Lexeme}
		case p.peekTokenIs(token.LBRACKET):
			ident, isIdent := left.(*ast.Identifier)
			if !isIdent {
				// indexing a non-identifier is not consumed as a postfix
				// form; the left-over `[` then fails parsing with P001.
				return left
			}
			tok := p.peekToken
			p.nextToken() // consume [
			p.nextToken() // move to timestamp expr
			ts := p.ParseExpression()
			if !p.expectPeek(token.RBRACKET) {
				return left
			}
			left = &ast.TemporalAccess{Token: tok, Variable: ident.Name, Timestamp: ts}
		default:
			return left
		}
	}
}

func (p *Parser) parseCallArgs() []ast.Expression {
	var args []ast.Expression
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.ParseExpression())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.ParseExpression())
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return args
}

// parseMatchExpression parses `match scrutinee { pattern => body ... }`.
func (p *Parser) parseMatchExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	scrutinee := p.ParseExpression()
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	var cases []ast.MatchCase
	for !p.peekTokenIs(token.RBRACE) && !p.peekTokenIs(token.EOF) {
		p.nextToken()
		pattern := p.ParseExpression()
		if !p.expectPeek(token.ARROW) {
			return nil
		}
		p.nextToken()
		var body []ast.Statement
		if p.curTokenIs(token.LBRACE) {
			body = p.parseBlockStatements()
		} else {
			stmt := p.parseStatement()
			if stmt != nil {
				body = []ast.Statement{stmt}
			}
		}
		cases = append(cases, ast.MatchCase{Pattern: pattern, Body: body})
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.Match{Token: tok, Scrutinee: scrutinee, Cases: cases}
}
