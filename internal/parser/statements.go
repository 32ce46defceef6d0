package parser

import (
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/token"
)

// parseStatement dispatches on the current token:
// Statement := VarDecl | FuncDecl | ClassDecl | Return | If | While |
// Match | Expr (bare Match/Pipeline/Call fall through to the default
// expression-statement case since Match is also an Expression).
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET, token.CONST, token.TEMPORAL:
		return p.parseVarDecl()
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	case token.FUNC:
		return p.parseFunctionDecl()
	case token.CLASS:
		return p.parseClassDecl()
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.IMPORT, token.EXPORT:
		p.errorf(token.IDENT, p.curToken)
		return nil
	case token.PRAGMA:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken
	expr := p.ParseExpression()
	if expr == nil {
		return nil
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}
}

// parseVarDecl handles `temporal? (let|const) Ident = Expr`.
func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.curToken
	isTemporal := false
	if p.curTokenIs(token.TEMPORAL) {
		isTemporal = true
		if p.peekTokenIs(token.LET) || p.peekTokenIs(token.CONST) {
			p.nextToken()
		} else {
			p.errorf(token.LET, p.peekToken)
			return nil
		}
	}
	isConst := p.curTokenIs(token.CONST)

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.ParseExpression()

	return &ast.VarDecl{Token: tok, Name: name, Value: value, IsConst: isConst, IsTemporal: isTemporal}
}

func (p *Parser) parseAssignment() ast.Statement {
	tok := p.curToken
	name := p.curToken.Lexeme
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.ParseExpression()
	return &ast.Assignment{Token: tok, Name: name, Value: value}
}

func (p *Parser) parseFunctionDecl() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseIdentList()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatements()

	return &ast.FunctionDecl{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseIdentList() []string {
	var params []string
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.curToken.Lexeme)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.curToken.Lexeme)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

// parseBlockStatements consumes `{ Statement* }`, curToken starting on
// `{` and ending on the matching `}`.
func (p *Parser) parseBlockStatements() []ast.Statement {
	var stmts []ast.Statement
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && !p.errored {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.errored {
			return stmts
		}
		p.nextToken()
	}
	return stmts
}

func (p *Parser) parseClassDecl() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Lexeme

	superclass := ""
	if p.peekTokenIs(token.EXTENDS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		superclass = p.curToken.Lexeme
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	var methods []*ast.FunctionDecl
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) && !p.errored {
		if !p.curTokenIs(token.FUNC) {
			p.errorf(token.FUNC, p.curToken)
			return nil
		}
		method := p.parseFunctionDecl()
		if fd, ok := method.(*ast.FunctionDecl); ok {
			methods = append(methods, fd)
		}
		if p.errored {
			return nil
		}
		p.nextToken()
	}

	return &ast.ClassDecl{Token: tok, Name: name, Superclass: superclass, Methods: methods}
}

func (p *Parser) parseReturn() ast.Statement {
	tok := p.curToken
	p.nextToken()
	value := p.ParseExpression()
	return &ast.Return{Token: tok, Value: value}
}

func (p *Parser) parseIf() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.ParseExpression()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	then := p.parseBlockStatements()

	var elseBody []ast.Statement
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if p.peekTokenIs(token.IF) {
			p.nextToken()
			nested := p.parseIf()
			if nested != nil {
				elseBody = []ast.Statement{nested}
			}
		} else {
			if !p.expectPeek(token.LBRACE) {
				return nil
			}
			elseBody = p.parseBlockStatements()
		}
	}

	return &ast.If{Token: tok, Condition: cond, Then: then, Else: elseBody}
}

func (p *Parser) parseWhile() ast.Statement {
	tok := p.curToken
	p.nextToken()
	cond := p.ParseExpression()

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlockStatements()

	return &ast.While{Token: tok, Condition: cond, Body: body}
}
