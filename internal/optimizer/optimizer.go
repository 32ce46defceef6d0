// Package optimizer rewrites an analyzed AST in place: constant folding,
// dead-branch elimination, match lowering to nested `If`s, and pipeline
// lowering to nested `Call`s. The pass is bottom-up and idempotent —
// running it twice produces the same tree as running it once.
package optimizer

import "github.com/flux-lang/fluxc/internal/ast"

type Optimizer struct{}

func New() *Optimizer { return &Optimizer{} }

// Optimize rewrites program.Statements in place and returns program.
func (o *Optimizer) Optimize(program *ast.Program) *ast.Program {
	program.Statements = o.optimizeBlock(program.Statements)
	return program
}

// optimizeBlock optimizes a statement list, splicing in the replacement
// statements an eliminated dead branch or a lowered match produces.
func (o *Optimizer) optimizeBlock(stmts []ast.Statement) []ast.Statement {
	var out []ast.Statement
	for _, s := range stmts {
		out = append(out, o.optimizeStatement(s)...)
	}
	return out
}

func (o *Optimizer) optimizeStatement(stmt ast.Statement) []ast.Statement {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		if m, ok := s.Value.(*ast.Match); ok {
			if lowered, ok := o.tryLowerMatchValue(m, func(v ast.Expression) ast.Statement {
				return &ast.VarDecl{Token: s.Token, Name: s.Name, Value: v, IsConst: s.IsConst, IsTemporal: s.IsTemporal}
			}); ok {
				return lowered
			}
		}
		s.Value = o.optimizeExpr(s.Value)
		return []ast.Statement{s}

	case *ast.Assignment:
		if m, ok := s.Value.(*ast.Match); ok {
			if lowered, ok := o.tryLowerMatchValue(m, func(v ast.Expression) ast.Statement {
				return &ast.Assignment{Token: s.Token, Name: s.Name, Value: v}
			}); ok {
				return lowered
			}
		}
		s.Value = o.optimizeExpr(s.Value)
		return []ast.Statement{s}

	case *ast.Return:
		if m, ok := s.Value.(*ast.Match); ok {
			if lowered, ok := o.tryLowerMatchValue(m, func(v ast.Expression) ast.Statement {
				return &ast.Return{Token: s.Token, Value: v}
			}); ok {
				return lowered
			}
		}
		s.Value = o.optimizeExpr(s.Value)
		return []ast.Statement{s}

	case *ast.ExpressionStatement:
		if m, ok := s.Expression.(*ast.Match); ok {
			if lowered, ok := o.tryLowerMatchValue(m, func(v ast.Expression) ast.Statement {
				return &ast.ExpressionStatement{Token: s.Token, Expression: v}
			}); ok {
				return lowered
			}
		}
		s.Expression = o.optimizeExpr(s.Expression)
		return []ast.Statement{s}

	case *ast.FunctionDecl:
		s.Body = o.optimizeBlock(s.Body)
		return []ast.Statement{s}

	case *ast.ClassDecl:
		for _, m := range s.Methods {
			m.Body = o.optimizeBlock(m.Body)
		}
		return []ast.Statement{s}

	case *ast.While:
		s.Condition = o.optimizeExpr(s.Condition)
		s.Body = o.optimizeBlock(s.Body)
		return []ast.Statement{s}

	case *ast.If:
		s.Condition = o.optimizeExpr(s.Condition)
		s.Then = o.optimizeBlock(s.Then)
		s.Else = o.optimizeBlock(s.Else)
		if b, ok := s.Condition.(*ast.Boolean); ok {
			if b.Value {
				return s.Then
			}
			return s.Else
		}
		return []ast.Statement{s}

	default:
		return []ast.Statement{stmt}
	}
}
