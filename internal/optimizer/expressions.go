package optimizer

import (
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/config"
)

// optimizeExpr rewrites an expression bottom-up: operands are optimized
// first, then the node itself is folded or lowered.
func (o *Optimizer) optimizeExpr(expr ast.Expression) ast.Expression {
	if expr == nil {
		return nil
	}
	switch e := expr.(type) {
	case *ast.Binary:
		e.Left = o.optimizeExpr(e.Left)
		e.Right = o.optimizeExpr(e.Right)
		return foldBinary(e)

	case *ast.Unary:
		e.Operand = o.optimizeExpr(e.Operand)
		return foldUnary(e)

	case *ast.Call:
		e.Callee = o.optimizeExpr(e.Callee)
		for i := range e.Args {
			e.Args[i] = o.optimizeExpr(e.Args[i])
		}
		return e

	case *ast.MemberAccess:
		e.Object = o.optimizeExpr(e.Object)
		return e

	case *ast.TemporalAccess:
		e.Timestamp = o.optimizeExpr(e.Timestamp)
		return e

	case *ast.Pipeline:
		return o.lowerPipeline(e)

	case *ast.Match:
		e.Scrutinee = o.optimizeExpr(e.Scrutinee)
		for i := range e.Cases {
			e.Cases[i].Pattern = o.optimizeExpr(e.Cases[i].Pattern)
			e.Cases[i].Body = o.optimizeBlock(e.Cases[i].Body)
		}
		return e

	default:
		return expr
	}
}

// foldBinary constant-folds the four arithmetic operators between two
// number literals. Comparison and equality operators are deliberately
// left un-folded: a Match lowers its scrutinee-equality test to a
// Binary(==, ...) condition, and that condition must survive as a
// Binary node for codegen to emit rather than collapsing via
// dead-branch elimination (whose trigger is a literal Boolean
// condition, not a foldable comparison).
// Division by zero is left un-folded so codegen (or a future runtime)
// observes it rather than the optimizer silently producing Inf/NaN.
func foldBinary(e *ast.Binary) ast.Expression {
	ln, lok := e.Left.(*ast.Number)
	rn, rok := e.Right.(*ast.Number)
	if !lok || !rok {
		return e
	}
	switch e.Operator {
	case "+":
		return &ast.Number{Token: e.Token, Value: ln.Value + rn.Value}
	case "-":
		return &ast.Number{Token: e.Token, Value: ln.Value - rn.Value}
	case "*":
		return &ast.Number{Token: e.Token, Value: ln.Value * rn.Value}
	case "/":
		if rn.Value != 0.0 {
			return &ast.Number{Token: e.Token, Value: ln.Value / rn.Value}
		}
	}
	return e
}

func foldUnary(e *ast.Unary) ast.Expression {
	if e.Operator == "-" {
		if n, ok := e.Operand.(*ast.Number); ok {
			return &ast.Number{Token: e.Token, Value: -n.Value}
		}
	}
	if e.Operator == "!" {
		if b, ok := e.Operand.(*ast.Boolean); ok {
			return &ast.Boolean{Token: e.Token, Value: !b.Value}
		}
	}
	return e
}

// lowerPipeline rewrites a Pipeline(e0, e1, ..., en) into the equivalent
// left-to-right nested calls Call(en, [Call(en-1, [... Call(e1, [e0])])]).
func (o *Optimizer) lowerPipeline(e *ast.Pipeline) ast.Expression {
	stages := make([]ast.Expression, len(e.Stages))
	for i, s := range e.Stages {
		stages[i] = o.optimizeExpr(s)
	}
	acc := stages[0]
	for i := 1; i < len(stages); i++ {
		acc = &ast.Call{Token: e.Token, Callee: stages[i], Args: []ast.Expression{acc}}
	}
	return acc
}

// tryLowerMatchValue lowers a Match used as a statement's value into a
// right-nested If chain built last-to-first, so the first case's
// condition ends up outermost and wins on tie. rebuild
// reconstructs the owning statement (VarDecl/Assignment/Return/
// ExpressionStatement) around each case's value expression.
//
// Lowering only applies when every case body is a single expression
// statement. A Match whose case bodies contain multiple statements, or
// one that appears nested inside another expression, has no equivalent
// in this AST's fixed node table (there is no If-expression), so it is
// left as an optimized Match node instead of being lowered.
func (o *Optimizer) tryLowerMatchValue(m *ast.Match, rebuild func(ast.Expression) ast.Statement) ([]ast.Statement, bool) {
	scrutinee := o.optimizeExpr(m.Scrutinee)
	m.Scrutinee = scrutinee

	lowerable := true
	bodies := make([]ast.Expression, len(m.Cases))
	for i, c := range m.Cases {
		optimized := o.optimizeBlock(c.Body)
		m.Cases[i].Body = optimized
		if len(optimized) != 1 {
			lowerable = false
			continue
		}
		es, ok := optimized[0].(*ast.ExpressionStatement)
		if !ok {
			lowerable = false
			continue
		}
		bodies[i] = es.Expression
	}
	if !lowerable {
		return nil, false
	}

	var built ast.Statement
	for i := len(m.Cases) - 1; i >= 0; i-- {
		c := m.Cases[i]
		pattern := o.optimizeExpr(c.Pattern)

		var cond ast.Expression
		if ident, ok := pattern.(*ast.Identifier); ok && ident.Name == config.DefaultPatternName {
			cond = &ast.Boolean{Token: m.Token, Value: true}
		} else {
			cond = o.optimizeExpr(&ast.Binary{Token: m.Token, Left: scrutinee, Operator: "==", Right: pattern})
		}

		var elseStmts []ast.Statement
		if built != nil {
			elseStmts = []ast.Statement{built}
		}
		built = &ast.If{Token: m.Token, Condition: cond, Then: []ast.Statement{rebuild(bodies[i])}, Else: elseStmts}
	}

	return o.optimizeStatement(built), true
}
