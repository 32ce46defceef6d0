package analyzer

import (
	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/config"
	"github.com/flux-lang/fluxc/internal/diagnostics"
	"github.com/flux-lang/fluxc/internal/typesystem"
)

// inferExpr performs structural, best-effort type inference and records the
// result in the type map.
func (a *Analyzer) inferExpr(expr ast.Expression) typesystem.Type {
	if expr == nil {
		return typesystem.Any
	}
	var t typesystem.Type

	switch e := expr.(type) {
	case *ast.Number:
		t = typesystem.Number
	case *ast.String:
		t = typesystem.String
	case *ast.Boolean:
		t = typesystem.Boolean
	case *ast.Identifier:
		if v, ok := a.symbolTable.Lookup(e.Name); ok {
			t = v.Type
		} else {
			t = typesystem.Any
		}
	case *ast.Binary:
		a.inferExpr(e.Left)
		a.inferExpr(e.Right)
		t = binaryResultType(e.Operator)
	case *ast.Unary:
		operand := a.inferExpr(e.Operand)
		if e.Operator == "!" {
			t = typesystem.Boolean
		} else {
			t = operand
			if t == nil {
				t = typesystem.Number
			}
		}
	case *ast.Call:
		t = a.analyzeCall(e)
	case *ast.MemberAccess:
		a.inferExpr(e.Object)
		t = typesystem.Any
	case *ast.TemporalAccess:
		t = a.analyzeTemporalAccess(e)
	case *ast.Pipeline:
		for _, stage := range e.Stages {
			a.inferExpr(stage)
		}
		t = typesystem.Any
	case *ast.Match:
		a.inferExpr(e.Scrutinee)
		for _, c := range e.Cases {
			a.inferExpr(c.Pattern)
			a.analyzeBlock(c.Body)
		}
		t = typesystem.Any
	default:
		t = typesystem.Any
	}

	a.typeMap[expr] = t
	return t
}

func binaryResultType(op string) typesystem.Type {
	switch op {
	case "+", "-", "*", "/", "%":
		return typesystem.Number
	default:
		return typesystem.Boolean
	}
}

// analyzeTemporalAccess enforces rules 4 and 5: the binding must exist
// and must be temporal.
func (a *Analyzer) analyzeTemporalAccess(e *ast.TemporalAccess) typesystem.Type {
	a.inferExpr(e.Timestamp)

	v, ok := a.symbolTable.Lookup(e.Variable)
	if !ok {
		a.errf(diagnostics.ErrA004, e, e.Variable)
		return typesystem.Any
	}
	if !v.IsTemporal {
		a.errf(diagnostics.ErrA005, e, e.Variable)
		return typesystem.Any
	}
	if temporal, ok := v.Type.(typesystem.Temporal); ok {
		return temporal.Inner
	}
	return v.Type
}

// analyzeCall recognizes freeze/thaw/timeline by callee name
// and otherwise infers a builtin's
// advertised return type or Any for user functions.
func (a *Analyzer) analyzeCall(e *ast.Call) typesystem.Type {
	callee, isIdent := e.Callee.(*ast.Identifier)

	if isIdent {
		switch callee.Name {
		case config.FreezeFuncName:
			a.setFrozen(e.Args, true)
		case config.ThawFuncName:
			a.setFrozen(e.Args, false)
		case config.TimelineFuncName:
			// Inspection only; no mutation of the binding.
		}
	}

	for _, arg := range e.Args {
		a.inferExpr(arg)
	}

	if isIdent {
		if bi := config.Lookup(callee.Name); bi != nil {
			switch bi.ReturnType {
			case "Number":
				return typesystem.Number
			case "Boolean":
				return typesystem.Boolean
			}
		}
	}
	return typesystem.Any
}

func (a *Analyzer) setFrozen(args []ast.Expression, frozen bool) {
	if len(args) != 1 {
		return
	}
	ident, ok := args[0].(*ast.Identifier)
	if !ok {
		return
	}
	if v, ok := a.symbolTable.Lookup(ident.Name); ok {
		v.IsFrozen = frozen
	}
}
