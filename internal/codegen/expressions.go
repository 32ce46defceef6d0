package codegen

import (
	"fmt"

	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/config"
)

// genExpr lowers an expression and returns the SSA register (or
// immediate) holding its double-typed result.
func (c *Codegen) genExpr(expr ast.Expression) string {
	switch e := expr.(type) {
	case *ast.Number:
		reg := c.newTemp()
		fmt.Fprintf(&c.buf, "  %s = fadd double 0.0, %s\n", reg, formatNumber(e.Value))
		return reg

	case *ast.Boolean:
		reg := c.newTemp()
		val := "0.000000e+00"
		if e.Value {
			val = "1.000000e+00"
		}
		fmt.Fprintf(&c.buf, "  %s = fadd double 0.0, %s\n", reg, val)
		return reg

	case *ast.String:
		return c.genStringConstant(e.Value)

	case *ast.Identifier:
		reg := c.newTemp()
		slot := c.slotFor(e.Name)
		fmt.Fprintf(&c.buf, "  %s = load double, double* %s\n", reg, slot)
		return reg

	case *ast.Unary:
		return c.genUnary(e)

	case *ast.Binary:
		return c.genBinary(e)

	case *ast.Call:
		return c.genCall(e)

	case *ast.MemberAccess:
		// No per-class field layout is tracked at this level; fall back to the
		// object's own value.
		return c.genExpr(e.Object)

	case *ast.TemporalAccess:
		return c.genTemporalAccess(e)

	default:
		reg := c.newTemp()
		fmt.Fprintf(&c.buf, "  %s = fadd double 0.0, 0.000000e+00\n", reg)
		return reg
	}
}

func formatNumber(n float64) string {
	return fmt.Sprintf("%v", n)
}

func (c *Codegen) genUnary(e *ast.Unary) string {
	operand := c.genExpr(e.Operand)
	reg := c.newTemp()
	switch e.Operator {
	case "-":
		fmt.Fprintf(&c.buf, "  %s = fsub double 0.0, %s\n", reg, operand)
	case "!":
		bit := c.newTemp()
		fmt.Fprintf(&c.buf, "  %s = fcmp oeq double %s, 0.000000e+00\n", bit, operand)
		fmt.Fprintf(&c.buf, "  %s = uitofp i1 %s to double\n", reg, bit)
	default:
		fmt.Fprintf(&c.buf, "  %s = fadd double 0.0, %s\n", reg, operand)
	}
	return reg
}

func (c *Codegen) genBinary(e *ast.Binary) string {
	left := c.genExpr(e.Left)
	right := c.genExpr(e.Right)
	reg := c.newTemp()

	switch e.Operator {
	case "+":
		fmt.Fprintf(&c.buf, "  %s = fadd double %s, %s\n", reg, left, right)
	case "-":
		fmt.Fprintf(&c.buf, "  %s = fsub double %s, %s\n", reg, left, right)
	case "*":
		fmt.Fprintf(&c.buf, "  %s = fmul double %s, %s\n", reg, left, right)
	case "/":
		fmt.Fprintf(&c.buf, "  %s = fdiv double %s, %s\n", reg, left, right)
	case "%":
		fmt.Fprintf(&c.buf, "  %s = frem double %s, %s\n", reg, left, right)
	case "==", "!=", "<", ">", "<=", ">=", "&&", "||":
		return c.genComparisonOrLogic(e.Operator, left, right, reg)
	default:
		fmt.Fprintf(&c.buf, "  %s = fadd double %s, %s\n", reg, left, right)
	}
	return reg
}

// genComparisonOrLogic emits an fcmp (or, for && / ||, a bitwise-on-0/1
// approximation since booleans are represented as 0.0/1.0 doubles) and
// widens the i1 result back to double.
func (c *Codegen) genComparisonOrLogic(op, left, right, reg string) string {
	bit := c.newTemp()
	switch op {
	case "==":
		fmt.Fprintf(&c.buf, "  %s = fcmp oeq double %s, %s\n", bit, left, right)
	case "!=":
		fmt.Fprintf(&c.buf, "  %s = fcmp one double %s, %s\n", bit, left, right)
	case "<":
		fmt.Fprintf(&c.buf, "  %s = fcmp olt double %s, %s\n", bit, left, right)
	case ">":
		fmt.Fprintf(&c.buf, "  %s = fcmp ogt double %s, %s\n", bit, left, right)
	case "<=":
		fmt.Fprintf(&c.buf, "  %s = fcmp ole double %s, %s\n", bit, left, right)
	case ">=":
		fmt.Fprintf(&c.buf, "  %s = fcmp oge double %s, %s\n", bit, left, right)
	case "&&":
		lbit := c.newTemp()
		rbit := c.newTemp()
		fmt.Fprintf(&c.buf, "  %s = fcmp one double %s, 0.000000e+00\n", lbit, left)
		fmt.Fprintf(&c.buf, "  %s = fcmp one double %s, 0.000000e+00\n", rbit, right)
		fmt.Fprintf(&c.buf, "  %s = and i1 %s, %s\n", bit, lbit, rbit)
	case "||":
		lbit := c.newTemp()
		rbit := c.newTemp()
		fmt.Fprintf(&c.buf, "  %s = fcmp one double %s, 0.000000e+00\n", lbit, left)
		fmt.Fprintf(&c.buf, "  %s = fcmp one double %s, 0.000000e+00\n", rbit, right)
		fmt.Fprintf(&c.buf, "  %s = or i1 %s, %s\n", bit, lbit, rbit)
	}
	fmt.Fprintf(&c.buf, "  %s = uitofp i1 %s to double\n", reg, bit)
	return reg
}

// genCall lowers print specially into a printf call; any
// other callee is emitted as a direct call to @name.
func (c *Codegen) genCall(e *ast.Call) string {
	callee, isIdent := e.Callee.(*ast.Identifier)
	if isIdent && callee.Name == config.PrintFuncName && len(e.Args) == 1 {
		return c.genPrintCall(e.Args[0])
	}

	name := "<indirect>"
	if isIdent {
		name = callee.Name
	}

	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = c.genExpr(a)
	}
	reg := c.newTemp()
	argList := ""
	for i, a := range args {
		if i > 0 {
			argList += ", "
		}
		argList += "double " + a
	}
	fmt.Fprintf(&c.buf, "  %s = call double @%s(%s)\n", reg, name, argList)
	return reg
}

func (c *Codegen) genPrintCall(arg ast.Expression) string {
	reg := c.newTemp()
	switch a := arg.(type) {
	case *ast.String:
		strPtr := c.genStringPointer(a.Value)
		fmt.Fprintf(&c.buf, "  %s = call i32 (i8*, ...) @printf(i8* getelementptr ([4 x i8], [4 x i8]* @.fmt.string, i32 0, i32 0), i8* %s)\n", reg, strPtr)
	case *ast.Boolean:
		fmtName, fmtLen := "@.fmt.true", 6
		if !a.Value {
			fmtName, fmtLen = "@.fmt.false", 7
		}
		fmt.Fprintf(&c.buf, "  %s = call i32 (i8*, ...) @printf(i8* getelementptr ([%d x i8], [%d x i8]* %s, i32 0, i32 0))\n", reg, fmtLen, fmtLen, fmtName)
	default:
		val := c.genExpr(arg)
		fmt.Fprintf(&c.buf, "  %s = call i32 (i8*, ...) @printf(i8* getelementptr ([4 x i8], [4 x i8]* @.fmt.number, i32 0, i32 0), double %s)\n", reg, val)
	}
	return reg
}

// genStringConstant materializes a string literal appearing outside a
// print call as the double 0.0 (strings carry no numeric value); its
// bytes are still emitted as a global so codegen never drops data.
func (c *Codegen) genStringConstant(s string) string {
	c.genStringPointer(s)
	reg := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = fadd double 0.0, 0.000000e+00\n", reg)
	return reg
}

func (c *Codegen) genStringPointer(s string) string {
	global := fmt.Sprintf("@.str.%d", c.strCounter)
	c.strCounter++
	length := len(s) + 1
	fmt.Fprintf(&c.buf, "  %s = global [%d x i8] c\"%s\\00\"\n", global, length, escapeIRString(s))

	reg := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = getelementptr [%d x i8], [%d x i8]* %s, i32 0, i32 0\n", reg, length, length, global)
	return reg
}

func escapeIRString(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '"' || ch == '\\' {
			out = append(out, '\\')
		}
		out = append(out, ch)
	}
	return string(out)
}

// genTemporalAccess emits a real lookup through @flux_timeline_at
// instead of a plain current-value load.
func (c *Codegen) genTemporalAccess(e *ast.TemporalAccess) string {
	ts := c.genExpr(e.Timestamp)
	tv := "%tv_" + e.Variable
	reg := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = call double @flux_timeline_at(%%temporal_var* %s, double %s)\n", reg, tv, ts)
	return reg
}
