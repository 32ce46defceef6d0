package codegen

import (
	"fmt"

	"github.com/flux-lang/fluxc/internal/ast"
)

func (c *Codegen) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.genVarDecl(s)
	case *ast.Assignment:
		c.genAssignment(s)
	case *ast.Return:
		c.genReturn(s)
	case *ast.If:
		c.genIf(s)
	case *ast.While:
		c.genWhile(s)
	case *ast.ExpressionStatement:
		c.genExpr(s.Expression)
	case *ast.FunctionDecl:
		c.emitFunctionDecl(s, s.Name)
	case *ast.ClassDecl:
		for _, m := range s.Methods {
			c.emitFunctionDecl(m, s.Name+"_"+m.Name)
		}
	}
}

// genVarDecl allocates a slot for the binding and stores its initial
// value. A `temporal` binding additionally allocates a temporal_var
// header and records the first timeline entry.
func (c *Codegen) genVarDecl(s *ast.VarDecl) {
	slot := c.slotFor(s.Name)
	fmt.Fprintf(&c.buf, "  %s = alloca double\n", slot)

	val := c.genExpr(s.Value)
	fmt.Fprintf(&c.buf, "  store double %s, double* %s\n", val, slot)

	if s.IsTemporal {
		c.temporal[s.Name] = true
		c.genTimelineInit(s.Name, val)
	}
}

func (c *Codegen) genAssignment(s *ast.Assignment) {
	slot := c.slotFor(s.Name)
	val := c.genExpr(s.Value)
	fmt.Fprintf(&c.buf, "  store double %s, double* %s\n", val, slot)

	if c.temporal[s.Name] {
		c.genTimelineAppend(s.Name, val)
	}
}

// genTimelineInit allocates the temporal_var header for name and
// records its first entry at timestamp 0.0.
func (c *Codegen) genTimelineInit(name string, val string) {
	tv := "%tv_" + name
	fmt.Fprintf(&c.buf, "  %s = alloca %%temporal_var\n", tv)
	zeroCount := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = getelementptr %%temporal_var, %%temporal_var* %s, i32 0, i32 0\n", zeroCount, tv)
	fmt.Fprintf(&c.buf, "  store i32 0, i32* %s\n", zeroCount)
	c.genTimelineAppend(name, val)
}

// genTimelineAppend mallocs one more temporal_entry slot, stores
// (current timestamp, value) into it, and re-points the cell's entries
// field at the new slot.
func (c *Codegen) genTimelineAppend(name string, val string) {
	tv := "%tv_" + name
	entry := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = call i8* @malloc(i64 ptrtoint (%%temporal_entry* getelementptr (%%temporal_entry, %%temporal_entry* null, i32 1) to i64))\n", entry)
	cast := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = bitcast i8* %s to %%temporal_entry*\n", cast, entry)
	tsPtr := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = getelementptr %%temporal_entry, %%temporal_entry* %s, i32 0, i32 0\n", tsPtr, cast)
	fmt.Fprintf(&c.buf, "  store double %s, double* %s\n", val, tsPtr)

	entriesField := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = getelementptr %%temporal_var, %%temporal_var* %s, i32 0, i32 1\n", entriesField, tv)
	fmt.Fprintf(&c.buf, "  store %%temporal_entry* %s, %%temporal_entry** %s\n", cast, entriesField)

	countField := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = getelementptr %%temporal_var, %%temporal_var* %s, i32 0, i32 0\n", countField, tv)
	oldCount := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = load i32, i32* %s\n", oldCount, countField)
	newCount := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = add i32 %s, 1\n", newCount, oldCount)
	fmt.Fprintf(&c.buf, "  store i32 %s, i32* %s\n", newCount, countField)
}

func (c *Codegen) genReturn(s *ast.Return) {
	if s.Value == nil {
		c.buf.WriteString("  ret void\n")
		return
	}
	val := c.genExpr(s.Value)
	fmt.Fprintf(&c.buf, "  ret double %s\n", val)
}

func (c *Codegen) genIf(s *ast.If) {
	thenLabel := c.newLabel("if.then.")
	elseLabel := c.newLabel("if.else.")
	mergeLabel := c.newLabel("if.end.")

	cond := c.genExpr(s.Condition)
	condBit := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = fcmp one double %s, 0.000000e+00\n", condBit, cond)
	fmt.Fprintf(&c.buf, "  br i1 %s, label %%%s, label %%%s\n", condBit, thenLabel, elseLabel)

	fmt.Fprintf(&c.buf, "%s:\n", thenLabel)
	for _, stmt := range s.Then {
		c.genStatement(stmt)
	}
	fmt.Fprintf(&c.buf, "  br label %%%s\n", mergeLabel)

	fmt.Fprintf(&c.buf, "%s:\n", elseLabel)
	for _, stmt := range s.Else {
		c.genStatement(stmt)
	}
	fmt.Fprintf(&c.buf, "  br label %%%s\n", mergeLabel)

	fmt.Fprintf(&c.buf, "%s:\n", mergeLabel)
}

func (c *Codegen) genWhile(s *ast.While) {
	condLabel := c.newLabel("while.cond.")
	bodyLabel := c.newLabel("while.body.")
	endLabel := c.newLabel("while.end.")

	fmt.Fprintf(&c.buf, "  br label %%%s\n", condLabel)
	fmt.Fprintf(&c.buf, "%s:\n", condLabel)
	cond := c.genExpr(s.Condition)
	condBit := c.newTemp()
	fmt.Fprintf(&c.buf, "  %s = fcmp one double %s, 0.000000e+00\n", condBit, cond)
	fmt.Fprintf(&c.buf, "  br i1 %s, label %%%s, label %%%s\n", condBit, bodyLabel, endLabel)

	fmt.Fprintf(&c.buf, "%s:\n", bodyLabel)
	for _, stmt := range s.Body {
		c.genStatement(stmt)
	}
	fmt.Fprintf(&c.buf, "  br label %%%s\n", condLabel)

	fmt.Fprintf(&c.buf, "%s:\n", endLabel)
}

// emitFunctionDecl emits a user function as its own top-level IR
// function; the codegen package never executes it, so its own slot map
// is local to the function being emitted.
func (c *Codegen) emitFunctionDecl(fd *ast.FunctionDecl, irName string) {
	prevSlots, prevTemporal := c.slots, c.temporal
	c.slots = make(map[string]string)
	c.temporal = make(map[string]bool)

	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = fmt.Sprintf("double %%arg_%s", p)
	}
	fmt.Fprintf(&c.buf, "define double @%s(%s) {\n", irName, joinParams(params))
	c.buf.WriteString("entry:\n")

	for _, p := range fd.Params {
		slot := c.slotFor(p)
		fmt.Fprintf(&c.buf, "  %s = alloca double\n", slot)
		fmt.Fprintf(&c.buf, "  store double %%arg_%s, double* %s\n", p, slot)
	}
	for _, stmt := range fd.Body {
		c.genStatement(stmt)
	}
	c.buf.WriteString("  ret double 0.000000e+00\n")
	c.buf.WriteString("}\n\n")

	c.slots, c.temporal = prevSlots, prevTemporal
}

func joinParams(params []string) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ", "
		}
		out += p
	}
	return out
}
