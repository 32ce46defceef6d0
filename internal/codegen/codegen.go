// Package codegen lowers an optimized AST to a textual, LLVM-style low
// level IR. All scalars are materialized as 64-bit doubles; booleans are
// 0.0/1.0. Generation is a single pass over the statement list with
// running register and label counters, accumulated into a growing
// strings.Builder of IR text.
package codegen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/flux-lang/fluxc/internal/ast"
)

// Codegen emits IR for one compilation unit. Not safe for concurrent
// use; an embedder compiling many sources concurrently instantiates one
// Codegen per source.
type Codegen struct {
	buf strings.Builder

	regCounter   int
	labelCounter int
	strCounter   int

	slots     map[string]string // variable name -> alloca pointer name
	temporal  map[string]bool   // variable name -> declared `temporal`
	functions map[string]bool   // declared function names, for direct-call lowering
}

func New() *Codegen {
	return &Codegen{
		slots:     make(map[string]string),
		temporal:  make(map[string]bool),
		functions: make(map[string]bool),
	}
}

// Generate returns the full IR text for program: preamble, every
// top-level FunctionDecl and ClassDecl method as its own function,
// flux_main holding the remaining top-level statements, and a trailing
// main.
func (c *Codegen) Generate(program *ast.Program) string {
	c.emitPreamble()

	var fnDecls []*ast.FunctionDecl
	var rest []ast.Statement
	for _, stmt := range program.Statements {
		if fd, ok := stmt.(*ast.FunctionDecl); ok {
			fnDecls = append(fnDecls, fd)
			c.functions[fd.Name] = true
			continue
		}
		if cd, ok := stmt.(*ast.ClassDecl); ok {
			for _, m := range cd.Methods {
				c.functions[cd.Name+"_"+m.Name] = true
			}
			continue
		}
		rest = append(rest, stmt)
	}

	for _, fd := range fnDecls {
		c.emitFunctionDecl(fd, fd.Name)
	}
	for _, stmt := range program.Statements {
		if cd, ok := stmt.(*ast.ClassDecl); ok {
			for _, m := range cd.Methods {
				c.emitFunctionDecl(m, cd.Name+"_"+m.Name)
			}
		}
	}

	c.emitFluxMain(rest)
	c.emitTrailingMain()
	return c.buf.String()
}

func (c *Codegen) newTemp() string {
	name := fmt.Sprintf("%%t%d", c.regCounter)
	c.regCounter++
	return name
}

func (c *Codegen) newLabel(base string) string {
	name := fmt.Sprintf("%s%d", base, c.labelCounter)
	c.labelCounter++
	return name
}

func (c *Codegen) slotFor(name string) string {
	if slot, ok := c.slots[name]; ok {
		return slot
	}
	slot := "%v_" + name
	c.slots[name] = slot
	return slot
}

// emitPreamble writes the target triple, external declarations, format
// string constants, the temporal struct types, and the
// @flux_timeline_at runtime helper.
func (c *Codegen) emitPreamble() {
	fmt.Fprintf(&c.buf, "; compilation-unit %s\n", uuid.New().String())
	c.buf.WriteString("target triple = \"x86_64-unknown-linux-gnu\"\n\n")

	c.buf.WriteString("declare i32 @printf(i8*, ...)\n")
	c.buf.WriteString("declare i8* @malloc(i64)\n")
	c.buf.WriteString("declare void @free(i8*)\n\n")

	c.buf.WriteString("@.fmt.number = private unnamed_addr constant [4 x i8] c\"%f\\0A\\00\"\n")
	c.buf.WriteString("@.fmt.string = private unnamed_addr constant [4 x i8] c\"%s\\0A\\00\"\n")
	c.buf.WriteString("@.fmt.true   = private unnamed_addr constant [6 x i8] c\"true\\0A\\00\"\n")
	c.buf.WriteString("@.fmt.false  = private unnamed_addr constant [7 x i8] c\"false\\0A\\00\"\n\n")

	c.buf.WriteString("%temporal_entry = type { double, i8* }\n")
	c.buf.WriteString("%temporal_var = type { i32, %temporal_entry* }\n\n")

	c.emitTimelineHelper()
}

// emitTimelineHelper emits a real linear scan over a temporal_var cell
// for the entry with the greatest timestamp <= the query time, rather
// than a plain current-value load.
func (c *Codegen) emitTimelineHelper() {
	c.buf.WriteString("define double @flux_timeline_at(%temporal_var* %tv, double %ts) {\n")
	c.buf.WriteString("entry:\n")
	c.buf.WriteString("  %count_ptr = getelementptr %temporal_var, %temporal_var* %tv, i32 0, i32 0\n")
	c.buf.WriteString("  %entries_ptr = getelementptr %temporal_var, %temporal_var* %tv, i32 0, i32 1\n")
	c.buf.WriteString("  %count = load i32, i32* %count_ptr\n")
	c.buf.WriteString("  %entries = load %temporal_entry*, %temporal_entry** %entries_ptr\n")
	c.buf.WriteString("  br label %scan\n")
	c.buf.WriteString("scan:\n")
	c.buf.WriteString("  %i = phi i32 [ 0, %entry ], [ %i.next, %scan.body ]\n")
	c.buf.WriteString("  %best = phi double [ 0.0, %entry ], [ %best.next, %scan.body ]\n")
	c.buf.WriteString("  %continue = icmp slt i32 %i, %count\n")
	c.buf.WriteString("  br i1 %continue, label %scan.body, label %done\n")
	c.buf.WriteString("scan.body:\n")
	c.buf.WriteString("  %entry_ptr = getelementptr %temporal_entry, %temporal_entry* %entries, i32 %i\n")
	c.buf.WriteString("  %entry_ts_ptr = getelementptr %temporal_entry, %temporal_entry* %entry_ptr, i32 0, i32 0\n")
	c.buf.WriteString("  %entry_ts = load double, double* %entry_ts_ptr\n")
	c.buf.WriteString("  %match = fcmp ole double %entry_ts, %ts\n")
	c.buf.WriteString("  %best.next = select i1 %match, double %entry_ts, double %best\n")
	c.buf.WriteString("  %i.next = add i32 %i, 1\n")
	c.buf.WriteString("  br label %scan\n")
	c.buf.WriteString("done:\n")
	c.buf.WriteString("  ret double %best\n")
	c.buf.WriteString("}\n\n")
}

func (c *Codegen) emitFluxMain(stmts []ast.Statement) {
	c.buf.WriteString("define void @flux_main() {\n")
	c.buf.WriteString("entry:\n")
	for _, stmt := range stmts {
		c.genStatement(stmt)
	}
	c.buf.WriteString("  ret void\n")
	c.buf.WriteString("}\n\n")
}

func (c *Codegen) emitTrailingMain() {
	c.buf.WriteString("define i32 @main() {\n")
	c.buf.WriteString("entry:\n")
	c.buf.WriteString("  call void @flux_main()\n")
	c.buf.WriteString("  ret i32 0\n")
	c.buf.WriteString("}\n")
}
