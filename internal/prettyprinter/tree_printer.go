// Package prettyprinter dumps tokens and an AST for the CLI's --debug
// flag. The AST dump is a Visitor-based indented tree covering this
// compiler's 20 node kinds (the 19 language nodes plus
// ExpressionStatement).
package prettyprinter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/flux-lang/fluxc/internal/ast"
	"github.com/flux-lang/fluxc/internal/config"
)

type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *TreePrinter) writeIndent() {
	p.write(strings.Repeat("  ", p.indent))
}

func (p *TreePrinter) VisitProgram(n *ast.Program) {
	p.write("Program\n")
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		stmt.Accept(p)
	}
	p.indent--
}

func (p *TreePrinter) VisitExpressionStatement(n *ast.ExpressionStatement) {
	n.Expression.Accept(p)
	p.write("\n")
}

func (p *TreePrinter) VisitVarDecl(n *ast.VarDecl) {
	p.write("VarDecl(")
	if n.IsTemporal {
		p.write("temporal ")
	}
	if n.IsConst {
		p.write("const ")
	} else {
		p.write("let ")
	}
	p.write(n.Name + ")\n")
	p.indent++
	p.writeIndent()
	p.write("Value: ")
	n.Value.Accept(p)
	p.write("\n")
	p.indent--
}

func (p *TreePrinter) VisitAssignment(n *ast.Assignment) {
	p.write("Assignment(" + n.Name + ")\n")
	p.indent++
	p.writeIndent()
	p.write("Value: ")
	n.Value.Accept(p)
	p.write("\n")
	p.indent--
}

func (p *TreePrinter) VisitFunctionDecl(n *ast.FunctionDecl) {
	p.write("FunctionDecl(" + n.Name + ")\n")
	p.indent++
	p.writeIndent()
	p.write("Params: " + strings.Join(n.Params, ", ") + "\n")
	p.writeIndent()
	p.write("Body:\n")
	p.indent++
	for _, stmt := range n.Body {
		p.writeIndent()
		stmt.Accept(p)
	}
	p.indent--
	p.indent--
}

func (p *TreePrinter) VisitClassDecl(n *ast.ClassDecl) {
	p.write("ClassDecl(" + n.Name)
	if n.Superclass != "" {
		p.write(" extends " + n.Superclass)
	}
	p.write(")\n")
	p.indent++
	for _, m := range n.Methods {
		p.writeIndent()
		p.VisitFunctionDecl(m)
	}
	p.indent--
}

func (p *TreePrinter) VisitReturn(n *ast.Return) {
	p.write("Return\n")
	if n.Value != nil {
		p.indent++
		p.writeIndent()
		n.Value.Accept(p)
		p.write("\n")
		p.indent--
	}
}

func (p *TreePrinter) VisitIf(n *ast.If) {
	p.write("If\n")
	p.indent++
	p.writeIndent()
	p.write("Cond: ")
	n.Condition.Accept(p)
	p.write("\n")
	p.writeIndent()
	p.write("Then:\n")
	p.indent++
	for _, stmt := range n.Then {
		p.writeIndent()
		stmt.Accept(p)
	}
	p.indent--
	if len(n.Else) > 0 {
		p.writeIndent()
		p.write("Else:\n")
		p.indent++
		for _, stmt := range n.Else {
			p.writeIndent()
			stmt.Accept(p)
		}
		p.indent--
	}
	p.indent--
}

func (p *TreePrinter) VisitWhile(n *ast.While) {
	p.write("While\n")
	p.indent++
	p.writeIndent()
	p.write("Cond: ")
	n.Condition.Accept(p)
	p.write("\n")
	p.writeIndent()
	p.write("Body:\n")
	p.indent++
	for _, stmt := range n.Body {
		p.writeIndent()
		stmt.Accept(p)
	}
	p.indent--
	p.indent--
}

func (p *TreePrinter) VisitBinary(n *ast.Binary) {
	p.write("Binary(" + n.Operator + operatorSuffix(n.Operator) + ")\n")
	p.indent++
	p.writeIndent()
	p.write("Left: ")
	n.Left.Accept(p)
	p.write("\n")
	p.writeIndent()
	p.write("Right: ")
	n.Right.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitUnary(n *ast.Unary) {
	p.write("Unary(" + n.Operator + operatorSuffix(n.Operator) + ")\n")
	p.indent++
	p.writeIndent()
	n.Operand.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitCall(n *ast.Call) {
	p.write("Call\n")
	p.indent++
	p.writeIndent()
	p.write("Callee: ")
	n.Callee.Accept(p)
	p.write("\n")
	if len(n.Args) > 0 {
		p.writeIndent()
		p.write("Args:\n")
		p.indent++
		for _, a := range n.Args {
			p.writeIndent()
			a.Accept(p)
			p.write("\n")
		}
		p.indent--
	}
	p.indent--
}

func (p *TreePrinter) VisitMemberAccess(n *ast.MemberAccess) {
	p.write("MemberAccess(." + n.Property + ")\n")
	p.indent++
	p.writeIndent()
	n.Object.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitTemporalAccess(n *ast.TemporalAccess) {
	p.write("TemporalAccess(" + n.Variable + ")\n")
	p.indent++
	p.writeIndent()
	p.write("At: ")
	n.Timestamp.Accept(p)
	p.indent--
}

func (p *TreePrinter) VisitPipeline(n *ast.Pipeline) {
	p.write("Pipeline\n")
	p.indent++
	for _, stage := range n.Stages {
		p.writeIndent()
		stage.Accept(p)
		p.write("\n")
	}
	p.indent--
}

func (p *TreePrinter) VisitMatch(n *ast.Match) {
	p.write("Match\n")
	p.indent++
	p.writeIndent()
	p.write("Scrutinee: ")
	n.Scrutinee.Accept(p)
	p.write("\n")
	for _, c := range n.Cases {
		p.writeIndent()
		p.write("Case ")
		c.Pattern.Accept(p)
		p.write(":\n")
		p.indent++
		for _, stmt := range c.Body {
			p.writeIndent()
			stmt.Accept(p)
		}
		p.indent--
	}
	p.indent--
}

// operatorSuffix looks up symbol's description for the AST dump, e.g.
// "+" becomes " Addition". Unknown symbols (there shouldn't be any,
// since the parser only ever builds nodes from AllOperators' set) yield
// no suffix rather than a panic.
func operatorSuffix(symbol string) string {
	if info := config.GetOperator(symbol); info != nil {
		return " " + info.Description
	}
	return ""
}

func (p *TreePrinter) VisitNumber(n *ast.Number) {
	p.write(fmt.Sprintf("Number(%v)", n.Value))
}

func (p *TreePrinter) VisitString(n *ast.String) {
	p.write("String(\"" + n.Value + "\")")
}

func (p *TreePrinter) VisitBoolean(n *ast.Boolean) {
	p.write(fmt.Sprintf("Boolean(%v)", n.Value))
}

func (p *TreePrinter) VisitIdentifier(n *ast.Identifier) {
	p.write("Identifier(" + n.Name + ")")
}
