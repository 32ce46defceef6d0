// Package ast defines Flux's abstract syntax tree: the fixed node set
// lexing and parsing produce, traversed by the analyzer, optimizer and
// codegen via type switches, and by the prettyprinter via the Visitor
// interface.
package ast

import (
	"github.com/flux-lang/fluxc/internal/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node that stands on its own inside a block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every AST fluxc produces.
type Program struct {
	Statements []Statement
}

func (p *Program) GetToken() token.Token { return token.Token{} }
func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}
func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }

// ExpressionStatement wraps a bare expression used as a statement
// (e.g. a pipeline or call at top level). Scaffolding so the parser's
// statement loop has somewhere to put an expression that isn't one of
// the named statement forms.
type ExpressionStatement struct {
	Token      token.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) GetToken() token.Token  { return es.Token }
func (es *ExpressionStatement) TokenLiteral() string   { return es.Token.Lexeme }
func (es *ExpressionStatement) Accept(v Visitor)       { v.VisitExpressionStatement(es) }

// VarDecl is a `let`/`const` binding, optionally `temporal`.
type VarDecl struct {
	Token      token.Token
	Name       string
	Value      Expression
	IsConst    bool
	IsTemporal bool
}

func (vd *VarDecl) statementNode()       {}
func (vd *VarDecl) GetToken() token.Token { return vd.Token }
func (vd *VarDecl) TokenLiteral() string { return vd.Token.Lexeme }
func (vd *VarDecl) Accept(v Visitor)     { v.VisitVarDecl(vd) }

// Assignment rebinds an existing name; it never introduces one.
type Assignment struct {
	Token token.Token
	Name  string
	Value Expression
}

func (a *Assignment) statementNode()        {}
func (a *Assignment) GetToken() token.Token { return a.Token }
func (a *Assignment) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Assignment) Accept(v Visitor)      { v.VisitAssignment(a) }

// FunctionDecl is a named function: params are bare names, untyped.
type FunctionDecl struct {
	Token  token.Token
	Name   string
	Params []string
	Body   []Statement
}

func (fd *FunctionDecl) statementNode()        {}
func (fd *FunctionDecl) GetToken() token.Token { return fd.Token }
func (fd *FunctionDecl) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FunctionDecl) Accept(v Visitor)      { v.VisitFunctionDecl(fd) }

// ClassDecl is a class with an optional superclass name and
// FunctionDecl-only methods.
type ClassDecl struct {
	Token      token.Token
	Name       string
	Superclass string // empty if no "extends" clause
	Methods    []*FunctionDecl
}

func (cd *ClassDecl) statementNode()        {}
func (cd *ClassDecl) GetToken() token.Token { return cd.Token }
func (cd *ClassDecl) TokenLiteral() string  { return cd.Token.Lexeme }
func (cd *ClassDecl) Accept(v Visitor)      { v.VisitClassDecl(cd) }

// Return exits the enclosing function with a value.
type Return struct {
	Token token.Token
	Value Expression
}

func (r *Return) statementNode()        {}
func (r *Return) GetToken() token.Token { return r.Token }
func (r *Return) TokenLiteral() string  { return r.Token.Lexeme }
func (r *Return) Accept(v Visitor)      { v.VisitReturn(r) }

// If is a conditional with an optional else branch.
type If struct {
	Token     token.Token
	Condition Expression
	Then      []Statement
	Else      []Statement // nil if no else clause
}

func (i *If) statementNode()        {}
func (i *If) GetToken() token.Token { return i.Token }
func (i *If) TokenLiteral() string  { return i.Token.Lexeme }
func (i *If) Accept(v Visitor)      { v.VisitIf(i) }

// While is a condition-first loop.
type While struct {
	Token     token.Token
	Condition Expression
	Body      []Statement
}

func (w *While) statementNode()        {}
func (w *While) GetToken() token.Token { return w.Token }
func (w *While) TokenLiteral() string  { return w.Token.Lexeme }
func (w *While) Accept(v Visitor)      { v.VisitWhile(w) }

// Binary is a two-operand operator expression.
type Binary struct {
	Token    token.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) GetToken() token.Token { return b.Token }
func (b *Binary) TokenLiteral() string { return b.Token.Lexeme }
func (b *Binary) Accept(v Visitor)     { v.VisitBinary(b) }

// Unary is a single-operand prefix operator expression.
type Unary struct {
	Token    token.Token
	Operator string
	Operand  Expression
}

func (u *Unary) expressionNode()       {}
func (u *Unary) GetToken() token.Token { return u.Token }
func (u *Unary) TokenLiteral() string  { return u.Token.Lexeme }
func (u *Unary) Accept(v Visitor)      { v.VisitUnary(u) }

// Call applies a callee to zero or more argument expressions.
type Call struct {
	Token  token.Token
	Callee Expression
	Args   []Expression
}

func (c *Call) expressionNode()       {}
func (c *Call) GetToken() token.Token { return c.Token }
func (c *Call) TokenLiteral() string  { return c.Token.Lexeme }
func (c *Call) Accept(v Visitor)      { v.VisitCall(c) }

// MemberAccess is `object.property`.
type MemberAccess struct {
	Token    token.Token
	Object   Expression
	Property string
}

func (m *MemberAccess) expressionNode()       {}
func (m *MemberAccess) GetToken() token.Token { return m.Token }
func (m *MemberAccess) TokenLiteral() string  { return m.Token.Lexeme }
func (m *MemberAccess) Accept(v Visitor)      { v.VisitMemberAccess(m) }

// TemporalAccess is `name[timestamp]`, valid only when name names a
// temporal binding (enforced by the analyzer, not the parser).
type TemporalAccess struct {
	Token     token.Token
	Variable  string
	Timestamp Expression
}

func (t *TemporalAccess) expressionNode()       {}
func (t *TemporalAccess) GetToken() token.Token { return t.Token }
func (t *TemporalAccess) TokenLiteral() string  { return t.Token.Lexeme }
func (t *TemporalAccess) Accept(v Visitor)      { v.VisitTemporalAccess(t) }

// Pipeline is a non-empty sequence of stages; the parser only ever
// constructs one with length >= 2 (length 1 is unwrapped to its sole
// element).
type Pipeline struct {
	Token  token.Token
	Stages []Expression
}

func (p *Pipeline) expressionNode()       {}
func (p *Pipeline) GetToken() token.Token { return p.Token }
func (p *Pipeline) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Pipeline) Accept(v Visitor)      { v.VisitPipeline(p) }

// MatchCase is one `pattern => body` clause. Pattern is always a
// literal Expression; for the `default` clause it is the `default`
// Identifier itself, which match lowering recognizes by
// Name == config.DefaultPatternName.
type MatchCase struct {
	Pattern Expression
	Body    []Statement
}

// Match is a pattern match over literal (or default) cases.
type Match struct {
	Token     token.Token
	Scrutinee Expression
	Cases     []MatchCase
}

func (m *Match) expressionNode()       {}
func (m *Match) GetToken() token.Token { return m.Token }
func (m *Match) TokenLiteral() string  { return m.Token.Lexeme }
func (m *Match) Accept(v Visitor)      { v.VisitMatch(m) }

// Number is a floating-point literal leaf.
type Number struct {
	Token token.Token
	Value float64
}

func (n *Number) expressionNode()       {}
func (n *Number) GetToken() token.Token { return n.Token }
func (n *Number) TokenLiteral() string  { return n.Token.Lexeme }
func (n *Number) Accept(v Visitor)      { v.VisitNumber(n) }

// String is a string literal leaf.
type String struct {
	Token token.Token
	Value string
}

func (s *String) expressionNode()       {}
func (s *String) GetToken() token.Token { return s.Token }
func (s *String) TokenLiteral() string  { return s.Token.Lexeme }
func (s *String) Accept(v Visitor)      { v.VisitString(s) }

// Boolean is a `true`/`false` literal leaf.
type Boolean struct {
	Token token.Token
	Value bool
}

func (b *Boolean) expressionNode()       {}
func (b *Boolean) GetToken() token.Token { return b.Token }
func (b *Boolean) TokenLiteral() string  { return b.Token.Lexeme }
func (b *Boolean) Accept(v Visitor)      { v.VisitBoolean(b) }

// Identifier is a name reference leaf.
type Identifier struct {
	Token token.Token
	Name  string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) Accept(v Visitor)      { v.VisitIdentifier(i) }
