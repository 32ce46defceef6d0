// Package diagnostics defines the compiler's diagnostic kinds, all
// surfaced as strings.
package diagnostics

import (
	"fmt"

	"github.com/flux-lang/fluxc/internal/token"
)

// Phase names the pipeline stage that raised a diagnostic.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseAnalyzer Phase = "analyzer"
)

// ErrorCode is a stable, documentable error identifier.
type ErrorCode string

const (
	// Lexer: advisory, non-fatal.
	ErrL001 ErrorCode = "L001" // invalid character

	// Parser: fatal, first-error-stops.
	ErrP001 ErrorCode = "P001" // unexpected token

	// Analyzer: collected, all surfaced together.
	ErrA001 ErrorCode = "A001" // redeclaration
	ErrA002 ErrorCode = "A002" // const reassignment
	ErrA003 ErrorCode = "A003" // frozen mutation
	ErrA004 ErrorCode = "A004" // undefined use
	ErrA005 ErrorCode = "A005" // non-temporal index
)

var errorTemplates = map[ErrorCode]string{
	ErrL001: "invalid character: %q",
	ErrP001: "unexpected token: expected %s, but got %q",
	ErrA001: "redeclaration of %q",
	ErrA002: "cannot assign to const binding %q",
	ErrA003: "cannot assign to frozen binding %q",
	ErrA004: "undefined name %q",
	ErrA005: "%q is not temporal",
}

// DiagnosticError is the single error shape returned by every stage.
type DiagnosticError struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Token token.Token
}

func (e *DiagnosticError) Error() string {
	template, ok := errorTemplates[e.Code]
	if !ok {
		template = string(e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)

	phaseStr := ""
	if e.Phase != "" {
		phaseStr = fmt.Sprintf("[%s] ", e.Phase)
	}
	if e.Token.Line > 0 {
		return fmt.Sprintf("%serror at %d:%d [%s]: %s", phaseStr, e.Token.Line, e.Token.Column, e.Code, message)
	}
	return fmt.Sprintf("%serror [%s]: %s", phaseStr, e.Code, message)
}

// New creates a phase-tagged diagnostic.
func New(phase Phase, code ErrorCode, tok token.Token, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{Code: code, Phase: phase, Token: tok, Args: args}
}
