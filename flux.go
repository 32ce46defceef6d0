// Package flux is the compiler's public API: compile source text or a
// source file down to textual IR, running the lex/parse/analyze/optimize/
// codegen stages in sequence.
package flux

import (
	"fmt"
	"os"
	"strings"

	"github.com/flux-lang/fluxc/internal/analyzer"
	"github.com/flux-lang/fluxc/internal/codegen"
	"github.com/flux-lang/fluxc/internal/lexer"
	"github.com/flux-lang/fluxc/internal/optimizer"
	"github.com/flux-lang/fluxc/internal/parser"
	"github.com/flux-lang/fluxc/internal/pipeline"
	"github.com/flux-lang/fluxc/internal/prettyprinter"
	"github.com/flux-lang/fluxc/internal/token"
	"github.com/flux-lang/fluxc/internal/utils"
)

// Compiler holds the debug flag. When set, Compile additionally prints
// tokens, an AST dump, a symbol-table dump, and the generated IR to
// standard output; diagnostics are unaffected either way.
type Compiler struct {
	Debug bool
}

func New() *Compiler {
	return &Compiler{}
}

// Compile runs the full five-stage pipeline over source and returns the
// generated IR, or the joined diagnostic messages as an error.
func (c *Compiler) Compile(source string) (string, error) {
	ctx := pipeline.NewPipelineContext(source)

	if c.Debug {
		prettyprinter.DumpTokens(os.Stdout, collectTokens(source))
	}

	p := pipeline.New(
		&lexer.Processor{},
		&parser.Processor{},
		&analyzer.Processor{},
		&optimizer.Processor{},
		&codegen.Processor{},
	)
	ctx = p.Run(ctx)

	if len(ctx.Errors) > 0 {
		return "", diagnosticsError(ctx)
	}

	if c.Debug {
		prettyprinter.DumpAST(os.Stdout, ctx.AstRoot)
		prettyprinter.DumpSymbols(os.Stdout, ctx.SymbolTable)
		prettyprinter.DumpIR(os.Stdout, ctx.IR)
	}

	return ctx.IR, nil
}

// CompileFile reads path and compiles its contents.
func (c *Compiler) CompileFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if c.Debug {
		fmt.Fprintf(os.Stdout, "=== Module: %s ===\n", utils.ExtractModuleName(path))
	}

	return c.Compile(string(data))
}

func diagnosticsError(ctx *pipeline.PipelineContext) error {
	lines := make([]string, len(ctx.Errors))
	for i, e := range ctx.Errors {
		lines[i] = e.Error()
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

// collectTokens runs an independent lexer pass over source for the
// debug token dump; the pipeline's own lexer stage consumes its token
// stream lazily as the parser drains it, so this pass never observes
// that stream's internal lookahead buffer.
func collectTokens(source string) []token.Token {
	l := lexer.New(source)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens
}
