package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flux-lang/fluxc/internal/lexer"
	"github.com/flux-lang/fluxc/internal/token"
)

func collect(src string) []token.Token {
	l := lexer.New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func types(toks []token.Token) []token.TokenType {
	out := make([]token.TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

// Testable property 1: pragma scoping. Tokens emitted before the pragma
// are unchanged; only subsequent brace/newline handling is affected.
func TestPragmaScopingOnlyAffectsSubsequentTokens(t *testing.T) {
	src := "let a = 1\n#pragma indent\nlet b = 2\nlet c = 3"
	toks := collect(src)

	require.GreaterOrEqual(t, len(toks), 4)
	assert.Equal(t, token.LET, toks[0].Type)
	assert.Equal(t, token.IDENT, toks[1].Type)

	var sawNewline bool
	for _, tt := range types(toks) {
		if tt == token.NEWLINE {
			sawNewline = true
		}
	}
	assert.True(t, sawNewline, "newline after pragma should surface as NEWLINE in indent mode")
}

func TestBraceModeSwallowsNewlinesAndEmitsBraces(t *testing.T) {
	toks := collect("{ let a = 1 }")
	tt := types(toks)
	assert.Contains(t, tt, token.LBRACE)
	assert.Contains(t, tt, token.RBRACE)
	assert.NotContains(t, tt, token.NEWLINE)
}

func TestIndentModeEmitsNewlinesAndDropsBraces(t *testing.T) {
	toks := collect("#pragma indent\n{ let a = 1 }\nlet b = 2")
	tt := types(toks)
	assert.NotContains(t, tt, token.LBRACE)
	assert.NotContains(t, tt, token.RBRACE)
	assert.Contains(t, tt, token.NEWLINE)
}

func TestPragmaEmitsPragmaToken(t *testing.T) {
	toks := collect("#pragma indent\nlet a = 1")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.PRAGMA, toks[0].Type)
	assert.Equal(t, "indent", toks[0].Lexeme)
}

func TestHashNotPragmaIsComment(t *testing.T) {
	toks := collect("# just a comment\nlet a = 1")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.LET, toks[0].Type)
}

func TestLeadingDotNumber(t *testing.T) {
	toks := collect(".5")
	require.NotEmpty(t, toks)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, 0.5, toks[0].Literal)
}

func TestStringEscapes(t *testing.T) {
	toks := collect(`"a\nb\t\\\"c"`)
	require.NotEmpty(t, toks)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "a\nb\t\\\"c", toks[0].Literal)
}

func TestKeywordsAndKeywordFallback(t *testing.T) {
	toks := collect("let const func temporal freeze thaw timeline this super new true false notakeyword")
	tt := types(toks)
	expected := []token.TokenType{
		token.LET, token.CONST, token.FUNC, token.TEMPORAL, token.FREEZE,
		token.THAW, token.TIMELINE, token.THIS, token.SUPER, token.NEW,
		token.TRUE, token.FALSE, token.IDENT, token.EOF,
	}
	assert.Equal(t, expected, tt)
}
