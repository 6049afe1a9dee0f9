package scanner

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	sink := diagnostics.NewSink(&bytes.Buffer{})
	tokens := New("(){},.-+;*!= == <= >= < >", sink).Scan()

	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.EOF,
	}, kinds(tokens))
	assert.False(t, sink.HadError)
}

func TestScanNumberLiteral(t *testing.T) {
	sink := diagnostics.NewSink(&bytes.Buffer{})
	tokens := New("123 45.67 8.", sink).Scan()

	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 45.67, tokens[1].Literal)
	// "8." has no digit after the dot, so the dot is not consumed as part
	// of the number: NUMBER(8), DOT, EOF.
	assert.Equal(t, 8.0, tokens[2].Literal)
	assert.Equal(t, token.DOT, tokens[3].Kind)
}

func TestScanStringLiteral(t *testing.T) {
	sink := diagnostics.NewSink(&bytes.Buffer{})
	tokens := New(`"hello world"`, sink).Scan()

	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanUnterminatedStringReportsErrorAndEmitsNoToken(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf)
	tokens := New(`"abc`, sink).Scan()

	assert.True(t, sink.HadError)
	assert.Equal(t, "[line 1] Error: Unterminated string.\n", buf.String())
	assert.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	sink := diagnostics.NewSink(&bytes.Buffer{})
	tokens := New("var x = foo and bar", sink).Scan()

	assert.Equal(t, []token.Kind{
		token.VAR, token.IDENTIFIER, token.EQUAL, token.IDENTIFIER,
		token.AND, token.IDENTIFIER, token.EOF,
	}, kinds(tokens))
}

func TestScanSkipsCommentsAndTracksLines(t *testing.T) {
	sink := diagnostics.NewSink(&bytes.Buffer{})
	tokens := New("1 // a comment\n2", sink).Scan()

	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanUnexpectedCharacterReportsAndContinues(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewSink(&buf)
	tokens := New("1 @ 2", sink).Scan()

	assert.True(t, sink.HadError)
	assert.Equal(t, "[line 1] Error: Unexpected character.\n", buf.String())
	assert.Equal(t, []token.Kind{token.NUMBER, token.NUMBER, token.EOF}, kinds(tokens))
}

func TestScanAlwaysTerminatesWithSingleEOF(t *testing.T) {
	sink := diagnostics.NewSink(&bytes.Buffer{})
	tokens := New("", sink).Scan()
	assert.Equal(t, []token.Kind{token.EOF}, kinds(tokens))
}
