package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "PLUS", PLUS.String())
	assert.Equal(t, "EOF", EOF.String())
}

func TestKeywordsLookupDistinguishesIdentifiers(t *testing.T) {
	kind, ok := Keywords["while"]
	assert.True(t, ok)
	assert.Equal(t, WHILE, kind)

	_, ok = Keywords["myVar"]
	assert.False(t, ok)
}

func TestNewLiteralCarriesPayload(t *testing.T) {
	tok := NewLiteral(NUMBER, "3.5", 3.5, 7)
	assert.Equal(t, 3.5, tok.Literal)
	assert.Equal(t, 7, tok.Line)

	tok2 := New(PLUS, "+", 1)
	assert.Nil(t, tok2.Literal)
}
