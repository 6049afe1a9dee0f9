package environment

import (
	"testing"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) token.Token {
	return token.New(token.IDENTIFIER, name, 1)
}

func TestDefineThenGetReturnsValue(t *testing.T) {
	env := New(nil)
	env.Define("x", 1.0)

	v, err := env.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestGetSearchesEnclosingScope(t *testing.T) {
	globals := New(nil)
	globals.Define("x", 1.0)
	child := New(globals)

	v, err := child.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestInnerDefineShadowsOuter(t *testing.T) {
	globals := New(nil)
	globals.Define("x", 1.0)
	child := New(globals)
	child.Define("x", 2.0)

	v, err := child.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	outer, err := globals.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, outer)
}

func TestAssignMutatesNearestEnclosingBinding(t *testing.T) {
	globals := New(nil)
	globals.Define("x", 1.0)
	child := New(globals)

	require.NoError(t, child.Assign(ident("x"), 2.0))

	v, err := globals.Get(ident("x"))
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

func TestAssignNeverCreatesNewBinding(t *testing.T) {
	env := New(nil)
	err := env.Assign(ident("missing"), 1.0)
	require.Error(t, err)

	_, isRuntimeErr := err.(*diagnostics.RuntimeError)
	assert.True(t, isRuntimeErr)

	_, getErr := env.Get(ident("missing"))
	assert.Error(t, getErr)
}

func TestGetUndefinedVariableReportsRuntimeError(t *testing.T) {
	env := New(nil)
	_, err := env.Get(ident("missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'missing'.")
}
