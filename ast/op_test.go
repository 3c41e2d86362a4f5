package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryOpSymbols(t *testing.T) {
	t.Parallel()
	ops := BinaryOps()
	require.Len(t, ops, 21)
	for _, op := range ops {
		got, ok := BinaryOpFromSymbol(op.String())
		require.True(t, ok, "symbol %q", op.String())
		assert.Equal(t, op, got)
	}
	_, ok := BinaryOpFromSymbol("**")
	assert.False(t, ok)
}

func TestUnaryOpSymbols(t *testing.T) {
	t.Parallel()
	ops := UnaryOps()
	require.Len(t, ops, 8)
	for _, op := range ops {
		got, ok := UnaryOpFromSymbol(op.String(), !op.Postfix())
		require.True(t, ok, "symbol %q postfix=%v", op.String(), op.Postfix())
		assert.Equal(t, op, got)
	}

	pre, ok := UnaryOpFromSymbol("++", true)
	require.True(t, ok)
	post, ok := UnaryOpFromSymbol("++", false)
	require.True(t, ok)
	assert.NotEqual(t, pre, post)

	_, ok = UnaryOpFromSymbol("*", true)
	assert.False(t, ok)
}

func TestAssignOpSymbols(t *testing.T) {
	t.Parallel()
	ops := AssignOps()
	require.Len(t, ops, 11)
	for _, op := range ops {
		got, ok := AssignOpFromSymbol(op.String())
		require.True(t, ok, "symbol %q", op.String())
		assert.Equal(t, op, got)
	}
	_, ok := AssignOpFromSymbol("==")
	assert.False(t, ok)
}
