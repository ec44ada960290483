package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidIdent(t *testing.T) {
	for _, ident := range []string{"x", "_x", "foo_bar2", "Null"} {
		assert.True(t, IsValidIdent(ident), ident)
	}
	for _, ident := range []string{"", "2x", "let", "/add", "a-b", "a.b"} {
		assert.False(t, IsValidIdent(ident), ident)
	}
}

func TestOpFuncName(t *testing.T) {
	assert.Equal(t, "/add", OpAdd.FuncName())
	assert.Equal(t, "/pipe", OpPipe.FuncName())
	assert.Equal(t, "<=", OpLe.String())
}
