package eval

import (
	"errors"
	"testing"

	"github.com/acorn-io/jjay/pkg/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeSet(t *testing.T) {
	scope, err := NewEmptyScope().Set("x", value.Number(1))
	require.NoError(t, err)

	_, err = scope.Set("x", value.Number(2))
	var exists *ErrVariableAlreadyExists
	require.True(t, errors.As(err, &exists))
	assert.Equal(t, "x", exists.Name)

	child, err := scope.Inherit().Set("x", value.Number(2))
	require.NoError(t, err)

	v, err := child.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(2), v)

	v, err = scope.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestScopeSetCopies(t *testing.T) {
	base, err := NewEmptyScope().Set("a", value.Number(1))
	require.NoError(t, err)

	next, err := base.Set("b", value.Number(2))
	require.NoError(t, err)

	_, ok := base.Lookup("b")
	assert.False(t, ok)
	_, ok = next.Lookup("a")
	assert.True(t, ok)
}

func TestScopeSetSimplifies(t *testing.T) {
	scope, err := NewEmptyScope().Set("x", value.PropagatedNull{})
	require.NoError(t, err)

	v, err := scope.Get("x")
	require.NoError(t, err)
	assert.Equal(t, value.Null{}, v)
}

func TestScopeGetMissing(t *testing.T) {
	_, err := NewDefaultScope().Get("nope")
	var notFound *ErrVariableNotFound
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "variable not found: nope", err.Error())
}

func TestScopeExtend(t *testing.T) {
	parent, err := NewEmptyScope().Set("p", value.True)
	require.NoError(t, err)

	left := parent.Inherit().with("a", value.Number(1)).with("b", value.Number(1))
	right := NewEmptyScope().with("b", value.Number(2)).with("c", value.Number(2))

	merged := left.Extend(right)
	assert.Same(t, parent, merged.Parent())
	assert.Equal(t, map[string]value.Value{
		"a": value.Number(1),
		"b": value.Number(2),
		"c": value.Number(2),
	}, merged.Values())

	// Extend never touches either input.
	assert.Equal(t, value.Number(1), left.Values()["b"])
	assert.Len(t, right.Values(), 2)
}

func TestScopeValuesRecurse(t *testing.T) {
	root := NewEmptyScope().with("x", value.Number(1)).with("y", value.Number(1))
	child := root.Inherit().with("x", value.Number(2))

	assert.Equal(t, map[string]value.Value{
		"x": value.Number(2),
	}, child.Values())
	assert.Equal(t, map[string]value.Value{
		"x": value.Number(2),
		"y": value.Number(1),
	}, child.ValuesRecurse())
}

func TestDefaultScope(t *testing.T) {
	scope := NewDefaultScope()
	assert.Same(t, Builtin, scope.Parent())
	assert.Empty(t, scope.Values())

	for _, name := range []string{"true", "false", "null", "scope", "local_scope",
		"/pipe", "/add", "/sub", "/mul", "/div", "/eq", "/ne", "/ge", "/le", "/gt", "/lt"} {
		_, ok := scope.Lookup(name)
		assert.True(t, ok, name)
	}

	// Builtin names can be rebound at the top level.
	_, err := scope.Set("true", value.False)
	assert.NoError(t, err)
}
