package value

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToString(t *testing.T) {
	tests := []struct {
		val    Value
		expect autogold.Value
	}{
		{val: Number(17), expect: autogold.Expect("17")},
		{val: Number(0.5), expect: autogold.Expect("0.5")},
		{val: Number(-2.25), expect: autogold.Expect("-2.25")},
		{val: Number(1e21), expect: autogold.Expect("1000000000000000000000")},
		{val: Number(math.Inf(-1)), expect: autogold.Expect("-inf")},
		{val: String("key"), expect: autogold.Expect("key")},
		{val: True, expect: autogold.Expect("true")},
		{val: False, expect: autogold.Expect("false")},
		{val: Null{}, expect: autogold.Expect("null")},
		{val: PropagatedNull{}, expect: autogold.Expect("null")},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			s, err := ToString(test.val)
			require.NoError(t, err)
			test.expect.Equal(t, s)
		})
	}
}

func TestToStringFails(t *testing.T) {
	for _, v := range []Value{NewArray(), NewObject(nil)} {
		_, err := ToString(v)
		e := (*ErrNotStringConvertible)(nil)
		require.True(t, errors.As(err, &e))
		assert.Equal(t, v.Kind(), e.Kind)
	}
}

func TestToInt(t *testing.T) {
	i, err := ToInt(Number(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), i)

	for _, v := range []Value{Number(1.5), Number(math.NaN()), String("1"), Null{}} {
		_, err := ToInt(v)
		e := (*ErrNotIntConvertible)(nil)
		assert.True(t, errors.As(err, &e), "%#v", v)
	}
}

func TestSimplify(t *testing.T) {
	assert.Equal(t, Null{}, Simplify(PropagatedNull{}))
	assert.Equal(t, Null{}, Simplify(Null{}))
	assert.Equal(t, Number(1), Simplify(Number(1)))

	assert.Equal(t, PropagatedNull{}, OrPropagatedNull(Null{}))
	assert.Equal(t, PropagatedNull{}, OrPropagatedNull(PropagatedNull{}))
	assert.Equal(t, String("x"), OrPropagatedNull(String("x")))
}

func TestNullKinds(t *testing.T) {
	assert.Equal(t, NullKind, Null{}.Kind())
	assert.Equal(t, NullKind, PropagatedNull{}.Kind())
	assert.True(t, IsNull(PropagatedNull{}))
	assert.False(t, IsPropagatedNull(Null{}))
}

func TestGetProperty(t *testing.T) {
	obj := NewObject(map[string]Value{
		"key":  String("value"),
		"1":    Number(1),
		"none": Null{},
	})
	arr := NewArray(String("key"), String("key2"), Null{})

	v, err := GetProperty(obj, String("key"), false)
	require.NoError(t, err)
	assert.Equal(t, String("value"), v)

	v, err = GetProperty(obj, Number(1), false)
	require.NoError(t, err)
	assert.Equal(t, Number(1), v)

	v, err = GetProperty(arr, Number(1), false)
	require.NoError(t, err)
	assert.Equal(t, String("key2"), v)

	v, err = GetProperty(obj, String("none"), false)
	require.NoError(t, err)
	assert.Equal(t, Null{}, v)

	v, err = GetProperty(obj, String("none"), true)
	require.NoError(t, err)
	assert.Equal(t, PropagatedNull{}, v)

	v, err = GetProperty(arr, Number(2), true)
	require.NoError(t, err)
	assert.Equal(t, PropagatedNull{}, v)
}

func TestGetPropertyMissing(t *testing.T) {
	obj := NewObject(map[string]Value{"key": String("value")})
	arr := NewArray(String("key"))

	_, err := GetProperty(obj, String("missing"), false)
	e := (*ErrPropertyNotFound)(nil)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ObjectKind, e.Kind)
	assert.Equal(t, "missing", e.Key)

	_, err = GetProperty(arr, Number(4), false)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, ArrayKind, e.Kind)

	_, err = GetProperty(arr, Number(-1), false)
	require.True(t, errors.As(err, &e))

	_, err = GetProperty(Null{}, String("key"), false)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, NullKind, e.Kind)

	for _, base := range []Value{obj, arr, Null{}, Number(1)} {
		v, err := GetProperty(base, Number(9), true)
		require.NoError(t, err)
		assert.Equal(t, PropagatedNull{}, v)
	}
}

func TestGetPropertyBadKey(t *testing.T) {
	_, err := GetProperty(NewArray(Number(1)), String("0"), true)
	e := (*ErrNotIntConvertible)(nil)
	require.True(t, errors.As(err, &e))
	assert.Equal(t, StringKind, e.Kind)

	_, err = GetProperty(NewObject(nil), NewArray(), true)
	se := (*ErrNotStringConvertible)(nil)
	require.True(t, errors.As(err, &se))
}

func TestGetPropertySticky(t *testing.T) {
	for _, propagate := range []bool{true, false} {
		v, err := GetProperty(PropagatedNull{}, NewArray(), propagate)
		require.NoError(t, err)
		assert.Equal(t, PropagatedNull{}, v)
	}
}

func TestObjectKeysSorted(t *testing.T) {
	obj := NewObject(map[string]Value{
		"b": Number(2),
		"a": Number(1),
		"c": Number(3),
	})
	autogold.Expect([]string{"a", "b", "c"}).Equal(t, obj.Keys())
	assert.Equal(t, 3, obj.Len())
}
