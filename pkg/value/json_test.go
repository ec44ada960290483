package value

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type opaque struct{}

func (opaque) Kind() Kind {
	return FuncKind
}

func (opaque) NativeValue() (any, bool, error) {
	return nil, false, nil
}

func toJSONString(t *testing.T, v Value, pretty bool) string {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, WriteJSON(buf, v, pretty))
	return buf.String()
}

func TestWriteJSON(t *testing.T) {
	v := NewObject(map[string]Value{
		"b":    NewArray(Number(1), String("<x>"), True),
		"a":    Null{},
		"prop": PropagatedNull{},
	})

	autogold.Expect(`{"a":null,"b":[1,"<x>",true],"prop":null}
`).Equal(t, toJSONString(t, v, false))

	autogold.Expect(`{
  "a": null,
  "b": [
    1,
    "<x>",
    true
  ],
  "prop": null
}
`).Equal(t, toJSONString(t, v, true))
}

func TestFunctionsElided(t *testing.T) {
	v := NewObject(map[string]Value{
		"f":    opaque{},
		"list": NewArray(Number(1), opaque{}, Number(2)),
	})
	autogold.Expect(`{"list":[1,2]}
`).Equal(t, toJSONString(t, v, false))

	nv, err := ToJSON(opaque{})
	require.NoError(t, err)
	assert.Nil(t, nv)
}

func TestNonFiniteNumbers(t *testing.T) {
	v := NewArray(Number(math.NaN()), Number(math.Inf(1)), Number(0.25))
	autogold.Expect(`[null,null,0.25]
`).Equal(t, toJSONString(t, v, false))
}

func TestNewValueRoundTrip(t *testing.T) {
	input := `{"a":[1,2.5,"x",{"b":null}],"c":true,"d":{}}`

	var native any
	require.NoError(t, json.Unmarshal([]byte(input), &native))

	v, err := NewValue(native)
	require.NoError(t, err)

	out, err := ToJSON(v)
	require.NoError(t, err)
	assert.Equal(t, native, out)

	assert.Equal(t, input+"\n", toJSONString(t, v, false))
}

func TestNewValueNative(t *testing.T) {
	v, err := NewValue(map[string]int{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, ObjectKind, v.Kind())

	v, err = NewValue([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, NewArray(String("a")), v)

	v, err = NewValue(json.Number("3"))
	require.NoError(t, err)
	assert.Equal(t, Number(3), v)

	v, err = NewValue(map[any]any{1: "one"})
	require.NoError(t, err)
	got, ok := v.(*Object).LookupValue("1")
	require.True(t, ok)
	assert.Equal(t, String("one"), got)

	_, err = NewValue(make(chan int))
	assert.Error(t, err)
}

func TestUnquote(t *testing.T) {
	s, err := Unquote(`a\nbA\"`)
	require.NoError(t, err)
	assert.Equal(t, "a\nbA\"", s)

	_, err = Unquote(`\q`)
	assert.Error(t, err)

	f, err := ParseNumber("1.5e2")
	require.NoError(t, err)
	assert.Equal(t, 150.0, f)

	for _, bad := range []string{"01", "1.", ".5", "+1", "1e400"} {
		_, err := ParseNumber(bad)
		assert.Error(t, err, bad)
	}
}
