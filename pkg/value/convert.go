package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// NewValue converts native Go data, such as the result of decoding JSON or
// YAML, into a Value. Values pass through unchanged.
func NewValue(v any) (Value, error) {
	switch n := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return n, nil
	case bool:
		return Boolean(n), nil
	case string:
		return String(n), nil
	case float64:
		return Number(n), nil
	case float32:
		return Number(n), nil
	case int:
		return Number(n), nil
	case int8:
		return Number(n), nil
	case int16:
		return Number(n), nil
	case int32:
		return Number(n), nil
	case int64:
		return Number(n), nil
	case uint:
		return Number(n), nil
	case uint8:
		return Number(n), nil
	case uint16:
		return Number(n), nil
	case uint32:
		return Number(n), nil
	case uint64:
		return Number(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s: %w", n, err)
		}
		return Number(f), nil
	case []any:
		return newArray(len(n), func(i int) any { return n[i] })
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		return newObject(keys, func(k string) any { return n[k] })
	case map[any]any:
		data := make(map[string]any, len(n))
		for k, v := range n {
			data[fmt.Sprint(k)] = v
		}
		return NewValue(data)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		return NewValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		return newArray(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		return newObject(keys, func(k string) any {
			return rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface()
		})
	}

	return nil, fmt.Errorf("can not convert %T to a value", v)
}

func newArray(length int, item func(int) any) (Value, error) {
	result := make(Array, 0, length)
	for i := 0; i < length; i++ {
		v, err := NewValue(item(i))
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func newObject(keys []string, item func(string) any) (Value, error) {
	sort.Strings(keys)
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		v, err := NewValue(item(k))
		if err != nil {
			return nil, fmt.Errorf("key %s: %w", k, err)
		}
		entries = append(entries, Entry{
			Key:   k,
			Value: v,
		})
	}
	return NewObjectFromEntries(entries...), nil
}
