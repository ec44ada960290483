package value

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Object maps unique string keys to values. Keys are kept sorted so that
// enumeration and serialization are deterministic.
type Object struct {
	entries *treemap.Map
}

type Entry struct {
	Key   string
	Value Value
}

func NewObject(data map[string]Value) *Object {
	o := &Object{
		entries: treemap.NewWithStringComparator(),
	}
	for k, v := range data {
		o.entries.Put(k, v)
	}
	return o
}

func NewObjectFromEntries(entries ...Entry) *Object {
	o := &Object{
		entries: treemap.NewWithStringComparator(),
	}
	for _, entry := range entries {
		o.entries.Put(entry.Key, entry.Value)
	}
	return o
}

func (n *Object) LookupValue(key string) (Value, bool) {
	if n.entries == nil {
		return nil, false
	}
	v, ok := n.entries.Get(key)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

func (n *Object) Len() int {
	if n.entries == nil {
		return 0
	}
	return n.entries.Size()
}

func (n *Object) Keys() []string {
	result := make([]string, 0, n.Len())
	for _, entry := range n.Entries() {
		result = append(result, entry.Key)
	}
	return result
}

// Entries returns the entries in ascending key order.
func (n *Object) Entries() []Entry {
	if n.entries == nil {
		return nil
	}
	result := make([]Entry, 0, n.entries.Size())
	it := n.entries.Iterator()
	for it.Next() {
		result = append(result, Entry{
			Key:   it.Key().(string),
			Value: it.Value().(Value),
		})
	}
	return result
}

func (n *Object) Kind() Kind {
	return ObjectKind
}

// NativeValue drops entries without a JSON form, functions in particular.
func (n *Object) NativeValue() (any, bool, error) {
	result := map[string]any{}
	for _, entry := range n.Entries() {
		nv, ok, err := entry.Value.NativeValue()
		if err != nil {
			return nil, false, err
		} else if !ok {
			continue
		}
		result[entry.Key] = nv
	}
	return result, true, nil
}
