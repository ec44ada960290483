package value

type Array []Value

func NewArray(items ...Value) Array {
	return append(Array{}, items...)
}

func (a Array) Index(idx int64) (Value, bool) {
	if idx < 0 || idx >= int64(len(a)) {
		return nil, false
	}
	return a[idx], true
}

func (a Array) ToValues() []Value {
	return a
}

func (a Array) Kind() Kind {
	return ArrayKind
}

// NativeValue drops items without a JSON form, so the indexes of later items
// shift down.
func (a Array) NativeValue() (any, bool, error) {
	result := make([]any, 0, len(a))
	for _, v := range a {
		nv, ok, err := v.NativeValue()
		if err != nil {
			return nil, false, err
		} else if !ok {
			continue
		}
		result = append(result, nv)
	}
	return result, true, nil
}

func (a Array) Len() int {
	return len(a)
}
