package value

// Null is the explicit null value.
type Null struct{}

func (n Null) Kind() Kind {
	return NullKind
}

func (n Null) NativeValue() (any, bool, error) {
	return nil, true, nil
}

// PropagatedNull is the provisional null produced by a failed optional access.
// It reports the same kind as Null and serializes the same way; only the
// propagation helpers in this package tell the two apart.
type PropagatedNull struct{}

func (n PropagatedNull) Kind() Kind {
	return NullKind
}

func (n PropagatedNull) NativeValue() (any, bool, error) {
	return nil, true, nil
}

func IsNull(v Value) bool {
	switch v.(type) {
	case Null, PropagatedNull:
		return true
	}
	return false
}

func IsPropagatedNull(v Value) bool {
	_, ok := v.(PropagatedNull)
	return ok
}

// Simplify collapses PropagatedNull to Null. It is applied wherever a value
// crosses a block boundary or is stored in a scope.
func Simplify(v Value) Value {
	if IsNull(v) {
		return Null{}
	}
	return v
}

// OrPropagatedNull turns any null into PropagatedNull and leaves every other
// value untouched.
func OrPropagatedNull(v Value) Value {
	if IsNull(v) {
		return PropagatedNull{}
	}
	return v
}
