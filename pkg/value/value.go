package value

const (
	ObjectKind = Kind("Object")
	ArrayKind  = Kind("Array")
	NumberKind = Kind("Number")
	StringKind = Kind("String")
	BoolKind   = Kind("Boolean")
	NullKind   = Kind("Null")
	FuncKind   = Kind("Function")
)

type Kind string

func (k Kind) String() string {
	return string(k)
}

// Value is a runtime value. NativeValue projects the value onto the JSON data
// model (map[string]any, []any, float64, string, bool, nil). A false second
// result means the value has no JSON form and must be elided by its container.
type Value interface {
	Kind() Kind
	NativeValue() (any, bool, error)
}
