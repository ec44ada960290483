package value

var (
	True  = Boolean(true)
	False = Boolean(false)
)

type Boolean bool

func (n Boolean) Kind() Kind {
	return BoolKind
}

func (n Boolean) NativeValue() (any, bool, error) {
	return (bool)(n), true, nil
}
