package value

type String string

func (s String) Kind() Kind {
	return StringKind
}

func (s String) NativeValue() (any, bool, error) {
	return (string)(s), true, nil
}
