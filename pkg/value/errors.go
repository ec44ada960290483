package value

import "fmt"

type ErrNotCallable struct {
	Kind Kind
}

func (e *ErrNotCallable) Error() string {
	return fmt.Sprintf("value of type %s is not callable", e.Kind)
}

type ErrNotStringConvertible struct {
	Kind Kind
}

func (e *ErrNotStringConvertible) Error() string {
	return fmt.Sprintf("value of type %s cannot be converted to a string", e.Kind)
}

type ErrNotIntConvertible struct {
	Kind Kind
}

func (e *ErrNotIntConvertible) Error() string {
	return fmt.Sprintf("value of type %s cannot be converted to an integer", e.Kind)
}

type ErrPropertyNotFound struct {
	Kind Kind
	Key  string
}

func (e *ErrPropertyNotFound) Error() string {
	return fmt.Sprintf("property \"%s\" not found on value of type %s", Escape(e.Key), e.Kind)
}
