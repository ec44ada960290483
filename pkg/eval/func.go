package eval

import (
	"github.com/acorn-io/jjay/pkg/ast"
	"github.com/acorn-io/jjay/pkg/value"
)

// Function is a callable Value. Every function takes exactly one argument;
// functions of several parameters are curried.
type Function interface {
	value.Value

	// Invoke calls the function. callScope is the scope of the call site. It
	// is only visible to native functions.
	Invoke(callScope *Scope, arg value.Value) (value.Value, error)

	// splice returns a copy of the function that also sees the local
	// bindings of extra.
	splice(extra *Scope) Function
}

type function struct{}

func (function) Kind() value.Kind {
	return value.FuncKind
}

func (function) NativeValue() (any, bool, error) {
	return nil, false, nil
}

// Code is a function with a body. The parameter, when declared, is bound in a
// child of the scope the function was defined in.
type Code struct {
	function
	Scope *Scope
	Param *ast.Ident
	Body  ast.Expr
}

// Nested is one parameter of a curried function that has not been applied
// yet.
type Nested struct {
	function
	Scope *Scope
	Param *ast.Ident
	Inner Function
}

// Bound is a partially applied Nested function. Extra holds every argument
// applied so far.
type Bound struct {
	function
	Extra *Scope
	Inner Function
}

type NativeFunc func(callScope *Scope, arg value.Value) (value.Value, error)

type Native struct {
	function
	Name string
	Func NativeFunc
}

func NewCode(scope *Scope, param *ast.Ident, body ast.Expr) *Code {
	return &Code{
		Scope: scope.Inherit(),
		Param: param,
		Body:  body,
	}
}

func NewNested(scope *Scope, param *ast.Ident, inner Function) *Nested {
	return &Nested{
		Scope: scope.Inherit(),
		Param: param,
		Inner: inner,
	}
}

func NewNative(name string, f NativeFunc) *Native {
	return &Native{
		Name: name,
		Func: f,
	}
}

// NewNative2 returns a curried native of two arguments. Only the call scope of
// the final application is passed to f.
func NewNative2(name string, f func(callScope *Scope, a, b value.Value) (value.Value, error)) *Native {
	return NewNative(name, func(_ *Scope, a value.Value) (value.Value, error) {
		return NewNative(name, func(callScope *Scope, b value.Value) (value.Value, error) {
			return f(callScope, a, b)
		}), nil
	})
}

func NewNative3(name string, f func(callScope *Scope, a, b, c value.Value) (value.Value, error)) *Native {
	return NewNative(name, func(_ *Scope, a value.Value) (value.Value, error) {
		return NewNative2(name, func(callScope *Scope, b, c value.Value) (value.Value, error) {
			return f(callScope, a, b, c)
		}), nil
	})
}

func (c *Code) Invoke(_ *Scope, arg value.Value) (value.Value, error) {
	scope := c.Scope
	if c.Param != nil {
		scope = scope.Inherit().with(c.Param.Name, arg)
	}
	return EvaluateValue(c.Body, scope)
}

func (c *Code) splice(extra *Scope) Function {
	return &Code{
		Scope: c.Scope.Extend(extra),
		Param: c.Param,
		Body:  c.Body,
	}
}

func (n *Nested) Invoke(_ *Scope, arg value.Value) (value.Value, error) {
	extra := NewEmptyScope().Extend(n.Scope)
	if n.Param != nil {
		extra = extra.with(n.Param.Name, arg)
	}
	return &Bound{
		Extra: extra,
		Inner: n.Inner,
	}, nil
}

func (n *Nested) splice(extra *Scope) Function {
	return &Nested{
		Scope: n.Scope.Extend(extra),
		Param: n.Param,
		Inner: n.Inner,
	}
}

func (b *Bound) Invoke(callScope *Scope, arg value.Value) (value.Value, error) {
	return b.Inner.splice(b.Extra).Invoke(callScope, arg)
}

func (b *Bound) splice(extra *Scope) Function {
	return &Bound{
		Extra: extra.Extend(b.Extra),
		Inner: b.Inner,
	}
}

func (n *Native) Invoke(callScope *Scope, arg value.Value) (value.Value, error) {
	return n.Func(callScope, arg)
}

func (n *Native) splice(*Scope) Function {
	return n
}

func (n *Native) String() string {
	return "native " + n.Name
}

// Invoke calls callee with arg. Calling a propagated null yields a propagated
// null.
func Invoke(callScope *Scope, callee, arg value.Value) (value.Value, error) {
	switch f := callee.(type) {
	case value.PropagatedNull:
		return f, nil
	case Function:
		return f.Invoke(callScope, arg)
	}
	return nil, &value.ErrNotCallable{
		Kind: callee.Kind(),
	}
}

// curry builds the function for a parameter list. The last parameter becomes
// the Code holding body and each earlier parameter wraps it in a Nested.
func curry(scope *Scope, params []*ast.Ident, body ast.Expr) Function {
	last := len(params) - 1
	var f Function = NewCode(scope, params[last], body)
	for i := last - 1; i >= 0; i-- {
		f = NewNested(scope, params[i], f)
	}
	return f
}
