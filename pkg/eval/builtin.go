package eval

import (
	"fmt"

	"github.com/acorn-io/jjay/pkg/ast"
	"github.com/acorn-io/jjay/pkg/value"
)

// Builtin holds the literals, introspection functions and operator
// implementations every script starts with. Operators are bound under
// ast.Op.FuncName() and may be shadowed like any other name.
var Builtin *Scope

func init() {
	scope := NewEmptyScope().
		with("true", value.True).
		with("false", value.False).
		with("null", value.Null{}).
		with("scope", NewNative("scope", func(callScope *Scope, _ value.Value) (value.Value, error) {
			return value.NewObject(callScope.ValuesRecurse()), nil
		})).
		with("local_scope", NewNative("local_scope", func(callScope *Scope, _ value.Value) (value.Value, error) {
			return value.NewObject(callScope.Values()), nil
		})).
		with(ast.OpPipe.FuncName(), NewNative2(ast.OpPipe.FuncName(), pipe))

	for _, op := range []struct {
		op   ast.Op
		verb string
		f    func(x, y float64) float64
	}{
		{ast.OpAdd, "add", func(x, y float64) float64 { return x + y }},
		{ast.OpSub, "subtract", func(x, y float64) float64 { return x - y }},
		{ast.OpMul, "multiply", func(x, y float64) float64 { return x * y }},
		{ast.OpDiv, "divide", func(x, y float64) float64 { return x / y }},
	} {
		scope = scope.with(op.op.FuncName(), NewNative2(op.op.FuncName(), arithmetic(op.verb, op.f)))
	}

	for _, op := range []ast.Op{ast.OpEq, ast.OpNe, ast.OpGe, ast.OpLe, ast.OpGt, ast.OpLt} {
		scope = scope.with(op.FuncName(), NewNative2(op.FuncName(), compare))
	}

	Builtin = scope
}

func pipe(callScope *Scope, lhs, rhs value.Value) (value.Value, error) {
	return Invoke(callScope, rhs, lhs)
}

func arithmetic(verb string, f func(x, y float64) float64) func(*Scope, value.Value, value.Value) (value.Value, error) {
	return func(_ *Scope, lhs, rhs value.Value) (value.Value, error) {
		x, xok := lhs.(value.Number)
		y, yok := rhs.(value.Number)
		if !xok || !yok {
			return nil, &ErrOperator{
				Msg: fmt.Sprintf("cannot %s values of types: %s, %s", verb, lhs.Kind(), rhs.Kind()),
			}
		}
		return value.Number(f(float64(x), float64(y))), nil
	}
}

// compare backs every comparison operator. Comparisons have no defined
// ordering or equality yet and always fail.
func compare(_ *Scope, lhs, rhs value.Value) (value.Value, error) {
	return nil, &ErrOperator{
		Msg: fmt.Sprintf("comparison not implemented for types: %s, %s", lhs.Kind(), rhs.Kind()),
	}
}
