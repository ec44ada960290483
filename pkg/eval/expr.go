package eval

import (
	"fmt"

	"github.com/acorn-io/jjay/pkg/ast"
	"github.com/acorn-io/jjay/pkg/value"
)

func evalExpr(expr ast.Expr, scope *Scope) (value.Value, error) {
	switch x := expr.(type) {
	case *ast.Block:
		return EvaluateValue(x, scope)
	case *ast.Ident:
		return scope.Get(x.Name)
	case *ast.BinOp:
		return evalBinOp(x, scope)
	case *ast.Call:
		return evalCall(x, scope)
	case *ast.PathAccess:
		return evalPathAccess(x, scope)
	case *ast.NullPropagate:
		v, err := evalExpr(x.X, scope)
		if err != nil {
			return nil, err
		}
		return value.OrPropagatedNull(v), nil
	case *ast.Object:
		return evalObject(x, scope)
	case *ast.Array:
		return evalArray(x, scope)
	case *ast.Lambda:
		return curry(scope, x.Params, x.Body), nil
	case *ast.String:
		s, err := value.Unquote(x.Value)
		if err != nil {
			return nil, &ErrInvalidLiteral{
				Literal: `"` + x.Value + `"`,
				Pos:     x.ValuePos,
				Err:     err,
			}
		}
		return value.String(s), nil
	case *ast.Number:
		n, err := value.ParseNumber(x.Value)
		if err != nil {
			return nil, &ErrInvalidLiteral{
				Literal: x.Value,
				Pos:     x.ValuePos,
				Err:     err,
			}
		}
		return value.Number(n), nil
	}
	return nil, fmt.Errorf("cannot evaluate expression of type %T", expr)
}

func evalBinOp(op *ast.BinOp, scope *Scope) (value.Value, error) {
	left, err := evalExpr(op.Left, scope)
	if err != nil {
		return nil, err
	}

	right, err := evalExpr(op.Right, scope)
	if err != nil {
		return nil, err
	}

	f, err := scope.Get(op.Op.FuncName())
	if err != nil {
		return nil, err
	}

	partial, err := Invoke(scope, f, left)
	if err != nil {
		return nil, err
	}
	return Invoke(scope, partial, right)
}

func evalCall(call *ast.Call, scope *Scope) (value.Value, error) {
	callee, err := evalExpr(call.Func, scope)
	if err != nil {
		return nil, err
	}

	var arg value.Value = value.Null{}
	if call.Arg != nil {
		arg, err = evalExpr(call.Arg, scope)
		if err != nil {
			return nil, err
		}
	}

	return Invoke(scope, callee, arg)
}

func evalPathAccess(path *ast.PathAccess, scope *Scope) (value.Value, error) {
	base, err := evalExpr(path.Base, scope)
	if err != nil {
		return nil, err
	}

	var key value.Value
	if path.Segment.Ident != nil {
		key = value.String(path.Segment.Ident.Name)
	} else {
		key, err = evalExpr(path.Segment.Expr, scope)
		if err != nil {
			return nil, err
		}
	}

	return value.GetProperty(base, key, path.NullPropagation)
}

func evalObject(obj *ast.Object, scope *Scope) (value.Value, error) {
	entries := make([]value.Entry, 0, len(obj.Entries))
	for _, entry := range obj.Entries {
		var key string
		if entry.KeyIdent != nil {
			key = entry.KeyIdent.Name
		} else {
			k, err := evalExpr(entry.KeyString, scope)
			if err != nil {
				return nil, err
			}
			key, err = value.ToString(k)
			if err != nil {
				return nil, err
			}
		}

		v, err := evalExpr(entry.Value, scope)
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.Entry{
			Key:   key,
			Value: v,
		})
	}
	return value.NewObjectFromEntries(entries...), nil
}

func evalArray(arr *ast.Array, scope *Scope) (value.Value, error) {
	items := make([]value.Value, 0, len(arr.Items))
	for _, item := range arr.Items {
		v, err := evalExpr(item, scope)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return value.NewArray(items...), nil
}
