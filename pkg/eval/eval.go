// Package eval evaluates syntax trees against a Scope.
package eval

import (
	"fmt"

	"github.com/acorn-io/jjay/pkg/ast"
	"github.com/acorn-io/jjay/pkg/value"
)

// Evaluate evaluates node in scope. The returned scope is scope extended by
// any bindings node introduces; only statements and scripts introduce
// bindings, every expression returns scope unchanged.
func Evaluate(node ast.Node, scope *Scope) (*Scope, value.Value, error) {
	switch n := node.(type) {
	case *ast.Script:
		return evalScript(n.Stmts, n.Expr, scope)
	case *ast.Block:
		_, v, err := evalScript(n.Stmts, n.Expr, scope.Inherit())
		if err != nil {
			return nil, nil, err
		}
		return scope, value.Simplify(v), nil
	case *ast.Let:
		return evalLet(n, scope)
	case ast.Expr:
		v, err := evalExpr(n, scope)
		if err != nil {
			return nil, nil, err
		}
		return scope, v, nil
	}
	return nil, nil, fmt.Errorf("cannot evaluate node of type %T", node)
}

// EvaluateValue is Evaluate without the resulting scope.
func EvaluateValue(node ast.Node, scope *Scope) (value.Value, error) {
	_, v, err := Evaluate(node, scope)
	return v, err
}

func evalScript(stmts []ast.Stmt, expr ast.Expr, scope *Scope) (*Scope, value.Value, error) {
	var err error
	for _, stmt := range stmts {
		scope, _, err = Evaluate(stmt, scope)
		if err != nil {
			return nil, nil, err
		}
	}
	v, err := EvaluateValue(expr, scope)
	if err != nil {
		return nil, nil, err
	}
	return scope, v, nil
}

func evalLet(let *ast.Let, scope *Scope) (*Scope, value.Value, error) {
	var v value.Value
	if len(let.Params) == 0 {
		var err error
		v, err = EvaluateValue(let.Value, scope)
		if err != nil {
			return nil, nil, err
		}
	} else {
		params := make([]*ast.Ident, 0, len(let.Params))
		for _, param := range let.Params {
			params = append(params, param.Name)
		}
		v = curry(scope, params, let.Value)
	}

	scope, err := scope.Set(let.Name.Name, v)
	if err != nil {
		return nil, nil, err
	}
	return scope, value.Null{}, nil
}
