package jjay

import (
	"log/slog"

	"github.com/acorn-io/jjay/pkg/eval"
	"github.com/acorn-io/jjay/pkg/parser"
	"github.com/acorn-io/jjay/pkg/value"
)

// Session evaluates a sequence of scripts where each script sees the bindings
// of the ones before it. Every script runs in a new child scope, so a later
// script may bind a name again.
type Session struct {
	name  string
	scope *eval.Scope
}

func NewSession(opts ...Option) (*Session, error) {
	o := Options(opts).Merge().Complete()
	scope, err := o.scope()
	if err != nil {
		return nil, err
	}
	return &Session{
		name:  o.SourceName,
		scope: scope,
	}, nil
}

// Eval evaluates source. The session is unchanged if evaluation fails.
func (s *Session) Eval(source string) (value.Value, error) {
	script, err := parser.Parse(s.name, []byte(source))
	if err != nil {
		return nil, err
	}

	scope, v, err := eval.Evaluate(script, s.scope.Inherit())
	if err != nil {
		return nil, err
	}
	slog.Debug("session step", "statements", len(script.Stmts), "kind", v.Kind())

	s.scope = scope
	return v, nil
}

func (s *Session) Scope() *eval.Scope {
	return s.scope
}
