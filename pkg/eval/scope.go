package eval

import (
	"github.com/acorn-io/jjay/pkg/value"
)

// Scope is a lexical environment. A Scope is never modified once created;
// Set and Extend return new scopes so closures that captured the old one keep
// seeing exactly what they captured. Parents are shared freely.
type Scope struct {
	parent *Scope
	values map[string]value.Value
}

func NewEmptyScope() *Scope {
	return &Scope{}
}

// NewDefaultScope returns a child of Builtin, so top level bindings may reuse
// builtin names.
func NewDefaultScope() *Scope {
	return Builtin.Inherit()
}

// Inherit returns an empty scope whose parent is s.
func (s *Scope) Inherit() *Scope {
	return &Scope{
		parent: s,
	}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

func (s *Scope) Lookup(name string) (value.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (s *Scope) Get(name string) (value.Value, error) {
	v, ok := s.Lookup(name)
	if !ok {
		return nil, &ErrVariableNotFound{
			Name: name,
		}
	}
	return v, nil
}

// Set returns a copy of s with name bound to v. It fails if s itself already
// binds name; bindings of the same name in parent scopes are shadowed.
func (s *Scope) Set(name string, v value.Value) (*Scope, error) {
	if _, ok := s.values[name]; ok {
		return nil, &ErrVariableAlreadyExists{
			Name: name,
		}
	}
	return s.with(name, v), nil
}

// with binds name without checking for an existing local binding.
func (s *Scope) with(name string, v value.Value) *Scope {
	values := make(map[string]value.Value, len(s.values)+1)
	for k, v := range s.values {
		values[k] = v
	}
	values[name] = value.Simplify(v)
	return &Scope{
		parent: s.parent,
		values: values,
	}
}

// Extend returns a copy of s with the local bindings of other added, other's
// bindings replacing any of the same name. Only the local bindings of other
// are used; its parents are ignored.
func (s *Scope) Extend(other *Scope) *Scope {
	if other == nil || len(other.values) == 0 {
		return s
	}
	values := make(map[string]value.Value, len(s.values)+len(other.values))
	for k, v := range s.values {
		values[k] = v
	}
	for k, v := range other.values {
		values[k] = value.Simplify(v)
	}
	return &Scope{
		parent: s.parent,
		values: values,
	}
}

// Values returns the local bindings of s.
func (s *Scope) Values() map[string]value.Value {
	result := make(map[string]value.Value, len(s.values))
	for k, v := range s.values {
		result[k] = v
	}
	return result
}

// ValuesRecurse returns every binding visible from s. Where a name is bound
// more than once the nearest binding is returned, the same one Get finds.
func (s *Scope) ValuesRecurse() map[string]value.Value {
	result := map[string]value.Value{}
	for cur := s; cur != nil; cur = cur.parent {
		for k, v := range cur.values {
			if _, ok := result[k]; !ok {
				result[k] = v
			}
		}
	}
	return result
}
