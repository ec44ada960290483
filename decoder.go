package jjay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"

	"github.com/acorn-io/jjay/pkg/ast"
	"github.com/acorn-io/jjay/pkg/eval"
	"github.com/acorn-io/jjay/pkg/parser"
	"github.com/acorn-io/jjay/pkg/value"
)

type Option struct {
	// SourceName is used in error messages.
	SourceName string
	// Vars are bound as variables before the script runs. Values are
	// converted with value.NewValue.
	Vars map[string]any
	// Scope is the scope scripts run in. It defaults to
	// eval.NewDefaultScope().
	Scope *eval.Scope
}

func (o Option) Complete() Option {
	if o.SourceName == "" {
		o.SourceName = "<inline>"
	}
	if o.Scope == nil {
		o.Scope = eval.NewDefaultScope()
	}
	return o
}

type Options []Option

func (o Options) Merge() (result Option) {
	for _, opt := range o {
		if opt.SourceName != "" {
			result.SourceName = opt.SourceName
		}
		if opt.Scope != nil {
			result.Scope = opt.Scope
		}
		if len(opt.Vars) > 0 && result.Vars == nil {
			result.Vars = map[string]any{}
		}
		for k, v := range opt.Vars {
			result.Vars[k] = v
		}
	}
	return
}

// scope returns the configured scope with Vars bound in a child of it.
func (o Option) scope() (*eval.Scope, error) {
	if len(o.Vars) == 0 {
		return o.Scope, nil
	}

	keys := make([]string, 0, len(o.Vars))
	for k := range o.Vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	scope := o.Scope.Inherit()
	for _, k := range keys {
		v, err := value.NewValue(o.Vars[k])
		if err != nil {
			return nil, fmt.Errorf("invalid variable %s: %w", k, err)
		}
		scope, err = scope.Set(k, v)
		if err != nil {
			return nil, err
		}
	}
	return scope, nil
}

type Decoder struct {
	opts  Option
	input io.Reader
}

func NewDecoder(input io.Reader, opts ...Option) *Decoder {
	return &Decoder{
		opts:  Options(opts).Merge().Complete(),
		input: input,
	}
}

func (d *Decoder) Decode(out any) error {
	parsed, err := parser.ParseFile(d.opts.SourceName, d.input)
	if err != nil {
		return err
	}
	slog.Debug("parsed script", "source", d.opts.SourceName, "statements", len(parsed.Stmts))

	switch n := out.(type) {
	case *ast.Script:
		*n = *parsed
		return nil
	}

	scope, err := d.opts.scope()
	if err != nil {
		return err
	}

	val, err := eval.EvaluateValue(parsed, scope)
	if err != nil {
		return err
	}
	slog.Debug("evaluated script", "source", d.opts.SourceName, "kind", val.Kind())

	switch n := out.(type) {
	case *value.Value:
		*n = val
		return nil
	}

	nv, ok, err := val.NativeValue()
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("value kind %s from source %s did not produce a native value", val.Kind(), d.opts.SourceName)
	}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(nv); err != nil {
		return err
	}

	return json.NewDecoder(buf).Decode(out)
}

func Unmarshal(data []byte, v any, opts ...Option) error {
	return NewDecoder(bytes.NewReader(data), opts...).Decode(v)
}

// Run evaluates source in a new default scope.
func Run(source string) (value.Value, error) {
	return RunWith(source, eval.NewDefaultScope())
}

// RunWith evaluates source in scope.
func RunWith(source string, scope *eval.Scope) (value.Value, error) {
	var result value.Value
	err := NewDecoder(bytes.NewReader([]byte(source)), Option{Scope: scope}).Decode(&result)
	return result, err
}
