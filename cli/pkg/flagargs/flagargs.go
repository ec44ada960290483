// Package flagargs turns the arguments after the script name into script
// variables.
package flagargs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/acorn-io/jjay/pkg/ast"
	"github.com/spf13/pflag"
)

// ParseArgs parses args of the form "--name=value" or "--name value". Values
// that are valid JSON are decoded, anything else is kept as a string. It
// returns pflag.ErrHelp when help was requested.
func ParseArgs(filename string, args []string) (map[string]any, error) {
	flags := pflag.NewFlagSet(filename, pflag.ContinueOnError)
	values := map[string]*string{}

	for _, arg := range args {
		name, ok := flagName(arg)
		if !ok || name == "help" || values[name] != nil {
			continue
		}
		if !ast.IsValidIdent(name) {
			return nil, fmt.Errorf("invalid variable name %q", name)
		}
		values[name] = flags.String(name, "", fmt.Sprintf("variable %s", name))
	}

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q, variables are passed as --name=value", flags.Arg(0))
	}

	result := make(map[string]any, len(values))
	for name, v := range values {
		result[name] = parseValue(*v)
	}
	return result, nil
}

func flagName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", false
	}
	name, _, _ := strings.Cut(arg[2:], "=")
	return name, name != ""
}

func parseValue(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err == nil {
		return v
	}
	return s
}
