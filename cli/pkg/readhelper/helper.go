package readhelper

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/acorn-io/jjay"
	"gopkg.in/yaml.v3"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

// ReadSource reads a script from name, or from standard input when name is
// Stdin.
func ReadSource(name string, stdin io.Reader) ([]byte, error) {
	if name == Stdin {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

// SourceName is the name used for name in error messages.
func SourceName(name string) string {
	if name == Stdin {
		return "<stdin>"
	}
	return name
}

// ReadVars loads variables from a YAML file or from a script, which includes
// plain JSON, whose result is an object.
func ReadVars(name string) (map[string]any, error) {
	data := map[string]any{}
	if err := UnmarshalFile(name, &data); err != nil {
		return nil, fmt.Errorf("reading variables from %s: %w", name, err)
	}
	return data, nil
}

func UnmarshalFile(name string, out any) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	if isYAMLFilename(name) {
		return yaml.NewDecoder(f).Decode(out)
	}

	return jjay.NewDecoder(f, jjay.Option{
		SourceName: name,
	}).Decode(out)
}

func isYAMLFilename(v string) bool {
	for _, suffix := range []string{".yaml", ".yml"} {
		if strings.HasSuffix(strings.ToLower(v), suffix) {
			return true
		}
	}
	return false
}
