package readhelper

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadVarsYAML(t *testing.T) {
	vars, err := ReadVars(writeFile(t, "vars.yaml", "port: 80\nhosts:\n- a\n- b\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"port":  80,
		"hosts": []any{"a", "b"},
	}, vars)
}

func TestReadVarsJSON(t *testing.T) {
	vars, err := ReadVars(writeFile(t, "vars.json", `{"port": 80, "tls": false, "x": null}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"port": 80.0,
		"tls":  false,
		"x":    nil,
	}, vars)
}

func TestReadVarsScript(t *testing.T) {
	vars, err := ReadVars(writeFile(t, "vars.jj", "let base = 40; {port: base * 2}"))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"port": 80.0}, vars)
}

func TestReadVarsError(t *testing.T) {
	path := writeFile(t, "vars.jj", "[1]")
	_, err := ReadVars(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading variables from "+path)
}

func TestReadSource(t *testing.T) {
	data, err := ReadSource(Stdin, strings.NewReader("1 + 1"))
	require.NoError(t, err)
	assert.Equal(t, "1 + 1", string(data))

	path := writeFile(t, "main.jj", "2")
	data, err = ReadSource(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "2", string(data))

	assert.Equal(t, "<stdin>", SourceName(Stdin))
	assert.Equal(t, path, SourceName(path))
}
