package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// executeRoot runs the root command with args and an isolated environment.
// A config path inside a fresh temp dir is used unless env overrides DATATABLE_CONFIG.
func executeRoot(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	if _, ok := env["DATATABLE_CONFIG"]; !ok {
		env["DATATABLE_CONFIG"] = filepath.Join(t.TempDir(), "config.yaml")
	}
	lookupEnv := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	var out, errOut bytes.Buffer
	cmd := NewRootCmdWithEnv("test", lookupEnv)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// numberedDataset writes a dataset with n rows {id: i, name: "item-i"}.
func numberedDataset(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("version: \"1.0\"\ncolumns:\n  - {header: ID, key: id, numeric: true}\n  - {header: Name, key: name, width: 10}\nrows:\n")
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "  - {id: %d, name: item-%d}\n", i, i)
	}
	return writeTestFile(t, "items.yaml", b.String())
}
