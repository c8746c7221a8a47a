package javascript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/airplusnepal/site/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestCompileJSTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "app.js"), "const items = [1, 2, 3];\nconsole.log(items.length);\n")

	emitted, err := CompileJSTarget(dir, map[string]config.JavascriptTarget{
		"app": {Source: "src/app.js", OutDir: "out/js"},
	})
	require.NoError(t, err)

	public := emitted["app"]
	require.NotEmpty(t, public)
	assert.True(t, strings.HasPrefix(public, "/out/js/app_"), public)
	assert.True(t, strings.HasSuffix(public, ".js"), public)

	script, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(public, "/"))))
	require.NoError(t, err)
	assert.Contains(t, string(script), "sourceMappingURL="+filepath.Base(public)+".map")

	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(public, "/"))+".map"))
	assert.NoError(t, err)
}

func TestCompileJSTargetSyntaxError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.js"), "function (\n")

	_, err := CompileJSTarget(dir, map[string]config.JavascriptTarget{
		"bad": {Source: "bad.js", OutDir: "out"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "javascript target bad")
}
