package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestStaticPath(t *testing.T) {
	out := filepath.FromSlash("/out")
	assert.Equal(t, filepath.Join(out, "index.html"), staticPath(out, "/"))
	assert.Equal(t, filepath.Join(out, "treks", "index.html"), staticPath(out, "/treks"))
	assert.Equal(t, filepath.Join(out, "treks", "poon-hill", "index.html"), staticPath(out, "/treks/poon-hill/"))
	assert.Equal(t, filepath.Join(out, "robots.txt"), staticPath(out, "/robots.txt"))
	assert.Equal(t, filepath.Join(out, "etc", "index.html"), staticPath(out, "/../etc"))
}

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "css", "site.css"), []byte("body{}"), 0o644))

	dst := filepath.Join(t.TempDir(), "public", "static")
	require.NoError(t, copyDir(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "css", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(data))

	assert.NoError(t, copyDir(filepath.Join(src, "missing"), dst))
}

func get(t *testing.T, h http.Handler, target string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestPreviewRouter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "treks"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("home"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "treks", "index.html"), []byte("treks"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "404.html"), []byte("lost"), 0o644))

	h := previewRouter(dir)

	code, body := get(t, h, "/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "home", body)

	code, body = get(t, h, "/treks/")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "treks", body)

	code, body = get(t, h, "/nowhere")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "lost", body)
}

func TestNewLogger(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	l, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = NewLogger(false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))

	t.Setenv("LOG_LEVEL", "error")
	l, err = NewLogger(true)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}
