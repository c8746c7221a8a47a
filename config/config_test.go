package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(file, []byte("port: \"8081\"\norigin: https://example.com\ncontentDir: data\n"), 0o644))
	t.Setenv("AIRPLUS_PORT", "7000")

	s, err := LoadSettings(file)
	require.NoError(t, err)
	assert.Equal(t, "7000", s.Port)
	assert.Equal(t, "https://example.com", s.Origin)
	assert.Equal(t, "data", s.ContentDir)
	assert.Equal(t, "public", s.OutputDir)
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSettingsPath(t *testing.T) {
	s := Defaults()
	s.SiteDir = "/srv/site"
	assert.Equal(t, "/srv/site/information", s.Path("information"))
	assert.Equal(t, "/abs/x", s.Path("/abs/x"))
}

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest("../manifest.yaml")
	require.NoError(t, err)
	assert.Equal(t, "AirPlus Nepal", m.SiteName)
	assert.NotEmpty(t, m.Routes)
	assert.Equal(t, "templates/layouts/base.plush.html", m.Layout)

	var trek *Route
	for i := range m.Routes {
		if m.Routes[i].View == "trek" {
			trek = &m.Routes[i]
		}
	}
	require.NotNil(t, trek)
	assert.Equal(t, "/treks/{slug}", trek.Path)
	assert.Contains(t, m.JavascriptTargets, "gallery")
}

func TestLoadManifestErrors(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("routes: [\n"), 0o644))
	_, err = LoadManifest(bad)
	assert.Error(t, err)
}
