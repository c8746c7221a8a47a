package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateSitemapContent(t *testing.T) {
	out, err := GenerateSitemapContent("https://example.com/", []string{"/", "/treks", "/treks/everest-base-camp", "/treks"}, fixedNow)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, xml.Header))

	var sm Sitemap
	require.NoError(t, xml.Unmarshal([]byte(strings.TrimPrefix(out, xml.Header)), &sm))
	require.Len(t, sm.Urls, 3)

	assert.Equal(t, "https://example.com/", sm.Urls[0].Loc)
	assert.Equal(t, "1.0", sm.Urls[0].Priority)
	assert.Equal(t, "weekly", sm.Urls[0].ChangeFreq)
	assert.Equal(t, "0.8", sm.Urls[1].Priority)
	assert.Equal(t, "https://example.com/treks/everest-base-camp", sm.Urls[2].Loc)
	assert.Equal(t, "0.7", sm.Urls[2].Priority)
	assert.Equal(t, "2024-10-01", sm.Urls[2].LastMod)
}

func TestGenerateSitemaps(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenerateSitemaps(dir, "https://example.com", []string{"/contact"}, fixedNow))

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<loc>https://example.com/contact</loc>")
}

func TestGenerateSitemapsMissingDir(t *testing.T) {
	err := GenerateSitemaps(filepath.Join(t.TempDir(), "nope"), "https://example.com", []string{"/"}, fixedNow)
	assert.Error(t, err)
}
