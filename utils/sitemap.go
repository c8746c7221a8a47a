package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemaps writes <outDir>/sitemap.xml.
func GenerateSitemaps(outDir, origin string, routes []string, now time.Time) error {
	xmlOutput, err := GenerateSitemapContent(origin, routes, now)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(outDir, "sitemap.xml"), []byte(xmlOutput), 0644); err != nil {
		return errors.Wrap(err, "write sitemap")
	}
	return nil
}

// GenerateSitemapContent renders the XML document, header included, for
// routes under origin. Duplicate routes are listed once.
func GenerateSitemapContent(origin string, routes []string, now time.Time) (string, error) {
	origin = strings.TrimSuffix(origin, "/")
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if seen[route] {
			continue
		}
		seen[route] = true
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:        origin + route,
			LastMod:    now.Format("2006-01-02"),
			ChangeFreq: changeFreq(route),
			Priority:   priority(route),
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return xml.Header + string(xmlOutput), nil
}

func changeFreq(route string) string {
	if route == "/" {
		return "weekly"
	}
	return "monthly"
}

func priority(route string) string {
	switch strings.Count(strings.Trim(route, "/"), "/") {
	case 0:
		if route == "/" {
			return "1.0"
		}
		return "0.8"
	default:
		return "0.7"
	}
}
