package config

// config/yaml.go

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	TemplatePlush    = "PLUSH"
	TemplateMarkdown = "MARKDOWN"

	DefaultLayout    = "templates/layouts/base.plush.html"
	MarkdownTemplate = "templates/pages/markdown.plush.html"
)

type Partial struct {
	Source       string `yaml:"source"`
	TemplateType string `yaml:"template_type"`
}

type JavascriptTarget struct {
	Source string `yaml:"source"`
	OutDir string `yaml:"out_dir"`
}

type SiteManifest struct {
	SiteName           string                      `yaml:"site_name"`
	Origin             string                      `yaml:"origin"`
	Layout             string                      `yaml:"layout"`
	NotFoundPageSource string                      `yaml:"not_found_page_source"`
	LayoutPartials     []string                    `yaml:"layout_partials"`
	LayoutJavascript   []string                    `yaml:"layout_javascript"`
	Routes             []Route                     `yaml:"routes"`
	JavascriptTargets  map[string]JavascriptTarget `yaml:"javascript"`
	Partials           map[string]Partial          `yaml:"partials"`
	Assets             map[string]string           `yaml:"assets"`
}

// Route maps a path to a template. For PLUSH routes Source is a template
// file and View names the data loader; for MARKDOWN routes Source is a page
// name under the pages directory, rendered through MarkdownTemplate.
type Route struct {
	Path           string   `yaml:"path"`
	Source         string   `yaml:"source"`
	TemplateType   string   `yaml:"template_type"`
	View           string   `yaml:"view"`
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"`
	JavascriptDeps []string `yaml:"javascript_deps"`
	PartialDeps    []string `yaml:"partial_deps"`
}

func LoadManifest(filename string) (*SiteManifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}

	var manifest SiteManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrapf(err, "parse manifest %s", filename)
	}
	if manifest.Layout == "" {
		manifest.Layout = DefaultLayout
	}
	return &manifest, nil
}
