package seo

import (
	"encoding/json"
	"html/template"
	"strings"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
}

type Twitter struct {
	Card  string
	Image string
}

// Meta carries per-page head metadata into the base layout.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Keywords    string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []template.HTML
}

// New builds Meta with OpenGraph and Twitter fields mirrored from the page
// title and description. image may be empty.
func New(origin, path, title, description, image, ogType string) Meta {
	canonical := strings.TrimSuffix(origin, "/") + path
	if ogType == "" {
		ogType = "website"
	}
	if image != "" && strings.HasPrefix(image, "/") {
		image = strings.TrimSuffix(origin, "/") + image
	}
	m := Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        ogType,
			URL:         canonical,
		},
	}
	if image != "" {
		m.Twitter = Twitter{Card: "summary_large_image", Image: image}
	}
	return m
}

// AddJSONLD appends a schema.org payload. Payloads that fail to encode are
// dropped.
func (m *Meta) AddJSONLD(v any) {
	if s := JSON(v); s != "" {
		m.JSONLD = append(m.JSONLD, template.HTML(s))
	}
}

// JSON marshals v to a compact JSON string safe to embed in a script tag.
// It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
