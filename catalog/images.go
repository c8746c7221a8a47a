package catalog

import (
	"strings"

	"github.com/airplusnepal/site/content"
)

const (
	DefaultCover = "/information/assets/hero_main.png"
	// DefaultDetailCover is used on trek pages when the record carries no image.
	DefaultDetailCover = "/images/everest-base-camp.jpg"
)

type imageRule struct {
	match string
	image string
}

// Checked in order; the first substring found in the slug wins.
var slugImages = []imageRule{
	{"everest", "/information/assets/trekking_everest1.jpg"},
	{"annapurna-base-camp", "/information/assets/cover_annapurna_base_camp.jpg"},
	{"annapurna-circuit", "/information/assets/cover_annapurna_circuit.jpg"},
	{"langtang", "/information/assets/cover_langtang_valley.jpg"},
	{"mardi-himal", "/information/assets/cover_mardi_himal.jpg"},
	{"poon-hill", "/information/assets/cover_poon_hill.jpg"},
	{"gokyo", "/information/assets/cover_gokyo_lake.jpg"},
	{"manaslu", "/information/assets/trekking_manaslu1.jpg"},
}

// ImageForSlug picks a stock cover for a trek with no authored image.
func ImageForSlug(slug string) string {
	s := strings.ToLower(slug)
	for _, r := range slugImages {
		if strings.Contains(s, r.match) {
			return r.image
		}
	}
	return DefaultCover
}

// CoverImage is the teaser image: authored cover, first gallery image, or
// the slug heuristic.
func CoverImage(t content.Trek) string {
	if t.CoverImage != "" {
		return t.CoverImage
	}
	if len(t.Images) > 0 && t.Images[0].Src != "" {
		return t.Images[0].Src
	}
	return ImageForSlug(t.Slug)
}

func DetailCover(t content.Trek) string {
	if t.CoverImage != "" {
		return t.CoverImage
	}
	if len(t.Images) > 0 && t.Images[0].Src != "" {
		return t.Images[0].Src
	}
	return DefaultDetailCover
}
