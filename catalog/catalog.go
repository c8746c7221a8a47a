package catalog

import (
	"sort"
	"strings"

	"github.com/airplusnepal/site/content"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// HomeFeaturedLimit bounds the trek cards on the landing page.
const HomeFeaturedLimit = 8

// PopularTrekSlugs is the editorial order for featured treks.
var PopularTrekSlugs = []string{
	"everest-base-camp",
	"annapurna-base-camp",
	"annapurna-circuit",
	"langtang-valley",
	"manaslu-circuit",
	"gokyo-lake",
	"mardi-himal",
	"poon-hill",
}

// Featured orders treks by their position in order, then by title for the
// treks order does not mention (English collation, so case does not split
// the list), and keeps at most limit of them. A limit
// of zero or less keeps everything. The input slice is left untouched.
func Featured(treks []content.Trek, order []string, limit int) []content.Trek {
	rank := make(map[string]int, len(order))
	for i, slug := range order {
		if _, ok := rank[slug]; !ok {
			rank[slug] = i
		}
	}

	out := make([]content.Trek, len(treks))
	copy(out, treks)
	// A Collator is not safe for concurrent use.
	titles := collate.New(language.English)
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i].Slug]
		rj, jok := rank[out[j].Slug]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		case jok:
			return false
		}
		return titles.CompareString(out[i].Title, out[j].Title) < 0
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Teaser is the card shown for a trek in listings.
type Teaser struct {
	Slug         string
	Title        string
	Href         string
	Region       string
	Duration     string
	Difficulty   string
	MaxElevation string
	Cover        string
}

func NewTeaser(t content.Trek) Teaser {
	return Teaser{
		Slug:         t.Slug,
		Title:        t.Title,
		Href:         "/treks/" + t.Slug,
		Region:       t.Region,
		Duration:     t.Duration,
		Difficulty:   t.Difficulty,
		MaxElevation: t.MaxElevation,
		Cover:        CoverImage(t),
	}
}

func Teasers(treks []content.Trek) []Teaser {
	out := make([]Teaser, 0, len(treks))
	for _, t := range treks {
		out = append(out, NewTeaser(t))
	}
	return out
}

// SectionByKeyword returns the first section whose heading contains any of
// the keywords, ignoring case.
func SectionByKeyword(sections []content.Section, keywords ...string) (content.Section, bool) {
	for _, s := range sections {
		heading := strings.ToLower(s.Heading)
		for _, kw := range keywords {
			if strings.Contains(heading, strings.ToLower(kw)) {
				return s, true
			}
		}
	}
	return content.Section{}, false
}
