package catalog

import "github.com/airplusnepal/site/content"

// PlannerCard is one "Quick Planner" tile on a trek page.
type PlannerCard struct {
	Title      string
	Icon       string
	Accent     string
	Heading    string
	Paragraphs []string
	Bullets    []string
}

type plannerRule struct {
	title    string
	icon     string
	accent   string
	keywords []string
}

var plannerRules = []plannerRule{
	{"Difficulty", "lightbulb", "accent-sky", []string{"hard"}},
	{"Best Season", "calendar", "accent-emerald", []string{"best time"}},
	{"Budget Range", "wallet", "accent-amber", []string{"cost"}},
	{"Permits & Access", "permit", "accent-fuchsia", []string{"permit"}},
	{"Packing", "backpack", "accent-cyan", []string{"pack"}},
}

const (
	plannerParagraphs = 2
	plannerBullets    = 5
)

// Planner picks the guide sections behind the planner tiles. Tiles with no
// matching section are left out.
func Planner(g content.Guide) []PlannerCard {
	var cards []PlannerCard
	for _, rule := range plannerRules {
		s, ok := SectionByKeyword(g.Sections, rule.keywords...)
		if !ok {
			continue
		}
		cards = append(cards, PlannerCard{
			Title:      rule.title,
			Icon:       rule.icon,
			Accent:     rule.accent,
			Heading:    s.Heading,
			Paragraphs: head(s.Paragraphs, plannerParagraphs),
			Bullets:    head(s.Bullets, plannerBullets),
		})
	}
	return cards
}

// VibeSection is the teahouse and food write-up, if the guide has one.
func VibeSection(g content.Guide) (content.Section, bool) {
	return SectionByKeyword(g.Sections, "teahouse", "food", "vibe")
}

// TipsSection keeps only the first paragraph of the tips section.
func TipsSection(g content.Guide) (content.Section, bool) {
	s, ok := SectionByKeyword(g.Sections, "tips")
	if ok {
		s.Paragraphs = head(s.Paragraphs, 1)
	}
	return s, ok
}

func head(in []string, n int) []string {
	if len(in) > n {
		return in[:n]
	}
	return in
}

// TourCard is a home page tile that deep-links into the tours page.
type TourCard struct {
	Name     string
	Duration string
	Image    string
	Href     string
}

func TourCards(pkgs []content.Package) []TourCard {
	cards := make([]TourCard, 0, len(pkgs))
	for _, p := range pkgs {
		cards = append(cards, TourCard{
			Name:     p.Name,
			Duration: p.Duration,
			Image:    p.Image,
			Href:     "/tours#" + TourAnchor(p.Link, p.Name),
		})
	}
	return cards
}
