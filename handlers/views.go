package handlers

import (
	"context"
	"fmt"
	"html/template"
	"slices"
	"strings"

	"github.com/airplusnepal/site/catalog"
	"github.com/airplusnepal/site/content"
	"github.com/airplusnepal/site/gallery"
	"github.com/airplusnepal/site/nav"
	"github.com/airplusnepal/site/seo"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// aggregate marks a failed load behind a listing page as a server fault,
// missing files included.
func aggregate(err error, what string) error {
	if errors.Is(err, content.ErrNotFound) {
		return errors.Errorf("%s content is missing", what)
	}
	return errors.Wrapf(err, "load %s", what)
}

type season struct {
	Season string
	Months string
	Mood   string
}

var seasonCards = []season{
	{"Spring", "Mar - May", "Colorful forests and stable mountain weather."},
	{"Autumn", "Sep - Nov", "The clearest skies and peak trekking rhythm."},
	{"Winter", "Dec - Feb", "Quiet trails and dramatic, crisp landscapes."},
}

type highlight struct {
	Icon   string
	Title  string
	Detail string
}

var routeIntelligence = []highlight{
	{"route", "Route Match", "We match trek grade, number of days, and altitude profile to your pace."},
	{"wallet", "Budget Clarity", "Get realistic cost bands for permits, transport, guide, and teahouse spending."},
	{"plane", "Logistics Buffer", "Weather and transfer buffers are built in so your trip does not feel rushed."},
}

type stat struct {
	Label string
	Value string
}

var homeStats = []stat{
	{"Years", "12+"},
	{"Curated Treks", "100+"},
	{"Local Guides", "25+"},
	{"Guest Rating", "4.9/5"},
}

type activityCard struct {
	Name string
	Icon string
}

func activityIcon(name string) string {
	switch name {
	case "Trekking":
		return "mountain"
	case "Cultural Tours":
		return "camera"
	}
	return "map"
}

func homeView(s *Site, p *Page) error {
	var (
		home    content.Home
		contact content.Contact
		treks   []content.Trek
	)
	err := content.LoadAll(p.Request.Context(),
		func(context.Context) (err error) {
			home, err = s.Store.Home()
			return err
		},
		func(context.Context) (err error) {
			contact, err = s.Store.Contact()
			return err
		},
		func(ctx context.Context) (err error) {
			treks, err = s.Store.Treks(ctx)
			return err
		},
	)
	if err != nil {
		return aggregate(err, "home")
	}

	activities := make([]activityCard, 0, len(home.Activities))
	for _, a := range home.Activities {
		activities = append(activities, activityCard{Name: a.Name, Icon: activityIcon(a.Name)})
	}

	featured := catalog.Featured(treks, catalog.PopularTrekSlugs, catalog.HomeFeaturedLimit)

	p.Meta = seo.New(s.Origin(), "/", p.Meta.Title, p.Meta.Description, home.Hero.Image, "")
	p.Ctx.Set("home", home)
	p.Ctx.Set("activities", activities)
	p.Ctx.Set("stats", homeStats)
	p.Ctx.Set("featured", catalog.Teasers(featured))
	p.Ctx.Set("intelligence", routeIntelligence)
	p.Ctx.Set("tourCards", catalog.TourCards(home.TourPackages))
	p.Ctx.Set("seasons", seasonCards)
	p.Ctx.Set("galleryThumbs", gallery.NewView("/gallery", home.Gallery.Images, "").Thumbs)
	setContact(p, contact)
	return nil
}

func treksView(s *Site, p *Page) error {
	treks, err := s.Store.Treks(p.Request.Context())
	if err != nil {
		return aggregate(err, "treks")
	}
	p.Ctx.Set("treks", catalog.Teasers(catalog.Featured(treks, catalog.PopularTrekSlugs, 0)))
	return nil
}

type fact struct {
	Label string
	Value string
}

func trekFacts(t content.Trek) []fact {
	var facts []fact
	add := func(label, value string) {
		if value != "" {
			facts = append(facts, fact{label, value})
		}
	}
	add("Max Elevation", t.MaxElevation)
	add("Difficulty", t.Difficulty)
	add("Accommodation", t.Accommodation)
	add("Transport", t.Transport)
	facts = append(facts, fact{"Destination", t.Destination})
	return facts
}

func trekView(s *Site, p *Page) error {
	slug := mux.Vars(p.Request)["slug"]

	var (
		trek     content.Trek
		guide    content.TrekGuide
		hasGuide bool
	)
	err := content.LoadAll(p.Request.Context(),
		func(context.Context) (err error) {
			trek, err = s.Store.Trek(slug)
			return err
		},
		func(context.Context) error {
			g, err := s.Store.TrekGuide(slug)
			if errors.Is(err, content.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			guide, hasGuide = g, true
			return nil
		},
	)
	if err != nil {
		return err
	}

	title := guide.SEOTitle
	if title == "" {
		title = fmt.Sprintf("%s | %s", trek.Title, s.SiteName())
	}
	description := guide.MetaDescription
	if description == "" {
		description = fmt.Sprintf("Explore %s with detailed route and planning support from %s.", trek.Title, s.SiteName())
	}
	cover := catalog.DetailCover(trek)
	path := p.Request.URL.Path

	p.Meta = seo.New(s.Origin(), path, title, description, cover, "article")
	p.Meta.Keywords = strings.Join(guide.QuickKeywords, ", ")

	stops := make([]seo.ItineraryStop, 0, len(trek.Itinerary))
	for _, d := range trek.Itinerary {
		stops = append(stops, seo.ItineraryStop{
			Name:        fmt.Sprintf("Day %d: %s", d.Day, d.Title),
			Description: d.Description,
		})
	}
	p.Meta.AddJSONLD(seo.TouristTrip(trek.Title, description, p.Meta.Canonical, p.Meta.OG.Image, stops))
	p.Meta.AddJSONLD(breadcrumbLD(s.Origin(), path, trek.Title))

	planner := catalog.Planner(guide.Guide)
	vibe, hasVibe := catalog.VibeSection(guide.Guide)
	tips, hasTips := catalog.TipsSection(guide.Guide)

	p.Ctx.Set("trek", trek)
	p.Ctx.Set("cover", cover)
	p.Ctx.Set("facts", trekFacts(trek))
	p.Ctx.Set("hasOverview", len(trek.Overview) > 0)
	p.Ctx.Set("hasImages", len(trek.Images) > 0)
	p.Ctx.Set("hasHighlights", len(trek.Highlights) > 0)
	p.Ctx.Set("guide", guide)
	p.Ctx.Set("hasGuide", hasGuide)
	p.Ctx.Set("planner", planner)
	p.Ctx.Set("hasPlanner", len(planner) > 0)
	p.Ctx.Set("vibe", vibe)
	p.Ctx.Set("hasVibe", hasVibe)
	p.Ctx.Set("tips", tips)
	p.Ctx.Set("hasTips", hasTips)
	return nil
}

// breadcrumbLD mirrors the visible breadcrumbs, with the last crumb named
// after the page rather than its slug.
func breadcrumbLD(origin, path, lastName string) map[string]any {
	crumbs := nav.Breadcrumbs(path)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for i, c := range crumbs {
		name := c.Label
		if i == len(crumbs)-1 && lastName != "" {
			name = lastName
		}
		items = append(items, seo.BreadcrumbItem{Name: name, Item: origin + c.Href})
	}
	return seo.BreadcrumbList(items)
}

func toursView(s *Site, p *Page) error {
	var (
		tours      []content.TourGuide
		activities []content.ActivityGuide
	)
	err := content.LoadAll(p.Request.Context(),
		func(context.Context) (err error) {
			tours, err = s.Store.Tours()
			return err
		},
		func(context.Context) (err error) {
			activities, err = s.Store.Activities()
			return err
		},
	)
	if err != nil {
		return aggregate(err, "tours")
	}
	p.Ctx.Set("tours", tours)
	p.Ctx.Set("activities", activities)
	return nil
}

func directorView(s *Site, p *Page) error {
	d, err := s.Store.Director()
	if err != nil {
		return aggregate(err, "director")
	}
	p.Meta = seo.New(s.Origin(), p.Request.URL.Path, p.Meta.Title, p.Meta.Description, d.Photo, "profile")
	p.Ctx.Set("director", d)
	p.Ctx.Set("hasPhoto", d.Photo != "")
	return nil
}

func contactView(s *Site, p *Page) error {
	c, err := s.Store.Contact()
	if err != nil {
		return aggregate(err, "contact")
	}
	setContact(p, c)
	p.Ctx.Set("hasRepresentatives", len(c.Representatives) > 0)
	return nil
}

func setContact(p *Page, c content.Contact) {
	wa := whatsAppLink(c.HeadOffice.WhatsApp)
	p.Ctx.Set("contact", c)
	p.Ctx.Set("phones", strings.Join(c.HeadOffice.Phones, ", "))
	p.Ctx.Set("whatsAppHref", wa)
	p.Ctx.Set("hasWhatsApp", wa != "")
}

// whatsAppLink keeps only the digits of number for the wa.me path.
func whatsAppLink(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "https://wa.me/" + b.String()
}

func galleryView(s *Site, p *Page) error {
	home, err := s.Store.Home()
	if err != nil {
		return aggregate(err, "gallery")
	}
	v := gallery.NewView(p.Request.URL.Path, home.Gallery.Images, p.Request.URL.Query().Get("photo"))
	if v.Open {
		p.Meta = seo.New(s.Origin(), p.Request.URL.Path, p.Meta.Title, p.Meta.Description, v.Active, "")
	}
	p.Ctx.Set("gallery", v)
	return nil
}

func markdownView(s *Site, p *Page) error {
	page, err := s.Store.Page(p.Route.Source)
	if err != nil {
		return err
	}
	title, description := p.Meta.Title, p.Meta.Description
	if page.Title != "" {
		title = page.Title
	}
	if page.Description != "" {
		description = page.Description
	}
	p.Meta = seo.New(s.Origin(), p.Request.URL.Path, title, description, "", "article")
	p.Ctx.Set("page", page)
	p.Ctx.Set("article", template.HTML(renderMarkdown(page.Body)))
	p.Ctx.Set("showFAQ", slices.Contains(p.Route.PartialDeps, "faq"))
	return nil
}
