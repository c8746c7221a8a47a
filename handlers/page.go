package handlers

import (
	"net/http"

	"github.com/airplusnepal/site/config"
	"github.com/airplusnepal/site/seo"
	"github.com/gobuffalo/plush"
)

// Page is one render in progress. Views fill Ctx with template data and
// adjust Meta; the layout reads both.
type Page struct {
	Route   config.Route
	Request *http.Request
	Ctx     *plush.Context
	Meta    seo.Meta
}

// View loads the data behind a route. Returning content.ErrNotFound turns
// the response into the 404 page.
type View func(s *Site, p *Page) error

var views = map[string]View{
	"home":     homeView,
	"treks":    treksView,
	"trek":     trekView,
	"tours":    toursView,
	"director": directorView,
	"contact":  contactView,
	"gallery":  galleryView,
	"markdown": markdownView,
}

// lookupView resolves a route's view. Markdown routes default to loading
// their page; plush routes without a view render the template as is.
func lookupView(route config.Route) (View, bool) {
	if route.View == "" {
		if route.TemplateType == config.TemplateMarkdown {
			return markdownView, true
		}
		return nil, true
	}
	v, ok := views[route.View]
	return v, ok
}
