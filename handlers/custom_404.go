package handlers

import (
	"net/http"

	"github.com/airplusnepal/site/config"
)

const notFoundTitle = "Page not found"

// Custom404Handler renders the manifest's not-found template inside the
// base layout with a 404 status.
func (s *Site) Custom404Handler(w http.ResponseWriter, r *http.Request) {
	source := s.Manifest.NotFoundPageSource
	if source == "" {
		http.NotFound(w, r)
		return
	}

	route := config.Route{
		Path:         r.URL.Path,
		Source:       source,
		TemplateType: config.TemplatePlush,
		Title:        notFoundTitle + " | " + s.SiteName(),
		Description:  "The page you were looking for does not exist.",
	}
	s.render(w, r, route, nil, http.StatusNotFound)
}
