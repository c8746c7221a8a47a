package handlers

import (
	"fmt"
	"net/http"

	"github.com/airplusnepal/site/content"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

func (s *Site) robotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.Origin())
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// tourRedirect sends old /tours/<id> links to the matching anchor on the
// tours page. Ids are looked up among tours first, then activities.
func (s *Site) tourRedirect(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if !content.ValidSlug(id) {
		s.fail(w, r, content.ErrNotFound)
		return
	}

	_, err := s.Store.TourGuide(id)
	if errors.Is(err, content.ErrNotFound) {
		_, err = s.Store.ActivityGuide(id)
	}
	if err != nil {
		s.fail(w, r, err)
		return
	}
	http.Redirect(w, r, "/tours#"+id, http.StatusMovedPermanently)
}
