package handlers

import (
	"html/template"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/airplusnepal/site/catalog"
	"github.com/airplusnepal/site/config"
	"github.com/airplusnepal/site/content"
	"github.com/airplusnepal/site/nav"
	"github.com/airplusnepal/site/seo"
	"github.com/airplusnepal/site/utils"
	"github.com/gobuffalo/plush"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const slugPattern = "{slug}"

func SetupRouter(s *Site) (*mux.Router, error) {
	router := mux.NewRouter()
	router.Use(requestLogger(s.Log), recoverer)

	router.NotFoundHandler = requestLogger(s.Log)(recoverer(http.HandlerFunc(s.Custom404Handler)))

	for prefix, dir := range s.AssetMounts() {
		router.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(http.Dir(s.Settings.Path(dir)))))
	}

	s.routes = nil
	for _, route := range s.Manifest.Routes {
		view, ok := lookupView(route)
		if !ok {
			return nil, errors.Errorf("route %s: unknown view %q", route.Path, route.View)
		}

		router.HandleFunc(route.Path, DynamicHandler(s, route, view)).Methods("GET")

		if strings.Contains(route.Path, slugPattern) {
			if err := s.registerSlugRoutes(route); err != nil {
				return nil, errors.Wrapf(err, "error setting up routes for %s", route.Path)
			}
			continue
		}
		s.routes = append(s.routes, route.Path)
	}

	sitemap, err := utils.GenerateSitemapContent(s.Origin(), s.routes, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "error generating sitemap")
	}
	router.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		_, _ = w.Write([]byte(sitemap))
	}).Methods("GET")
	router.HandleFunc("/robots.txt", s.robotsHandler).Methods("GET")
	router.HandleFunc("/healthz", healthzHandler).Methods("GET")
	router.HandleFunc("/tours/{id}", s.tourRedirect).Methods("GET")

	return router, nil
}

// registerSlugRoutes records one concrete path per trek so the sitemap and
// the static export know about every detail page.
func (s *Site) registerSlugRoutes(route config.Route) error {
	slugs, err := s.Store.TrekSlugs()
	if err != nil {
		return err
	}
	for _, slug := range slugs {
		s.routes = append(s.routes, strings.Replace(route.Path, slugPattern, slug, 1))
	}
	return nil
}

func DynamicHandler(s *Site, route config.Route, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, route, view, http.StatusOK)
	}
}

func (s *Site) render(w http.ResponseWriter, r *http.Request, route config.Route, view View, status int) {
	p := s.newPage(r, route)

	if view != nil {
		if err := view(s, p); err != nil {
			s.fail(w, r, err)
			return
		}
	}

	pageHtml, err := s.renderPage(p)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(pageHtml)); err != nil {
		loggerFrom(r.Context(), s.Log).Warn("write response", zap.Error(err))
	}
}

func (s *Site) newPage(r *http.Request, route config.Route) *Page {
	ctx := plush.NewContext()
	currentPath := r.URL.Path
	if currentPath == "" {
		currentPath = "/"
	}

	ctx.Set("params", mux.Vars(r))
	ctx.Set("currentPath", currentPath)
	ctx.Set("siteName", s.SiteName())
	ctx.Set("appOrigin", s.Origin())
	ctx.Set("currentYear", time.Now().Year())
	ctx.Set("nav", nav.Build(currentPath))
	ctx.Set("footer", nav.BuildFooter(currentPath))
	ctx.Set("crumbs", nav.Breadcrumbs(currentPath))
	ctx.Set("faqs", nav.FAQs)

	ctx.Set("startsWith", func(str string, prefix string) bool {
		return strings.HasPrefix(str, prefix)
	})
	ctx.Set("replaceAll", func(str string, old string, n string) string {
		return strings.ReplaceAll(str, old, n)
	})
	ctx.Set("join", func(items []string, sep string) string {
		return strings.Join(items, sep)
	})
	ctx.Set("anchor", catalog.Anchor)

	title := route.Title
	if title == "" {
		title = s.SiteName()
	}
	return &Page{
		Route:   route,
		Request: r,
		Ctx:     ctx,
		Meta:    seo.New(s.Origin(), currentPath, title, route.Description, "", ""),
	}
}

// renderPage executes the partials, the route template and the base layout
// in that order. Meta is frozen just before the layout runs.
func (s *Site) renderPage(p *Page) (string, error) {
	ctx := p.Ctx

	if err := s.renderPartials(p); err != nil {
		return "", err
	}

	source := p.Route.Source
	switch p.Route.TemplateType {
	case config.TemplatePlush, "":
	case config.TemplateMarkdown:
		source = config.MarkdownTemplate
	default:
		return "", errors.Errorf("unsupported template type %q", p.Route.TemplateType)
	}

	body, err := renderPlushTemplate(s.Settings.Path(source), ctx)
	if err != nil {
		return "", errors.Wrapf(err, "error rendering %s", source)
	}

	s.addOrganization(p)
	ctx.Set("meta", p.Meta)
	ctx.Set("scripts", s.scriptsFor(s.Manifest.LayoutJavascript, p.Route.JavascriptDeps))
	ctx.Set("yield", template.HTML(body))

	return renderPlushTemplate(s.Settings.Path(s.Manifest.Layout), ctx)
}

// renderPartials exposes every manifest partial as <name>Partial. Only the
// layout partials and the route's own deps are rendered; the rest are
// empty so templates can reference them unconditionally.
func (s *Site) renderPartials(p *Page) error {
	wanted := map[string]bool{}
	for _, name := range s.Manifest.LayoutPartials {
		wanted[name] = true
	}
	for _, name := range p.Route.PartialDeps {
		wanted[name] = true
	}

	for name, partial := range s.Manifest.Partials {
		key := name + "Partial"
		if !wanted[name] {
			p.Ctx.Set(key, template.HTML(""))
			continue
		}

		var out string
		var err error
		switch partial.TemplateType {
		case config.TemplateMarkdown:
			var src []byte
			src, err = os.ReadFile(s.Settings.Path(partial.Source))
			out = string(renderMarkdown(src))
		default:
			out, err = renderPlushTemplate(s.Settings.Path(partial.Source), p.Ctx)
		}
		if err != nil {
			return errors.Wrapf(err, "error rendering partial %s", name)
		}
		p.Ctx.Set(key, template.HTML(out))
	}
	return nil
}

// addOrganization puts the TravelAgency block ahead of the view's own
// JSON-LD.
func (s *Site) addOrganization(p *Page) {
	var email string
	var phones []string
	if c, err := s.Store.Contact(); err == nil {
		email = c.HeadOffice.Email
		phones = c.HeadOffice.Phones
	}
	org := seo.New(s.Origin(), "/", "", "", "", "")
	org.AddJSONLD(seo.Organization(s.SiteName(), org.Canonical, email, phones))
	p.Meta.JSONLD = append(org.JSONLD, p.Meta.JSONLD...)
}

func (s *Site) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, content.ErrNotFound) {
		s.Custom404Handler(w, r)
		return
	}
	loggerFrom(r.Context(), s.Log).Error("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func renderPlushTemplate(source string, ctx *plush.Context) (string, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return "", errors.WithStack(err)
	}

	template, err := plush.Parse(string(content))
	if err != nil {
		return "", errors.Wrapf(err, "parse %s", source)
	}

	out, err := template.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "exec %s", source)
	}
	return out, nil
}

var markdownPolicy = bluemonday.UGCPolicy()

// renderMarkdown converts md to sanitized HTML. Headings keep explicit
// {#id} anchors and get automatic ids otherwise.
func renderMarkdown(md []byte) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	html := markdown.ToHTML(md, p, nil)
	return markdownPolicy.SanitizeBytes(html)
}
