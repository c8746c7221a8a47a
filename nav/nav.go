package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderedLink is a view model for templates.
type RenderedLink struct {
	Label       string
	Href        string
	Description string
	Active      bool
}

type RenderedItem struct {
	Label   string
	Href    string
	IsGroup bool
	Active  bool
	Links   []RenderedLink
}

// Crumb is a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Build renders the main menu with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		if len(it.Links) == 0 {
			items = append(items, RenderedItem{
				Label:  it.Label,
				Href:   hrefOrRoot(it.Href),
				Active: it.Href != "" && IsLinkActive(currentPath, it.Href),
			})
			continue
		}
		group := RenderedItem{Label: it.Label, IsGroup: true, Links: renderLinks(currentPath, it.Links)}
		for _, l := range group.Links {
			if l.Active {
				group.Active = true
				break
			}
		}
		items = append(items, group)
	}
	return items
}

// RenderedSection is a footer column.
type RenderedSection struct {
	Title string
	Links []RenderedLink
}

func BuildFooter(currentPath string) []RenderedSection {
	out := make([]RenderedSection, 0, len(Footer))
	for _, s := range Footer {
		out = append(out, RenderedSection{Title: s.Title, Links: renderLinks(currentPath, s.Links)})
	}
	return out
}

func renderLinks(currentPath string, links []Link) []RenderedLink {
	out := make([]RenderedLink, 0, len(links))
	for _, l := range links {
		out = append(out, RenderedLink{
			Label:       l.Label,
			Href:        l.Href,
			Description: l.Description,
			Active:      IsLinkActive(currentPath, l.Href),
		})
	}
	return out
}

// IsLinkActive reports whether href should be highlighted on currentPath.
// Same-page hash links ("/#contact") count as the root. The root only
// matches itself; any other link matches exactly or on a "/" boundary.
func IsLinkActive(currentPath, href string) bool {
	if strings.HasPrefix(href, "/#") {
		return currentPath == "/"
	}
	base := basePath(href)
	if base == "/" {
		return currentPath == "/"
	}
	return currentPath == base || strings.HasPrefix(currentPath, base+"/")
}

func basePath(href string) string {
	base, _, _ := strings.Cut(href, "#")
	if base == "" {
		return "/"
	}
	return base
}

func hrefOrRoot(href string) string {
	if href == "" {
		return "/"
	}
	return href
}

// Breadcrumbs builds breadcrumb entries from the current path, always
// starting with Home.
func Breadcrumbs(currentPath string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	clean := path.Clean(currentPath)
	if clean == "/" || clean == "." {
		return crumbs
	}

	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, p := range parts {
		href += "/" + p
		crumbs = append(crumbs, Crumb{
			Href:   href,
			Label:  titleFromSegment(p),
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

// A Caser is stateful, so each call gets its own.
func titleFromSegment(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return cases.Title(language.English).String(s)
}
