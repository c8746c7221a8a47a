package handlers

import (
	"strings"
	"sync"

	"github.com/airplusnepal/site/config"
	"github.com/airplusnepal/site/content"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Site is everything a request needs: where the files live, the manifest
// that maps routes to templates, and the content store.
type Site struct {
	Settings config.Settings
	Manifest *config.SiteManifest
	Store    *content.Store
	Log      *zap.Logger

	mu      sync.RWMutex
	scripts map[string]string
	routes  []string
}

func NewSite(settings config.Settings, log *zap.Logger) (*Site, error) {
	manifest, err := config.LoadManifest(settings.Path(settings.Manifest))
	if err != nil {
		return nil, errors.Wrap(err, "error loading manifest")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Site{
		Settings: settings,
		Manifest: manifest,
		Store:    content.NewStore(settings.Path(settings.ContentDir), settings.Path(settings.PagesDir)),
		Log:      log,
	}, nil
}

// Origin is the absolute scheme://host used for canonical links. Settings
// win over the manifest.
func (s *Site) Origin() string {
	origin := s.Settings.Origin
	if origin == "" {
		origin = s.Manifest.Origin
	}
	return strings.TrimSuffix(origin, "/")
}

func (s *Site) SiteName() string {
	if s.Manifest.SiteName == "" {
		return "AirPlus Nepal"
	}
	return s.Manifest.SiteName
}

// Routes lists the concrete page paths registered by SetupRouter, with one
// entry per trek slug in place of the slug pattern.
func (s *Site) Routes() []string {
	out := make([]string, len(s.routes))
	copy(out, s.routes)
	return out
}

// SetScripts replaces the map from javascript target name to public path.
// Targets missing from the map are skipped when rendering script tags.
func (s *Site) SetScripts(scripts map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scripts = scripts
}

func (s *Site) scriptsFor(deps ...[]string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string
	seen := map[string]bool{}
	for _, list := range deps {
		for _, name := range list {
			src, ok := s.scripts[name]
			if !ok || seen[src] {
				continue
			}
			seen[src] = true
			out = append(out, src)
		}
	}
	return out
}

// AssetMounts maps URL prefixes to directories served as files. /static/
// always points at the configured static dir.
func (s *Site) AssetMounts() map[string]string {
	mounts := make(map[string]string, len(s.Manifest.Assets)+1)
	for prefix, dir := range s.Manifest.Assets {
		mounts[prefix] = dir
	}
	mounts["/static/"] = s.Settings.StaticDir
	return mounts
}

