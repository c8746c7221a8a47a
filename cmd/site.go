package cmd

import (
	"github.com/airplusnepal/site/handlers"
	"github.com/airplusnepal/site/javascript"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// setupSite loads the manifest, bundles the javascript targets and builds
// the router.
func setupSite() (*handlers.Site, *mux.Router, error) {
	site, err := handlers.NewSite(settings, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := compileScripts(site); err != nil {
		return nil, nil, err
	}

	router, err := handlers.SetupRouter(site)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error setting up router")
	}
	return site, router, nil
}

func compileScripts(site *handlers.Site) error {
	scripts, err := javascript.CompileJSTarget(settings.SiteDir, site.Manifest.JavascriptTargets)
	if err != nil {
		return errors.Wrap(err, "error compiling javascript")
	}
	for name, path := range scripts {
		logger.Debug("compiled javascript", zap.String("target", name), zap.String("path", path))
	}
	site.SetScripts(scripts)
	return nil
}
