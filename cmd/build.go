package cmd

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/airplusnepal/site/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// notFoundProbe is requested to capture the rendered 404 page.
const notFoundProbe = "/__not_found__"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static version of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("building static site")

		site, router, err := setupSite()
		if err != nil {
			return err
		}

		outDir := settings.Path(settings.OutputDir)
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			return errors.Wrap(err, "error creating output directory")
		}

		for prefix, dir := range site.AssetMounts() {
			dest := filepath.Join(outDir, filepath.FromSlash(strings.Trim(prefix, "/")))
			if err := copyDir(settings.Path(dir), dest); err != nil {
				return errors.Wrapf(err, "error copying %s", dir)
			}
		}

		server := httptest.NewServer(router)
		defer server.Close()

		if err := exportPages(cmd.Context(), server, outDir, append(site.Routes(), "/robots.txt")); err != nil {
			return err
		}
		if err := exportNotFound(server, outDir); err != nil {
			return err
		}
		if err := utils.GenerateSitemaps(outDir, site.Origin(), site.Routes(), time.Now()); err != nil {
			return errors.Wrap(err, "error generating sitemap")
		}

		logger.Info("static site generated", zap.String("dir", outDir), zap.Int("pages", len(site.Routes())))
		return nil
	},
}

// exportPages fetches every route and writes it under outDir. Failures are
// logged per route and reported together.
func exportPages(ctx context.Context, server *httptest.Server, outDir string, routes []string) error {
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)

	failed := make(chan string, len(routes))
	for _, route := range routes {
		route := route
		g.Go(func() error {
			if err := generateStaticPage(server, outDir, route); err != nil {
				logger.Error("error generating static page", zap.String("route", route), zap.Error(err))
				failed <- route
			}
			return nil
		})
	}
	_ = g.Wait()
	close(failed)

	var bad []string
	for route := range failed {
		bad = append(bad, route)
	}
	if len(bad) > 0 {
		return errors.Errorf("failed to export %d page(s): %s", len(bad), strings.Join(bad, ", "))
	}
	return nil
}

func generateStaticPage(server *httptest.Server, outDir, route string) error {
	body, status, err := fetch(server, route)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("unexpected status %d", status)
	}

	filePath := staticPath(outDir, route)
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return errors.WithStack(err)
	}
	if err := os.WriteFile(filePath, body, 0644); err != nil {
		return errors.WithStack(err)
	}

	logger.Debug("generated", zap.String("file", filePath))
	return nil
}

func exportNotFound(server *httptest.Server, outDir string) error {
	body, status, err := fetch(server, notFoundProbe)
	if err != nil {
		return err
	}
	if status != http.StatusNotFound {
		return errors.Errorf("not found page returned status %d", status)
	}
	return errors.WithStack(os.WriteFile(filepath.Join(outDir, "404.html"), body, 0644))
}

func fetch(server *httptest.Server, route string) ([]byte, int, error) {
	resp, err := server.Client().Get(server.URL + route)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return body, resp.StatusCode, nil
}

// staticPath maps a route to its file: routes with an extension are written
// as is, everything else becomes <route>/index.html.
func staticPath(outDir, route string) string {
	clean := strings.TrimPrefix(path.Clean("/"+route), "/")
	if path.Ext(clean) != "" {
		return filepath.Join(outDir, filepath.FromSlash(clean))
	}
	return filepath.Join(outDir, filepath.FromSlash(clean), "index.html")
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// copyDir mirrors src into dst. A missing src is skipped.
func copyDir(src, dst string) error {
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(p, target)
	})
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	err = os.WriteFile(dst, input, 0644)
	if err != nil {
		return err
	}

	return nil
}
