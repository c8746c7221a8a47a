package cmd

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the output of build",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		dir := settings.Path(settings.OutputDir)
		if _, err := os.Stat(dir); err != nil {
			return errors.Wrap(err, "nothing to preview, run build first")
		}

		server := &http.Server{
			Addr:              ":" + port,
			Handler:           previewRouter(dir),
			ReadHeaderTimeout: 5 * time.Second,
		}
		logger.Info("previewing static build", zap.String("dir", dir), zap.String("addr", server.Addr))
		return server.ListenAndServe()
	},
}

// previewRouter serves an exported tree the way a static host would,
// including 404.html for anything missing.
func previewRouter(dir string) http.Handler {
	router := httprouter.New()
	router.RedirectTrailingSlash = false

	files := http.FileServer(http.Dir(dir))
	router.GET("/*filepath", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		rel := strings.TrimPrefix(path.Clean("/"+ps.ByName("filepath")), "/")
		name := filepath.Join(dir, filepath.FromSlash(rel))
		info, err := os.Stat(name)
		if err == nil && info.IsDir() {
			_, err = os.Stat(filepath.Join(name, "index.html"))
		}
		if err != nil {
			serveNotFound(w, dir)
			return
		}
		files.ServeHTTP(w, r)
	})
	return router
}

func serveNotFound(w http.ResponseWriter, dir string) {
	body, err := os.ReadFile(filepath.Join(dir, "404.html"))
	if err != nil {
		http.Error(w, "404 page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(body)
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringP("port", "p", "9011", "Port to preview on")
}
