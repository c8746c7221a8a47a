package cmd

import (
	"context"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/airplusnepal/site/handlers"
	"github.com/airplusnepal/site/javascript"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		port := settings.Port
		if cmd.Flags().Changed("port") {
			port, _ = cmd.Flags().GetString("port")
		}
		watch, _ := cmd.Flags().GetBool("watch")

		site, router, err := setupSite()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if watch {
			go watchScripts(ctx, site)
		}

		server := &http.Server{
			Addr:              ":" + port,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("starting server", zap.String("addr", server.Addr), zap.String("origin", site.Origin()))
			errCh <- server.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return errors.Wrap(err, "listen")
		case <-ctx.Done():
		}

		logger.Info("shutdown signal received; draining requests")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	},
}

// watchScripts recompiles the javascript targets whenever their source
// directories change.
func watchScripts(ctx context.Context, site *handlers.Site) {
	seen := map[string]bool{}
	var dirs []string
	for _, target := range site.Manifest.JavascriptTargets {
		dir := filepath.Dir(settings.Path(target.Source))
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return
	}

	logger.Info("watching javascript sources", zap.Strings("dirs", dirs))
	err := javascript.Watch(ctx, logger, dirs, func() error {
		return compileScripts(site)
	})
	if err != nil {
		logger.Error("watcher stopped", zap.Error(err))
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
	serveCmd.Flags().BoolP("watch", "w", false, "Recompile javascript when its sources change")
}
