// Package preview serves the built page locally and rebuilds it whenever the
// record documents or the template change.
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/hautu-waka/wakabuild/internal/config"
	"github.com/hautu-waka/wakabuild/internal/logfields"
	"github.com/hautu-waka/wakabuild/internal/metrics"
	"github.com/hautu-waka/wakabuild/internal/site"
)

// Server watches the data directory and template file and serves the output.
type Server struct {
	cfg      *config.Config
	recorder *metrics.PrometheusRecorder

	mu           sync.RWMutex
	lastErr      error
	hasGoodBuild bool
}

// New creates a preview server with its own metrics registry.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg:      cfg,
		recorder: metrics.NewPrometheusRecorder(nil),
	}
}

// Run builds once, then serves until ctx is canceled. Changes under the data
// directory or to the template trigger a debounced rebuild; a failing rebuild
// keeps serving the last good page and reports the error on /healthz.
func (s *Server) Run(ctx context.Context, port int) error {
	s.rebuild()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(s.cfg.Data.Directory); err != nil {
		return fmt.Errorf("watch data directory %s: %w", s.cfg.Data.Directory, err)
	}
	if err := watcher.Add(filepath.Dir(s.cfg.Template)); err != nil {
		return fmt.Errorf("watch template directory: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", slog.Int("port", port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	debounce := s.cfg.Preview.Debounce.Std()
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		case err := <-errChan:
			return fmt.Errorf("preview server: %w", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			slog.Debug("Change detected", logfields.Path(event.Name))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			s.rebuild()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

func (s *Server) rebuild() {
	report, err := site.Run(s.cfg, s.recorder)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		slog.Error("Build failed", logfields.Error(err))
		s.lastErr = err
		return
	}
	s.lastErr = nil
	s.hasGoodBuild = true
	slog.Info("Rebuilt page", logfields.BuildID(report.BuildID))
}

func (s *Server) status() (lastErr error, hasGoodBuild bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr, s.hasGoodBuild
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handlePage)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.Handle("/metrics", s.recorder.HTTPHandler())
	return mux
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	_, good := s.status()
	if !good {
		http.Error(w, "no successful build yet", http.StatusServiceUnavailable)
		return
	}
	http.ServeFile(w, r, s.cfg.Output.File)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	lastErr, good := s.status()
	status := map[string]any{
		"status":         "ok",
		"has_good_build": good,
	}
	code := http.StatusOK
	if lastErr != nil {
		status["status"] = "degraded"
		status["last_error"] = lastErr.Error()
		if !good {
			code = http.StatusServiceUnavailable
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
