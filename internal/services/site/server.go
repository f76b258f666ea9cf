// Package site assembles the portfolio site: content snapshot, preference
// store, composed feature modules, and the HTTP server lifecycle.
package site

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/mvaleri/atrium/internal/content"
	"github.com/mvaleri/atrium/internal/platform/timeouts"
	"github.com/mvaleri/atrium/internal/services/site/app"
	module "github.com/mvaleri/atrium/internal/services/site/module"
	"github.com/mvaleri/atrium/internal/services/site/modules"
	"github.com/mvaleri/atrium/internal/services/site/modules/prefs"
	"github.com/mvaleri/atrium/internal/services/site/platform/httpx"
	"github.com/mvaleri/atrium/internal/services/site/platform/observability"
	"github.com/mvaleri/atrium/internal/services/site/platform/requestmeta"
	"github.com/mvaleri/atrium/internal/services/site/routepath"
	"github.com/mvaleri/atrium/internal/services/site/static"
	"github.com/mvaleri/atrium/internal/services/site/storage"
	"github.com/mvaleri/atrium/internal/services/site/storage/sqlite"
	"github.com/mvaleri/atrium/internal/watch"
)

// Server hosts the site HTTP server and its supporting resources.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
	watcher    *watch.Watcher
	logger     *log.Logger
}

// NewHandler assembles the site's root handler from a snapshot provider and
// an optional store.
//
// This is the test-oriented entrypoint; NewServer adds content loading, the
// preference store and the server lifecycle around it.
func NewHandler(cfg Config, snapshot module.SnapshotFunc, store storage.Store, logger *log.Logger) (http.Handler, error) {
	if logger == nil {
		logger = log.Default()
	}
	root, err := app.Compose(app.ComposeInput{
		Dependencies: module.Dependencies{
			Snapshot:     snapshot,
			Store:        store,
			Logger:       logger,
			AssetBaseURL: strings.TrimSpace(cfg.AssetBaseURL),
		},
		Modules: modules.DefaultModules(),
		RequestSchemePolicy: requestmeta.SchemePolicy{
			TrustForwardedProto: cfg.TrustForwardedProto,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc(routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.Handle("/", root)

	handler := httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		prefs.Hydrate(store),
	)
	return otelhttp.NewHandler(handler, "site"), nil
}

// NewServer builds a configured site server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	doc := content.Default()
	contentPath := strings.TrimSpace(cfg.ContentPath)
	if contentPath != "" {
		loaded, err := content.Load(contentPath)
		if err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
		doc = loaded
	}
	holder := NewSnapshotHolder(doc)

	var store storage.Store
	var sqliteStore *sqlite.Store
	if dbPath := strings.TrimSpace(cfg.DBPath); dbPath != "" {
		opened, err := sqlite.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open preference store: %w", err)
		}
		sqliteStore = opened
		store = opened
	}

	handler, err := NewHandler(cfg, holder.Snapshot, store, logger)
	if err != nil {
		if sqliteStore != nil {
			_ = sqliteStore.Close()
		}
		return nil, err
	}

	var watcher *watch.Watcher
	if cfg.WatchContent && contentPath != "" {
		watcher, err = watch.New(watch.Config{
			Path:   contentPath,
			Apply:  holder.Set,
			Logger: logger,
		})
		if err != nil {
			if sqliteStore != nil {
				_ = sqliteStore.Close()
			}
			return nil, fmt.Errorf("watch content: %w", err)
		}
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      sqliteStore,
		watcher:    watcher,
		logger:     logger,
	}, nil
}

// ListenAndServe runs the HTTP server and content watcher until ctx ends.
//
// On cancellation it performs a bounded shutdown so in-flight requests are
// drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("site server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	group, groupCtx := errgroup.WithContext(ctx)
	if s.watcher != nil {
		group.Go(func() error {
			return s.watcher.Run(groupCtx)
		})
	}
	group.Go(func() error {
		serveErr := make(chan error, 1)
		s.logger.Printf("site listening on %s", s.httpAddr)
		go func() {
			serveErr <- s.httpServer.ListenAndServe()
		}()

		select {
		case <-groupCtx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
			defer cancel()
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown http server: %w", err)
			}
			return nil
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve http: %w", err)
		}
	})
	return group.Wait()
}

// Close releases the watcher and preference store held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.logger.Printf("close content watcher: %v", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Printf("close preference store: %v", err)
		}
	}
}
