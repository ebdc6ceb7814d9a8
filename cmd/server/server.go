package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	latvian "github.com/cours-de-latin/latvian"
	"github.com/cours-de-latin/latvian/internal/config"
)

// reloadDebounce collapses the bursts of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

type server struct {
	cfg *config.Config
	log *zap.Logger

	// reg is replaced as a whole when special-case files are reloaded.
	reg atomic.Pointer[latvian.Registry]
	// cache is nil when cache_size is 0.
	cache *lru.Cache[string, latvian.Paradigm]
	// gen is part of every cache key and moves on each registry change.
	gen atomic.Uint64
}

// newServer loads the special-case files named by cfg on top of the
// built-in data.
func newServer(cfg *config.Config, log *zap.Logger) (*server, error) {
	s := &server{cfg: cfg, log: log}
	reg, err := latvian.LoadRegistry(cfg.SpecialCases...)
	if err != nil {
		return nil, err
	}
	s.reg.Store(reg)

	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, latvian.Paradigm](cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("create paradigm cache: %w", err)
		}
		s.cache = cache
	}
	log.Info("special cases loaded",
		zap.Int("entries", reg.Len()),
		zap.Strings("files", cfg.SpecialCases))
	return s, nil
}

func (s *server) registry() *latvian.Registry {
	return s.reg.Load()
}

func (s *server) cacheKey(word string, cfg latvian.Config) string {
	return fmt.Sprintf("%d|%s|%d|%t|%t|%t", s.gen.Load(), word, cfg.OverrideGender, cfg.ProperNoun,
		cfg.UseArWithInstrumental, cfg.UsePalatalizedR)
}

// paradigm declines word, serving repeated requests from the cache. Cached
// paradigms are shared and must not be modified.
func (s *server) paradigm(word string, cfg latvian.Config) (latvian.Paradigm, error) {
	key := s.cacheKey(word, cfg)
	if s.cache != nil {
		if p, ok := s.cache.Get(key); ok {
			return p, nil
		}
	}
	n, err := s.registry().NewNoun(word, cfg)
	if err != nil {
		return latvian.Paradigm{}, err
	}
	p, err := n.Paradigm()
	if err != nil {
		return latvian.Paradigm{}, err
	}
	if s.cache != nil {
		s.cache.Add(key, p)
	}
	return p, nil
}

// purge drops every cached paradigm after the registry changed.
func (s *server) purge() {
	s.gen.Add(1)
	if s.cache != nil {
		s.cache.Purge()
	}
}

// reload rebuilds the registry from the built-in data and the configured
// files. Entries registered through the API are dropped. On failure the
// current registry stays in place.
func (s *server) reload() error {
	reg, err := latvian.LoadRegistry(s.cfg.SpecialCases...)
	if err != nil {
		return err
	}
	s.reg.Store(reg)
	s.purge()
	return nil
}

func (s *server) routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
		s.requestLogger,
		cors.New(cors.Options{
			AllowedOrigins: s.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
		}).Handler,
	)

	r.Get("/healthz", handleHealth(s))
	r.Route("/api", func(r chi.Router) {
		r.Get("/declension", handleDeclension(s))
		r.Get("/paradigm", handleParadigm(s))
		r.Post("/paradigms", handleParadigms(s))
		r.Post("/special-cases", handleRegister(s))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, r.Method+" not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "no such endpoint")
	})
	return r
}

// requestLogger logs one line per request.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *server) Serve(ctx context.Context) error {
	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.routes(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.Watch && len(s.cfg.SpecialCases) > 0 {
		eg.Go(func() error {
			return s.watchFiles(egctx)
		})
	}

	eg.Go(func() error {
		s.log.Info("listening", zap.String("addr", s.cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchFiles reloads the special-case files when one of them changes.
// Parent directories are watched, since editors often replace a file
// instead of writing it in place.
func (s *server) watchFiles(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	watched := make(map[string]bool, len(s.cfg.SpecialCases))
	dirs := make(map[string]bool)
	for _, path := range s.cfg.SpecialCases {
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			s.log.Error("failed to watch directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	var debounceTimer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if abs, _ := filepath.Abs(event.Name); !watched[abs] {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(reloadDebounce, func() {
				if err := s.reload(); err != nil {
					s.log.Error("reload special cases", zap.String("file", event.Name), zap.Error(err))
					return
				}
				s.log.Info("special cases reloaded",
					zap.String("file", event.Name),
					zap.Int("entries", s.registry().Len()))
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("watcher error", zap.Error(err))
		}
	}
}
