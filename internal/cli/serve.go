package cli

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/conestack/webresource/pkg/cache"
	"github.com/conestack/webresource/pkg/manifest"
	"github.com/conestack/webresource/pkg/observability"
	"github.com/conestack/webresource/pkg/resolver"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string        // listen address
	backend   string        // page cache backend: memory, redis, none
	redisAddr string        // redis address for --cache redis
	ttl       time.Duration // page cache TTL
}

// newServeCmd creates the serve command. It runs a development HTTP
// server that exposes the manifest's resource files and an index page
// with the rendered tags. Rendered pages are cached; the cache backend
// is selectable so multiple worker processes can share one cache.
func newServeCmd() *cobra.Command {
	opts := serveOpts{
		addr:    ":8080",
		backend: "memory",
		ttl:     30 * time.Second,
	}

	cmd := &cobra.Command{
		Use:   "serve [manifest]",
		Short: "Run a development server for the declared resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.addr, "addr", "a", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.backend, "cache", opts.backend, "page cache backend: memory (default), redis, none")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "localhost:6379", "redis address for --cache redis")
	cmd.Flags().DurationVar(&opts.ttl, "cache-ttl", opts.ttl, "page cache TTL")

	return cmd
}

func newPageCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	switch opts.backend {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		return cache.NewRedisCache(ctx, opts.redisAddr)
	case "none":
		return cache.NewNullCache(), nil
	}
	return nil, fmt.Errorf("unsupported cache backend: %s", opts.backend)
}

func runServe(ctx context.Context, path string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	group, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", path, err)
	}
	res, err := resolver.New(group)
	if err != nil {
		return err
	}
	// Resolve once up front so structural errors (conflicts, missing or
	// circular dependencies) surface before the server starts.
	resources, err := res.Resolve()
	if err != nil {
		return err
	}

	pages, err := newPageCache(ctx, opts)
	if err != nil {
		return err
	}
	defer pages.Close()

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	// One route per resource file, addressed exactly as the rendered
	// tags reference it (including path inheritance and unique keys).
	for _, rsc := range resources {
		if rsc.URLOnly() {
			continue
		}
		href, err := rsc.URL("")
		if err != nil {
			return fmt.Errorf("resource %q: %w", rsc.Name(), err)
		}
		filePath, err := rsc.FilePath()
		if err != nil {
			return fmt.Errorf("resource %q: %w", rsc.Name(), err)
		}
		route := href
		if !strings.HasPrefix(route, "/") {
			route = "/" + route
		}
		logger.Debug("mounting resource", "route", route, "file", filePath)
		r.Get(route, func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filePath)
		})
	}

	renderer := resolver.NewGracefulRenderer(res, "", logger)
	pageKey := cache.Key("page", path)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if data, ok, err := pages.Get(req.Context(), pageKey); err == nil && ok {
			observability.Cache().OnCacheHit("page")
			w.Write(data)
			return
		}
		observability.Cache().OnCacheMiss("page")
		rendered, err := renderer.Render()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		page := []byte("<!DOCTYPE html>\n<html>\n<head>\n" + rendered + "\n</head>\n<body></body>\n</html>\n")
		if err := pages.Set(req.Context(), pageKey, page, opts.ttl); err != nil {
			logger.Warn("page cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet("page", len(page))
		}
		w.Write(page)
	})

	srv := &http.Server{Addr: opts.addr, Handler: r}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	logger.Info("serving resources", "addr", opts.addr, "resources", len(resources))
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
