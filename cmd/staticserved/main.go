package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/staticserve/core/config"
	"github.com/dmitrymomot/staticserve/core/handler"
	"github.com/dmitrymomot/staticserve/core/loader"
	"github.com/dmitrymomot/staticserve/core/logger"
	"github.com/dmitrymomot/staticserve/core/response"
	"github.com/dmitrymomot/staticserve/core/server"
	"github.com/dmitrymomot/staticserve/core/static"
	"github.com/dmitrymomot/staticserve/integration/storage/s3"
	"github.com/dmitrymomot/staticserve/middleware"
	"github.com/dmitrymomot/staticserve/pkg/async"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)
	var srvCfg server.Config
	config.MustLoad(&srvCfg)

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	src, err := newSource(ctx, cfg)
	if err != nil {
		log.Error("failed to create resource source", logger.Component("source"), logger.Error(err))
		os.Exit(1)
	}

	mount := static.NewConfig(src).
		WithPrefix(cfg.Prefix).
		WithBasePath(cfg.BasePath).
		WithPreferGzip(cfg.PreferGzip).
		WithPool(async.NewPool(cfg.PoolSize)).
		WithLogger(log.With("component", "static"))

	endpoint := handler.Chain(
		renderErrors(static.Serve[handler.Context](mount)),
		middleware.RequestID[handler.Context](),
		middleware.LoggingWithConfig[handler.Context](middleware.LoggingConfig{Logger: log}),
	)

	srv, err := server.NewFromConfig(srvCfg, server.WithLogger(log.With("component", "server")))
	if err != nil {
		log.Error("failed to create server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, httpHandler(endpoint)))

	if err := eg.Wait(); err != nil {
		log.Error("server exited with error", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("server stopped")
}

// newSource builds the resource loader selected by configuration.
func newSource(ctx context.Context, cfg appConfig) (loader.Loader, error) {
	switch cfg.Source {
	case "s3":
		var s3cfg s3.Config
		if err := config.Load(&s3cfg); err != nil {
			return nil, err
		}
		return s3.New(ctx, s3cfg)
	default:
		return loader.NewDir(cfg.Root)
	}
}

// renderErrors writes handler errors at the innermost layer so the
// middleware stack observes the real status code.
func renderErrors(next handler.HandlerFunc[handler.Context]) handler.HandlerFunc[handler.Context] {
	return func(ctx handler.Context) handler.Response {
		resp := next(ctx)
		return func(w http.ResponseWriter, r *http.Request) error {
			if err := resp(w, r); err != nil {
				response.WriteError(w, err)
			}
			return nil
		}
	}
}

// httpHandler adapts the typed handler chain to net/http.
func httpHandler(h handler.HandlerFunc[handler.Context]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := handler.NewContext(w, r)
		if err := h(ctx)(w, r); err != nil {
			response.WriteError(w, err)
		}
	})
}
