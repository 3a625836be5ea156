package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	server "btravel/internal/adapters/http_server"
	"btravel/internal/adapters/observability"
	"btravel/internal/adapters/upstream"
	"btravel/internal/app"
	"btravel/internal/render"
	"btravel/internal/shared"
	"btravel/internal/storage/static"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// deps
	client := upstream.New(cfg.APIBaseURL)
	gw := app.NewGatewayService(client, cfg.UpstreamTimeout)
	catalog := app.NewCatalog(client, cfg.DirectURL, app.LocalGateway{Gateway: gw}, static.New())
	rnd, err := render.New(cfg.PrettyHTML)
	if err != nil {
		log.Fatal().Err(err).Msg("templates failed to parse")
	}

	// http
	srv := server.New(float64(cfg.RateLimitRPS), cfg.RateLimitBurst)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Gateway: gw, Catalog: catalog, Renderer: rnd})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().
			Str("addr", cfg.HTTPAddr).
			Str("upstream", cfg.APIBaseURL).
			Str("direct", cfg.DirectURL).
			Dur("upstream_timeout", cfg.UpstreamTimeout).
			Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-stop
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
