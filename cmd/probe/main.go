package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"btravel/internal/adapters/observability"
	"btravel/internal/adapters/upstream"
	"btravel/internal/app"
	"btravel/internal/shared"
)

type check struct {
	name string
	run  func(ctx context.Context) error
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("target", cfg.ProbeTarget).
		Int("workers", cfg.ProbeWorkers).
		Msg("probe starting")

	client := upstream.New(cfg.ProbeTarget)
	gateway := app.GatewaySource{Fetcher: app.RemoteGateway{Client: client, URL: cfg.ProbeTarget + "/api/destinations"}}

	checks := []check{
		{"gateway", func(ctx context.Context) error {
			recs, err := gateway.FetchDestinations(ctx)
			if err != nil {
				return err
			}
			log.Info().Int("records", len(recs)).Msg("gateway envelope valid")
			return nil
		}},
		viewCheck(client, cfg.ProbeTarget, "carousel", "/v1/views/carousel"),
		viewCheck(client, cfg.ProbeTarget, "popular", "/v1/views/popular"),
		viewCheck(client, cfg.ProbeTarget, "grid", "/v1/views/grid?filter=all"),
	}

	sem := semaphore.NewWeighted(int64(cfg.ProbeWorkers))
	var (
		wg     sync.WaitGroup
		failed atomic.Int32
	)

	for _, c := range checks {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(c check) {
			defer wg.Done()
			defer sem.Release(1)

			start := time.Now()
			if err := c.run(ctx); err != nil {
				failed.Add(1)
				log.Warn().Str("check", c.name).Dur("took", time.Since(start)).Err(err).Msg("probe failed")
				return
			}
			log.Info().Str("check", c.name).Dur("took", time.Since(start)).Msg("probe ok")
		}(c)
	}

	wg.Wait()
	if n := failed.Load(); n > 0 {
		log.Error().Int32("failed", n).Int("total", len(checks)).Msg("probe completed with failures")
		os.Exit(1)
	}
	log.Info().Int("total", len(checks)).Msg("probe completed")
}

// viewCheck fetches a view snapshot; an error state is reported but is not a probe failure.
func viewCheck(client *upstream.Client, base, name, path string) check {
	return check{name: name, run: func(ctx context.Context) error {
		var snap struct {
			State     app.ViewState      `json:"state"`
			Policy    app.RecoveryPolicy `json:"policy"`
			Items     []json.RawMessage  `json:"items"`
			Error     string             `json:"error"`
			Recovered bool               `json:"recovered"`
		}
		if err := client.FetchJSON(ctx, base+path, &snap); err != nil {
			return err
		}
		ev := log.Info()
		if snap.State == app.StateError {
			ev = log.Warn().Str("error", snap.Error)
		}
		ev.Str("view", name).
			Str("state", string(snap.State)).
			Str("policy", string(snap.Policy)).
			Int("items", len(snap.Items)).
			Bool("recovered", snap.Recovered).
			Msg("view snapshot")
		return nil
	}}
}
