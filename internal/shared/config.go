package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DefaultAPIBaseURL      = "http://localhost:8000"
	DefaultDirectURL       = "http://localhost:8000/api/destinations/"
	DefaultUpstreamTimeout = 5000 * time.Millisecond
)

type Config struct {
	AppEnv          string
	LogLevel        string
	HTTPAddr        string
	MetricsAddr     string
	APIBaseURL      string
	DirectURL       string
	UpstreamTimeout time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
	PrettyHTML      bool

	// cmd/probe
	ProbeTarget  string
	ProbeWorkers int
}

func Load() Config {
	// best-effort; a missing .env is the normal case in containers
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric env value")
		}
		return def
	}
	c := Config{
		AppEnv:          env("APP_ENV", "prod"),
		LogLevel:        env("LOG_LEVEL", "info"),
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		APIBaseURL:      strings.TrimRight(env("API_BASE_URL", DefaultAPIBaseURL), "/"),
		DirectURL:       env("DESTINATIONS_DIRECT_URL", DefaultDirectURL),
		UpstreamTimeout: time.Duration(atoi("UPSTREAM_TIMEOUT_MS", int(DefaultUpstreamTimeout/time.Millisecond))) * time.Millisecond,
		RateLimitRPS:    atoi("RATE_LIMIT_RPS", 20),
		RateLimitBurst:  atoi("RATE_LIMIT_BURST", 40),
		ProbeTarget:     strings.TrimRight(env("PROBE_TARGET", "http://localhost:8080"), "/"),
		ProbeWorkers:    atoi("PROBE_WORKERS", 4),
	}
	if c.ProbeWorkers < 1 {
		c.ProbeWorkers = 1
	}
	c.PrettyHTML = boolEnv("PRETTY_HTML", c.IsDev())
	if os.Getenv("API_BASE_URL") == "" {
		log.Warn().Str("default", DefaultAPIBaseURL).Msg("API_BASE_URL is empty, using default")
	}
	return c
}

func (c Config) IsDev() bool { return c.AppEnv == "dev" || c.AppEnv == "development" }

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func boolEnv(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
