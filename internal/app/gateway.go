package app

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"btravel/internal/adapters/observability"
	"btravel/internal/domain"
)

// GatewayService proxies the upstream destinations list. It makes a single
// deadline-bound attempt and masks every failure behind the canned fallback.
type GatewayService struct {
	upstream domain.UpstreamClient
	timeout  time.Duration
	log      zerolog.Logger
}

func NewGatewayService(u domain.UpstreamClient, timeout time.Duration) *GatewayService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GatewayService{upstream: u, timeout: timeout, log: observability.Component("gateway")}
}

func (s *GatewayService) ListDestinations(ctx context.Context) domain.Envelope {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.log.Info().Str("url", s.upstream.URL()).Msg("attempting to fetch destinations from backend")
	raw, err := s.upstream.ListDestinations(ctx)
	if err != nil {
		reason := fallbackReason(err)
		s.log.Error().Err(err).Str("reason", reason).Str("policy", string(PolicyMask)).Msg("failed to fetch destinations, using fallback data")
		observability.ObserveFallback("gateway", reason)
		return domain.Envelope{Data: slices.Clone(gatewayFallbackJSON)}
	}
	s.log.Info().Int("bytes", len(raw)).Msg("fetched destinations from backend")
	return domain.Envelope{Data: raw}
}

func fallbackReason(err error) string {
	var se *domain.UpstreamStatusError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.As(err, &se):
		return "status"
	case errors.Is(err, domain.ErrUpstreamDecode):
		return "decode"
	default:
		return "transport"
	}
}
