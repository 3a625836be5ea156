package app

import (
	"context"
	"errors"
	"fmt"

	"btravel/internal/domain"
)

// RecoveryPolicy names how a component reacts when live data cannot be used.
// Each component keeps its own policy; they are intentionally not unified.
type RecoveryPolicy string

const (
	// PolicyMask answers with canned data under a success status (gateway).
	PolicyMask RecoveryPolicy = "mask"
	// PolicyBlock shows a terminal error state (direct carousel).
	PolicyBlock RecoveryPolicy = "block"
	// PolicySubstitute silently renders a fixed dataset (popular carousel).
	PolicySubstitute RecoveryPolicy = "substitute"
	// PolicyStaticModule falls back to the bundled dataset, then errors (grid).
	PolicyStaticModule RecoveryPolicy = "static_module"
)

// Recovery turns a fetch failure into replacement items or a final error.
type Recovery[T any] interface {
	Policy() RecoveryPolicy
	Recover(ctx context.Context, cause error) ([]T, error)
}

// Block never recovers.
type Block[T any] struct{}

func (Block[T]) Policy() RecoveryPolicy { return PolicyBlock }

func (Block[T]) Recover(_ context.Context, cause error) ([]T, error) { return nil, cause }

// Substitute replaces any failure with Items().
type Substitute[T any] struct {
	Items func() []T
}

func (Substitute[T]) Policy() RecoveryPolicy { return PolicySubstitute }

func (s Substitute[T]) Recover(context.Context, error) ([]T, error) { return s.Items(), nil }

// StaticModule loads the local dataset and projects it like live data.
type StaticModule[T any] struct {
	Dataset domain.StaticDataset
	Project func(domain.DestinationRecord) T
}

func (StaticModule[T]) Policy() RecoveryPolicy { return PolicyStaticModule }

func (s StaticModule[T]) Recover(context.Context, error) ([]T, error) {
	recs, err := s.Dataset.Destinations()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStaticModule, err)
	}
	return project(recs, s.Project), nil
}

// failureReason labels a view-level failure for metrics and logs.
func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidFormat), errors.Is(err, domain.ErrNotArray), errors.Is(err, domain.ErrEmpty):
		return "validation"
	case errors.Is(err, domain.ErrStaticModule):
		return "static"
	}
	return fallbackReason(err)
}
