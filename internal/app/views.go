package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"btravel/internal/adapters/observability"
	"btravel/internal/domain"
)

type ViewState string

const (
	StateLoading ViewState = "loading"
	StateError   ViewState = "error"
	StateLoaded  ViewState = "loaded"
)

// Snapshot is everything a view renders from one fetch. A new fetch replaces it wholesale.
type Snapshot[T any] struct {
	View      string         `json:"view"`
	State     ViewState      `json:"state"`
	Policy    RecoveryPolicy `json:"policy"`
	Items     []T            `json:"items"`
	Error     string         `json:"error,omitempty"`
	Recovered bool           `json:"recovered,omitempty"`
}

// View is one fetch-normalize-render unit.
type View[T any] struct {
	name     string
	source   domain.Source
	project  func(domain.DestinationRecord) T
	recovery Recovery[T]
	log      zerolog.Logger
}

func NewView[T any](name string, src domain.Source, project func(domain.DestinationRecord) T, rec Recovery[T]) *View[T] {
	return &View[T]{
		name:     name,
		source:   src,
		project:  project,
		recovery: rec,
		log:      observability.Component("view").With().Str("view", name).Logger(),
	}
}

func (v *View[T]) Name() string { return v.name }

// Loading is the snapshot shown until Load settles.
func (v *View[T]) Loading() Snapshot[T] {
	return Snapshot[T]{View: v.name, State: StateLoading, Policy: v.recovery.Policy(), Items: []T{}}
}

// Load fetches once and settles into loaded or error according to the view's policy.
func (v *View[T]) Load(ctx context.Context) Snapshot[T] {
	snap := v.Loading()
	recs, err := v.source.FetchDestinations(ctx)
	if err == nil {
		snap.State = StateLoaded
		snap.Items = project(recs, v.project)
		observability.ObserveViewState(v.name, string(snap.State))
		return snap
	}

	reason := failureReason(err)
	v.log.Error().Err(err).Str("reason", reason).Str("policy", string(snap.Policy)).Msg("error fetching destinations")
	items, rerr := v.recovery.Recover(ctx, err)
	if rerr != nil {
		snap.State = StateError
		snap.Error = displayError(rerr)
		v.log.Error().Err(rerr).Msg("view has no data to render")
	} else {
		snap.State = StateLoaded
		snap.Recovered = true
		if items != nil {
			snap.Items = items
		}
		observability.ObserveFallback(v.name, reason)
	}
	observability.ObserveViewState(v.name, string(snap.State))
	return snap
}

func displayError(err error) string {
	if errors.Is(err, domain.ErrStaticModule) {
		return "Could not load destinations data"
	}
	return err.Error()
}

// GridPage is the grid snapshot plus the active filter selection.
type GridPage struct {
	Snapshot[GridItem]
	Filter  GridFilter     `json:"filter"`
	Options []FilterOption `json:"options"`
	Visible []GridItem     `json:"visible"`
}

// NewGridPage recomputes the visible subset; it does no I/O.
func NewGridPage(snap Snapshot[GridItem], f GridFilter) GridPage {
	return GridPage{Snapshot: snap, Filter: f, Options: FilterOptions, Visible: Filter(snap.Items, f)}
}

// Catalog holds the three destination views.
type Catalog struct {
	Carousel *View[CarouselCard]
	Popular  *View[PopularCard]
	Grid     *View[GridItem]
}

// NewCatalog wires each view to its source and recovery policy. The carousel reads
// directURL straight from upstream; the other two go through gw.
func NewCatalog(up domain.UpstreamClient, directURL string, gw domain.EnvelopeFetcher, ds domain.StaticDataset) *Catalog {
	grid := NewGridProjector()
	return &Catalog{
		Carousel: NewView("carousel", DirectSource{Client: up, URL: directURL}, ToCarouselCard, Block[CarouselCard]{}),
		Popular: NewView("popular", GatewaySource{Fetcher: gw}, ToPopularCard,
			Substitute[PopularCard]{Items: PopularFallback}),
		Grid: NewView("grid", GatewaySource{Fetcher: gw, RequireNonEmpty: true}, grid.Project,
			StaticModule[GridItem]{Dataset: ds, Project: grid.Project}),
	}
}
