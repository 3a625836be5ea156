package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"btravel/internal/app"
	"btravel/internal/domain"
	"btravel/internal/render"
)

type Handlers struct {
	Gateway  domain.Gateway
	Catalog  *app.Catalog
	Renderer *render.Renderer
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/api/destinations", h.listDestinations)

	s.mux.Get("/v1/views/carousel", h.carouselView)
	s.mux.Get("/v1/views/popular", h.popularView)
	s.mux.Get("/v1/views/grid", h.gridView)

	s.mux.Get("/partials/carousel", h.carouselPartial)
	s.mux.Get("/partials/popular", h.popularPartial)
	s.mux.Get("/partials/grid", h.gridPartial)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not encode response")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write view body")
	}
}

// listDestinations always answers 200; upstream failures are already masked by the gateway.
func (h *Handlers) listDestinations(w http.ResponseWriter, r *http.Request) {
	env := h.Gateway.ListDestinations(r.Context())
	body, err := json.Marshal(env)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal destinations envelope")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "could not encode destinations")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write destinations body")
	}
}

// gridFilter reads ?filter=, answering 400 itself when the value is not one of the tabs.
func gridFilter(w http.ResponseWriter, r *http.Request) (app.GridFilter, bool) {
	f, err := app.ParseGridFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", "filter must be one of all, europe, asia, north_america")
		return "", false
	}
	return f, true
}

func (h *Handlers) carouselView(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, h.Catalog.Carousel.Load(r.Context()))
}

func (h *Handlers) popularView(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, h.Catalog.Popular.Load(r.Context()))
}

func (h *Handlers) gridView(w http.ResponseWriter, r *http.Request) {
	f, ok := gridFilter(w, r)
	if !ok {
		return
	}
	writeJSONWithETag(w, r, app.NewGridPage(h.Catalog.Grid.Load(r.Context()), f))
}

// ---- HTML fragments ----

// placeholderOnly reports whether the caller asked for the loading state only.
func placeholderOnly(r *http.Request) bool {
	return r.URL.Query().Get("placeholder") == "1"
}

func writeHTML(w http.ResponseWriter, name string, fn func(http.ResponseWriter) error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fn(w); err != nil {
		log.Error().Err(err).Str("fragment", name).Msg("render failed")
	}
}

func (h *Handlers) carouselPartial(w http.ResponseWriter, r *http.Request) {
	v := h.Catalog.Carousel
	snap := v.Loading()
	if !placeholderOnly(r) {
		snap = v.Load(r.Context())
	}
	writeHTML(w, v.Name(), func(w http.ResponseWriter) error { return h.Renderer.Carousel(w, snap) })
}

func (h *Handlers) popularPartial(w http.ResponseWriter, r *http.Request) {
	v := h.Catalog.Popular
	snap := v.Loading()
	if !placeholderOnly(r) {
		snap = v.Load(r.Context())
	}
	writeHTML(w, v.Name(), func(w http.ResponseWriter) error { return h.Renderer.Popular(w, snap) })
}

func (h *Handlers) gridPartial(w http.ResponseWriter, r *http.Request) {
	f, ok := gridFilter(w, r)
	if !ok {
		return
	}
	v := h.Catalog.Grid
	snap := v.Loading()
	if !placeholderOnly(r) {
		snap = v.Load(r.Context())
	}
	writeHTML(w, v.Name(), func(w http.ResponseWriter) error { return h.Renderer.Grid(w, app.NewGridPage(snap, f)) })
}
