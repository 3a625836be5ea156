// Package render turns view snapshots into embeddable HTML fragments.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yosssi/gohtml"

	"btravel/internal/app"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Slides per view keyed by minimum viewport width.
const (
	carouselBreakpoints = `{"540":{"slidesPerView":2,"spaceBetween":20},"768":{"slidesPerView":2,"spaceBetween":22},"1024":{"slidesPerView":3},"1200":{"slidesPerView":6}}`
	popularBreakpoints  = `{"500":{"slidesPerView":2,"spaceBetween":20},"768":{"slidesPerView":2,"spaceBetween":22},"1024":{"slidesPerView":3},"1200":{"slidesPerView":4}}`
)

type Renderer struct {
	t      *template.Template
	pretty bool
}

// New parses the bundled templates. With pretty set, fragments are re-indented.
func New(pretty bool) (*Renderer, error) {
	funcs := template.FuncMap{
		"carouselBreakpoints": func() string { return carouselBreakpoints },
		"popularBreakpoints":  func() string { return popularBreakpoints },
		"placeholder":         func() string { return app.PopularPlaceholder },
		"unoptimized":         func(src string) bool { return !strings.HasPrefix(src, "/") },
	}
	t, err := template.New("fragments").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{t: t, pretty: pretty}, nil
}

func (r *Renderer) Carousel(w io.Writer, s app.Snapshot[app.CarouselCard]) error {
	return r.execute(w, "carousel", s)
}

func (r *Renderer) Popular(w io.Writer, s app.Snapshot[app.PopularCard]) error {
	return r.execute(w, "popular", s)
}

func (r *Renderer) Grid(w io.Writer, p app.GridPage) error {
	return r.execute(w, "grid", p)
}

// execute renders into a buffer first so a template error never leaves a half-written fragment.
func (r *Renderer) execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	out := buf.Bytes()
	if r.pretty {
		out = gohtml.FormatBytes(out)
	}
	_, err := w.Write(out)
	return err
}
