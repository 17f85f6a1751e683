// Package pagerender centralizes full-page rendering for site modules.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/services/site/module"
	"github.com/nrdn26/portfolio/internal/services/site/platform/httpx"
	sitei18n "github.com/nrdn26/portfolio/internal/services/site/platform/i18n"
	"github.com/nrdn26/portfolio/internal/services/site/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/nrdn26/portfolio/internal/services/site/platform/pagerender"

// Page describes one page response.
type Page struct {
	Title       string
	Description string
	StatusCode  int
	// Landing marks the single-page landing document.
	Landing bool
	// Fragment builds the main content once the request localizer is known.
	Fragment func(templates.Localizer) templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page inside the shared document layout.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}

	loc, lang := sitei18n.ResolveLocalizer(w, r)
	var fragment templ.Component = emptyComponent{}
	if page.Fragment != nil {
		if c := page.Fragment(loc); c != nil {
			fragment = c
		}
	}

	ctx, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "pagerender.WritePage")
	defer span.End()
	span.SetAttributes(
		attribute.String("page.title", page.Title),
		attribute.Int("page.status", statusCode),
		attribute.String("page.lang", lang),
	)

	chrome := templates.Chrome{
		Title:       page.Title,
		Description: page.Description,
		Lang:        lang,
		Loc:         loc,
		Profile:     deps.Profile,
		Theme:       deps.Theme,
		Landing:     page.Landing,
		Year:        deps.Year(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.Layout(chrome).Render(templ.WithChildren(ctx, fragment), w); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		return err
	}
	return nil
}
