package templates

import (
	"context"
	"html/template"
	"net/http"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/platform/icons"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
)

// IndexView is the data rendered by ProjectIndex.
type IndexView struct {
	Loc      Localizer
	Projects []catalog.Project
	Counts   catalog.Counts
	// Status is the active filter; empty shows every project.
	Status   catalog.Status
	Backdrop string
}

// ProjectIndex renders the full, optionally filtered project list.
func ProjectIndex(v IndexView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.raw(`<section class="project-index"><div class="container">`)
		h.element("h1", "", T(v.Loc, "site.index.title"))

		h.raw(`<nav class="status-filter">`)
		writeFilterLink(h, "", v.Status == "", T(v.Loc, "site.index.filter_all")+" ("+itoa(v.Counts.Total())+")")
		for _, status := range catalog.Statuses() {
			writeFilterLink(h, string(status), v.Status == status, T(v.Loc, countKey(status), v.Counts.For(status)))
		}
		h.raw("</nav>")

		if len(v.Projects) == 0 {
			h.element("p", "empty-state", T(v.Loc, "site.index.empty"))
		}
		h.raw(`<ul class="project-grid">`)
		opts := CardOptions{Loc: v.Loc, Backdrop: v.Backdrop}
		for _, project := range v.Projects {
			h.raw(`<li class="project-grid__item">`)
			h.render(ctx, ProjectCard(project, opts))
			h.raw(`<a class="details-link"`)
			h.href("href", routepath.Project(project.ID))
			h.raw(">")
			h.text(T(v.Loc, "site.index.details"))
			h.raw("</a></li>")
		}
		h.raw("</ul></div></section>")
	})
}

func writeFilterLink(h *htmlWriter, status string, active bool, label string) {
	h.raw(`<a class="pill"`)
	h.href("href", routepath.ProjectsWithStatus(status))
	if active {
		h.raw(` aria-current="page"`)
	}
	h.raw(">")
	h.text(label)
	h.raw("</a>")
}

// DetailView is the data rendered by ProjectDetail.
type DetailView struct {
	Loc     Localizer
	Project catalog.Project
	// LongHTML is the sanitized long description.
	LongHTML template.HTML
}

// ProjectDetail renders one project's full description.
func ProjectDetail(v DetailView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		p := v.Project
		h.raw(`<article class="project-detail container"`)
		h.attr("data-project-id", itoa(p.ID))
		h.raw(">")
		h.raw(`<a class="back-link"`)
		h.href("href", routepath.ProjectsPrefix)
		h.raw(">")
		h.icon(icons.ArrowLeft, "")
		h.text(T(v.Loc, "site.detail.back"))
		h.raw("</a>")
		h.element("h1", "", p.Title)
		h.raw(`<span class="pill"`)
		h.attr("data-status", string(p.Status))
		h.raw(">")
		h.text(T(v.Loc, StatusLabelKey(p.Status)))
		h.raw("</span>")
		h.element("p", "lead", p.Description)
		writeTags(h, p.Tags)
		if v.LongHTML != "" {
			h.raw(`<div class="prose">`)
			writeTrustedHTML(h, v.LongHTML)
			h.raw("</div>")
		}
		h.raw(`<div class="project-card__actions">`)
		writeProjectActions(h, p, v.Loc)
		h.raw("</div></article>")
	})
}

// ErrorPageTitle returns the localized title for an error status.
func ErrorPageTitle(status int, loc Localizer) string {
	switch {
	case status == http.StatusNotFound:
		return T(loc, "site.error.title_not_found")
	case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
		return T(loc, "site.error.title_bad_request")
	default:
		return T(loc, "site.error.title_server_error")
	}
}

// ErrorPage renders the body of an error response. message overrides the
// default copy for status when non-empty.
func ErrorPage(status int, message string, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if message == "" {
			switch {
			case status == http.StatusNotFound:
				message = T(loc, "site.error.message_not_found")
			case status >= http.StatusBadRequest && status < http.StatusInternalServerError:
				message = T(loc, "site.error.message_bad_request")
			default:
				message = T(loc, "site.error.message_server_error")
			}
		}
		h.raw(`<section class="error-state container"`)
		h.attr("data-status-code", itoa(status))
		h.raw(">")
		h.element("p", "error-state__code", itoa(status))
		h.element("h1", "", ErrorPageTitle(status, loc))
		h.element("p", "", message)
		h.raw(`<a class="button button--primary"`)
		h.href("href", routepath.Root)
		h.raw(">")
		h.text(T(loc, "site.error.back_home"))
		h.raw("</a></section>")
	})
}
