package templates

import (
	"context"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/platform/icons"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
)

// CardOptions tunes project card rendering.
type CardOptions struct {
	Loc Localizer
	// Backdrop is the decorative background image path.
	Backdrop string
}

// ProjectCard renders one project summary. When either external link is
// unavailable the card shows a single disabled indicator instead of links.
func ProjectCard(p catalog.Project, opts CardOptions) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<article class="project-card"`)
		h.attr("data-project-id", itoa(p.ID))
		h.attr("data-status", string(p.Status))
		h.raw(">")
		h.raw(`<div class="project-card__backdrop" aria-hidden="true"`)
		if opts.Backdrop != "" {
			h.attr("style", "background-image:url('"+string(templ.URL(opts.Backdrop))+"')")
		}
		h.raw("></div>")
		h.raw(`<div class="project-card__body">`)
		h.element("h3", "project-card__title", p.Title)
		h.element("p", "project-card__description", p.Description)
		writeTags(h, p.Tags)
		h.raw("</div>")
		h.raw(`<div class="project-card__actions">`)
		writeProjectActions(h, p, opts.Loc)
		h.raw("</div></article>")
	})
}

func writeTags(h *htmlWriter, tags []string) {
	if len(tags) == 0 {
		return
	}
	h.raw(`<ul class="tag-list">`)
	for _, tag := range tags {
		h.element("li", "badge", tag)
	}
	h.raw("</ul>")
}

func writeProjectActions(h *htmlWriter, p catalog.Project, loc Localizer) {
	if !p.LinksAvailable() {
		h.raw(`<span class="button button--secondary button--disabled" role="status" aria-disabled="true" data-coming-soon>`)
		h.icon(icons.Clock, "")
		h.text(T(loc, "site.card.coming_soon"))
		h.raw("</span>")
		return
	}
	h.externalLink(p.GitHubURL, "button button--secondary", "")
	h.icon(icons.GitHub, "")
	h.text(T(loc, "site.card.github"))
	h.raw("</a>")
	h.externalLink(p.LiveURL, "button button--secondary", "")
	h.icon(icons.Globe, "")
	h.text(T(loc, "site.card.live"))
	h.raw("</a>")
}

// StatusLabelKey returns the message key naming status.
func StatusLabelKey(status catalog.Status) string {
	switch status {
	case catalog.StatusInProgress:
		return "site.status.in_progress"
	case catalog.StatusPlanned:
		return "site.status.planned"
	default:
		return "site.status.completed"
	}
}

func countKey(status catalog.Status) string {
	switch status {
	case catalog.StatusInProgress:
		return "site.projects.count_in_progress"
	case catalog.StatusPlanned:
		return "site.projects.count_planned"
	default:
		return "site.projects.count_completed"
	}
}

// StatusPills renders one count pill per status.
func StatusPills(counts catalog.Counts, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<div class="status-pills">`)
		for _, status := range catalog.Statuses() {
			h.raw(`<span class="pill"`)
			h.attr("data-status", string(status))
			h.raw(">")
			h.text(T(loc, countKey(status), counts.For(status)))
			h.raw("</span>")
		}
		h.raw("</div>")
	})
}
