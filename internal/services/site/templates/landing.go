package templates

import (
	"context"
	"html/template"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/platform/icons"
	"github.com/nrdn26/portfolio/internal/services/site/catalog"
	"github.com/nrdn26/portfolio/internal/services/site/profile"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
	"github.com/nrdn26/portfolio/internal/services/site/viewstate"
)

// LandingLimit is the number of project cards shown on the landing page.
const LandingLimit = 6

// LandingView is the data rendered by Landing.
type LandingView struct {
	Loc     Localizer
	Profile *profile.Profile
	// Projects holds the first LandingLimit catalog entries.
	Projects []catalog.Project
	Counts   catalog.Counts
	// Total is the full catalog size.
	Total int
}

// ShowViewAll reports whether the catalog has more projects than the landing
// page shows.
func (v LandingView) ShowViewAll() bool {
	return v.Total > LandingLimit
}

// Landing renders the hero, projects, about, and contact sections.
func Landing(v LandingView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		h.render(ctx, Hero(v))
		h.render(ctx, ProjectsSection(v))
		h.render(ctx, About(v.Profile, v.Loc))
		h.render(ctx, ContactSection(v.Profile, v.Loc))
	})
}

func openSection(h *htmlWriter, id viewstate.Section, class string) {
	h.raw("<section")
	h.attr("id", string(id))
	h.attr("class", class)
	h.raw(">")
}

func sectionHeading(h *htmlWriter, eyebrow, title string) {
	h.raw(`<div class="section-heading">`)
	h.element("span", "eyebrow", eyebrow)
	h.element("h2", "", title)
	h.raw("</div>")
}

// Hero renders the introduction with calls to action and quick stats.
func Hero(v LandingView) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		p := v.Profile
		if p == nil {
			return
		}
		openSection(h, viewstate.Hero, "hero")
		h.raw(`<div class="container hero__content">`)
		h.element("span", "badge badge--accent", T(v.Loc, "site.hero.badge"))
		h.raw("<h1>")
		h.text(T(v.Loc, "site.hero.greeting"))
		h.raw(` <span class="accent">`)
		h.text(p.FirstName)
		h.raw("</span></h1>")
		h.element("p", "hero__headline", p.Headline)
		h.element("p", "hero__summary", p.Summary)

		h.raw(`<div class="hero__actions"><a class="button button--primary"`)
		h.href("href", "#"+string(viewstate.Projects))
		h.attr("data-scroll-to", string(viewstate.Projects))
		h.raw(">")
		h.text(T(v.Loc, "site.hero.cta_explore"))
		h.icon(icons.ChevronDown, "")
		h.raw("</a>")
		if p.Assets.Resume != "" {
			h.raw(`<a class="button button--outline" target="_blank"`)
			h.href("href", p.Assets.Resume)
			h.raw(">")
			h.text(T(v.Loc, "site.hero.cta_resume"))
			h.raw("</a>")
		}
		h.raw("</div>")

		stats := p.ResolvedStats(v.Counts.Completed)
		if len(stats) > 0 {
			h.raw(`<dl class="hero__stats">`)
			for _, stat := range stats {
				h.raw(`<div class="stat">`)
				h.element("dt", "", stat.Label)
				h.element("dd", "", stat.Value)
				h.raw("</div>")
			}
			h.raw("</dl>")
		}

		h.raw(`<button type="button" class="scroll-indicator"`)
		h.attr("data-scroll-to", string(viewstate.Projects))
		h.attr("aria-label", T(v.Loc, "site.hero.scroll"))
		h.raw(">")
		h.icon(icons.ChevronDown, "")
		h.raw("</button></div></section>")
	})
}

// ProjectsSection renders status counts and the bounded project grid.
func ProjectsSection(v LandingView) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		openSection(h, viewstate.Projects, "projects")
		h.raw(`<div class="container">`)
		sectionHeading(h, T(v.Loc, "site.projects.eyebrow"), T(v.Loc, "site.projects.title"))
		h.element("p", "section-intro", T(v.Loc, "site.projects.intro"))
		h.render(ctx, StatusPills(v.Counts, v.Loc))

		opts := CardOptions{Loc: v.Loc}
		if v.Profile != nil {
			opts.Backdrop = v.Profile.Assets.CardBackground
		}
		h.raw(`<div class="project-grid">`)
		for _, project := range v.Projects {
			h.render(ctx, ProjectCard(project, opts))
		}
		h.raw("</div>")

		if v.ShowViewAll() {
			h.raw(`<div class="view-all"><a class="button button--outline"`)
			h.href("href", routepath.ProjectsPrefix)
			h.raw(">")
			h.text(T(v.Loc, "site.projects.view_all", v.Total))
			h.raw("</a></div>")
		}
		h.raw("</div></section>")
	})
}

// About renders the profile card, bio, skills, and current focus.
func About(p *profile.Profile, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if p == nil {
			return
		}
		openSection(h, viewstate.About, "about")
		h.raw(`<div class="container">`)
		sectionHeading(h, T(loc, "site.about.eyebrow"), T(loc, "site.about.title"))
		h.raw(`<div class="about-grid"><div class="profile-card">`)
		h.raw(`<div class="avatar">`)
		if p.Assets.Avatar != "" {
			h.raw("<img")
			h.href("src", p.Assets.Avatar)
			h.attr("alt", p.Name)
			h.raw(` loading="lazy">`)
		}
		h.element("span", "avatar__fallback", p.Initials)
		h.raw("</div>")
		h.element("h3", "", p.Name)
		h.element("p", "", p.Headline)
		if len(p.Badges) > 0 {
			h.raw(`<ul class="badge-list">`)
			for _, badge := range p.Badges {
				h.element("li", "badge", badge)
			}
			h.raw("</ul>")
		}
		h.raw(`<div class="social-links">`)
		if p.Links.GitHub != "" {
			h.externalLink(p.Links.GitHub, "icon-button", "GitHub")
			h.icon(icons.GitHub, "")
			h.raw("</a>")
		}
		if email := p.EmailURL(); email != "" {
			h.raw(`<a class="icon-button" aria-label="Email"`)
			h.href("href", email)
			h.raw(">")
			h.icon(icons.Mail, "")
			h.raw("</a>")
		}
		h.raw("</div></div>")

		h.raw(`<div class="about-body"><div class="prose">`)
		h.element("h3", "", T(loc, "site.about.journey"))
		writeTrustedHTML(h, p.BioHTML())
		h.raw("</div>")
		if len(p.Skills) > 0 {
			h.element("h4", "", T(loc, "site.about.skills"))
			h.raw(`<ul class="skill-grid">`)
			for _, skill := range p.Skills {
				h.element("li", "skill", skill)
			}
			h.raw("</ul>")
		}
		if p.Learning != "" {
			h.raw(`<div class="learning">`)
			h.element("h4", "", T(loc, "site.about.learning"))
			h.element("p", "", p.Learning)
			h.raw("</div>")
		}
		h.raw("</div></div></div></section>")
	})
}

// ContactSection renders the contact cards and mail call to action.
func ContactSection(p *profile.Profile, loc Localizer) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		if p == nil {
			return
		}
		openSection(h, viewstate.Contact, "contact")
		h.raw(`<div class="container">`)
		sectionHeading(h, T(loc, "site.contact.eyebrow"), p.Contact.Title)
		h.element("p", "section-intro", p.Contact.Intro)
		h.raw(`<div class="contact-grid">`)
		writeContactCard(h, icons.Mail, T(loc, "site.contact.email"), p.Contact.Email)
		writeContactCard(h, icons.MessageSquare, T(loc, "site.contact.discord"), p.Contact.Discord)
		writeContactCard(h, icons.GitHub, T(loc, "site.contact.github"), p.Contact.GitHub)
		h.raw("</div>")
		if email := p.EmailURL(); email != "" {
			h.raw(`<div class="contact-actions"><a class="button button--primary"`)
			h.href("href", email)
			h.raw(">")
			h.icon(icons.Mail, "")
			h.text(T(loc, "site.contact.send_email"))
			h.raw("</a></div>")
		}
		h.raw("</div></section>")
	})
}

func writeContactCard(h *htmlWriter, icon icons.Name, label, value string) {
	if value == "" {
		return
	}
	h.raw(`<div class="contact-card">`)
	h.icon(icon, "icon--large")
	h.element("h3", "", label)
	h.element("p", "", value)
	h.raw("</div>")
}

// writeTrustedHTML emits markup that was sanitized when it was produced.
func writeTrustedHTML(h *htmlWriter, markup template.HTML) {
	h.raw(string(markup))
}
