package templates

import (
	"context"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/platform/icons"
	"github.com/nrdn26/portfolio/internal/services/site/profile"
	"github.com/nrdn26/portfolio/internal/services/site/routepath"
	"github.com/nrdn26/portfolio/internal/services/site/theme"
	"github.com/nrdn26/portfolio/internal/services/site/viewstate"
)

// Chrome carries the document-level inputs shared by every page.
type Chrome struct {
	// Title is the page-specific title; empty uses the profile meta title.
	Title string
	// Description overrides the profile meta description.
	Description string
	// Lang is the BCP 47 document language.
	Lang    string
	Loc     Localizer
	Profile *profile.Profile
	Theme   theme.Config
	// Landing marks the single-page document whose nav links are in-page
	// anchors.
	Landing bool
	// Year is the copyright year.
	Year int
}

// ComposePageTitle appends the owner's name to a page title.
func ComposePageTitle(title string, p *profile.Profile) string {
	title = strings.TrimSpace(title)
	if p == nil {
		return title
	}
	if title == "" {
		return p.Meta.Title
	}
	suffix := " | " + p.Name
	if strings.HasSuffix(title, suffix) {
		return title
	}
	return title + suffix
}

// Layout renders the full document around the children in ctx.
func Layout(chrome Chrome) templ.Component {
	return component(func(ctx context.Context, h *htmlWriter) {
		description := chrome.Description
		if description == "" && chrome.Profile != nil {
			description = chrome.Profile.Meta.Description
		}
		lang := chrome.Lang
		if lang == "" {
			lang = "en-US"
		}

		h.raw("<!DOCTYPE html><html")
		h.attr("lang", lang)
		if class := chrome.Theme.InitialClass(); class != "" {
			h.attr("class", class)
		}
		h.attrs(chrome.Theme.Attributes())
		h.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw("<title>")
		h.text(ComposePageTitle(chrome.Title, chrome.Profile))
		h.raw("</title>")
		if description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", description)
			h.raw(">")
		}
		h.raw(`<link rel="stylesheet" href="`, routepath.StaticPrefix, `site.css">`)
		if script := chrome.Theme.BootstrapScript(); script != "" {
			h.raw("<script>", script, "</script>")
		}
		h.raw("</head><body")
		h.attr("data-scrolled-threshold", strconv.Itoa(viewstate.ScrolledThreshold))
		h.attr("data-active-probe", strconv.Itoa(viewstate.ActiveProbe))
		h.attr("data-header-offset", strconv.Itoa(viewstate.HeaderOffset))
		h.attr("data-sections", joinSections(viewstate.Sections()))
		h.raw(">")
		h.raw(icons.Sprite())
		h.render(ctx, Header(chrome))
		h.raw(`<main id="main">`)
		h.render(ctx, templ.GetChildren(ctx))
		h.raw("</main>")
		h.render(ctx, Footer(chrome))
		h.raw(`<script src="`, routepath.StaticPrefix, `site.js" defer></script>`)
		h.raw("</body></html>")
	})
}

func joinSections(sections []viewstate.Section) string {
	parts := make([]string, len(sections))
	for i, s := range sections {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

func navLabelKey(section viewstate.Section) string {
	return "site.nav." + string(section)
}

// Header renders the fixed site header with section navigation.
func Header(chrome Chrome) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		h.raw(`<header class="site-header" data-site-header><nav class="site-nav container">`)
		h.raw(`<a class="brand"`)
		h.href("href", routepath.Root)
		h.raw(">")
		if chrome.Profile != nil {
			h.text(chrome.Profile.Brand)
		}
		h.raw("</a>")

		h.raw(`<ul class="nav-links">`)
		for _, section := range viewstate.NavSections() {
			h.raw(`<li><a class="nav-link"`)
			h.href("href", routepath.Section(string(section), chrome.Landing))
			h.attr("data-scroll-to", string(section))
			h.raw(">")
			h.text(T(chrome.Loc, navLabelKey(section)))
			h.raw("</a></li>")
		}
		h.raw("</ul>")

		h.raw(`<div class="nav-actions">`)
		if chrome.Profile != nil && chrome.Profile.Links.GitHub != "" {
			h.externalLink(chrome.Profile.Links.GitHub, "icon-button", T(chrome.Loc, "site.nav.github_profile"))
			h.icon(icons.GitHub, "")
			h.raw("</a>")
		}
		h.raw(`<button type="button" class="icon-button" data-theme-toggle`)
		h.attr("aria-label", T(chrome.Loc, "site.theme.toggle"))
		h.raw(">")
		h.icon(icons.Sun, "icon--light")
		h.icon(icons.Moon, "icon--dark")
		h.raw("</button></div></nav></header>")
	})
}

// Footer renders the brand blurb, quick links, and copyright line.
func Footer(chrome Chrome) templ.Component {
	return component(func(_ context.Context, h *htmlWriter) {
		p := chrome.Profile
		if p == nil {
			return
		}
		h.raw(`<footer class="site-footer"><div class="container footer-grid">`)
		h.raw(`<div class="footer-brand">`)
		h.element("h3", "", p.Name)
		h.element("p", "", p.Tagline)
		h.raw(`<div class="social-links">`)
		if p.Links.GitHub != "" {
			h.externalLink(p.Links.GitHub, "icon-button", "GitHub")
			h.icon(icons.GitHub, "")
			h.raw("</a>")
		}
		if p.Links.Instagram != "" {
			h.externalLink(p.Links.Instagram, "icon-button", "Instagram")
			h.icon(icons.Instagram, "")
			h.raw("</a>")
		}
		h.raw("</div></div>")

		h.raw(`<div class="footer-links">`)
		h.element("h4", "", T(chrome.Loc, "site.footer.quick_links"))
		h.raw("<ul>")
		for _, section := range viewstate.NavSections() {
			h.raw("<li><a")
			h.href("href", routepath.Section(string(section), chrome.Landing))
			h.attr("data-scroll-to", string(section))
			h.raw(">")
			h.text(T(chrome.Loc, navLabelKey(section)))
			h.raw("</a></li>")
		}
		if p.Assets.Resume != "" {
			h.raw("<li><a")
			h.href("href", p.Assets.Resume)
			h.raw(">")
			h.text(T(chrome.Loc, "site.footer.resume"))
			h.raw("</a></li>")
		}
		h.raw("</ul></div></div>")

		h.raw(`<div class="container footer-bottom"><p class="copyright">`)
		h.text(T(chrome.Loc, "site.footer.rights", itoa(chrome.Year), p.Name))
		h.raw("</p></div></footer>")
	})
}
