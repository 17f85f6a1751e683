// Package i18n resolves the request language and its message printer.
package i18n

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	platformi18n "github.com/nrdn26/portfolio/internal/platform/i18n"
)

const (
	// LangParam is the query parameter that selects a language explicitly.
	LangParam = "lang"
	// LangCookie remembers an explicit language choice.
	LangCookie = "portfolio_lang"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// ResolveTag picks the request language: ?lang first, then the cookie, then
// Accept-Language, then the base locale.
func ResolveTag(r *http.Request) language.Tag {
	bundle := platformi18n.Default()
	if r == nil {
		return bundle.Match()
	}
	if tag, ok := bundle.Parse(r.URL.Query().Get(LangParam)); ok {
		return tag
	}
	if cookie, err := r.Cookie(LangCookie); err == nil {
		if tag, ok := bundle.Parse(cookie.Value); ok {
			return tag
		}
	}
	preferred, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil {
		return bundle.Match()
	}
	return bundle.Match(preferred...)
}

// ResolveLocalizer returns the printer and BCP 47 tag for the request. An
// explicit ?lang choice is persisted in a cookie when w is non-nil.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request) (Localizer, string) {
	tag := ResolveTag(r)
	if w != nil && r != nil {
		if explicit, ok := platformi18n.Default().Parse(r.URL.Query().Get(LangParam)); ok {
			http.SetCookie(w, &http.Cookie{
				Name:     LangCookie,
				Value:    explicit.String(),
				Path:     "/",
				MaxAge:   365 * 24 * 60 * 60,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
	}
	return platformi18n.Default().Printer(tag), tag.String()
}
