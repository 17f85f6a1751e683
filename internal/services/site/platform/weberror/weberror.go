// Package weberror renders localized error pages for site modules.
package weberror

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	apperrors "github.com/nrdn26/portfolio/internal/platform/errors"
	"github.com/nrdn26/portfolio/internal/services/site/module"
	sitei18n "github.com/nrdn26/portfolio/internal/services/site/platform/i18n"
	"github.com/nrdn26/portfolio/internal/services/site/platform/pagerender"
	"github.com/nrdn26/portfolio/internal/services/site/templates"
)

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc sitei18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteError writes an error page whose status comes from err.
func WriteError(w http.ResponseWriter, r *http.Request, deps module.Dependencies, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	writeStatus(w, r, deps, statusCode, err)
}

// WriteNotFound writes the 404 page.
func WriteNotFound(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	if w == nil {
		return
	}
	writeStatus(w, r, deps, http.StatusNotFound, nil)
}

func writeStatus(w http.ResponseWriter, r *http.Request, deps module.Dependencies, statusCode int, cause error) {
	titleLoc, _ := sitei18n.ResolveLocalizer(nil, r)
	_ = pagerender.WritePage(w, r, deps, pagerender.Page{
		Title:      templates.ErrorPageTitle(statusCode, titleLoc),
		StatusCode: statusCode,
		Fragment: func(loc templates.Localizer) templ.Component {
			return templates.ErrorPage(statusCode, PublicMessage(loc, cause), loc)
		},
	})
}
