package templates

import (
	"golang.org/x/text/message"

	sitei18n "github.com/nrdn26/portfolio/internal/services/site/platform/i18n"
)

// Localizer provides translated strings for templ components.
type Localizer = sitei18n.Localizer

// T returns a translated string or the key if no localizer is available.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if keyString, ok := key.(string); ok {
			return keyString
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}
