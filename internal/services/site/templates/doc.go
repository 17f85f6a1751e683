// Package templates renders the site's pages as templ components.
//
// Components are templ.ComponentFunc values built on htmlWriter, which
// escapes text and attributes and passes URLs through templ.URL. New markup
// goes through htmlWriter too; writing to the io.Writer directly bypasses
// that escaping. Only writeTrustedHTML emits raw markup, and only for HTML
// the markdown package has already sanitized.
package templates
