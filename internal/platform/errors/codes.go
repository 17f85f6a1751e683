// Package errors provides structured errors that carry an HTTP-facing code
// and a localization key.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeInvalidStatus    Code = "INVALID_STATUS"
	CodeInvalidLimit     Code = "INVALID_LIMIT"
	CodeInvalidFeatured  Code = "INVALID_FEATURED"
	CodeInvalidProjectID Code = "INVALID_PROJECT_ID"

	// Lookup errors
	CodeNotFound        Code = "NOT_FOUND"
	CodeProjectNotFound Code = "PROJECT_NOT_FOUND"

	// Server errors
	CodeRenderFailed Code = "RENDER_FAILED"
	CodeUnavailable  Code = "UNAVAILABLE"
)

// HTTPStatus maps the code to a response status.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidStatus, CodeInvalidLimit, CodeInvalidFeatured, CodeInvalidProjectID:
		return http.StatusBadRequest
	case CodeNotFound, CodeProjectNotFound:
		return http.StatusNotFound
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// LocalizationKey returns the message key used for user-facing copy.
func (c Code) LocalizationKey() string {
	switch c.HTTPStatus() {
	case http.StatusBadRequest:
		return "site.error.message_bad_request"
	case http.StatusNotFound:
		return "site.error.message_not_found"
	default:
		return "site.error.message_server_error"
	}
}
