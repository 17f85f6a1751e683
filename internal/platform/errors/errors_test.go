package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: http.StatusOK},
		{name: "invalid status", err: New(CodeInvalidStatus, "bad status"), want: http.StatusBadRequest},
		{name: "not found wrapped", err: fmt.Errorf("handler: %w", New(CodeProjectNotFound, "missing")), want: http.StatusNotFound},
		{name: "unavailable", err: New(CodeUnavailable, "down"), want: http.StatusServiceUnavailable},
		{name: "plain", err: stderrors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HTTPStatus(tc.err); got != tc.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorMatchesByCode(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("no rows")
	err := Wrap(CodeProjectNotFound, "project 9", cause)
	if !stderrors.Is(err, New(CodeProjectNotFound, "")) {
		t.Fatal("expected code match")
	}
	if stderrors.Is(err, New(CodeNotFound, "")) {
		t.Fatal("expected different code to not match")
	}
	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Error() != "project 9" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "project 9")
	}
}

func TestLocalizationKey(t *testing.T) {
	t.Parallel()

	if got := LocalizationKey(New(CodeInvalidLimit, "")); got != "site.error.message_bad_request" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(stderrors.New("x")); got != "site.error.message_server_error" {
		t.Fatalf("LocalizationKey() = %q", got)
	}
	if got := LocalizationKey(nil); got != "" {
		t.Fatalf("LocalizationKey(nil) = %q", got)
	}
}
