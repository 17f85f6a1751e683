package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nrdn26/portfolio/internal/services/site/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (m stubModule) ID() string { return m.id }

func (m stubModule) Mount(module.Dependencies) (module.Mount, error) {
	return m.mount, m.err
}

func statusHandler(code int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(code)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "two", mount: module.Mount{Prefix: "one", Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{nil}})
	if err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMissingPrefixAndHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		mount module.Mount
	}{
		{name: "prefix", mount: module.Mount{Prefix: "  ", Handler: statusHandler(http.StatusOK)}},
		{name: "handler", mount: module.Mount{Prefix: "/x/"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{stubModule{id: tc.name, mount: tc.mount}}})
			if err == nil {
				t.Fatalf("expected error for missing %s", tc.name)
			}
		})
	}
}

func TestComposeWrapsMountError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	_, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{stubModule{id: "bad", err: sentinel}}})
	if !errors.Is(err, sentinel) {
		t.Fatalf("Compose() error = %v, want wrapped %v", err, sentinel)
	}
}

func TestComposeRoutesByPrefix(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "api", mount: module.Mount{Prefix: "api", Handler: statusHandler(http.StatusTeapot)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for path, want := range map[string]int{
		"/":             http.StatusOK,
		"/projects/":    http.StatusOK,
		"/api/projects": http.StatusTeapot,
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Fatalf("%s status = %d, want %d", path, rr.Code, want)
		}
	}
}

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":           "",
		"api":        "/api/",
		"/api":       "/api/",
		" /static/ ": "/static/",
	} {
		if got := normalizePrefix(in); got != want {
			t.Fatalf("normalizePrefix(%q) = %q, want %q", in, got, want)
		}
	}
}
