package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveTagDefaultsToBase(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ResolveTag(req).String(); got != "en-US" {
		t.Fatalf("ResolveTag() = %q, want %q", got, "en-US")
	}
	if got := ResolveTag(nil).String(); got != "en-US" {
		t.Fatalf("ResolveTag(nil) = %q, want %q", got, "en-US")
	}
}

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		cookie string
		accept string
		want   string
	}{
		{name: "accept language", target: "/", accept: "de-AT,de;q=0.9", want: "de-AT"},
		{name: "german falls to de-AT", target: "/", accept: "de", want: "de-AT"},
		{name: "cookie beats header", target: "/", cookie: "de-AT", accept: "en-US", want: "de-AT"},
		{name: "query beats cookie", target: "/?lang=en-US", cookie: "de-AT", want: "en-US"},
		{name: "invalid query ignored", target: "/?lang=zz-!!", accept: "de-AT", want: "de-AT"},
		{name: "unsupported header", target: "/", accept: "ja", want: "en-US"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookie, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			if got := ResolveTag(req).String(); got != tc.want {
				t.Fatalf("ResolveTag() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?lang=de-AT", nil)
	rr := httptest.NewRecorder()
	loc, lang := ResolveLocalizer(rr, req)
	if lang != "de-AT" {
		t.Fatalf("lang = %q, want %q", lang, "de-AT")
	}
	if got := loc.Sprintf("site.nav.about"); got == "site.nav.about" || got == "" {
		t.Fatalf("Sprintf() = %q, want translated text", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookie || cookies[0].Value != "de-AT" {
		t.Fatalf("cookies = %+v", cookies)
	}
}

func TestResolveLocalizerWithoutExplicitChoiceSetsNoCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	_, lang := ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if lang != "en-US" {
		t.Fatalf("lang = %q, want %q", lang, "en-US")
	}
	if got := len(rr.Result().Cookies()); got != 0 {
		t.Fatalf("cookies = %d, want 0", got)
	}
}
