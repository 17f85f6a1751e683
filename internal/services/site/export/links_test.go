package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestAuditLinks(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"index.html": `<html><body>
			<section id="projects"></section>
			<a href="#projects">in-page</a>
			<a href="#missing">bad fragment</a>
			<a href="/projects/">index</a>
			<a href="/projects/?status=planned">filtered</a>
			<a href="/projects/1">detail</a>
			<a href="/projects/2">missing detail</a>
			<a href="https://github.com/x">external</a>
			<a href="mailto:me@example.com">mail</a>
			<link rel="stylesheet" href="/static/site.css">
			<img src="/assets/avatar.jpg">
		</body></html>`,
		"projects/index.html":   `<html><body><a href="/#projects">home</a><a href="/#about">missing section</a><a href="1">relative</a></body></html>`,
		"projects/1/index.html": `<html><body><a href="../">up</a></body></html>`,
		"static/site.css":       `body{}`,
	})

	got, err := AuditLinks(dir)
	if err != nil {
		t.Fatalf("AuditLinks() error = %v", err)
	}
	want := []BrokenLink{
		{Page: "index.html", Href: "#missing"},
		{Page: "index.html", Href: "/assets/avatar.jpg"},
		{Page: "index.html", Href: "/projects/2"},
		{Page: "projects/index.html", Href: "/#about"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("AuditLinks() mismatch (-want +got):\n%s", diff)
	}
}

func TestPageURLPath(t *testing.T) {
	t.Parallel()

	for file, want := range map[string]string{
		"index.html":            "/",
		"projects/index.html":   "/projects/",
		"projects/1/index.html": "/projects/1/",
		"404.html":              "/404.html",
	} {
		if got := pageURLPath(file); got != want {
			t.Fatalf("pageURLPath(%q) = %q, want %q", file, got, want)
		}
	}
}

func TestBrokenLinkString(t *testing.T) {
	t.Parallel()

	if got := (BrokenLink{Page: "index.html", Href: "/x"}).String(); got != "index.html -> /x" {
		t.Fatalf("String() = %q, want %q", got, "index.html -> /x")
	}
}
