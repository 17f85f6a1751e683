package i18n

import (
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

func TestDefaultBundleSupportsBaseAndGerman(t *testing.T) {
	t.Parallel()

	tags := Default().Tags()
	if len(tags) != 2 {
		t.Fatalf("len(Tags()) = %d, want 2", len(tags))
	}
	if tags[0].String() != BaseLocale {
		t.Fatalf("Tags()[0] = %q, want %q", tags[0], BaseLocale)
	}
}

func TestGermanDefinesSubsetOfBaseKeys(t *testing.T) {
	t.Parallel()

	b := Default()
	base := map[string]bool{}
	for _, key := range b.Keys(language.MustParse(BaseLocale)) {
		base[key] = true
	}
	for _, key := range b.Keys(language.MustParse("de-AT")) {
		if !base[key] {
			t.Fatalf("de-AT key %q missing from %s", key, BaseLocale)
		}
	}
}

func TestPrinterFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	b := Default()
	p := b.Printer(language.MustParse("de-AT"))
	if got := p.Sprintf("site.card.github"); got != "GitHub" {
		t.Fatalf("Sprintf(site.card.github) = %q, want %q", got, "GitHub")
	}
	if got := p.Sprintf("site.projects.count_planned", 3); got != "3 geplant" {
		t.Fatalf("Sprintf(count_planned) = %q, want %q", got, "3 geplant")
	}
}

func TestMatchPrefersSupportedTag(t *testing.T) {
	t.Parallel()

	b := Default()
	if got := b.Match(language.German); got.String() != "de-AT" {
		t.Fatalf("Match(de) = %q, want %q", got, "de-AT")
	}
	if got := b.Match(language.Japanese); got.String() != BaseLocale {
		t.Fatalf("Match(ja) = %q, want %q", got, BaseLocale)
	}
	if got := b.Match(); got.String() != BaseLocale {
		t.Fatalf("Match() = %q, want %q", got, BaseLocale)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, ok := Default().Parse("not a tag!"); ok {
		t.Fatal("expected parse failure")
	}
	if _, ok := Default().Parse(""); ok {
		t.Fatal("expected empty parse failure")
	}
	if tag, ok := Default().Parse("de"); !ok || tag.String() != "de-AT" {
		t.Fatalf("Parse(de) = %q, %t", tag, ok)
	}
}

func TestLoadFSRejectsMismatchedFileName(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/en-US.yaml": &fstest.MapFile{Data: []byte("locale: de-AT\nmessages:\n  a: b\n")},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected mismatched locale error")
	}
}

func TestLoadFSRequiresBaseLocale(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/de-AT.yaml": &fstest.MapFile{Data: []byte("locale: de-AT\nmessages:\n  a: b\n")},
	}
	if _, err := LoadFS(fsys); err == nil {
		t.Fatal("expected missing base locale error")
	}
}
