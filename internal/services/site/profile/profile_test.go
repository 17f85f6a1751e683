package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultProfile(t *testing.T) {
	t.Parallel()

	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if p.Brand != "Nuredin.B" {
		t.Fatalf("Brand = %q, want %q", p.Brand, "Nuredin.B")
	}
	if got := p.EmailURL(); got != "mailto:nuredin_2004@hotmail.com" {
		t.Fatalf("EmailURL() = %q", got)
	}
	if got := strings.Count(string(p.BioHTML()), "<p>"); got != 3 {
		t.Fatalf("bio paragraphs = %d, want 3", got)
	}
	if len(p.Skills) != 6 {
		t.Fatalf("skills = %d, want 6", len(p.Skills))
	}
}

func TestResolvedStatsDerivesCompletedCount(t *testing.T) {
	t.Parallel()

	p, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	got := p.ResolvedStats(4)
	want := []Stat{
		{Value: "4+", Label: "Projects", Source: StatSourceCompletedProjects},
		{Value: "2nd", Label: "Year at JKU"},
		{Value: "5+", Label: "Technologies"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ResolvedStats() mismatch (-want +got):\n%s", diff)
	}
	if p.Stats[0].Value != "" {
		t.Fatalf("ResolvedStats mutated profile stats: %+v", p.Stats[0])
	}
}

func TestLoadDefaultsAndValidation(t *testing.T) {
	t.Parallel()

	p, err := Load(strings.NewReader("name: Ada Lovelace\nbio: \"<script>x</script>hi\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Brand != "Ada Lovelace" || p.FirstName != "Ada" || p.Meta.Title != "Ada Lovelace" {
		t.Fatalf("defaults not applied: %+v", p)
	}
	if strings.Contains(string(p.BioHTML()), "<script") {
		t.Fatalf("bio not sanitized: %q", p.BioHTML())
	}

	if _, err := Load(strings.NewReader("brand: x\n")); err == nil {
		t.Fatal("expected missing name error")
	}
	if _, err := Load(strings.NewReader("name: x\nstats:\n  - source: stars\n")); err == nil {
		t.Fatal("expected unknown stat source error")
	}
	if _, err := Load(strings.NewReader("name: x\nphone: 1\n")); err == nil {
		t.Fatal("expected unknown field error")
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	if _, err := LoadFile(" "); err == nil {
		t.Fatalf("expected empty path error")
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing file error")
	}

	path := filepath.Join(t.TempDir(), "profile.yaml")
	data, err := os.ReadFile(filepath.Join("data", "profile.yaml"))
	if err != nil {
		t.Fatalf("read embedded profile source: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	want, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if got.Name != want.Name || got.BioHTML() != want.BioHTML() {
		t.Fatalf("LoadFile() = %q, want %q", got.Name, want.Name)
	}
}
