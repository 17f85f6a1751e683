// Package profile holds the biographical content rendered around the
// project catalog.
package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/nrdn26/portfolio/internal/platform/markdown"
	"gopkg.in/yaml.v3"
)

//go:embed data/profile.yaml
var defaultProfile []byte

// StatSourceCompletedProjects derives a stat value from the completed count.
const StatSourceCompletedProjects = "completed_projects"

// Meta carries document metadata.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Stat is one quick-stat tile in the hero.
type Stat struct {
	Value  string `yaml:"value"`
	Label  string `yaml:"label"`
	Source string `yaml:"source"`
}

// Contact lists the ways to reach the site owner.
type Contact struct {
	Title   string `yaml:"title"`
	Intro   string `yaml:"intro"`
	Email   string `yaml:"email"`
	Discord string `yaml:"discord"`
	GitHub  string `yaml:"github"`
}

// Links are outbound profile URLs.
type Links struct {
	GitHub    string `yaml:"github"`
	Instagram string `yaml:"instagram"`
}

// Assets are static file paths referenced by the page. Existence is not
// checked.
type Assets struct {
	Avatar         string `yaml:"avatar"`
	CardBackground string `yaml:"card_background"`
	Resume         string `yaml:"resume"`
}

// Profile is the site owner's content.
type Profile struct {
	Name      string   `yaml:"name"`
	FirstName string   `yaml:"first_name"`
	Brand     string   `yaml:"brand"`
	Initials  string   `yaml:"initials"`
	Headline  string   `yaml:"headline"`
	Summary   string   `yaml:"summary"`
	Tagline   string   `yaml:"tagline"`
	Meta      Meta     `yaml:"meta"`
	Badges    []string `yaml:"badges"`
	Stats     []Stat   `yaml:"stats"`
	Bio       string   `yaml:"bio"`
	Skills    []string `yaml:"skills"`
	Learning  string   `yaml:"learning"`
	Contact   Contact  `yaml:"contact"`
	Links     Links    `yaml:"links"`
	Assets    Assets   `yaml:"assets"`

	bioHTML template.HTML
}

// Load decodes and validates a profile document, rendering its bio.
func Load(r io.Reader) (*Profile, error) {
	if r == nil {
		return nil, errors.New("profile reader is required")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.New("profile name is required")
	}
	if p.Brand == "" {
		p.Brand = p.Name
	}
	if p.FirstName == "" {
		p.FirstName, _, _ = strings.Cut(p.Name, " ")
	}
	if p.Meta.Title == "" {
		p.Meta.Title = p.Name
	}
	for i, stat := range p.Stats {
		if stat.Source != "" && stat.Source != StatSourceCompletedProjects {
			return nil, fmt.Errorf("stat %d: unknown source %q", i, stat.Source)
		}
	}
	bio, err := markdown.Render(p.Bio)
	if err != nil {
		return nil, fmt.Errorf("render bio: %w", err)
	}
	p.bioHTML = template.HTML(bio)
	return &p, nil
}

// LoadFile reads a YAML profile from path.
func LoadFile(path string) (*Profile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("profile path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", path, err)
	}
	return p, nil
}

// Default returns the embedded profile.
func Default() (*Profile, error) {
	return Load(bytes.NewReader(defaultProfile))
}

// BioHTML returns the sanitized bio markup.
func (p *Profile) BioHTML() template.HTML {
	if p == nil {
		return ""
	}
	return p.bioHTML
}

// EmailURL returns the mailto link for the contact address.
func (p *Profile) EmailURL() string {
	if p == nil || p.Contact.Email == "" {
		return ""
	}
	return "mailto:" + p.Contact.Email
}

// ResolvedStats returns stats with derived values filled in.
func (p *Profile) ResolvedStats(completedProjects int) []Stat {
	if p == nil {
		return nil
	}
	out := make([]Stat, len(p.Stats))
	for i, stat := range p.Stats {
		if stat.Source == StatSourceCompletedProjects {
			stat.Value = fmt.Sprintf("%d+", completedProjects)
		}
		out[i] = stat
	}
	return out
}
