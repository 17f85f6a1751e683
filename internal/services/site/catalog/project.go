package catalog

import "slices"

// UnavailableLink marks an external link that does not exist yet.
const UnavailableLink = "#"

// Project is one showcased project.
type Project struct {
	ID              int      `yaml:"id" json:"id"`
	Title           string   `yaml:"title" json:"title"`
	Description     string   `yaml:"description" json:"description"`
	LongDescription string   `yaml:"long_description,omitempty" json:"longDescription,omitempty"`
	Tags            []string `yaml:"tags" json:"tags"`
	GitHubURL       string   `yaml:"github_url" json:"githubUrl"`
	LiveURL         string   `yaml:"live_url" json:"liveUrl"`
	ImageURL        string   `yaml:"image_url,omitempty" json:"imageUrl,omitempty"`
	Featured        bool     `yaml:"featured,omitempty" json:"featured"`
	Status          Status   `yaml:"status" json:"status"`
}

// LinkAvailable reports whether url points somewhere real.
func LinkAvailable(url string) bool {
	return url != "" && url != UnavailableLink
}

// LinksAvailable reports whether both external links can be rendered.
// A single sentinel suppresses both.
func (p Project) LinksAvailable() bool {
	return LinkAvailable(p.GitHubURL) && LinkAvailable(p.LiveURL)
}

// HasLongDescription reports whether an extended summary is present.
func (p Project) HasLongDescription() bool {
	return p.LongDescription != ""
}

func (p Project) clone() Project {
	p.Tags = slices.Clone(p.Tags)
	return p
}

func cloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.clone()
	}
	return out
}
