// Package routepath centralizes site route paths and builders.
package routepath

import (
	"net/url"
	"strconv"
)

const (
	Root           = "/"
	ProjectsPrefix = "/projects/"
	APIPrefix      = "/api/"
	StaticPrefix   = "/static/"
	AssetsPrefix   = "/assets/"
	Resume         = "/resume.pdf"
	NotFoundPage   = "/404.html"

	APIProjects = "/api/projects"
	APIStats    = "/api/projects/stats"
	APIHealth   = "/api/health"
)

// ServeMux patterns.
const (
	ProjectPattern    = "/projects/{projectID}"
	APIProjectPattern = "/api/projects/{projectID}"
)

// StatusParam filters project lists by status.
const StatusParam = "status"

// Project returns the detail page path for id.
func Project(id int) string {
	return ProjectsPrefix + strconv.Itoa(id)
}

// ProjectsWithStatus returns the index path filtered by status. An empty
// status yields the unfiltered index.
func ProjectsWithStatus(status string) string {
	if status == "" {
		return ProjectsPrefix
	}
	return ProjectsPrefix + "?" + url.Values{StatusParam: {status}}.Encode()
}

// APIProject returns the JSON document path for id.
func APIProject(id int) string {
	return APIProjects + "/" + strconv.Itoa(id)
}

// Section returns the landing page anchor for section. Pages other than the
// landing page link back to the root document.
func Section(section string, onLanding bool) string {
	if onLanding {
		return "#" + section
	}
	return Root + "#" + section
}
