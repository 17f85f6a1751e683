package export

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// linkAttrs lists the element attributes that reference other documents.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"script": "src",
	"img":    "src",
}

type parsedPage struct {
	ids   map[string]bool
	links []string
}

// AuditLinks parses every HTML file under dir and returns internal links
// that do not resolve to a file in dir, or whose fragment names no element.
func AuditLinks(dir string) ([]BrokenLink, error) {
	root := os.DirFS(dir)
	pages := make(map[string]parsedPage)
	err := fs.WalkDir(root, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(name) != ".html" {
			return nil
		}
		f, err := root.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		doc, err := html.Parse(f)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = collect(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var broken []BrokenLink
	for name, p := range pages {
		base := &url.URL{Path: pageURLPath(name)}
		for _, href := range p.links {
			if !resolves(dir, pages, name, base, href) {
				broken = append(broken, BrokenLink{Page: name, Href: href})
			}
		}
	}
	sort.Slice(broken, func(i, j int) bool {
		if broken[i].Page != broken[j].Page {
			return broken[i].Page < broken[j].Page
		}
		return broken[i].Href < broken[j].Href
	})
	return broken, nil
}

func collect(doc *html.Node) parsedPage {
	p := parsedPage{ids: make(map[string]bool)}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			want := linkAttrs[n.Data]
			for _, a := range n.Attr {
				if a.Namespace != "" {
					continue
				}
				if a.Key == "id" {
					p.ids[a.Val] = true
				}
				if want != "" && a.Key == want {
					p.links = append(p.links, strings.TrimSpace(a.Val))
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return p
}

// pageURLPath returns the URL path a static host serves file under.
func pageURLPath(file string) string {
	if file == "index.html" {
		return "/"
	}
	if strings.HasSuffix(file, "/index.html") {
		return "/" + strings.TrimSuffix(file, "index.html")
	}
	return "/" + file
}

func resolves(dir string, pages map[string]parsedPage, from string, base *url.URL, href string) bool {
	if href == "" {
		return true
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	if u.Scheme != "" || u.Host != "" {
		return true
	}
	target := from
	if u.Path != "" {
		resolved := base.ResolveReference(&url.URL{Path: u.Path})
		file, ok := fileFor(dir, resolved.Path)
		if !ok {
			return false
		}
		target = file
	}
	if u.Fragment == "" {
		return true
	}
	p, ok := pages[target]
	if !ok {
		return false
	}
	return p.ids[u.Fragment]
}

// fileFor maps a URL path to an exported file, trying the path itself and
// then its directory index.
func fileFor(dir, urlPath string) (string, bool) {
	clean := strings.TrimPrefix(path.Clean("/"+urlPath), "/")
	candidates := []string{clean}
	if strings.HasSuffix(urlPath, "/") || clean == "" {
		candidates = []string{path.Join(clean, "index.html")}
	} else {
		candidates = append(candidates, path.Join(clean, "index.html"))
	}
	for _, c := range candidates {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(c)))
		if err == nil && !info.IsDir() {
			return c, true
		}
	}
	return "", false
}
