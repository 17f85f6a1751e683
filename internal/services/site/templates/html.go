package templates

import (
	"context"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/nrdn26/portfolio/internal/platform/icons"
)

// htmlWriter accumulates the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(parts ...string) {
	for _, part := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, part)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

// href writes a sanitized URL attribute.
func (h *htmlWriter) href(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) attrs(values templ.Attributes) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		switch v := values[key].(type) {
		case string:
			h.attr(key, v)
		case bool:
			if v {
				h.raw(" ", key)
			}
		}
	}
}

func (h *htmlWriter) open(tag string, class string) {
	h.raw("<", tag)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</", tag, ">")
}

// element writes <tag class="...">escaped text</tag>.
func (h *htmlWriter) element(tag, class, content string) {
	h.open(tag, class)
	h.text(content)
	h.close(tag)
}

func (h *htmlWriter) icon(name icons.Name, class string) {
	h.raw(`<svg`)
	h.attr("class", strings.TrimSpace("icon "+class))
	h.raw(` aria-hidden="true"><use`)
	h.attr("href", "#"+icons.SymbolID(name))
	h.raw(`></use></svg>`)
}

// externalLink writes an anchor that opens in a new tab without leaking the
// opener.
func (h *htmlWriter) externalLink(url, class, label string) {
	h.raw("<a")
	h.href("href", url)
	if class != "" {
		h.attr("class", class)
	}
	h.raw(` target="_blank" rel="noopener noreferrer"`)
	if label != "" {
		h.attr("aria-label", label)
	}
	h.raw(">")
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		fn(ctx, h)
		return h.err
	})
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
