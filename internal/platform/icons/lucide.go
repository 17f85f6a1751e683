package icons

import (
	"slices"
	"strings"
)

// Name identifies one Lucide icon.
type Name string

const (
	ArrowLeft     Name = "arrow-left"
	ChevronDown   Name = "chevron-down"
	Clock         Name = "clock"
	GitHub        Name = "github"
	Globe         Name = "globe"
	Instagram     Name = "instagram"
	Mail          Name = "mail"
	MessageSquare Name = "message-square"
	Moon          Name = "moon"
	Sun           Name = "sun"
)

const lucideSymbolPrefix = "lucide-"

// Path data from lucide.dev (ISC license), 24x24 stroke icons.
var lucideShapes = map[Name]string{
	ArrowLeft:     `<path d="m12 19-7-7 7-7"/><path d="M19 12H5"/>`,
	ChevronDown:   `<path d="m6 9 6 6 6-6"/>`,
	Clock:         `<circle cx="12" cy="12" r="10"/><polyline points="12 6 12 12 16 14"/>`,
	GitHub:        `<path d="M15 22v-4a4.8 4.8 0 0 0-1-3.5c3 0 6-2 6-5.5.08-1.25-.27-2.48-1-3.5.28-1.15.28-2.35 0-3.5 0 0-1 0-3 1.5-2.64-.5-5.36-.5-8 0C6 2 5 2 5 2c-.3 1.15-.3 2.35 0 3.5A5.403 5.403 0 0 0 4 9c0 3.5 3 5.5 6 5.5-.39.49-.68 1.05-.85 1.65-.17.6-.22 1.23-.15 1.85v4"/><path d="M9 18c-4.51 2-5-2-7-2"/>`,
	Globe:         `<circle cx="12" cy="12" r="10"/><path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/><path d="M2 12h20"/>`,
	Instagram:     `<rect width="20" height="20" x="2" y="2" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" x2="17.51" y1="6.5" y2="6.5"/>`,
	Mail:          `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	MessageSquare: `<path d="M21 15a2 2 0 0 1-2 2H7l-4 4V5a2 2 0 0 1 2-2h14a2 2 0 0 1 2 2z"/>`,
	Moon:          `<path d="M12 3a6 6 0 0 0 9 9 9 9 0 1 1-9-9Z"/>`,
	Sun:           `<circle cx="12" cy="12" r="4"/><path d="M12 2v2"/><path d="M12 20v2"/><path d="m4.93 4.93 1.41 1.41"/><path d="m17.66 17.66 1.41 1.41"/><path d="M2 12h2"/><path d="M20 12h2"/><path d="m6.34 17.66-1.41 1.41"/><path d="m19.07 4.93-1.41 1.41"/>`,
}

var lucideSprite = buildSprite()

// Names returns every known icon name in sorted order.
func Names() []Name {
	names := make([]Name, 0, len(lucideShapes))
	for name := range lucideShapes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Known reports whether name has a sprite symbol.
func Known(name Name) bool {
	_, ok := lucideShapes[name]
	return ok
}

// SymbolID returns the sprite symbol id for name.
func SymbolID(name Name) string {
	return lucideSymbolPrefix + string(name)
}

// Sprite returns the hidden SVG sprite markup holding every icon symbol.
func Sprite() string {
	return lucideSprite
}

func buildSprite() string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" aria-hidden="true" style="display:none">`)
	for _, name := range Names() {
		b.WriteString(`<symbol id="`)
		b.WriteString(SymbolID(name))
		b.WriteString(`" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">`)
		b.WriteString(lucideShapes[name])
		b.WriteString(`</symbol>`)
	}
	b.WriteString(`</svg>`)
	return b.String()
}
