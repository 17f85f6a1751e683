// Package i18n owns the supported languages and the message catalog used to
// localize site chrome.
//
// Locale files live in locales/<tag>.yaml and are compiled into an x/text
// catalog at init. en-US is the base locale; keys a locale does not define
// are filled from it.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the canonical source locale.
const BaseLocale = "en-US"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is a compiled message catalog plus its language matcher.
type Bundle struct {
	catalog *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
	keys    map[language.Tag][]string
}

var defaultBundle = mustLoad(embeddedLocales)

func mustLoad(fsys fs.FS) *Bundle {
	b, err := LoadFS(fsys)
	if err != nil {
		panic(fmt.Sprintf("load embedded locales: %v", err))
	}
	return b
}

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadFS compiles locales/*.yaml from fsys.
func LoadFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locales: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	slices.Sort(paths)

	base := language.MustParse(BaseLocale)
	b := &Bundle{
		catalog: catalog.NewBuilder(),
		keys:    map[language.Tag][]string{},
	}
	messages := map[language.Tag]map[string]string{}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", p, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("%s: locale %q: %w", p, file.Locale, err)
		}
		if want := strings.TrimSuffix(path.Base(p), ".yaml"); tag.String() != want {
			return nil, fmt.Errorf("%s: locale %q must match file name %q", p, tag, want)
		}
		if _, dup := messages[tag]; dup {
			return nil, fmt.Errorf("%s: locale %s defined twice", p, tag)
		}
		messages[tag] = file.Messages
		for key := range file.Messages {
			b.keys[tag] = append(b.keys[tag], key)
		}
		b.tags = append(b.tags, tag)
	}
	baseMessages, ok := messages[base]
	if !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}
	for tag, own := range messages {
		for key, msg := range baseMessages {
			if translated, ok := own[key]; ok {
				msg = translated
			}
			if err := b.catalog.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("locale %s: set %q: %w", tag, key, err)
			}
		}
		for key, msg := range own {
			if _, ok := baseMessages[key]; ok {
				continue
			}
			if err := b.catalog.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("locale %s: set %q: %w", tag, key, err)
			}
		}
	}
	// The base locale leads so the matcher falls back to it.
	slices.SortStableFunc(b.tags, func(a, c language.Tag) int {
		switch {
		case a == base:
			return -1
		case c == base:
			return 1
		default:
			return strings.Compare(a.String(), c.String())
		}
	})
	b.matcher = language.NewMatcher(b.tags)
	return b, nil
}

// Tags returns the supported language tags, base locale first.
func (b *Bundle) Tags() []language.Tag {
	return slices.Clone(b.tags)
}

// Keys returns the message keys defined directly by tag.
func (b *Bundle) Keys(tag language.Tag) []string {
	keys := slices.Clone(b.keys[tag])
	slices.Sort(keys)
	return keys
}

// Match picks the best supported tag for the caller's preferences.
func (b *Bundle) Match(preferred ...language.Tag) language.Tag {
	if len(preferred) == 0 {
		return b.tags[0]
	}
	_, idx, confidence := b.matcher.Match(preferred...)
	if confidence == language.No {
		return b.tags[0]
	}
	return b.tags[idx]
}

// Parse resolves a raw tag to a supported one.
func (b *Bundle) Parse(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return language.Und, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return language.Und, false
	}
	_, idx, confidence := b.matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return b.tags[idx], true
}

// Printer returns a message printer for tag backed by the bundle catalog.
func (b *Bundle) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(b.catalog))
}
