// Package theme describes the light/dark theme collaborator. The server only
// publishes configuration; switching happens in the browser and is not
// persisted.
package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Mode is a theme selection.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// DarkClass is the root class toggled when Attribute is "class".
const DarkClass = "dark"

// Config mirrors the theme provider options.
type Config struct {
	// Attribute is the root element attribute that carries the theme.
	Attribute string
	// Default is the mode applied before any toggle.
	Default Mode
	// EnableSystem follows prefers-color-scheme while Default is system.
	EnableSystem bool
	// DisableTransitionOnChange suppresses CSS transitions during a switch.
	DisableTransitionOnChange bool
}

// DefaultConfig returns the site's theme settings.
func DefaultConfig() Config {
	return Config{
		Attribute:                 "class",
		Default:                   ModeSystem,
		EnableSystem:              true,
		DisableTransitionOnChange: true,
	}
}

// Attributes returns the data attributes placed on <html>.
func (c Config) Attributes() templ.Attributes {
	return templ.Attributes{
		"data-theme-attribute":          c.attribute(),
		"data-theme-default":            string(c.mode()),
		"data-theme-system":             strconv.FormatBool(c.EnableSystem),
		"data-theme-disable-transition": strconv.FormatBool(c.DisableTransitionOnChange),
	}
}

// InitialClass returns the root class to render server-side. System mode
// resolves in the browser, so it renders no class.
func (c Config) InitialClass() string {
	if c.attribute() == "class" && c.mode() == ModeDark {
		return DarkClass
	}
	return ""
}

// BootstrapScript returns the inline script that applies the system
// preference before first paint.
func (c Config) BootstrapScript() string {
	if c.mode() != ModeSystem || !c.EnableSystem {
		return ""
	}
	return bootstrapScript
}

// ParseMode parses a mode name. Empty input yields ModeSystem.
func ParseMode(raw string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ModeSystem, nil
	case ModeLight, ModeDark, ModeSystem:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", raw)
	}
}

func (c Config) attribute() string {
	if c.Attribute == "" {
		return "class"
	}
	return c.Attribute
}

func (c Config) mode() Mode {
	switch c.Default {
	case ModeLight, ModeDark, ModeSystem:
		return c.Default
	default:
		return ModeSystem
	}
}

const bootstrapScript = `(function(){var d=document.documentElement;var a=d.getAttribute("data-theme-attribute")||"class";var m=window.matchMedia("(prefers-color-scheme: dark)");var dark=m.matches;if(a==="class"){d.classList.toggle("dark",dark)}else{d.setAttribute(a,dark?"dark":"light")}d.style.colorScheme=dark?"dark":"light"})();`
