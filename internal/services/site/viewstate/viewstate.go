// Package viewstate models the landing page's scroll-driven view state: the
// header "scrolled" flag, the active navigation section, and programmatic
// section scrolling.
//
// A Tracker is owned by one rendering unit and updated only through its
// event methods. It is not safe for concurrent use. The same constants are
// published to the browser as data attributes so site.js applies identical
// rules.
package viewstate

// Section identifies an addressable page section.
type Section string

const (
	Hero     Section = "hero"
	Projects Section = "projects"
	About    Section = "about"
	Contact  Section = "contact"
)

const (
	// ScrolledThreshold is the scroll offset past which the header is
	// considered scrolled. The comparison is strict.
	ScrolledThreshold = 50
	// ActiveProbe is the viewport y coordinate a section must straddle to be
	// active.
	ActiveProbe = 100
	// HeaderOffset is subtracted from a section's document top when scrolling
	// to it so the fixed header does not cover its heading.
	HeaderOffset = 80
)

// Sections returns every section in active-section priority order.
func Sections() []Section {
	return []Section{Hero, Projects, About, Contact}
}

// NavSections returns the sections linked from the header navigation.
func NavSections() []Section {
	return []Section{Projects, About, Contact}
}

// Known reports whether s is an addressable section.
func Known(s Section) bool {
	switch s {
	case Hero, Projects, About, Contact:
		return true
	default:
		return false
	}
}

// Rect is a section's box relative to the viewport.
type Rect struct {
	Top    float64
	Bottom float64
}

// Document exposes the geometry a Tracker reads on each event.
type Document interface {
	// ScrollY returns the current vertical scroll offset.
	ScrollY() float64
	// Rect returns the viewport-relative box for s, or false when the
	// section is not rendered.
	Rect(s Section) (Rect, bool)
}

// Tracker holds component-local view state.
type Tracker struct {
	scrolled bool
	active   Section
	target   float64
	pending  bool
}

// NewTracker returns a tracker in its initial state.
func NewTracker() *Tracker {
	return &Tracker{active: Hero}
}

// Scrolled reports whether the last scroll event passed the threshold.
func (t *Tracker) Scrolled() bool {
	return t.scrolled
}

// ActiveSection returns the highlighted navigation section.
func (t *Tracker) ActiveSection() Section {
	return t.active
}

// OnScroll recomputes view state from doc. Sections are tested in priority
// order and the first one straddling ActiveProbe wins. When none does, the
// previous active section is kept.
func (t *Tracker) OnScroll(doc Document) {
	if doc == nil {
		return
	}
	t.scrolled = IsScrolled(doc.ScrollY())
	if s, ok := ActiveAt(doc); ok {
		t.active = s
	}
}

// ScrollToSection records the scroll target for id and returns it. Unknown
// or unrendered sections are a no-op and report false. A later call
// replaces any earlier pending target.
func (t *Tracker) ScrollToSection(doc Document, id Section) (float64, bool) {
	target, ok := TargetFor(doc, id)
	if !ok {
		return 0, false
	}
	t.target = target
	t.pending = true
	return target, true
}

// PendingTarget returns the most recent scroll target, if any.
func (t *Tracker) PendingTarget() (float64, bool) {
	return t.target, t.pending
}

// SettleScroll clears the pending target once the viewport has arrived.
func (t *Tracker) SettleScroll() {
	t.target = 0
	t.pending = false
}

// IsScrolled reports whether y is strictly past ScrolledThreshold.
func IsScrolled(y float64) bool {
	return y > ScrolledThreshold
}

// ActiveAt returns the first section, in priority order, whose box contains
// the probe line.
func ActiveAt(doc Document) (Section, bool) {
	if doc == nil {
		return "", false
	}
	for _, s := range Sections() {
		rect, ok := doc.Rect(s)
		if !ok {
			continue
		}
		if rect.Top <= ActiveProbe && rect.Bottom >= ActiveProbe {
			return s, true
		}
	}
	return "", false
}

// TargetFor returns the document scroll offset that brings id just below
// the fixed header.
func TargetFor(doc Document, id Section) (float64, bool) {
	if doc == nil || !Known(id) {
		return 0, false
	}
	rect, ok := doc.Rect(id)
	if !ok {
		return 0, false
	}
	return max(rect.Top+doc.ScrollY()-HeaderOffset, 0), true
}
