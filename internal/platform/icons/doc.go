// Package icons defines the icon identifiers the site renders and the Lucide
// SVG sprite that backs them.
//
// Pages reference icons by symbol id (`<use href="#lucide-mail">`) so the
// sprite is emitted once per document.
package icons
