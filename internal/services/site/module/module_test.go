package module

import (
	"testing"
	"time"
)

func TestYearUsesInjectedClock(t *testing.T) {
	t.Parallel()

	deps := Dependencies{Now: func() time.Time { return time.Date(2031, time.March, 1, 0, 0, 0, 0, time.UTC) }}
	if got := deps.Year(); got != 2031 {
		t.Fatalf("Year() = %d, want %d", got, 2031)
	}
}

func TestYearFallsBackToWallClock(t *testing.T) {
	t.Parallel()

	before := time.Now().Year()
	got := Dependencies{}.Year()
	if got < before {
		t.Fatalf("Year() = %d, want >= %d", got, before)
	}
}
