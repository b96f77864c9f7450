package feed

import (
	"strings"
	"time"
)

// broadTopic is matched in addition to the configured keywords so the digest
// stays populated when no operational keyword appears.
const broadTopic = "ai"

type Filterer struct {
	clock    Clock
	window   time.Duration
	keywords []string
}

func NewFilterer(clock Clock, window time.Duration, keywords []string) *Filterer {
	lowered := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		lowered = append(lowered, strings.ToLower(keyword))
	}

	return &Filterer{
		clock:    clock,
		window:   window,
		keywords: lowered,
	}
}

// Run keeps the entries that are both recent and on topic, in their
// original order.
func (f *Filterer) Run(entries []RawEntry) []RawEntry {
	kept := make([]RawEntry, 0, len(entries))
	for _, entry := range entries {
		if f.IsRecent(entry) && f.IsOnTopic(entry) {
			kept = append(kept, entry)
		}
	}
	return kept
}

func (f *Filterer) IsRecent(entry RawEntry) bool {
	now := f.clock()
	return WithinWindow(AgeInDays(entry.ResolveDate(now), now), f.window.Hours()/24)
}

func (f *Filterer) IsOnTopic(entry RawEntry) bool {
	text := strings.ToLower(entry.Title + " " + entry.Snippet)

	for _, keyword := range f.keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}

	return strings.Contains(text, broadTopic)
}

// WithinWindow reports whether an age in days falls inside a trailing window.
// The boundary is inclusive and future dates (negative ages) pass.
func WithinWindow(ageDays, windowDays float64) bool {
	return ageDays <= windowDays
}

// AgeInDays is the fractional number of days between published and now.
func AgeInDays(published, now time.Time) float64 {
	return now.Sub(published).Hours() / 24
}
