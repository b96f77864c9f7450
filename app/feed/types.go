package feed

import (
	"time"

	"github.com/araddon/dateparse"
)

// Clock reports the current instant. Filters and the aggregator take one so
// tests can pin "now".
type Clock func() time.Time

var SystemClock Clock = time.Now

const minPlausibleYear = 1970

// RawEntry is a single item as read from a feed, before any filtering.
type RawEntry struct {
	PublishedAt *time.Time
	Published   string // raw date text as found in the feed
	Title       string
	Link        string // identity key for deduplication
	Snippet     string // plain text, HTML already stripped
}

// ResolveDate returns the entry's publish instant. Entries without a usable
// date are treated as published at now, so they always pass the recency
// window and sort as the newest.
func (e RawEntry) ResolveDate(now time.Time) time.Time {
	if e.PublishedAt != nil {
		return *e.PublishedAt
	}

	if e.Published != "" {
		// dateparse fills a missing year with 0000; such partial dates are
		// as unusable as no date at all.
		if parsed, err := dateparse.ParseAny(e.Published); err == nil && parsed.Year() >= minPlausibleYear {
			return parsed
		}
	}

	return now
}
