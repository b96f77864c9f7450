package digest

import (
	"cmp"
	"slices"
	"time"

	"github.com/lysyi3m/ai-inside-digest/app/config"
	"github.com/lysyi3m/ai-inside-digest/app/feed"
)

const (
	DateLayout       = "2006-01-02"
	UntitledHeadline = "Untitled"
)

type Aggregator struct {
	clock      feed.Clock
	summarizer *feed.Summarizer
	maxItems   int
	editorial  config.Editorial
}

func NewAggregator(clock feed.Clock, summarizer *feed.Summarizer, maxItems int, editorial config.Editorial) *Aggregator {
	return &Aggregator{
		clock:      clock,
		summarizer: summarizer,
		maxItems:   maxItems,
		editorial:  editorial,
	}
}

// Run turns the merged pool of filtered entries into a digest. Entries must
// arrive in feed-list order, then in-feed order.
func (a *Aggregator) Run(entries []feed.RawEntry) Digest {
	now := a.clock()

	selected := Deduplicate(entries)
	SortByRecency(selected, now)
	if len(selected) > a.maxItems {
		selected = selected[:a.maxItems]
	}

	items := make([]Item, 0, len(selected))
	for _, entry := range selected {
		headline := cmp.Or(entry.Title, UntitledHeadline)
		items = append(items, Item{
			Headline: headline,
			Summary:  a.summarizer.Run(cmp.Or(entry.Snippet, headline)),
			URL:      entry.Link,
		})
	}

	return Digest{
		Date:     now.UTC().Format(DateLayout),
		Subject:  a.editorial.Subject,
		Intro:    a.editorial.Intro,
		Items:    items,
		Metrics:  append([]string{}, a.editorial.Metrics...),
		Takeaway: a.editorial.Takeaway,
	}
}

// Deduplicate keeps the first entry seen for every link.
func Deduplicate(entries []feed.RawEntry) []feed.RawEntry {
	seen := make(map[string]struct{}, len(entries))
	unique := make([]feed.RawEntry, 0, len(entries))

	for _, entry := range entries {
		if _, ok := seen[entry.Link]; ok {
			continue
		}
		seen[entry.Link] = struct{}{}
		unique = append(unique, entry)
	}

	return unique
}

// SortByRecency orders entries newest first. Entries without a usable date
// count as published at now; ties keep their relative order.
func SortByRecency(entries []feed.RawEntry, now time.Time) {
	type dated struct {
		entry feed.RawEntry
		at    time.Time
	}

	resolved := make([]dated, len(entries))
	for i, entry := range entries {
		resolved[i] = dated{entry: entry, at: entry.ResolveDate(now)}
	}

	slices.SortStableFunc(resolved, func(a, b dated) int {
		return b.at.Compare(a.at)
	})

	for i := range resolved {
		entries[i] = resolved[i].entry
	}
}
