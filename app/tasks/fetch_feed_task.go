package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/lysyi3m/ai-inside-digest/app/feed"
)

type FetchFeedTask struct {
	Task
	fetcher  feed.Fetcher
	filterer *feed.Filterer
	timeout  time.Duration
}

func NewFetchFeedTask(feedURL string, fetcher feed.Fetcher, filterer *feed.Filterer, timeout time.Duration) *FetchFeedTask {
	return &FetchFeedTask{
		Task:     NewTask(TaskTypeFetchFeed, feedURL),
		fetcher:  fetcher,
		filterer: filterer,
		timeout:  timeout,
	}
}

// Execute fetches the feed and returns the entries that pass the recency and
// topic filters, in feed order.
func (t *FetchFeedTask) Execute(ctx context.Context) ([]feed.RawEntry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	entries, err := t.fetcher.Fetch(timeoutCtx, t.GetTarget())
	if err != nil {
		return nil, err
	}

	kept := t.filterer.Run(entries)

	slog.Info("Task completed",
		"type", string(t.GetType()),
		"id", t.GetID(),
		"feed", t.GetTarget(),
		"duration", t.GetDuration(),
		"total", len(entries),
		"kept", len(kept))

	return kept, nil
}
