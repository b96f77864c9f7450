package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/lysyi3m/ai-inside-digest/app/feed"
)

// Collector fetches every feed through a bounded worker pool. A failing feed
// contributes nothing and never affects the others.
type Collector struct {
	fetcher     feed.Fetcher
	filterer    *feed.Filterer
	timeout     time.Duration
	workerCount int
}

func NewCollector(fetcher feed.Fetcher, filterer *feed.Filterer, timeout time.Duration, workerCount int) *Collector {
	return &Collector{
		fetcher:     fetcher,
		filterer:    filterer,
		timeout:     timeout,
		workerCount: max(workerCount, 1),
	}
}

// Run returns the merged entries of all feeds in feed-list order, then
// in-feed order, however the fetches interleave.
func (c *Collector) Run(ctx context.Context, feedURLs []string) []feed.RawEntry {
	results := make([][]feed.RawEntry, len(feedURLs))
	queue := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < min(c.workerCount, len(feedURLs)); i++ {
		wg.Add(1)
		go c.worker(ctx, i, feedURLs, queue, results, &wg)
	}

	for i := range feedURLs {
		queue <- i
	}
	close(queue)
	wg.Wait()

	var merged []feed.RawEntry
	for _, entries := range results {
		merged = append(merged, entries...)
	}

	slog.Debug("Feeds collected", "feeds", len(feedURLs), "entries", len(merged))

	return merged
}

func (c *Collector) worker(ctx context.Context, id int, feedURLs []string, queue <-chan int, results [][]feed.RawEntry, wg *sync.WaitGroup) {
	defer wg.Done()

	for index := range queue {
		task := NewFetchFeedTask(feedURLs[index], c.fetcher, c.filterer, c.timeout)
		results[index] = c.executeTask(ctx, id, task)
	}
}

func (c *Collector) executeTask(ctx context.Context, workerID int, task *FetchFeedTask) (entries []feed.RawEntry) {
	task.Start()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("Feed error", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "url", task.GetTarget(), "error", fmt.Sprintf("panic: %v", r))
			entries = nil
		}
	}()

	entries, err := task.Execute(ctx)
	if err != nil {
		slog.Error("Feed error", "worker_id", workerID, "type", string(task.GetType()), "id", task.GetID(), "url", task.GetTarget(), "error", err)
		return nil
	}

	return entries
}
