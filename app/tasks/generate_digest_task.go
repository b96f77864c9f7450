package tasks

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/ai-inside-digest/app/digest"
)

// DigestStore is the persisted collection the task reads and rewrites.
type DigestStore interface {
	Load() (*digest.Collection, error)
	Save(collection *digest.Collection) error
	Path() string
}

var _ DigestStore = (*digest.Store)(nil)

type GenerateDigestTask struct {
	Task
	feedURLs   []string
	collector  *Collector
	aggregator *digest.Aggregator
	store      DigestStore
}

func NewGenerateDigestTask(feedURLs []string, collector *Collector, aggregator *digest.Aggregator, store DigestStore) *GenerateDigestTask {
	return &GenerateDigestTask{
		Task:       NewTask(TaskTypeGenerateDigest, store.Path()),
		feedURLs:   feedURLs,
		collector:  collector,
		aggregator: aggregator,
		store:      store,
	}
}

// Build collects the feeds and assembles a digest without touching the store.
func (t *GenerateDigestTask) Build(ctx context.Context) digest.Digest {
	entries := t.collector.Run(ctx, t.feedURLs)
	return t.aggregator.Run(entries)
}

// Execute loads the collection, prepends a freshly built digest and writes
// the collection back in full.
func (t *GenerateDigestTask) Execute(ctx context.Context) (*digest.Collection, error) {
	t.Start()

	collection, err := t.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load digest collection: %w", err)
	}

	d := t.Build(ctx)
	collection.Prepend(d)

	if err := t.store.Save(collection); err != nil {
		return nil, fmt.Errorf("failed to save digest collection: %w", err)
	}

	slog.Info(fmt.Sprintf("Wrote %s with %d post(s).", t.store.Path(), len(collection.Posts)),
		"type", string(t.GetType()),
		"id", t.GetID(),
		"date", d.Date,
		"items", len(d.Items),
		"duration", t.GetDuration())

	return collection, nil
}
