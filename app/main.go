package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lysyi3m/ai-inside-digest/app/cfg"
	"github.com/lysyi3m/ai-inside-digest/app/config"
	"github.com/lysyi3m/ai-inside-digest/app/digest"
	"github.com/lysyi3m/ai-inside-digest/app/feed"
	"github.com/lysyi3m/ai-inside-digest/app/logger"
	"github.com/lysyi3m/ai-inside-digest/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	logger.Setup(appCfg.Debug)

	sources, err := config.Load()
	if err != nil {
		slog.Error("Failed to load source configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting digest run",
		"version", appCfg.Version,
		"feeds", len(sources.Feeds),
		"keywords", len(sources.Keywords),
		"window_days", sources.Settings.WindowDays,
		"output", appCfg.OutputPath,
		"dry_run", appCfg.DryRun)

	clock := feed.SystemClock
	fetcher := feed.NewHTTPFetcher(&http.Client{}, feed.NewParser(), appCfg.UserAgent)
	filterer := feed.NewFilterer(clock, sources.Settings.GetWindow(), sources.Keywords)
	collector := tasks.NewCollector(fetcher, filterer, sources.Settings.GetTimeout(), appCfg.WorkerCount)
	summarizer := feed.NewSummarizer(sources.Settings.SummaryLength)
	aggregator := digest.NewAggregator(clock, summarizer, sources.Settings.MaxItems, sources.Editorial)
	store := digest.NewStore(appCfg.OutputPath)

	task := tasks.NewGenerateDigestTask(sources.Feeds, collector, aggregator, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if appCfg.DryRun {
		d := task.Build(ctx)
		data, err := digest.Encode(d)
		if err != nil {
			slog.Error("Failed to encode digest", "error", err)
			os.Exit(1)
		}
		if _, err := os.Stdout.Write(data); err != nil {
			slog.Error("Failed to write digest", "error", err)
			os.Exit(1)
		}
		return
	}

	if _, err := task.Execute(ctx); err != nil {
		slog.Error("Digest run failed", "error", err)
		os.Exit(1)
	}
}
