package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsharvest/app/cfg"
	"newsharvest/app/dashboard"
	"newsharvest/app/feed"
	"newsharvest/app/output"
	"newsharvest/app/runner"
	"newsharvest/app/scheduler"
	"newsharvest/app/sources"
)

func main() {
	appCfg, command, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case "run", "":
		scraperRunner, srcs := buildRunner(appCfg)
		if err := scraperRunner.Run(ctx, srcs); err != nil {
			log.Fatalf("Scraping run failed: %v", err)
		}

	case "historical":
		scraperRunner, srcs := buildRunner(appCfg)
		end := time.Now()
		start := end.Add(-time.Duration(appCfg.WindowDays) * 24 * time.Hour)
		if err := scraperRunner.RunHistorical(ctx, srcs, start, end); err != nil {
			log.Fatalf("Historical run failed: %v", err)
		}

	case "schedule":
		scraperRunner, srcs := buildRunner(appCfg)
		job := func(ctx context.Context) error {
			return scraperRunner.Run(ctx, srcs)
		}
		sched := scheduler.NewScheduler(time.Duration(appCfg.IntervalHours)*time.Hour, job)
		sched.Run(ctx)

	case "serve":
		if err := serveDashboard(ctx, appCfg); err != nil {
			log.Fatalf("Dashboard server failed: %v", err)
		}

	default:
		log.Fatalf("Unknown command: %s (expected run, historical, schedule or serve)", command)
	}
}

// buildRunner wires the scraping components from configuration.
func buildRunner(appCfg *cfg.Cfg) (*runner.Runner, []sources.Source) {
	srcs, err := sources.NewLoader(appCfg.SourcesFile).Load()
	if err != nil {
		log.Fatalf("Failed to load sources: %v", err)
	}
	slog.Info("Loaded feed sources", "count", len(srcs))

	timeout := time.Duration(appCfg.FetchTimeout) * time.Second
	fetcher := feed.NewFetcher(appCfg.UserAgent, timeout, time.Duration(appCfg.FetchDelay)*time.Second)
	crawler := feed.NewFetcher(appCfg.UserAgent, timeout, time.Duration(appCfg.CrawlDelay)*time.Second)

	pipeline := feed.NewPipeline(
		feed.NewTextNormalizer(),
		feed.NewDateParser(nil),
		feed.NewLanguageDetector(),
		feed.NewDeduplicator(),
		appCfg.WindowDays,
	)
	if appCfg.ExtractContent {
		pipeline.EnableContentExtraction(crawler, feed.NewContentExtractor())
	}

	writer := output.NewWriter(appCfg.OutputDir, output.Format(appCfg.OutputFormat))

	return runner.NewRunner(fetcher, crawler, pipeline, writer), srcs
}

func serveDashboard(ctx context.Context, appCfg *cfg.Cfg) error {
	store := dashboard.NewStore(output.NewReader(appCfg.OutputDir))

	count, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load data directory: %w", err)
	}
	slog.Info("Loaded article corpus", "articles", count, "dir", appCfg.OutputDir)

	handler := dashboard.NewHandler(store)
	server := dashboard.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting dashboard server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	case err := <-serverErrChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}

	slog.Info("Dashboard server stopped")
	return nil
}
