package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/venicelabs/modelcatalog/internal/api"
	"github.com/venicelabs/modelcatalog/internal/catalog"
	"github.com/venicelabs/modelcatalog/internal/config"
	"github.com/venicelabs/modelcatalog/internal/pricing"
	"github.com/venicelabs/modelcatalog/internal/venice"
)

func main() {
	var (
		port       = flag.Int("port", 0, "port to listen on (overrides config)")
		configPath = flag.String("config", "", "path to config file")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "modelcatalog",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(*configPath, *debug)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}
	if *port != 0 {
		cfg.Port = *port
	}

	store := catalog.NewStore()
	cache := venice.NewTTLCache(cfg.CacheTTL)
	client := venice.NewClient(cfg.CatalogURL, cfg.FetchTimeout, logger)
	loader := venice.NewLoader(client, cache, logger)
	quotes := pricing.NewQuoteClient(cfg.QuoteURL, cfg.QuoteTimeout, logger)
	resolver := pricing.NewResolver(quotes)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store.Replace(loader.Load(ctx))
	logger.Info("catalog loaded", "models", store.Len())

	// Keep the snapshot warm; a failed refresh keeps the current catalog.
	go refreshLoop(ctx, cfg.CacheTTL, store, loader, logger)

	server := api.NewServer(cfg, store, resolver, loader, logger)
	go func() {
		if err := server.Start(cfg.Port); err != nil {
			logger.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "err", err)
		os.Exit(1)
	}
	fmt.Println("goodbye")
}

func refreshLoop(ctx context.Context, interval time.Duration, store *catalog.Store, loader *venice.Loader, logger *log.Logger) {
	if interval <= 0 {
		interval = venice.DefaultCacheTTL
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if records := loader.Refresh(ctx); len(records) > 0 {
				store.Replace(records)
				logger.Debug("catalog refreshed", "models", store.Len())
			}
		}
	}
}
