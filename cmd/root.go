package cmd

import (
	"context"
	"fmt"
	"os"

	"avenks/pricewatch/config"
	"avenks/pricewatch/internal/crawl"
	"avenks/pricewatch/logger"
	"avenks/pricewatch/services/cache"
	"avenks/pricewatch/services/publisher"

	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	recordPath string
)

var rootCmd = &cobra.Command{
	Use:   "pricewatch",
	Short: "pricewatch tracks prices of catalog items scraped from product pages.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&recordPath, "record", "", "record file holding tracked items (default from RECORD_PATH)")
}

// ExecuteContext runs the CLI.
func ExecuteContext(ctx context.Context, c *config.Config) {
	cfg = c
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func recordFile() string {
	if recordPath != "" {
		return recordPath
	}
	return cfg.RecordPath
}

// newCrawler wires the crawl driver with the optional page cache and
// observation publisher from configuration.
func newCrawler(ctx context.Context) (*crawl.Crawler, func()) {
	c := crawl.New(recordFile())
	c.Profile.SiteRoot = cfg.SiteBaseURL

	fetcher := &crawl.PageFetcher{TTL: cfg.PageCacheTTL}
	if cfg.MemcacheAddr != "" {
		fetcher.Cache = cache.NewMemcacheService(cfg.MemcacheAddr)
		logger.Info("Using page cache at %s", cfg.MemcacheAddr)
	}
	c.Fetcher = fetcher

	cleanup := func() {}
	if cfg.RedisAddr != "" {
		pub := publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream, cfg.RedisStreamMax)
		c.Publisher = pub
		cleanup = func() { pub.Close() }
		logger.Info("Publishing observations to %s stream %s", cfg.RedisAddr, cfg.RedisStream)
	}
	return c, cleanup
}
