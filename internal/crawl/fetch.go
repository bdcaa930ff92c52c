package crawl

import (
	"time"

	"avenks/pricewatch/helpers"
	"avenks/pricewatch/logger"
	"avenks/pricewatch/services/cache"
)

// PageFetcher fetches markup over HTTP, optionally through a page cache so a
// name preview followed by a crawl within the TTL hits the source once.
type PageFetcher struct {
	Cache cache.CacheService
	TTL   time.Duration
}

// Fetch returns the markup for url. Cache errors count as misses; the cache
// is an optimization, never a reason to fail a fetch.
func (f *PageFetcher) Fetch(url string) (string, error) {
	key := cache.PageKey(url)
	if f.Cache != nil {
		if data, err := f.Cache.Get(key); err == nil {
			logger.ForCache().Debug().Str("url", url).Msg("page cache hit")
			return string(data), nil
		}
	}

	markup, err := helpers.FetchPage(url)
	if err != nil {
		return "", err
	}

	if f.Cache != nil {
		if err := f.Cache.Set(key, []byte(markup), f.TTL); err != nil {
			logger.ForCache().Debug().Err(err).Str("url", url).Msg("failed to cache page")
		}
	}
	return markup, nil
}
