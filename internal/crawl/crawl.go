// Package crawl walks the source list and appends fresh price observations
// to the persisted record.
//
// URLs are processed strictly one at a time in document order; the record is
// written once, after the last URL. A fetch failure aborts the remaining
// queue, so a crawl is not atomic: items processed before the failure are
// lost with the unsaved record, which matches the read-all/write-all model.
package crawl

import (
	"time"

	"avenks/pricewatch/internal/extract"
	"avenks/pricewatch/internal/record"
	"avenks/pricewatch/logger"
	"avenks/pricewatch/pkg/errors"
	"avenks/pricewatch/services/publisher"
)

// Fetcher retrieves raw markup text for a URL.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// Crawler drives one crawl over the record at RecordPath.
type Crawler struct {
	RecordPath string
	Fetcher    Fetcher
	Profile    extract.Profile

	// Publisher, when set, receives every appended observation. Publish
	// failures are logged and never abort a crawl.
	Publisher publisher.Publisher

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time

	log *logger.Logger
}

// New creates a crawler with the default fetcher and extraction profile.
func New(recordPath string) *Crawler {
	return &Crawler{
		RecordPath: recordPath,
		Fetcher:    &PageFetcher{},
		Profile:    extract.DefaultProfile(),
	}
}

func (c *Crawler) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Crawler) logger() *logger.Logger {
	if c.log == nil {
		c.log = logger.ForCrawler()
	}
	return c.log
}

// Run crawls every URL in the record's source list and persists the result.
//
// Re-crawling a URL never creates a duplicate item: the extracted name is
// the item key. It always appends an observation, though; history is the
// point. Two source URLs resolving to one name merge into one item.
func (c *Crawler) Run() error {
	if err := record.EnsureFile(c.RecordPath); err != nil {
		return err
	}
	rec, err := record.Load(c.RecordPath)
	if err != nil {
		return err
	}

	urls := rec.URLs()
	for i, url := range urls {
		markup, err := c.Fetcher.Fetch(url)
		if err != nil {
			return errors.NewSource(url, "source unavailable, crawl aborted", err)
		}

		fields := c.Profile.Fields(markup)
		date := c.now().Format(record.DateLayout)
		c.upsert(rec, url, fields, date)

		c.logger().Info().
			Int("url", i+1).
			Int("of", len(urls)).
			Str("item", fields.Name).
			Msg("parsed source page")

		c.publish(publisher.Observation{
			Name:  fields.Name,
			URL:   url,
			Date:  date,
			Price: fields.Price,
		})
	}

	return record.Save(c.RecordPath, rec)
}

// upsert writes one extraction result into the record tree. A new item gets
// url, info and image children plus its first price node. An existing item
// gets only the children it is missing backfilled, and always one more
// price node; the record keeps duplicate dates, the in-memory store
// collapses them.
func (c *Crawler) upsert(rec *record.Record, url string, fields extract.Fields, date string) {
	node := rec.Find(fields.Name)
	if node == nil {
		node = rec.Add(fields.Name)
	} else {
		c.logger().Debug().Str("item", fields.Name).Msg("merging into existing item")
	}
	node.FillMissing(url, fields.Info, fields.ImageRef)
	node.AppendPrice(date, fields.Price)
}

func (c *Crawler) publish(obs publisher.Observation) {
	if c.Publisher == nil {
		return
	}
	if err := c.Publisher.Publish(obs); err != nil {
		c.logger().Warn().Err(err).Str("item", obs.Name).Msg("failed to publish observation")
	}
}

// ResolveName fetches a URL and extracts the product name, for previewing an
// entry before it joins the source list. It never fails: unreachable or
// unrecognizable pages resolve to an empty string.
func (c *Crawler) ResolveName(url string) string {
	markup, err := c.Fetcher.Fetch(url)
	if err != nil {
		c.logger().Debug().Err(err).Str("url", url).Msg("name resolution failed")
		return ""
	}
	return c.Profile.Name(markup)
}
