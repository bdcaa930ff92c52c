// Package store holds the in-memory collection of tracked items with their
// price series, loaded from the persisted record.
//
// The store and the record diverge in one direction at a time: a crawl
// appends to the record until Reload folds the new observations in; a user
// deletion lives in memory until Reconcile writes it back. Reconcile is the
// only path that removes data from disk.
package store

import (
	"strconv"
	"strings"

	"avenks/pricewatch/internal/record"
	"avenks/pricewatch/logger"
	"avenks/pricewatch/pkg/errors"
)

// Item is one tracked product in memory.
type Item struct {
	Name     string
	Info     string
	URL      string
	ImageRef string
	Prices   *Series
}

// Store is the in-memory item collection bound to one record file.
type Store struct {
	path  string
	rec   *record.Record
	items []*Item
	log   *logger.Logger
}

// Open loads the record at path into a new store. A missing file surfaces as
// record-not-found, a record with no items as record-empty; no partial load
// is exposed.
func Open(path string) (*Store, error) {
	s := &Store{path: path, log: logger.ForStore()}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the record and merges it into the collection.
//
// Unknown items are created with their full price history in document order.
// For an already-known item only the last price node in the record is folded
// in: the merge is a single-delta merge, assuming exactly one observation was
// appended per item since the previous load. When the record turns out to
// hold more than one unseen observation the extras are dropped, as a warning,
// not silently.
func (s *Store) Reload() error {
	rec, err := record.Load(s.path)
	if err != nil {
		return err
	}
	if len(rec.Items) == 0 {
		return errors.NewRecordEmpty(s.path)
	}
	s.rec = rec

	for _, node := range rec.Items {
		name := strings.TrimSpace(node.Name)
		existing := s.Find(name)
		if existing == nil {
			s.items = append(s.items, itemFromNode(name, node))
			continue
		}

		if unseen := countUnseen(existing, node); unseen > 1 {
			s.log.Warn().
				Str("item", name).
				Int("unseen", unseen).
				Msg("single-delta merge: dropping all but the last new observation")
		}
		if n := len(node.Prices); n > 0 {
			last := node.Prices[n-1]
			existing.Prices.Add(last.Date, last.Value)
		}
	}
	return nil
}

func itemFromNode(name string, node *record.Item) *Item {
	it := &Item{Name: name, Prices: NewSeries()}
	if node.URL != nil {
		it.URL = strings.TrimSpace(*node.URL)
	}
	if node.Info != nil {
		it.Info = strings.TrimSpace(*node.Info)
	}
	if node.Image != nil {
		it.ImageRef = strings.TrimSpace(*node.Image)
	}
	for _, p := range node.Prices {
		it.Prices.Add(p.Date, p.Value)
	}
	return it
}

func countUnseen(it *Item, node *record.Item) int {
	unseen := 0
	for _, p := range node.Prices {
		if !it.Prices.Has(p.Date) {
			unseen++
		}
	}
	return unseen
}

// Items returns the collection in load order.
func (s *Store) Items() []*Item {
	return s.items
}

// Find returns the item with the given name, or nil.
func (s *Store) Find(name string) *Item {
	for _, it := range s.items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Path returns the record file this store is bound to.
func (s *Store) Path() string {
	return s.path
}

// DeletePrice removes the observation for date from the named item, in
// memory only. Deleting an absent date or item is a no-op. The deletion
// becomes durable only when Reconcile runs.
func (s *Store) DeletePrice(name, date string) {
	if it := s.Find(name); it != nil {
		it.Prices.Delete(date)
	}
}

// DeleteItem removes the named item from the collection. Memory only: the
// record node survives, reconciliation propagates price deletions and
// nothing else.
func (s *Store) DeleteItem(name string) {
	for i, it := range s.items {
		if it.Name == name {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Reconcile writes in-memory price deletions back to the record: every
// record-side price node whose date is no longer present in memory is
// removed, then the record is saved. This is the only path that deletes
// data physically.
func (s *Store) Reconcile() error {
	if s.rec == nil {
		return errors.NewRecord(s.path, "no record loaded", nil)
	}
	for _, it := range s.items {
		node := s.rec.Find(it.Name)
		if node == nil {
			continue
		}
		prices := it.Prices
		node.KeepPrices(func(date string) bool { return prices.Has(date) })
	}
	return record.Save(s.path, s.rec)
}

// TotalValue sums one "current" price per item across the collection.
//
// An item with a single numeric observation contributes it even when stale.
// Otherwise the observations are scanned from most recent backward, stopping
// before the oldest, and the first in-stock (numeric) one counts. Items with
// no such observation contribute nothing. The oldest observation is excluded
// from the multi-observation scan on purpose; the single-observation rule is
// the one that trusts lone history.
func (s *Store) TotalValue() int {
	total := 0
	for _, it := range s.items {
		values := it.Prices.Values()
		if len(values) == 1 {
			if v, err := strconv.Atoi(values[0]); err == nil {
				total += v
			}
			continue
		}
		for i := len(values) - 1; i > 0; i-- {
			if v, err := strconv.Atoi(values[i]); err == nil {
				total += v
				break
			}
		}
	}
	return total
}
