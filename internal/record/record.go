// Package record is the adapter over the on-disk XML tree that holds all
// tracked items and their price observations:
//
//	<root>
//	  <item name="...">
//	    <url>...</url>
//	    <info>...</info>
//	    <image>...</image>
//	    <price date="YYYY.MM.DD HH:MM">123456</price>
//	  </item>
//	</root>
//
// The crawl driver appends to this tree directly; the store reads it and
// writes deletions back. Both go through this package so the two write paths
// share one schema.
package record

import (
	"encoding/xml"
	"os"

	"avenks/pricewatch/pkg/errors"
)

// DateLayout is the observation timestamp format. Minute resolution: two
// observations of one item within a minute collide and the later wins.
const DateLayout = "2006.01.02 15:04"

// emptyRecordSize is the serialized size of an empty root element. A file no
// larger than this holds no data and is not worth parsing.
const emptyRecordSize = len("<root></root>") + 2

// Record is the root of the persisted tree.
type Record struct {
	XMLName xml.Name `xml:"root"`
	Items   []*Item  `xml:"item"`
}

// Item is one tracked product. Name is the natural key: two nodes with the
// same name are the same item. URL, Info and Image are pointers because
// presence matters: a crawl backfills only children that are missing, never
// ones that are present but empty.
type Item struct {
	Name   string  `xml:"name,attr"`
	URL    *string `xml:"url"`
	Info   *string `xml:"info"`
	Image  *string `xml:"image"`
	Prices []Price `xml:"price"`
}

// Price is one observation: a date label and a numeric string or the
// out-of-stock sentinel.
type Price struct {
	Date  string `xml:"date,attr"`
	Value string `xml:",chardata"`
}

// Load reads and parses the record file. A missing file surfaces as a
// record-not-found error; a file no larger than an empty root parses to a
// record with no items.
func Load(path string) (*Record, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.NewRecordNotFound(path, err)
	}
	if info.Size() <= int64(emptyRecordSize) {
		return &Record{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewRecord(path, "failed to read record", err)
	}

	var rec Record
	if err := xml.Unmarshal(data, &rec); err != nil {
		return nil, errors.NewRecord(path, "failed to parse record", err)
	}
	return &rec, nil
}

// Save serializes the record back to disk with an XML declaration.
func Save(path string, rec *Record) error {
	data, err := xml.Marshal(rec)
	if err != nil {
		return errors.NewRecord(path, "failed to serialize record", err)
	}
	out := append([]byte(xml.Header), data...)
	if err := os.WriteFile(path, out, 0644); err != nil {
		return errors.NewRecord(path, "failed to write record", err)
	}
	return nil
}

// EnsureFile creates the record file as an empty root when it does not
// exist. The list editor normally creates it first; this is the crawl
// driver's fallback.
func EnsureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte("<root></root>"), 0644); err != nil {
		return errors.NewRecord(path, "failed to create record", err)
	}
	return nil
}

// Find returns the item node with the given name, or nil.
func (r *Record) Find(name string) *Item {
	for _, it := range r.Items {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// Add appends a new item node and returns it.
func (r *Record) Add(name string) *Item {
	it := &Item{Name: name}
	r.Items = append(r.Items, it)
	return it
}

// URLs returns the item/url text values in document order. Items without a
// url child are skipped.
func (r *Record) URLs() []string {
	var urls []string
	for _, it := range r.Items {
		if it.URL != nil {
			urls = append(urls, *it.URL)
		}
	}
	return urls
}

// AppendPrice adds a price node. The record keeps duplicates for one date;
// collapsing them is the in-memory store's business.
func (it *Item) AppendPrice(date, value string) {
	it.Prices = append(it.Prices, Price{Date: date, Value: value})
}

// SetURL sets the url child unconditionally.
func (it *Item) SetURL(url string) {
	it.URL = &url
}

// FillMissing backfills url, info and image children that are absent.
// Existing values are never overwritten by a later crawl.
func (it *Item) FillMissing(url, info, image string) {
	if it.URL == nil {
		it.URL = &url
	}
	if it.Info == nil {
		it.Info = &info
	}
	if it.Image == nil {
		it.Image = &image
	}
}

// KeepPrices drops every price node whose date the keep function rejects.
func (it *Item) KeepPrices(keep func(date string) bool) {
	kept := it.Prices[:0]
	for _, p := range it.Prices {
		if keep(p.Date) {
			kept = append(kept, p)
		}
	}
	it.Prices = kept
}
