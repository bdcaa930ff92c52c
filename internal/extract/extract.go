// Package extract pulls structured fields out of raw product page markup.
//
// Extraction is deliberately landmark-based: each field is found by locating
// a fixed substring and slicing a bounded window around it. The shop's pages
// are template-generated, so the landmarks are stable while a full HTML parse
// would be wasted work and a second way to break. Absent landmarks degrade to
// empty values or the out-of-stock sentinel, never to a panic.
package extract

import "strings"

// NotInStock is the sentinel recorded in place of a price when the product
// page carries no machine-readable price.
const NotInStock = "NOT IN STOCK"

// Direction of the bounded scan relative to the landmark.
const (
	// Forward slices the window after the landmark.
	Forward = iota
	// Backward slices the window before the landmark.
	Backward
)

// Rule describes one landmark scan: where to anchor, how far to look, and
// which way.
type Rule struct {
	Landmark  string
	Window    int
	Direction int
}

// Profile holds the landmark rules for one shop's page template.
type Profile struct {
	// Name sits between the title landmark and the closing heading tag.
	NameRule Rule
	NameEnd  string

	// Info is the text between the title open and close landmarks.
	InfoOpen  string
	InfoClose string

	// Price is a quoted numeric string right after its landmark.
	PriceRule Rule

	// The product image has no fixed extension, so the scan runs backward
	// from the container landmark to the nearest upload-path marker.
	ImageRule Rule
	ImagePath string

	// SiteRoot is prepended to the relative image path.
	SiteRoot string
}

// DefaultProfile returns the rules for topcomputer.ru product pages.
func DefaultProfile() Profile {
	return Profile{
		NameRule:  Rule{Landmark: `class="product-title" itemprop="name">`, Window: 100, Direction: Forward},
		NameEnd:   "</h1>",
		InfoOpen:  "<title>",
		InfoClose: "</title>",
		PriceRule: Rule{Landmark: `itemprop="price" content="`, Window: 7, Direction: Forward},
		ImageRule: Rule{Landmark: `class="fbox-product-image`, Window: 200, Direction: Backward},
		ImagePath: "upload",
		SiteRoot:  "https://topcomputer.ru/",
	}
}

// Fields holds everything extracted from one product page.
type Fields struct {
	Name     string
	Price    string
	ImageRef string
	Info     string
}

// window returns the bounded slice the rule selects from markup, clamped to
// the document.
func (r Rule) window(markup string) (string, bool) {
	idx := strings.Index(markup, r.Landmark)
	if idx < 0 {
		return "", false
	}
	if r.Direction == Backward {
		lo := idx - r.Window
		if lo < 0 {
			lo = 0
		}
		return markup[lo:idx], true
	}
	start := idx + len(r.Landmark)
	end := start + r.Window
	if end > len(markup) {
		end = len(markup)
	}
	return markup[start:end], true
}

// Name extracts the product display name. An absent landmark or heading
// close within the window yields an empty string, which callers treat as
// "name not found".
func (p Profile) Name(markup string) string {
	window, ok := p.NameRule.window(markup)
	if !ok {
		return ""
	}
	end := strings.Index(window, p.NameEnd)
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(window[:end])
}

// Fields extracts name, price, image reference and info from one page.
func (p Profile) Fields(markup string) Fields {
	return Fields{
		Name:     p.Name(markup),
		Price:    p.price(markup),
		ImageRef: p.imageRef(markup),
		Info:     p.info(markup),
	}
}

// info is the text between the first title open and close landmarks.
func (p Profile) info(markup string) string {
	start := strings.Index(markup, p.InfoOpen)
	if start < 0 {
		return ""
	}
	start += len(p.InfoOpen)
	end := strings.Index(markup[start:], p.InfoClose)
	if end < 0 {
		return ""
	}
	return markup[start : start+end]
}

// price is the quoted slice after the price landmark. A page without the
// landmark is an out-of-stock listing, not an error.
func (p Profile) price(markup string) string {
	window, ok := p.PriceRule.window(markup)
	if !ok {
		return NotInStock
	}
	end := strings.Index(window, `"`)
	if end < 0 {
		return NotInStock
	}
	return window[:end]
}

// imageRef scans backward from the image container for the upload path and
// its opening quote, then rebuilds an absolute address.
func (p Profile) imageRef(markup string) string {
	window, ok := p.ImageRule.window(markup)
	if !ok {
		return ""
	}
	start := strings.LastIndex(window, p.ImagePath)
	end := strings.LastIndex(window, `"`)
	if start < 0 || end <= start {
		return ""
	}
	return p.SiteRoot + window[start:end]
}
