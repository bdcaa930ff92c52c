package store

import (
	"os"
	"path/filepath"
	"testing"

	"avenks/pricewatch/internal/record"
	"avenks/pricewatch/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecord = `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <item name="GeForce RTX 3060">
    <url>https://example.com/tovary/rtx3060/</url>
    <info>Видеокарта RTX 3060</info>
    <image>https://example.com/upload/card.jpg</image>
    <price date="2021.09.16 19:32">43990</price>
    <price date="2021.09.17 10:00">44990</price>
  </item>
  <item name="Ryzen 5 5600X">
    <url>https://example.com/tovary/5600x/</url>
    <price date="2021.09.16 19:32">21000</price>
  </item>
</root>`

func writeRecord(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestOpen(t *testing.T) {
	s, err := Open(writeRecord(t, sampleRecord))
	require.NoError(t, err)
	require.Len(t, s.Items(), 2)

	it := s.Find("GeForce RTX 3060")
	require.NotNil(t, it)
	assert.Equal(t, "https://example.com/tovary/rtx3060/", it.URL)
	assert.Equal(t, "Видеокарта RTX 3060", it.Info)
	assert.Equal(t, "https://example.com/upload/card.jpg", it.ImageRef)
	assert.Equal(t, []string{"43990", "44990"}, it.Prices.Values())
}

func TestOpenMissingRecord(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.xml"))
	assert.True(t, errors.IsRecordNotFound(err))
}

func TestOpenEmptyRecord(t *testing.T) {
	_, err := Open(writeRecord(t, "<root></root>"))
	assert.True(t, errors.IsRecordEmpty(err))
}

func TestReloadSingleDelta(t *testing.T) {
	path := writeRecord(t, sampleRecord)
	s, err := Open(path)
	require.NoError(t, err)

	// Simulate a crawl appending one observation to one item
	rec, err := record.Load(path)
	require.NoError(t, err)
	rec.Find("GeForce RTX 3060").AppendPrice("2021.09.18 12:00", "42990")
	require.NoError(t, record.Save(path, rec))

	require.NoError(t, s.Reload())

	it := s.Find("GeForce RTX 3060")
	assert.Equal(t, 3, it.Prices.Len())
	assert.Equal(t, []string{"43990", "44990", "42990"}, it.Prices.Values())

	// Older dates are not re-duplicated
	other := s.Find("Ryzen 5 5600X")
	assert.Equal(t, 1, other.Prices.Len())
}

func TestReloadIdempotentWithoutChanges(t *testing.T) {
	path := writeRecord(t, sampleRecord)
	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Reload())
	assert.Equal(t, 2, s.Find("GeForce RTX 3060").Prices.Len())
	assert.Len(t, s.Items(), 2)
}

func TestReloadDropsIntermediateObservations(t *testing.T) {
	path := writeRecord(t, sampleRecord)
	s, err := Open(path)
	require.NoError(t, err)

	// Two crawls without a reload in between: only the last node merges
	rec, err := record.Load(path)
	require.NoError(t, err)
	node := rec.Find("GeForce RTX 3060")
	node.AppendPrice("2021.09.18 12:00", "42990")
	node.AppendPrice("2021.09.19 12:00", "41990")
	require.NoError(t, record.Save(path, rec))

	require.NoError(t, s.Reload())

	it := s.Find("GeForce RTX 3060")
	assert.Equal(t, 3, it.Prices.Len())
	assert.False(t, it.Prices.Has("2021.09.18 12:00"))
	assert.True(t, it.Prices.Has("2021.09.19 12:00"))
}

func TestDeletePriceAndReconcile(t *testing.T) {
	path := writeRecord(t, `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <item name="X">
    <url>https://example.com/x/</url>
    <price date="D1">100</price>
    <price date="D2">200</price>
  </item>
</root>`)

	s, err := Open(path)
	require.NoError(t, err)

	s.DeletePrice("X", "D1")
	// Memory diverges, disk untouched until reconciliation
	rec, err := record.Load(path)
	require.NoError(t, err)
	assert.Len(t, rec.Find("X").Prices, 2)

	require.NoError(t, s.Reconcile())

	rec, err = record.Load(path)
	require.NoError(t, err)
	require.Len(t, rec.Find("X").Prices, 1)
	assert.Equal(t, "D2", rec.Find("X").Prices[0].Date)
	assert.Equal(t, "200", rec.Find("X").Prices[0].Value)
}

func TestDeletePriceNoOp(t *testing.T) {
	s, err := Open(writeRecord(t, sampleRecord))
	require.NoError(t, err)

	s.DeletePrice("GeForce RTX 3060", "no such date")
	s.DeletePrice("no such item", "2021.09.16 19:32")
	assert.Equal(t, 2, s.Find("GeForce RTX 3060").Prices.Len())
}

func TestReconcileWithoutMutationsKeepsRecord(t *testing.T) {
	path := writeRecord(t, sampleRecord)
	s, err := Open(path)
	require.NoError(t, err)

	before, err := record.Load(path)
	require.NoError(t, err)

	require.NoError(t, s.Reconcile())

	after, err := record.Load(path)
	require.NoError(t, err)
	require.Len(t, after.Items, len(before.Items))
	for i := range before.Items {
		assert.Equal(t, before.Items[i].Name, after.Items[i].Name)
		assert.Equal(t, before.Items[i].Prices, after.Items[i].Prices)
	}
}

func TestDeleteItemMemoryOnly(t *testing.T) {
	path := writeRecord(t, sampleRecord)
	s, err := Open(path)
	require.NoError(t, err)

	s.DeleteItem("Ryzen 5 5600X")
	assert.Nil(t, s.Find("Ryzen 5 5600X"))
	assert.Len(t, s.Items(), 1)

	require.NoError(t, s.Reconcile())

	// Reconciliation propagates price deletions, not item deletions
	rec, err := record.Load(path)
	require.NoError(t, err)
	assert.NotNil(t, rec.Find("Ryzen 5 5600X"))
}

func TestTotalValue(t *testing.T) {
	path := writeRecord(t, `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <item name="A">
    <url>https://example.com/a/</url>
    <price date="D1">NOT IN STOCK</price>
  </item>
  <item name="B">
    <url>https://example.com/b/</url>
    <price date="D1">500</price>
    <price date="D2">NOT IN STOCK</price>
  </item>
  <item name="C">
    <url>https://example.com/c/</url>
    <price date="D1">500</price>
    <price date="D2">700</price>
  </item>
</root>`)

	s, err := Open(path)
	require.NoError(t, err)

	// A: single non-numeric observation, excluded.
	// B: two observations, backward scan stops before the oldest and finds
	//    nothing numeric, excluded.
	// C: contributes its most recent numeric observation.
	assert.Equal(t, 700, s.TotalValue())
}

func TestTotalValueSingleObservation(t *testing.T) {
	path := writeRecord(t, `<?xml version="1.0" encoding="UTF-8"?>
<root>
  <item name="A">
    <url>https://example.com/a/</url>
    <price date="D1">1500</price>
  </item>
</root>`)

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 1500, s.TotalValue())
}
