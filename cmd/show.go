package cmd

import (
	"fmt"
	"os"

	"avenks/pricewatch/internal/store"
	"avenks/pricewatch/internal/summary"
	"avenks/pricewatch/logger"
	"avenks/pricewatch/pkg/errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [item name]",
	Short: "Lists tracked items, or prints one item's price history and summary.",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		if len(args) == 0 {
			showAll(s)
			return
		}

		name := args[0]
		it := s.Find(name)
		if it == nil {
			logger.Fatal("no item named %q in %s", name, s.Path())
		}
		showItem(it)
	},
}

// openStore loads the record, translating the failure states the way the
// original tool prompts its user.
func openStore() *store.Store {
	s, err := store.Open(recordFile())
	if err != nil {
		if errors.IsRecordNotFound(err) {
			logger.Fatal("record %s not found; run 'pricewatch urls add' or check the path", recordFile())
		}
		if errors.IsRecordEmpty(err) {
			logger.Fatal("record %s has no data yet; run 'pricewatch crawl' first", recordFile())
		}
		logger.Fatal("failed to open record: %v", err)
	}
	return s
}

func showAll(s *store.Store) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Item", "Observations", "Latest price"})

	for _, it := range s.Items() {
		sum := summarize(it)
		latest := "N/A"
		if sum.Available {
			latest = fmt.Sprintf("%d", sum.Latest)
		}
		t.AppendRow(table.Row{it.Name, it.Prices.Len(), latest})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func showItem(it *store.Item) {
	if it.Info != "" {
		fmt.Println(it.Info)
	}
	if it.URL != "" {
		fmt.Println(it.URL)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Date", "Price"})
	for _, date := range it.Prices.Dates() {
		price, _ := it.Prices.Get(date)
		t.AppendRow(table.Row{date, price})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	sum := summarize(it)
	if !sum.Available {
		fmt.Println("No price statistics available")
		return
	}

	trend := "unfavorable"
	if sum.Favorable {
		trend = "favorable"
	}
	fmt.Printf("Latest price: %d (%s)\n", sum.Latest, trend)
	fmt.Printf("Lowest price: %d\n", sum.Min)
	fmt.Printf("Highest price: %d\n", sum.Max)
	fmt.Printf("Average price: %d / %d\n", sum.Average, sum.Midpoint)
	fmt.Printf("Moving average price: %d\n", sum.MovingAverage)
}

func summarize(it *store.Item) summary.Summary {
	return summary.Summarize(it.Prices.Values())
}
