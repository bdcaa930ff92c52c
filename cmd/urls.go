package cmd

import (
	"fmt"
	"os"

	"avenks/pricewatch/helpers"
	"avenks/pricewatch/internal/record"
	"avenks/pricewatch/logger"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var addName string

func init() {
	urlsAddCmd.Flags().StringVar(&addName, "name", "", "track the URL under this name instead of resolving it")
	urlsCmd.AddCommand(urlsListCmd)
	urlsCmd.AddCommand(urlsAddCmd)
	urlsCmd.AddCommand(urlsRmCmd)
	rootCmd.AddCommand(urlsCmd)
}

var urlsCmd = &cobra.Command{
	Use:   "urls",
	Short: "Edits the source list of product page URLs to crawl.",
}

var urlsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the source URLs and the names they are tracked under.",
	Run: func(cmd *cobra.Command, args []string) {
		rec, err := record.Load(recordFile())
		if err != nil {
			logger.Fatal("failed to load record: %v", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"URL", "Name"})
		for _, it := range rec.Items {
			url := ""
			if it.URL != nil {
				url = *it.URL
			}
			t.AppendRow(table.Row{url, it.Name})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

var urlsAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Adds a product page URL to the source list.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := helpers.NormalizeURL(args[0])

		name := addName
		if name == "" {
			c, cleanup := newCrawler(cmd.Context())
			defer cleanup()
			name = c.ResolveName(url)
		}
		if name == "" {
			logger.Fatal("could not resolve a product name for %s; pass --name to add it anyway", url)
		}

		if err := record.EnsureFile(recordFile()); err != nil {
			logger.Fatal("failed to create record: %v", err)
		}
		rec, err := record.Load(recordFile())
		if err != nil {
			logger.Fatal("failed to load record: %v", err)
		}

		if existing := rec.Find(name); existing != nil {
			logger.Fatal("item %q is already tracked", name)
		}
		for _, u := range rec.URLs() {
			if u == url {
				logger.Fatal("URL %s is already in the source list", url)
			}
		}

		// The item node starts with only a url child; the first crawl
		// fills in the rest
		rec.Add(name).SetURL(url)
		if err := record.Save(recordFile(), rec); err != nil {
			logger.Fatal("failed to save record: %v", err)
		}
		fmt.Printf("Added %s as %q\n", url, name)
	},
}

var urlsRmCmd = &cobra.Command{
	Use:   "rm <url>",
	Short: "Removes a URL (and its item with all observations) from the record.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		url := helpers.NormalizeURL(args[0])

		rec, err := record.Load(recordFile())
		if err != nil {
			logger.Fatal("failed to load record: %v", err)
		}

		kept := rec.Items[:0]
		removed := false
		for _, it := range rec.Items {
			if it.URL != nil && *it.URL == url {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		rec.Items = kept

		if !removed {
			logger.Fatal("URL %s is not in the source list", url)
		}
		if err := record.Save(recordFile(), rec); err != nil {
			logger.Fatal("failed to save record: %v", err)
		}
		fmt.Printf("Removed %s\n", url)
	},
}
