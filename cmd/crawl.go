package cmd

import (
	"avenks/pricewatch/logger"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(crawlCmd)
}

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Fetches every URL in the source list and appends fresh price observations.",
	Run: func(cmd *cobra.Command, args []string) {
		c, cleanup := newCrawler(cmd.Context())
		defer cleanup()

		if err := c.Run(); err != nil {
			logger.Fatal("crawl failed: %v", err)
		}
		logger.Info("Done")
	},
}
