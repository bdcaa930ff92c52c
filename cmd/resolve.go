package cmd

import (
	"fmt"

	"avenks/pricewatch/helpers"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Previews the product name a URL would be tracked under.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c, cleanup := newCrawler(cmd.Context())
		defer cleanup()

		name := c.ResolveName(helpers.NormalizeURL(args[0]))
		if name == "" {
			fmt.Println("Item not found, possibly wrong URL")
			return
		}
		fmt.Println(name)
	},
}
