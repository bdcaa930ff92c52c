package cmd

import (
	"fmt"

	"avenks/pricewatch/logger"

	"github.com/spf13/cobra"
)

func init() {
	pricesCmd.AddCommand(pricesRmCmd)
	rootCmd.AddCommand(pricesCmd)
}

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Edits an item's recorded price observations.",
}

var pricesRmCmd = &cobra.Command{
	Use:   "rm <item name> <date>",
	Short: "Removes one price observation and writes the record back.",
	Long: `Removes the observation recorded at the given date (format "2006.01.02 15:04",
quote the argument) from the named item and reconciles the record file.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, date := args[0], args[1]

		s := openStore()
		it := s.Find(name)
		if it == nil {
			logger.Fatal("no item named %q in %s", name, s.Path())
		}
		if !it.Prices.Has(date) {
			logger.Fatal("item %q has no observation at %q", name, date)
		}

		s.DeletePrice(name, date)
		if err := s.Reconcile(); err != nil {
			logger.Fatal("failed to save record: %v", err)
		}
		fmt.Printf("Removed observation %s from %q\n", date, name)
	},
}
