package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(totalCmd)
}

var totalCmd = &cobra.Command{
	Use:   "total",
	Short: "Prints the summed current price across all in-stock items.",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		fmt.Printf("Total price: %d\n", s.TotalValue())
	},
}
