package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Build, print and export invoices",
	Long: `Invoice builds invoices from order files and prints their totals.

Products fall into three tax categories:
  - taxfree: 0%
  - dairy:   8%
  - other:   23%

Examples:
  # Print an invoice for an order
  invoice print order.yaml

  # Print the structured summary
  invoice print order.yaml -f json

  # Export to a spreadsheet or PDF
  invoice export order.yaml -o invoice.xlsx

  # Serve the HTTP API
  invoice serve --address :8080`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Output format (txt, json) (env: INVOICE_FORMAT)")

	// Load from environment variables if not set via flags
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if outputFormat == "" {
		outputFormat = os.Getenv("INVOICE_FORMAT")
	}
	if outputFormat == "" {
		outputFormat = "txt"
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
