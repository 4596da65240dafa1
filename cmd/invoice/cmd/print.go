package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoicing/internal/model"
	"github.com/rezonia/invoicing/internal/order"
	"github.com/rezonia/invoicing/internal/render"
)

var printCmd = &cobra.Command{
	Use:   "print [orders...]",
	Short: "Print invoices for order files",
	Long: `Build one invoice per order file and print it.

Invoices are numbered consecutively in the order the files are given.

Examples:
  invoice print order.yaml
  invoice print january.yaml february.yaml -f json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrint,
}

func init() {
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(outputFormat)
	exporter, _, ok := render.ForFormat(format)
	if !ok || (format != "txt" && format != "json") {
		return fmt.Errorf("unsupported output format %q (use txt or json)", outputFormat)
	}

	for _, path := range args {
		inv, err := buildInvoice(path)
		if err != nil {
			return err
		}
		if err := exporter(cmd.OutOrStdout(), inv); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func buildInvoice(path string) (*model.Invoice, error) {
	printVerbose("Loading: %s\n", path)

	o, err := order.LoadFile(path)
	if err != nil {
		return nil, err
	}

	inv, err := o.Build(model.DefaultSequence())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	printVerbose("  Invoice %d: %d items, gross %s\n", inv.Number(), inv.Len(), inv.TotalGross().String())
	return inv, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
