package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoicing/internal/model"
	"github.com/rezonia/invoicing/internal/render"
)

var (
	outputFile string
	overwrite  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [order]",
	Short: "Export an invoice to a file",
	Long: `Build an invoice from an order file and write it to disk.

The format follows the output file extension: .txt, .json, .xlsx or .pdf.

Examples:
  invoice export order.yaml -o invoice.pdf
  invoice export order.yaml -o invoice.xlsx --force`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (required)")
	exportCmd.Flags().BoolVar(&overwrite, "force", false, "Overwrite an existing output file")
	_ = exportCmd.MarkFlagRequired("output")
}

func runExport(cmd *cobra.Command, args []string) error {
	format := render.FormatFromPath(outputFile)
	exporter, _, ok := render.ForFormat(format)
	if !ok {
		return fmt.Errorf("unsupported output extension %q", format)
	}

	if fileExists(outputFile) && !overwrite {
		return fmt.Errorf("%s already exists (use --force to overwrite)", outputFile)
	}

	inv, err := buildInvoice(args[0])
	if err != nil {
		return err
	}

	if err := writeExport(outputFile, exporter, inv); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Invoice %d written to %s\n", inv.Number(), outputFile)
	return nil
}

// writeExport renders inv in memory and only touches path once rendering succeeded
func writeExport(path string, exporter render.Exporter, inv *model.Invoice) error {
	var buf bytes.Buffer
	if err := exporter(&buf, inv); err != nil {
		return fmt.Errorf("failed to export invoice %d: %w", inv.Number(), err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
