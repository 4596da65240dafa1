package render

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/rezonia/invoicing/internal/model"
)

// Exporter writes an invoice in one output format
type Exporter func(w io.Writer, inv *model.Invoice) error

var formats = map[string]struct {
	exporter    Exporter
	contentType string
}{
	"txt":  {Text, "text/plain; charset=utf-8"},
	"json": {JSON, "application/json"},
	"xlsx": {XLSX, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	"pdf":  {PDF, "application/pdf"},
}

// ForFormat returns the exporter and content type for a format name
// (txt, json, xlsx, pdf)
func ForFormat(format string) (Exporter, string, bool) {
	f, ok := formats[strings.ToLower(format)]
	if !ok {
		return nil, "", false
	}
	return f.exporter, f.contentType, true
}

// FormatFromPath derives the format name from a file extension
func FormatFromPath(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
