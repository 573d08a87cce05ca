// Package export renders a generated record list to the supported output
// formats. Renderers are pure functions of the record list; file placement
// and naming follow the configured export path.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dummyforge/dummyforge/internal/schema"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatSQL  Format = "sql"
	FormatTXT  Format = "txt"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Formats lists every supported export format.
var Formats = []Format{FormatCSV, FormatSQL, FormatTXT, FormatJSON, FormatXLSX, FormatPDF}

// ParseFormat normalizes a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported export format %q (supported: csv, sql, txt, json, xlsx, pdf)", s)
}

// Render serializes records to the given format. tableName is used by the
// SQL renderer and as the spreadsheet sheet name; other formats ignore it.
func Render(format Format, records []*schema.Record, tableName string) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to export")
	}

	switch format {
	case FormatCSV:
		return renderCSV(records)
	case FormatSQL:
		return renderSQL(records, tableName)
	case FormatTXT:
		return renderTXT(records)
	case FormatJSON:
		return renderJSON(records)
	case FormatXLSX:
		return renderXLSX(records)
	case FormatPDF:
		return renderPDF(records)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteFile renders records and writes them to a timestamped file under
// exportPath, returning the file path.
func WriteFile(exportPath string, format Format, records []*schema.Record, tableName string) (string, error) {
	data, err := Render(format, records, tableName)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filePath := filepath.Join(exportPath, fmt.Sprintf("export_%s.%s", timestamp, format))

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filePath, nil
}

// columnsOf returns the column order shared by a record set, taken from the
// first record's insertion order.
func columnsOf(records []*schema.Record) []string {
	if len(records) == 0 {
		return nil
	}
	return records[0].Keys()
}

// cellString renders one value the way delimited-text formats expect.
func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
