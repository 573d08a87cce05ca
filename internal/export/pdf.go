package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/dummyforge/dummyforge/internal/schema"
)

// renderPDF lays the record set out as a paginated landscape table. Long
// cell text is truncated to keep rows on one line.
func renderPDF(records []*schema.Record) ([]byte, error) {
	headers := columnsOf(records)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageWidth - left - right
	colWidth := usable / float64(len(headers))

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for _, header := range headers {
			pdf.CellFormat(colWidth, 7, truncate(header, colWidth), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 8)
	}

	writeHeader()
	for _, record := range records {
		// Repeat the header when a row would start a new page.
		if pdf.GetY() > 190 {
			pdf.AddPage()
			writeHeader()
		}
		for _, header := range headers {
			pdf.CellFormat(colWidth, 6, truncate(cellString(record.Value(header)), colWidth), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate keeps roughly as many characters as fit one cell at 8pt. It cuts
// on rune boundaries so multibyte text is never split mid-character.
func truncate(s string, colWidth float64) string {
	limit := int(colWidth / 1.6)
	if limit < 4 {
		limit = 4
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
