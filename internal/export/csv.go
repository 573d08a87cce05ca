package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/dummyforge/dummyforge/internal/schema"
)

func renderCSV(records []*schema.Record) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := columnsOf(records)
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, len(headers))
	for _, record := range records {
		for i, header := range headers {
			row[i] = cellString(record.Value(header))
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderTXT(records []*schema.Record) ([]byte, error) {
	var buf bytes.Buffer

	headers := columnsOf(records)
	for i, header := range headers {
		if i > 0 {
			buf.WriteByte('\t')
		}
		buf.WriteString(header)
	}
	buf.WriteByte('\n')

	for _, record := range records {
		for i, header := range headers {
			if i > 0 {
				buf.WriteByte('\t')
			}
			buf.WriteString(cellString(record.Value(header)))
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

func renderJSON(records []*schema.Record) ([]byte, error) {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal records: %w", err)
	}
	return data, nil
}
