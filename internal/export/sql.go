package export

import (
	"fmt"
	"strings"

	"github.com/dummyforge/dummyforge/internal/schema"
)

// renderSQL produces a portable CREATE TABLE plus a multi-row INSERT.
// Column types are inferred from the first record's values.
func renderSQL(records []*schema.Record, tableName string) ([]byte, error) {
	if tableName == "" {
		tableName = "generated_data"
	}

	columns := columnsOf(records)
	sample := records[0]

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", tableName)
	for i, col := range columns {
		comma := ","
		if i == len(columns)-1 {
			comma = ""
		}
		fmt.Fprintf(&b, "    %s %s%s\n", col, sqlType(sample.Value(col)), comma)
	}
	b.WriteString(");\n\n")

	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES\n", tableName, strings.Join(columns, ", "))
	for i, record := range records {
		values := make([]string, len(columns))
		for j, col := range columns {
			values[j] = sqlLiteral(record.Value(col))
		}
		terminator := ","
		if i == len(records)-1 {
			terminator = ";"
		}
		fmt.Fprintf(&b, "(%s)%s\n", strings.Join(values, ", "), terminator)
	}

	return []byte(b.String()), nil
}

func sqlType(v any) string {
	switch v.(type) {
	case int, int32, int64:
		return "INT"
	case float32, float64:
		return "DOUBLE PRECISION"
	case bool:
		return "BOOLEAN"
	default:
		return "VARCHAR(255)"
	}
}

func sqlLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'"
	case bool:
		if val {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", val)
	}
}
