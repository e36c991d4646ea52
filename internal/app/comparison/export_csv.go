package comparison

import (
	"bytes"
	"strings"
)

// RenderCSV writes the matrix as UTF-8 CSV: one header row of column
// labels, then one row per service in matrix order. Every field is
// quoted, which encoding/csv cannot be told to do, so quoting is done
// by hand. Empty cells stay empty.
func RenderCSV(m *Matrix) []byte {
	var buf bytes.Buffer

	fields := make([]string, len(m.Columns))
	for i, col := range m.Columns {
		fields[i] = col.Label
	}
	writeCSVRow(&buf, fields)

	for _, row := range m.Rows {
		for i, cell := range row.Cells {
			if cell == nil {
				fields[i] = ""
				continue
			}
			fields[i] = cell.String()
		}
		writeCSVRow(&buf, fields)
	}
	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(f, `"`, `""`))
		buf.WriteByte('"')
	}
	buf.WriteString("\r\n")
}
