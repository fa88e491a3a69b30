package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// parseCSV reads a comma-separated export. Rows may have a variable number
// of fields; short rows are padded downstream by the column mapping.
func parseCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in file")
	}
	return rows, nil
}
