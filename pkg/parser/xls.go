package parser

import (
	"bytes"
	"fmt"

	"github.com/extrame/xls"
)

const maxXLSRows = 10000

// parseXLS reads all cells of a legacy xls workbook.
func parseXLS(data []byte) ([][]string, error) {
	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}

	rows := workbook.ReadAllCells(maxXLSRows)
	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in sheet")
	}
	return rows, nil
}
