// Package parser reads tabular operations exports (xlsx, legacy xls, csv)
// into canonical transaction records. Rows map to records by header name;
// the built-in aliases cover both English headers and the Russian bank
// export headers, and can be extended from a YAML file.
package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mkraev/kopilka/pkg/models"
)

type Parser struct {
	logger  *log.Logger
	aliases map[string]string
}

func New(logger *log.Logger) *Parser {
	return &Parser{
		logger:  logger,
		aliases: defaultAliases(),
	}
}

// ProcessFile reads and parses an operations file from disk.
func (p *Parser) ProcessFile(path string) ([]models.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading operations file: %w", err)
	}
	return p.ProcessBytes(data, filepath.Base(path))
}

// ProcessBytes parses raw file content, picking the format from the file
// name extension.
func (p *Parser) ProcessBytes(data []byte, filename string) ([]models.Transaction, error) {
	var rows [][]string
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		rows, err = parseXLSX(data)
	case ".xls":
		rows, err = parseXLS(data)
	case ".csv":
		rows, err = parseCSV(data)
	default:
		return nil, fmt.Errorf("unsupported operations file format: %s", filename)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}

	txs := p.rowsToTransactions(rows)
	p.logger.Info("operations file loaded", "file", filename, "rows", len(rows), "transactions", len(txs))
	return txs, nil
}

// rowsToTransactions maps raw rows to records. The first non-empty row is
// the header; unknown columns are ignored, fully empty rows are skipped.
func (p *Parser) rowsToTransactions(rows [][]string) []models.Transaction {
	columns := make(map[int]string)
	headerSeen := false
	txs := make([]models.Transaction, 0, len(rows))

	for _, row := range rows {
		if emptyRow(row) {
			continue
		}

		if !headerSeen {
			headerSeen = true
			for i, header := range row {
				if field, ok := p.aliases[normalizeHeader(header)]; ok {
					columns[i] = field
				}
			}
			if len(columns) == 0 {
				p.logger.Warn("header row has no known columns", "row", row)
				return nil
			}
			continue
		}

		var tx models.Transaction
		for i, cell := range row {
			switch columns[i] {
			case fieldDate:
				tx.Date = strings.TrimSpace(cell)
			case fieldAmount:
				tx.Amount = strings.TrimSpace(cell)
			case fieldCard:
				tx.Card = strings.TrimSpace(cell)
			case fieldCategory:
				tx.Category = strings.TrimSpace(cell)
			case fieldStatus:
				tx.Status = strings.TrimSpace(cell)
			case fieldDescription:
				tx.Description = strings.TrimSpace(cell)
			}
		}
		txs = append(txs, tx)
	}

	return txs
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}
