package reports

import (
	"encoding/csv"
	"io"

	"github.com/mkraev/kopilka/pkg/models"
)

// FilterFunc narrows which records are exported.
type FilterFunc func(models.Transaction) bool

var csvHeader = []string{"Date", "Amount", "Card", "Category", "Status", "Description"}

// WriteCSV renders transactions as CSV for re-import into spreadsheets.
// With a nil filter every record is written.
func WriteCSV(w io.Writer, txs []models.Transaction, filter FilterFunc) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, tx := range txs {
		if filter != nil && !filter(tx) {
			continue
		}
		record := []string{tx.Date, tx.Amount, tx.Card, tx.Category, tx.Status, tx.Description}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
