package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mkraev/kopilka/pkg/models"
)

// topLimit caps the expense ranking at the five largest.
const topLimit = 5

// TopTransaction is one line of the largest-expenses ranking, reshaped for
// the dashboard with the record defaults applied.
type TopTransaction struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// TopExpenses ranks expenses by magnitude, largest first, and returns up to
// five. Failed operations and non-negative amounts never qualify. Ties keep
// their input order.
func (a *Analyzer) TopExpenses(txs []models.Transaction) []TopTransaction {
	type expense struct {
		tx  models.Transaction
		amt decimal.Decimal
	}

	var spending []expense
	for i, tx := range txs {
		amt, err := tx.AmountValue()
		if err != nil {
			a.logger.Warn("skipping record with non-numeric amount", "index", i, "amount", tx.Amount)
			continue
		}
		if !amt.IsNegative() || tx.Failed() {
			continue
		}
		spending = append(spending, expense{tx: tx, amt: amt})
	}

	sort.SliceStable(spending, func(i, j int) bool {
		return spending[i].amt.LessThan(spending[j].amt)
	})
	if len(spending) > topLimit {
		spending = spending[:topLimit]
	}

	top := make([]TopTransaction, 0, len(spending))
	for _, e := range spending {
		top = append(top, TopTransaction{
			Date:        e.tx.DateOrDefault(),
			Amount:      e.amt.InexactFloat64(),
			Category:    e.tx.CategoryOrDefault(),
			Description: e.tx.DescriptionOrDefault(),
		})
	}

	a.logger.Debug("top expenses ranked", "qualifying", len(top))
	return top
}
