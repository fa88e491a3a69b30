package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/mkraev/kopilka/pkg/models"
)

// CashbackByCategory projects the cashback each spending category would earn
// over the given year and month: 1% of the absolute value of every expense.
// Categories with no matching expense are absent from the result. Records
// with an unparseable date or amount are skipped.
func (a *Analyzer) CashbackByCategory(txs []models.Transaction, year, month int) map[string]float64 {
	totals := make(map[string]decimal.Decimal)

	for i, tx := range txs {
		d, err := tx.OperationDate()
		if err != nil {
			a.logger.Warn("skipping record with unparseable date", "index", i, "date", tx.Date)
			continue
		}
		if d.Year() != year || int(d.Month()) != month {
			continue
		}

		amt, err := tx.AmountValue()
		if err != nil {
			a.logger.Warn("skipping record with non-numeric amount", "index", i, "amount", tx.Amount)
			continue
		}
		if !amt.IsNegative() {
			continue
		}

		category := tx.CategoryOrDefault()
		totals[category] = totals[category].Add(amt.Abs().Mul(cashbackRate))
	}

	result := make(map[string]float64, len(totals))
	for category, total := range totals {
		result[category] = round2(total)
	}

	a.logger.Debug("cashback analysis done", "year", year, "month", month, "categories", len(result))
	return result
}
