package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/mkraev/kopilka/pkg/models"
)

// CardSummary is the per-card spending line of the dashboard.
type CardSummary struct {
	LastDigits string  `json:"last_digits"`
	TotalSpent float64 `json:"total_spent"`
	Cashback   float64 `json:"cashback"`
}

// CardSummaries groups expenses by the last four digits of the card label
// and sums their absolute amounts. Income and refunds are left out entirely;
// records with a non-numeric amount are skipped. Cards appear in the order
// they were first seen.
func (a *Analyzer) CardSummaries(txs []models.Transaction) []CardSummary {
	totals := make(map[string]decimal.Decimal)
	var order []string

	for i, tx := range txs {
		amt, err := tx.AmountValue()
		if err != nil {
			a.logger.Warn("skipping record with non-numeric amount", "index", i, "amount", tx.Amount)
			continue
		}
		if !amt.IsNegative() {
			continue
		}

		key := tx.LastDigits()
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] = totals[key].Add(amt.Abs())
	}

	summaries := make([]CardSummary, 0, len(order))
	for _, key := range order {
		spent := totals[key]
		summaries = append(summaries, CardSummary{
			LastDigits: key,
			TotalSpent: round2(spent),
			Cashback:   round2(spent.Mul(cashbackRate)),
		})
	}

	a.logger.Debug("card summaries built", "cards", len(summaries))
	return summaries
}
