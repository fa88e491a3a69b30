package analytics

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mkraev/kopilka/pkg/models"
)

// ErrInvalidLimit means the round-up limit was zero or negative, which is a
// caller contract violation rather than a data problem.
var ErrInvalidLimit = errors.New("round-up limit must be positive")

// monthKeyLayout is the "YYYY-MM" month selector format.
const monthKeyLayout = "2006-01"

// RoundUpSavings sums the deltas between each expense of the given month and
// that expense rounded up to the next multiple of limit. Expenses that are
// already exact multiples contribute nothing. Malformed records are skipped.
func (a *Analyzer) RoundUpSavings(txs []models.Transaction, month string, limit int64) (float64, error) {
	if limit <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	step := decimal.NewFromInt(limit)
	total := decimal.Zero

	for i, tx := range txs {
		d, err := tx.OperationDate()
		if err != nil {
			a.logger.Warn("skipping record with unparseable date", "index", i, "date", tx.Date)
			continue
		}
		if d.Format(monthKeyLayout) != month {
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

		remainder := amt.Abs().Mod(step)
		if remainder.IsZero() {
			continue
		}
		delta := step.Sub(remainder)
		total = total.Add(delta)
		a.logger.Debug("round-up delta accumulated", "index", i, "delta", delta)
	}

	a.logger.Debug("round-up savings computed", "month", month, "limit", limit, "total", total)
	return round2(total), nil
}
