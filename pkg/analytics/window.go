package analytics

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkraev/kopilka/pkg/models"
)

// ErrInvalidReference means the caller-supplied reference date could not be
// parsed. A bad reference is a precondition failure, unlike a bad record,
// which is only skipped.
var ErrInvalidReference = errors.New("invalid reference date")

// FilterByMonth returns the transactions whose operation date falls between
// the first day of the reference month and the reference date, inclusive.
// Order is preserved and the input is left untouched. Records whose date
// cannot be parsed are skipped.
func (a *Analyzer) FilterByMonth(txs []models.Transaction, currentDate string) ([]models.Transaction, error) {
	ref, err := parseReference(currentDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReference, currentDate)
	}

	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	filtered := make([]models.Transaction, 0, len(txs))
	for i, tx := range txs {
		d, err := tx.OperationDate()
		if err != nil {
			a.logger.Warn("skipping record with unparseable date", "index", i, "date", tx.Date)
			continue
		}
		if !d.Before(start) && !d.After(today) {
			filtered = append(filtered, tx)
		}
	}

	a.logger.Debug("month window applied", "reference", currentDate, "in", len(txs), "out", len(filtered))
	return filtered, nil
}
