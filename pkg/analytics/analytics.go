// Package analytics derives summary views from normalized bank transactions:
// month windows, per-card spend, top expenses, cashback estimates, round-up
// savings and search. Every function is pure over its input slice; malformed
// individual records are skipped with a warning, never aborting the batch.
package analytics

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// cashbackRate is the flat projected rewards rate: 1% of absolute spend.
var cashbackRate = decimal.New(1, -2)

type Analyzer struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// round2 applies the single rounding step of every monetary output:
// two decimal places, half away from zero.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// referenceLayouts are accepted for caller-provided reference timestamps,
// tried in order.
var referenceLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseReference(s string) (time.Time, error) {
	var err error
	for _, layout := range referenceLayouts {
		var ref time.Time
		if ref, err = time.Parse(layout, s); err == nil {
			return ref, nil
		}
	}
	return time.Time{}, err
}
