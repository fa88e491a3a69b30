package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the operation date format used by bank exports: day.month.year.
// A time-of-day part may follow the date and is ignored when parsing.
const DateLayout = "02.01.2006"

// Defaults applied when an optional field is missing from the source row.
const (
	UnknownCategory = "Unknown"
	NoDescription   = "No description"
	NoCard          = "N/A"
	NoDate          = "N/A"
)

var (
	ErrNoDate   = errors.New("operation date is missing")
	ErrNoAmount = errors.New("operation amount is missing")
)

// Transaction is a single bank operation as it came out of a statement.
// Fields hold the raw cell text; the accessors below parse and default them,
// so a half-broken row can still flow through any computation that does not
// touch the broken field. A Transaction is never mutated after creation.
type Transaction struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Card        string `json:"card"`
	Category    string `json:"category"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// OperationDate parses the date portion of the raw date field. The
// time-of-day part, when present, is dropped.
func (t Transaction) OperationDate() (time.Time, error) {
	s := strings.TrimSpace(t.Date)
	if s == "" {
		return time.Time{}, ErrNoDate
	}
	if i := strings.IndexByte(s, ' '); i > 0 {
		s = s[:i]
	}
	return time.Parse(DateLayout, s)
}

// AmountValue parses the signed amount. Decimal commas are normalized to
// dots so both "-100.50" and "-100,50" coerce.
func (t Transaction) AmountValue() (decimal.Decimal, error) {
	s := strings.TrimSpace(t.Amount)
	if s == "" {
		return decimal.Decimal{}, ErrNoAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}

// LastDigits returns the last four characters of the card label, the whole
// label when it is shorter than four characters, or "N/A" when absent.
func (t Transaction) LastDigits() string {
	card := strings.TrimSpace(t.Card)
	if card == "" {
		return NoCard
	}
	runes := []rune(card)
	if len(runes) <= 4 {
		return card
	}
	return string(runes[len(runes)-4:])
}

// Failed reports whether the operation status marks it as failed.
// The comparison is case-insensitive; a missing status means not failed.
func (t Transaction) Failed() bool {
	return strings.EqualFold(strings.TrimSpace(t.Status), "FAILED")
}

func (t Transaction) DateOrDefault() string {
	if strings.TrimSpace(t.Date) == "" {
		return NoDate
	}
	return t.Date
}

func (t Transaction) CategoryOrDefault() string {
	if strings.TrimSpace(t.Category) == "" {
		return UnknownCategory
	}
	return t.Category
}

func (t Transaction) DescriptionOrDefault() string {
	if strings.TrimSpace(t.Description) == "" {
		return NoDescription
	}
	return t.Description
}
