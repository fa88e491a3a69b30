package analytics

import (
	"regexp"
	"strings"

	"github.com/mkraev/kopilka/pkg/models"
)

// personalTransferCategory is the exact category label of transfers to
// individuals.
const personalTransferCategory = "Transfers"

var (
	// phonePattern matches Russian-style mobile numbers: a +7 country code,
	// then 3-3-2-2 digit groups with optional hyphen or space between the
	// last pairs.
	phonePattern = regexp.MustCompile(`\+7\s\d{3}\s\d{3}[-\s]?\d{2}[-\s]?\d{2}`)
	// namePattern matches a name-shaped token: a capitalized word, a space
	// and a capitalized initial with a period, e.g. "Ivanov I.".
	namePattern = regexp.MustCompile(`[A-ZА-ЯЁ][a-zа-яё]+\s[A-ZА-ЯЁ]\.`)
)

// SearchByKeyword returns the transactions whose description or category
// contains the query, case-insensitively. Order is preserved.
func (a *Analyzer) SearchByKeyword(txs []models.Transaction, query string) []models.Transaction {
	q := strings.ToLower(query)

	found := make([]models.Transaction, 0)
	for _, tx := range txs {
		if strings.Contains(strings.ToLower(tx.Description), q) ||
			strings.Contains(strings.ToLower(tx.Category), q) {
			found = append(found, tx)
		}
	}

	a.logger.Debug("keyword search done", "query", query, "found", len(found))
	return found
}

// FindPhoneNumbers returns the transactions whose description contains a
// mobile phone number.
func (a *Analyzer) FindPhoneNumbers(txs []models.Transaction) []models.Transaction {
	found := make([]models.Transaction, 0)
	for _, tx := range txs {
		if phonePattern.MatchString(tx.Description) {
			found = append(found, tx)
		}
	}

	a.logger.Debug("phone number search done", "found", len(found))
	return found
}

// FindPersonalTransfers returns the transactions that are transfers to
// individuals: category is exactly "Transfers" and the description carries a
// name-shaped token. Both conditions must hold.
func (a *Analyzer) FindPersonalTransfers(txs []models.Transaction) []models.Transaction {
	found := make([]models.Transaction, 0)
	for _, tx := range txs {
		if tx.Category == personalTransferCategory && namePattern.MatchString(tx.Description) {
			found = append(found, tx)
		}
	}

	a.logger.Debug("personal transfer search done", "found", len(found))
	return found
}
