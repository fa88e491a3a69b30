package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkraev/kopilka/pkg/models"
)

func TestCardSummaries(t *testing.T) {
	txs := []models.Transaction{
		{Card: "*7197", Amount: "-500"},
		{Card: "*7197", Amount: "-1500"},
		{Card: "*1234", Amount: "300"},   // income only, group never appears
		{Card: "*5678", Amount: "-100"},  // numeric string coerces
		{Card: "*5678", Amount: "abc"},   // unparseable, skipped
		{Amount: "-400"},                 // no card, N/A bucket
		{Card: "*9999", Amount: "-0.50"},
	}

	got := testAnalyzer().CardSummaries(txs)

	require.Len(t, got, 4)
	assert.Equal(t, CardSummary{LastDigits: "7197", TotalSpent: 2000, Cashback: 20}, got[0])
	assert.Equal(t, CardSummary{LastDigits: "5678", TotalSpent: 100, Cashback: 1}, got[1])
	assert.Equal(t, CardSummary{LastDigits: "N/A", TotalSpent: 400, Cashback: 4}, got[2])
	assert.Equal(t, CardSummary{LastDigits: "9999", TotalSpent: 0.5, Cashback: 0.01}, got[3])
}

func TestCardSummariesTotalMatchesExpenseSum(t *testing.T) {
	txs := []models.Transaction{
		{Card: "A111", Amount: "-10.10"},
		{Card: "B222", Amount: "-20.20"},
		{Card: "A111", Amount: "-30.30"},
		{Card: "C333", Amount: "99"},
	}

	got := testAnalyzer().CardSummaries(txs)

	var total float64
	for _, s := range got {
		total += s.TotalSpent
	}
	assert.InDelta(t, 60.60, total, 0.001)
}

func TestCardSummariesRounding(t *testing.T) {
	// 100.555 spent -> 100.56 total (half away from zero), cashback 1.01.
	got := testAnalyzer().CardSummaries([]models.Transaction{
		{Card: "1111", Amount: "-100.555"},
	})

	require.Len(t, got, 1)
	assert.Equal(t, 100.56, got[0].TotalSpent)
	assert.Equal(t, 1.01, got[0].Cashback)
}

func TestCardSummariesEmpty(t *testing.T) {
	assert.Empty(t, testAnalyzer().CardSummaries(nil))
	assert.Empty(t, testAnalyzer().CardSummaries([]models.Transaction{{Card: "1234", Amount: "500"}}))
}
