package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkraev/kopilka/pkg/models"
)

func TestRoundUpSavings(t *testing.T) {
	txs := []models.Transaction{
		{Date: "10.02.2024", Amount: "-230"}, // rounds to 300, delta 70
		{Date: "11.02.2024", Amount: "-200"}, // exact multiple, delta 0
		{Date: "12.01.2024", Amount: "-170"}, // wrong month
		{Date: "13.02.2024", Amount: "450"},  // income
		{Date: "bad", Amount: "-120"},
		{Date: "14.02.2024", Amount: "bad"},
	}

	got, err := testAnalyzer().RoundUpSavings(txs, "2024-02", 100)
	require.NoError(t, err)
	assert.Equal(t, 70.0, got)
}

func TestRoundUpSavingsFractional(t *testing.T) {
	// 37.25 with limit 50 rounds to 50, delta 12.75.
	got, err := testAnalyzer().RoundUpSavings([]models.Transaction{
		{Date: "01.02.2024", Amount: "-37.25"},
	}, "2024-02", 50)
	require.NoError(t, err)
	assert.Equal(t, 12.75, got)
}

func TestRoundUpSavingsExactMultiple(t *testing.T) {
	got, err := testAnalyzer().RoundUpSavings([]models.Transaction{
		{Date: "01.02.2024", Amount: "-200"},
	}, "2024-02", 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}

func TestRoundUpSavingsInvalidLimit(t *testing.T) {
	_, err := testAnalyzer().RoundUpSavings(nil, "2024-02", 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)

	_, err = testAnalyzer().RoundUpSavings(nil, "2024-02", -50)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}

func TestRoundUpSavingsNoMatches(t *testing.T) {
	got, err := testAnalyzer().RoundUpSavings([]models.Transaction{
		{Date: "10.03.2024", Amount: "-230"},
	}, "2024-02", 100)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)
}
