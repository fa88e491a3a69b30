package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkraev/kopilka/pkg/models"
)

func TestSearchByKeyword(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Grocery store", Category: "Food"},
		{Description: "Taxi ride", Category: "Transport"},
		{Description: "Dinner out", Category: "food and drinks"},
		{Description: "FOOD delivery", Category: "Other"},
	}

	got := testAnalyzer().SearchByKeyword(txs, "food")

	require.Len(t, got, 3)
	assert.Equal(t, "Grocery store", got[0].Description)
	assert.Equal(t, "Dinner out", got[1].Description)
	assert.Equal(t, "FOOD delivery", got[2].Description)
}

func TestSearchByKeywordNoMatch(t *testing.T) {
	got := testAnalyzer().SearchByKeyword([]models.Transaction{
		{Description: "Taxi", Category: "Transport"},
	}, "food")
	assert.Empty(t, got)
}

func TestFindPhoneNumbers(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Top-up +7 923 456-78-90"},
		{Description: "Top-up 8 923 456 78 90"}, // no +7 prefix
		{Description: "Top-up +7 995 555 55 55"},
		{Description: "Top-up +79955555555"}, // no space after country code
		{Description: "No phone here"},
	}

	got := testAnalyzer().FindPhoneNumbers(txs)

	require.Len(t, got, 2)
	assert.Equal(t, "Top-up +7 923 456-78-90", got[0].Description)
	assert.Equal(t, "Top-up +7 995 555 55 55", got[1].Description)
}

func TestFindPersonalTransfers(t *testing.T) {
	txs := []models.Transaction{
		{Category: "Transfers", Description: "Ivanov I."},
		{Category: "Transfers", Description: "Иванов И."},
		{Category: "Transfers", Description: "SBP transfer"},  // no name token
		{Category: "Food", Description: "Ivanov I."},          // wrong category
		{Category: "transfers", Description: "Petrov P."},     // category match is exact
		{Description: "Sidorov S."},                           // no category
	}

	got := testAnalyzer().FindPersonalTransfers(txs)

	require.Len(t, got, 2)
	assert.Equal(t, "Ivanov I.", got[0].Description)
	assert.Equal(t, "Иванов И.", got[1].Description)
}

func TestSearchDoesNotMutateInput(t *testing.T) {
	txs := []models.Transaction{
		{Description: "Ivanov I.", Category: "Transfers"},
		{Description: "+7 911 222 33 44"},
	}
	original := append([]models.Transaction(nil), txs...)

	a := testAnalyzer()
	a.SearchByKeyword(txs, "ivanov")
	a.FindPhoneNumbers(txs)
	a.FindPersonalTransfers(txs)

	assert.Equal(t, original, txs)
}
