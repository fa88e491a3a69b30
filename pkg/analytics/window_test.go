package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkraev/kopilka/pkg/models"
)

func TestFilterByMonth(t *testing.T) {
	txs := []models.Transaction{
		{Date: "01.02.2024 09:00:00", Description: "first of month"},
		{Date: "10.02.2024", Description: "mid month"},
		{Date: "15.02.2024 23:59:59", Description: "reference day"},
		{Date: "16.02.2024", Description: "after reference"},
		{Date: "31.01.2024", Description: "previous month"},
		{Date: "garbage", Description: "bad date"},
		{Description: "no date"},
	}

	got, err := testAnalyzer().FilterByMonth(txs, "2024-02-15T10:30:00")
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "first of month", got[0].Description)
	assert.Equal(t, "mid month", got[1].Description)
	assert.Equal(t, "reference day", got[2].Description)
}

func TestFilterByMonthIdempotent(t *testing.T) {
	txs := []models.Transaction{
		{Date: "03.02.2024"},
		{Date: "14.02.2024"},
		{Date: "20.02.2024"},
	}

	a := testAnalyzer()
	once, err := a.FilterByMonth(txs, "2024-02-15")
	require.NoError(t, err)
	twice, err := a.FilterByMonth(once, "2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFilterByMonthInvalidReference(t *testing.T) {
	_, err := testAnalyzer().FilterByMonth([]models.Transaction{{Date: "01.02.2024"}}, "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestFilterByMonthEmptyInput(t *testing.T) {
	got, err := testAnalyzer().FilterByMonth(nil, "2024-02-15T00:00:00Z")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFilterByMonthDoesNotMutateInput(t *testing.T) {
	txs := []models.Transaction{
		{Date: "10.02.2024", Description: "keep"},
		{Date: "01.01.2020", Description: "drop"},
	}
	original := append([]models.Transaction(nil), txs...)

	_, err := testAnalyzer().FilterByMonth(txs, "2024-02-15")
	require.NoError(t, err)
	assert.Equal(t, original, txs)
}
