package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationDate(t *testing.T) {
	tx := Transaction{Date: "15.02.2024 14:32:01"}
	d, err := tx.OperationDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), d)

	tx = Transaction{Date: "15.02.2024"}
	d, err = tx.OperationDate()
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = Transaction{}.OperationDate()
	assert.ErrorIs(t, err, ErrNoDate)

	_, err = Transaction{Date: "2024-02-15"}.OperationDate()
	assert.Error(t, err)
}

func TestAmountValue(t *testing.T) {
	for raw, want := range map[string]string{
		"-100":     "-100",
		"-100.50":  "-100.5",
		"-100,50":  "-100.5",
		" 300 ":    "300",
		"-1500.00": "-1500",
	} {
		amt, err := Transaction{Amount: raw}.AmountValue()
		require.NoError(t, err, raw)
		assert.Equal(t, want, amt.String(), raw)
	}

	_, err := Transaction{Amount: "abc"}.AmountValue()
	assert.Error(t, err)
	_, err = Transaction{}.AmountValue()
	assert.ErrorIs(t, err, ErrNoAmount)
}

func TestLastDigits(t *testing.T) {
	assert.Equal(t, "7197", Transaction{Card: "*7197"}.LastDigits())
	assert.Equal(t, "5678", Transaction{Card: "Visa Classic 5678"}.LastDigits())
	assert.Equal(t, "123", Transaction{Card: "123"}.LastDigits())
	assert.Equal(t, NoCard, Transaction{}.LastDigits())
	assert.Equal(t, NoCard, Transaction{Card: "   "}.LastDigits())
}

func TestFailed(t *testing.T) {
	assert.True(t, Transaction{Status: "FAILED"}.Failed())
	assert.True(t, Transaction{Status: "failed"}.Failed())
	assert.True(t, Transaction{Status: " Failed "}.Failed())
	assert.False(t, Transaction{Status: "OK"}.Failed())
	assert.False(t, Transaction{}.Failed())
}

func TestDefaults(t *testing.T) {
	tx := Transaction{}
	assert.Equal(t, UnknownCategory, tx.CategoryOrDefault())
	assert.Equal(t, NoDescription, tx.DescriptionOrDefault())
	assert.Equal(t, NoDate, tx.DateOrDefault())

	tx = Transaction{Date: "01.01.2024", Category: "Food", Description: "Lunch"}
	assert.Equal(t, "Food", tx.CategoryOrDefault())
	assert.Equal(t, "Lunch", tx.DescriptionOrDefault())
	assert.Equal(t, "01.01.2024", tx.DateOrDefault())
}
