package coa

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finhub-dev/finhub/internal/api"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testAccounts() []api.QBAccount {
	return []api.QBAccount{
		{ID: "35", Name: "Checking", Type: "Bank", Balance: dec("1200.55")},
		{ID: "36", Name: "Savings", Type: "Bank", Balance: dec("5000.00")},
		{ID: "80", Name: "Rent", Type: "Expense", Balance: dec("0")},
	}
}

func TestGetAndExists(t *testing.T) {
	svc := NewService(testAccounts())

	account, ok := svc.Get("35")
	require.True(t, ok)
	assert.Equal(t, "Checking", account.Name)

	assert.True(t, svc.Exists("80"))
	assert.False(t, svc.Exists("999"))
}

func TestByType_CaseInsensitive(t *testing.T) {
	svc := NewService(testAccounts())

	banks := svc.ByType("bank")
	require.Len(t, banks, 2)
	assert.Equal(t, "Checking", banks[0].Name)
	assert.Empty(t, svc.ByType("Income"))
}

func TestTotalBalance(t *testing.T) {
	svc := NewService(testAccounts())
	assert.True(t, svc.TotalBalance("Bank").Equal(dec("6200.55")))
	assert.True(t, svc.TotalBalance("Income").IsZero())
}
