package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mybank/internal/money"
)

func TestDemoSeeder_Seed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bank := NewBankService(logger, NewNoopMetrics())
	seeder := NewDemoSeeder(bank, logger)

	require.NoError(t, seeder.Seed(3))

	customers := bank.ListCustomers()
	require.Len(t, customers, 3)

	for _, customer := range customers {
		assert.NotEmpty(t, customer.Name)
		assert.NotEmpty(t, customer.Email)

		accounts, err := bank.ListAccountsOf(customer.ID)
		require.NoError(t, err)
		require.NotEmpty(t, accounts)

		// Seeded activity goes through the real operations, so the ledger
		// invariants must hold for every account.
		for _, account := range accounts {
			assert.Equal(t, customer.ID, account.OwnerID)
			assert.NotEmpty(t, account.Transactions())

			sum := money.Zero
			for _, tx := range account.Transactions() {
				if tx.IsCredit() {
					sum, err = sum.Add(tx.Amount)
				} else {
					sum, err = sum.Sub(tx.Amount)
				}
				require.NoError(t, err)
				assert.True(t, sum.Equal(tx.BalanceAfter))
			}
			assert.True(t, account.Balance.Equal(sum))
		}
	}
}

func TestDemoSeeder_SeedZero(t *testing.T) {
	bank := NewBankService(slog.New(slog.NewTextHandler(io.Discard, nil)), NewNoopMetrics())
	seeder := NewDemoSeeder(bank, nil)

	require.NoError(t, seeder.Seed(0))
	assert.Empty(t, bank.ListCustomers())
}
