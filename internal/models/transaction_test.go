package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mybank/internal/money"
)

func TestNewTransaction(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		amount  money.Money
		wantErr error
	}{
		{name: "deposit", kind: TransactionKindDeposit, amount: money.MustParse("10.00")},
		{name: "withdrawal", kind: TransactionKindWithdrawal, amount: money.MustParse("10.00")},
		{name: "transfer out", kind: TransactionKindTransferOut, amount: money.MustParse("0.01")},
		{name: "transfer in", kind: TransactionKindTransferIn, amount: money.MustParse("0.01")},
		{name: "zero amount", kind: TransactionKindDeposit, amount: money.Zero, wantErr: ErrInvalidAmount},
		{name: "invalid kind", kind: "chargeback", amount: money.MustParse("10.00"), wantErr: ErrInvalidTransactionKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			tx, err := NewTransaction("T-ABC123DEF456", tt.kind, tt.amount, tt.amount, "note")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "T-ABC123DEF456", tx.ID)
			assert.Equal(t, tt.kind, tx.Kind)
			assert.Equal(t, "note", tx.Description)
			assert.False(t, tx.Timestamp.Before(before))
		})
	}
}

func TestTransaction_IsCredit(t *testing.T) {
	amount := money.MustParse("5.00")

	deposit, err := NewTransaction("T-1", TransactionKindDeposit, amount, amount, "")
	require.NoError(t, err)
	assert.True(t, deposit.IsCredit())

	withdrawal, err := NewTransaction("T-2", TransactionKindWithdrawal, amount, amount, "")
	require.NoError(t, err)
	assert.False(t, withdrawal.IsCredit())
}

func TestIsValidTransactionKind(t *testing.T) {
	assert.True(t, IsValidTransactionKind(TransactionKindDeposit))
	assert.True(t, IsValidTransactionKind(TransactionKindTransferOut))
	assert.False(t, IsValidTransactionKind("reversal"))
	assert.False(t, IsValidTransactionKind(""))
}
