package ident

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCustomerID_Format(t *testing.T) {
	g := NewGenerator()

	id, err := g.NextCustomerID(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, CustomerPrefix))
	assert.GreaterOrEqual(t, len(id)-len(CustomerPrefix), 8)
}

func TestNextAccountNumber_Format(t *testing.T) {
	g := NewGenerator()

	number, err := g.NextAccountNumber(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(number, AccountPrefix))
	assert.GreaterOrEqual(t, len(number)-len(AccountPrefix), 8)
}

func TestNextCustomerID_RetriesCollisions(t *testing.T) {
	g := NewGenerator()
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id, err := g.NextCustomerID(func(candidate string) bool {
			return seen[candidate]
		})
		require.NoError(t, err)
		require.False(t, seen[id], "generator returned a taken identifier")
		seen[id] = true
	}
}

func TestNextCustomerID_Exhausted(t *testing.T) {
	g := NewGenerator()

	_, err := g.NextCustomerID(func(string) bool { return true })
	assert.ErrorIs(t, err, ErrExhausted)
}

func TestNewTransactionID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewTransactionID()
		assert.True(t, strings.HasPrefix(id, TransactionPrefix))
		assert.GreaterOrEqual(t, len(id)-len(TransactionPrefix), 8)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestNewTransferID(t *testing.T) {
	id := NewTransferID()
	assert.True(t, strings.HasPrefix(id, TransferPrefix))
	assert.GreaterOrEqual(t, len(id)-len(TransferPrefix), 8)
}
