package models

import (
	"errors"
	"time"

	"mybank/internal/money"
)

const (
	TransactionKindDeposit     = "deposit"
	TransactionKindWithdrawal  = "withdrawal"
	TransactionKindTransferOut = "transfer_out"
	TransactionKindTransferIn  = "transfer_in"
)

var (
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidAmount          = errors.New("amount must be positive")
)

// Transaction is an immutable record of a single balance change. Instances
// are handed out by value; the account keeps the authoritative log.
type Transaction struct {
	ID           string
	Timestamp    time.Time
	Kind         string
	Amount       money.Money
	BalanceAfter money.Money
	Description  string
}

// NewTransaction validates and constructs a transaction, capturing the
// current instant. The amount must be strictly positive; BalanceAfter is
// non-negative by Money's construction.
func NewTransaction(id, kind string, amount, balanceAfter money.Money, description string) (Transaction, error) {
	if !IsValidTransactionKind(kind) {
		return Transaction{}, ErrInvalidTransactionKind
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	return Transaction{
		ID:           id,
		Timestamp:    time.Now(),
		Kind:         kind,
		Amount:       amount,
		BalanceAfter: balanceAfter,
		Description:  description,
	}, nil
}

// IsCredit reports whether the transaction increased the balance.
func (t Transaction) IsCredit() bool {
	return t.Kind == TransactionKindDeposit || t.Kind == TransactionKindTransferIn
}

// IsValidTransactionKind checks if the transaction kind is valid
func IsValidTransactionKind(kind string) bool {
	switch kind {
	case TransactionKindDeposit, TransactionKindWithdrawal,
		TransactionKindTransferOut, TransactionKindTransferIn:
		return true
	default:
		return false
	}
}
