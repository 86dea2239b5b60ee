package models

import (
	"errors"
	"time"

	"mybank/internal/ident"
	"mybank/internal/money"
)

const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"

	AccountStatusActive = "active"
	AccountStatusFrozen = "frozen"
	AccountStatusClosed = "closed"
)

var (
	ErrInvalidAccountType      = errors.New("invalid account type")
	ErrAccountNotActive        = errors.New("account is not active")
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrInvalidStatusTransition = errors.New("invalid account status transition")
	ErrNonzeroClose            = errors.New("account balance must be zero to close")
	ErrRollbackMismatch        = errors.New("transaction is not the last log entry")
)

// validStatusTransitions lists the allowed target statuses per current
// status. Closed is terminal.
var validStatusTransitions = map[string][]string{
	AccountStatusActive: {AccountStatusFrozen, AccountStatusClosed},
	AccountStatusFrozen: {AccountStatusActive, AccountStatusClosed},
	AccountStatusClosed: {},
}

// Account is a bank account aggregate: balance, lifecycle status, and the
// append-only transaction log that the balance must always reconcile with.
// The owner is referenced by customer ID only; the service registry resolves
// it when needed.
type Account struct {
	AccountNumber string
	Type          string
	Status        string
	OwnerID       string
	Balance       money.Money
	CreatedAt     time.Time

	transactions []Transaction
}

// NewAccount constructs an active account with a zero balance.
func NewAccount(accountNumber, accountType, ownerID string) (*Account, error) {
	if !IsValidAccountType(accountType) {
		return nil, ErrInvalidAccountType
	}
	return &Account{
		AccountNumber: accountNumber,
		Type:          accountType,
		Status:        AccountStatusActive,
		OwnerID:       ownerID,
		Balance:       money.Zero,
		CreatedAt:     time.Now(),
	}, nil
}

// IsActive returns true if the account is active
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// Deposit credits the amount and appends a deposit transaction. The balance
// change and the log append happen together or not at all.
func (a *Account) Deposit(amount money.Money, description string) (Transaction, error) {
	return a.credit(TransactionKindDeposit, amount, description)
}

// Withdraw debits the amount and appends a withdrawal transaction.
func (a *Account) Withdraw(amount money.Money, description string) (Transaction, error) {
	return a.debit(TransactionKindWithdrawal, amount, description)
}

// ApplyTransferOut debits the outgoing leg of a transfer. Only the bank
// service calls this, as part of a two-leg transfer.
func (a *Account) ApplyTransferOut(amount money.Money, description string) (Transaction, error) {
	return a.debit(TransactionKindTransferOut, amount, description)
}

// ApplyTransferIn credits the incoming leg of a transfer. Only the bank
// service calls this, as part of a two-leg transfer.
func (a *Account) ApplyTransferIn(amount money.Money, description string) (Transaction, error) {
	return a.credit(TransactionKindTransferIn, amount, description)
}

// CanWithdraw checks if the amount can be withdrawn
func (a *Account) CanWithdraw(amount money.Money) bool {
	return a.IsActive() && amount.IsPositive() && !a.Balance.LessThan(amount)
}

// CanReceive reports whether a credit of amount would be admitted: the
// account must be active and the new balance within range.
func (a *Account) CanReceive(amount money.Money) error {
	if !a.IsActive() {
		return ErrAccountNotActive
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if _, err := a.Balance.Add(amount); err != nil {
		return err
	}
	return nil
}

// SetStatus transitions the account lifecycle. Active and frozen convert
// into each other and both may close; closed is terminal and requires a zero
// balance.
func (a *Account) SetStatus(newStatus string) error {
	allowed, ok := validStatusTransitions[a.Status]
	if !ok {
		return ErrInvalidStatusTransition
	}
	permitted := false
	for _, s := range allowed {
		if s == newStatus {
			permitted = true
			break
		}
	}
	if !permitted {
		return ErrInvalidStatusTransition
	}
	if newStatus == AccountStatusClosed && !a.Balance.IsZero() {
		return ErrNonzeroClose
	}
	a.Status = newStatus
	return nil
}

// Transactions returns a read-only snapshot of the log in insertion order.
func (a *Account) Transactions() []Transaction {
	snapshot := make([]Transaction, len(a.transactions))
	copy(snapshot, a.transactions)
	return snapshot
}

// RollbackTransaction undoes tx if it is the newest log entry, restoring the
// prior balance. The transfer path uses it when the credit leg fails after
// the debit leg was applied.
func (a *Account) RollbackTransaction(tx Transaction) error {
	n := len(a.transactions)
	if n == 0 || a.transactions[n-1].ID != tx.ID {
		return ErrRollbackMismatch
	}

	var restored money.Money
	var err error
	if tx.IsCredit() {
		restored, err = a.Balance.Sub(tx.Amount)
	} else {
		restored, err = a.Balance.Add(tx.Amount)
	}
	if err != nil {
		return err
	}

	a.Balance = restored
	a.transactions = a.transactions[:n-1]
	return nil
}

func (a *Account) credit(kind string, amount money.Money, description string) (Transaction, error) {
	if !a.IsActive() {
		return Transaction{}, ErrAccountNotActive
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}

	newBalance, err := a.Balance.Add(amount)
	if err != nil {
		return Transaction{}, err
	}

	tx, err := NewTransaction(ident.NewTransactionID(), kind, amount, newBalance, description)
	if err != nil {
		return Transaction{}, err
	}

	a.Balance = newBalance
	a.transactions = append(a.transactions, tx)
	return tx, nil
}

func (a *Account) debit(kind string, amount money.Money, description string) (Transaction, error) {
	if !a.IsActive() {
		return Transaction{}, ErrAccountNotActive
	}
	if !amount.IsPositive() {
		return Transaction{}, ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return Transaction{}, ErrInsufficientFunds
	}

	newBalance, err := a.Balance.Sub(amount)
	if err != nil {
		return Transaction{}, ErrInsufficientFunds
	}

	tx, err := NewTransaction(ident.NewTransactionID(), kind, amount, newBalance, description)
	if err != nil {
		return Transaction{}, err
	}

	a.Balance = newBalance
	a.transactions = append(a.transactions, tx)
	return tx, nil
}

// Helper functions

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings:
		return true
	default:
		return false
	}
}

// IsValidAccountStatus checks if the account status is valid
func IsValidAccountStatus(status string) bool {
	switch status {
	case AccountStatusActive, AccountStatusFrozen, AccountStatusClosed:
		return true
	default:
		return false
	}
}
