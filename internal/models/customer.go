package models

import (
	"errors"
	"time"
)

var (
	ErrOwnershipMismatch = errors.New("account does not belong to this customer")
	ErrInvalidIdentifier = errors.New("identifier must not be empty")
	ErrAccountNotFound   = errors.New("account not found")
)

// Customer is a bank customer aggregate: profile fields plus the insertion-
// ordered set of owned accounts. Name and Email are free-form and mutable;
// ID and CreatedAt never change after construction.
type Customer struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time

	accounts []*Account
}

// NewCustomer constructs a customer, capturing the creation instant.
func NewCustomer(id, name, email string) *Customer {
	return &Customer{
		ID:        id,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}

// AttachAccount adds an owned account to the customer. The account's OwnerID
// must match; re-attaching an already-attached account is a no-op.
func (c *Customer) AttachAccount(account *Account) error {
	if account == nil {
		return ErrAccountNotFound
	}
	if account.OwnerID != c.ID {
		return ErrOwnershipMismatch
	}
	for _, existing := range c.accounts {
		if existing.AccountNumber == account.AccountNumber {
			return nil
		}
	}
	c.accounts = append(c.accounts, account)
	return nil
}

// FindAccount returns the owned account with the given number. Empty
// identifiers are rejected; a miss yields ErrAccountNotFound.
func (c *Customer) FindAccount(accountNumber string) (*Account, error) {
	if accountNumber == "" {
		return nil, ErrInvalidIdentifier
	}
	for _, account := range c.accounts {
		if account.AccountNumber == accountNumber {
			return account, nil
		}
	}
	return nil, ErrAccountNotFound
}

// Accounts returns a read-only snapshot of the owned accounts in insertion
// order.
func (c *Customer) Accounts() []*Account {
	snapshot := make([]*Account, len(c.accounts))
	copy(snapshot, c.accounts)
	return snapshot
}
