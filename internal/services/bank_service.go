package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"mybank/internal/ident"
	"mybank/internal/models"
	"mybank/internal/money"
)

var (
	ErrUnknownCustomer = errors.New("customer not found")
	ErrUnknownAccount  = errors.New("account not found")
	ErrSameAccount     = errors.New("cannot transfer to the same account")
)

// BankService is the top-level registry of customers and accounts. Both
// registries preserve insertion order for deterministic listing. Every
// public operation is a critical section: it either completes or leaves all
// state untouched.
type BankService struct {
	mu sync.Mutex

	customersByID    map[string]*models.Customer
	customerOrder    []string
	accountsByNumber map[string]*models.Account
	accountOrder     []string

	ids     *ident.Generator
	logger  *slog.Logger
	metrics MetricsRecorder
}

// NewBankService creates an empty bank service.
func NewBankService(logger *slog.Logger, metrics MetricsRecorder) *BankService {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	return &BankService{
		customersByID:    make(map[string]*models.Customer),
		accountsByNumber: make(map[string]*models.Account),
		ids:              ident.NewGenerator(),
		logger:           logger,
		metrics:          metrics,
	}
}

// CreateCustomer allocates a customer identifier, constructs the customer,
// and registers it. It fails only on identifier exhaustion.
func (s *BankService) CreateCustomer(name, email string) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.ids.NextCustomerID(func(candidate string) bool {
		_, taken := s.customersByID[candidate]
		return taken
	})
	if err != nil {
		s.recordOperation("create_customer", err)
		return nil, err
	}

	customer := models.NewCustomer(id, name, email)
	s.customersByID[id] = customer
	s.customerOrder = append(s.customerOrder, id)

	s.logger.Info("customer created", "customer_id", id)
	s.recordOperation("create_customer", nil)
	s.metrics.RecordGauge("bank_customers_total", float64(len(s.customerOrder)), nil)
	return customer, nil
}

// OpenAccount opens an active, zero-balance account of the given type for
// the customer and registers it.
func (s *BankService) OpenAccount(customerID, accountType string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customersByID[customerID]
	if !ok {
		s.recordOperation("open_account", ErrUnknownCustomer)
		return nil, ErrUnknownCustomer
	}

	number, err := s.ids.NextAccountNumber(func(candidate string) bool {
		_, taken := s.accountsByNumber[candidate]
		return taken
	})
	if err != nil {
		s.recordOperation("open_account", err)
		return nil, err
	}

	account, err := models.NewAccount(number, accountType, customer.ID)
	if err != nil {
		s.recordOperation("open_account", err)
		return nil, err
	}
	if err := customer.AttachAccount(account); err != nil {
		s.recordOperation("open_account", err)
		return nil, err
	}

	s.accountsByNumber[number] = account
	s.accountOrder = append(s.accountOrder, number)

	s.logger.Info("account opened",
		"account_number", number,
		"customer_id", customer.ID,
		"account_type", accountType,
	)
	s.recordOperation("open_account", nil)
	s.metrics.RecordGauge("bank_accounts_total", float64(len(s.accountOrder)), nil)
	return account, nil
}

// Deposit credits the account and returns the updated balance.
func (s *BankService) Deposit(accountNumber string, amount money.Money, description string) (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accountsByNumber[accountNumber]
	if !ok {
		s.recordOperation("deposit", ErrUnknownAccount)
		return money.Zero, ErrUnknownAccount
	}

	if description == "" {
		description = "Deposit"
	}
	tx, err := account.Deposit(amount, description)
	if err != nil {
		s.recordOperation("deposit", err)
		return money.Zero, err
	}

	s.logger.Info("deposit applied",
		"account_number", accountNumber,
		"transaction_id", tx.ID,
		"amount", amount.String(),
		"balance", account.Balance.String(),
	)
	s.recordOperation("deposit", nil)
	return account.Balance, nil
}

// Withdraw debits the account and returns the updated balance.
func (s *BankService) Withdraw(accountNumber string, amount money.Money, description string) (money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accountsByNumber[accountNumber]
	if !ok {
		s.recordOperation("withdraw", ErrUnknownAccount)
		return money.Zero, ErrUnknownAccount
	}

	if description == "" {
		description = "Withdrawal"
	}
	tx, err := account.Withdraw(amount, description)
	if err != nil {
		s.recordOperation("withdraw", err)
		return money.Zero, err
	}

	s.logger.Info("withdrawal applied",
		"account_number", accountNumber,
		"transaction_id", tx.ID,
		"amount", amount.String(),
		"balance", account.Balance.String(),
	)
	s.recordOperation("withdraw", nil)
	return account.Balance, nil
}

// Transfer moves amount between two accounts as an atomic pair of
// transactions sharing a correlation identifier. Both legs are validated
// before either account is mutated; if the credit leg still fails, the debit
// leg is rolled back.
func (s *BankService) Transfer(fromNumber, toNumber string, amount money.Money, description string) (money.Money, money.Money, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.accountsByNumber[fromNumber]
	if !ok {
		s.recordOperation("transfer", ErrUnknownAccount)
		return money.Zero, money.Zero, ErrUnknownAccount
	}
	to, ok := s.accountsByNumber[toNumber]
	if !ok {
		s.recordOperation("transfer", ErrUnknownAccount)
		return money.Zero, money.Zero, ErrUnknownAccount
	}
	if fromNumber == toNumber {
		s.recordOperation("transfer", ErrSameAccount)
		return money.Zero, money.Zero, ErrSameAccount
	}

	if err := s.validateTransfer(from, to, amount); err != nil {
		s.recordOperation("transfer", err)
		return money.Zero, money.Zero, err
	}

	correlationID := ident.NewTransferID()
	outDescription := fmt.Sprintf("[%s] Transfer to %s", correlationID, toNumber)
	inDescription := fmt.Sprintf("[%s] Transfer from %s", correlationID, fromNumber)
	if description != "" {
		outDescription += ": " + description
		inDescription += ": " + description
	}

	outTx, err := from.ApplyTransferOut(amount, outDescription)
	if err != nil {
		s.recordOperation("transfer", err)
		return money.Zero, money.Zero, err
	}
	if _, err := to.ApplyTransferIn(amount, inDescription); err != nil {
		if rbErr := from.RollbackTransaction(outTx); rbErr != nil {
			s.logger.Error("transfer rollback failed",
				"transfer_id", correlationID,
				"account_number", fromNumber,
				"error", rbErr.Error(),
			)
		}
		s.recordOperation("transfer", err)
		return money.Zero, money.Zero, err
	}

	s.logger.Info("transfer completed",
		"transfer_id", correlationID,
		"from_account", fromNumber,
		"to_account", toNumber,
		"amount", amount.String(),
	)
	s.recordOperation("transfer", nil)
	s.metrics.ObserveHistogram("bank_transfer_amount", float64(amount.MinorUnits())/100)
	return from.Balance, to.Balance, nil
}

// validateTransfer checks both legs before any mutation so the common
// failure paths never need a rollback.
func (s *BankService) validateTransfer(from, to *models.Account, amount money.Money) error {
	if !amount.IsPositive() {
		return models.ErrInvalidAmount
	}
	if !from.IsActive() {
		return models.ErrAccountNotActive
	}
	if from.Balance.LessThan(amount) {
		return models.ErrInsufficientFunds
	}
	return to.CanReceive(amount)
}

// GetAccount returns the registered account with the given number.
func (s *BankService) GetAccount(accountNumber string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accountsByNumber[accountNumber]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return account, nil
}

// GetCustomer returns the registered customer with the given identifier.
func (s *BankService) GetCustomer(customerID string) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customersByID[customerID]
	if !ok {
		return nil, ErrUnknownCustomer
	}
	return customer, nil
}

// ListCustomers returns all customers in registration order.
func (s *BankService) ListCustomers() []*models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]*models.Customer, 0, len(s.customerOrder))
	for _, id := range s.customerOrder {
		customers = append(customers, s.customersByID[id])
	}
	return customers
}

// ListAccountsOf returns the customer's accounts in the order they were
// opened.
func (s *BankService) ListAccountsOf(customerID string) ([]*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customersByID[customerID]
	if !ok {
		return nil, ErrUnknownCustomer
	}
	return customer.Accounts(), nil
}

// ViewHistory returns the account's transaction log as a snapshot in
// insertion order. Frozen and closed accounts still expose their history.
func (s *BankService) ViewHistory(accountNumber string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accountsByNumber[accountNumber]
	if !ok {
		return nil, ErrUnknownAccount
	}
	return account.Transactions(), nil
}

// SetAccountStatus routes an administrative status transition through the
// account state machine.
func (s *BankService) SetAccountStatus(accountNumber, status string) (*models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accountsByNumber[accountNumber]
	if !ok {
		s.recordOperation("set_account_status", ErrUnknownAccount)
		return nil, ErrUnknownAccount
	}
	if err := account.SetStatus(status); err != nil {
		s.recordOperation("set_account_status", err)
		return nil, err
	}

	s.logger.Info("account status changed",
		"account_number", accountNumber,
		"new_status", status,
	)
	s.recordOperation("set_account_status", nil)
	return account, nil
}

// UpdateCustomerProfile sets the customer's name and email. Empty inputs
// leave the corresponding field unchanged; no further validation is applied.
func (s *BankService) UpdateCustomerProfile(customerID, name, email string) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customersByID[customerID]
	if !ok {
		s.recordOperation("update_customer_profile", ErrUnknownCustomer)
		return nil, ErrUnknownCustomer
	}
	if name != "" {
		customer.Name = name
	}
	if email != "" {
		customer.Email = email
	}

	s.recordOperation("update_customer_profile", nil)
	return customer, nil
}

func (s *BankService) recordOperation(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "rejected"
	}
	s.metrics.IncrementCounter("bank_operations_total", map[string]string{
		"operation": operation,
		"status":    status,
	})
}
