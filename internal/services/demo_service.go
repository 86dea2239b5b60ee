package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brianvoe/gofakeit/v7"

	"mybank/internal/models"
	"mybank/internal/money"
)

// DemoSeeder populates the bank with fake customers and realistic account
// activity so the menu has something to show on first launch. Everything
// goes through the real service operations, so all ledger invariants hold
// for seeded data too.
type DemoSeeder struct {
	bank   *BankService
	logger *slog.Logger
}

func NewDemoSeeder(bank *BankService, logger *slog.Logger) *DemoSeeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &DemoSeeder{bank: bank, logger: logger}
}

// Seed creates the given number of customers, each with a checking account,
// sometimes a savings account, and a short history of deposits and
// withdrawals. Customers with two accounts also get one internal transfer.
func (d *DemoSeeder) Seed(customers int) error {
	for i := 0; i < customers; i++ {
		if err := d.seedCustomer(); err != nil {
			return fmt.Errorf("seeding customer %d: %w", i+1, err)
		}
	}
	d.logger.Info("demo data seeded", "customers", customers)
	return nil
}

func (d *DemoSeeder) seedCustomer() error {
	customer, err := d.bank.CreateCustomer(gofakeit.Name(), gofakeit.Email())
	if err != nil {
		return err
	}

	checking, err := d.bank.OpenAccount(customer.ID, models.AccountTypeChecking)
	if err != nil {
		return err
	}
	if err := d.seedActivity(checking.AccountNumber); err != nil {
		return err
	}

	if gofakeit.Bool() {
		savings, err := d.bank.OpenAccount(customer.ID, models.AccountTypeSavings)
		if err != nil {
			return err
		}
		if err := d.seedActivity(savings.AccountNumber); err != nil {
			return err
		}

		amount := randomAmount(1000, 20000)
		if _, _, err := d.bank.Transfer(checking.AccountNumber, savings.AccountNumber, amount, "Savings top-up"); err != nil {
			// The checking balance may be too small; skip the transfer
			// rather than fail the seed run.
			d.logger.Debug("demo transfer skipped",
				"from_account", checking.AccountNumber,
				"error", err.Error(),
			)
		}
	}

	return nil
}

func (d *DemoSeeder) seedActivity(accountNumber string) error {
	// An opening deposit large enough to cover later withdrawals.
	opening := randomAmount(200000, 500000)
	if _, err := d.bank.Deposit(accountNumber, opening, "Opening deposit"); err != nil {
		return err
	}

	events := gofakeit.Number(2, 6)
	for i := 0; i < events; i++ {
		amount := randomAmount(500, 50000)
		if gofakeit.Bool() {
			if _, err := d.bank.Deposit(accountNumber, amount, gofakeit.ProductName()); err != nil {
				return err
			}
			continue
		}
		if _, err := d.bank.Withdraw(accountNumber, amount, gofakeit.ProductName()); err != nil {
			if errors.Is(err, models.ErrInsufficientFunds) {
				continue
			}
			return err
		}
	}
	return nil
}

// randomAmount returns an exact amount between min and max cents.
func randomAmount(minCents, maxCents int) money.Money {
	amount, err := money.FromMinorUnits(int64(gofakeit.Number(minCents, maxCents)))
	if err != nil {
		return money.Zero
	}
	return amount
}
