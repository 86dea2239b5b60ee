package dto

// Request structs carry raw menu input into validation before any core
// operation runs. Amounts stay strings here; the driver parses them into
// Money only after validation passes.

type CreateCustomerRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
}

type OpenAccountRequest struct {
	CustomerID  string `validate:"required,customer_id"`
	AccountType string `validate:"required,account_type"`
}

type DepositRequest struct {
	AccountNumber string `validate:"required,account_number"`
	Amount        string `validate:"required,money_amount"`
	Description   string
}

type WithdrawRequest struct {
	AccountNumber string `validate:"required,account_number"`
	Amount        string `validate:"required,money_amount"`
	Description   string
}

type TransferRequest struct {
	FromAccount string `validate:"required,account_number"`
	ToAccount   string `validate:"required,account_number"`
	Amount      string `validate:"required,money_amount"`
	Description string
}
