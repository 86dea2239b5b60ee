package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"mybank/internal/money"
)

// Validator wraps the go-playground validator with the ledger's custom rules
// and user-facing error formatting.
type Validator struct {
	validate *validator.Validate
}

var (
	customerIDPattern    = regexp.MustCompile(`^C-[0-9A-F]{8,}$`)
	accountNumberPattern = regexp.MustCompile(`^A-[0-9A-F]{8,}$`)
)

// NewValidator creates a validator instance with the custom rules registered.
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("customer_id", validateCustomerID)
	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("money_amount", validateMoneyAmount)

	return &Validator{validate: v}
}

// Validate checks a tagged struct and returns validator.ValidationErrors on
// failure.
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Messages flattens a validation error into user-readable lines. Non-
// validation errors produce a single generic line.
func Messages(err error) []string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid input"}
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, formatFieldError(fieldErr))
	}
	return messages
}

func formatFieldError(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "customer_id":
		return fmt.Sprintf("%s must be a customer ID such as C-1A2B3C4D", field)
	case "account_number":
		return fmt.Sprintf("%s must be an account number such as A-1A2B3C4D", field)
	case "account_type":
		return fmt.Sprintf("%s must be CHECKING or SAVINGS", field)
	case "money_amount":
		return fmt.Sprintf("%s must be a positive amount with at most two decimal places", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// Custom validation functions

// validateCustomerID checks the C- prefix plus an opaque uppercase token.
func validateCustomerID(fl validator.FieldLevel) bool {
	return customerIDPattern.MatchString(fl.Field().String())
}

// validateAccountNumber checks the A- prefix plus an opaque uppercase token.
func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNumberPattern.MatchString(fl.Field().String())
}

// validateAccountType accepts checking or savings, case-insensitively.
func validateAccountType(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "checking", "savings":
		return true
	default:
		return false
	}
}

// validateMoneyAmount accepts strictly positive exact decimal amounts.
func validateMoneyAmount(fl validator.FieldLevel) bool {
	amount, err := money.Parse(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.IsPositive()
}
