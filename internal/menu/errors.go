package menu

import (
	"errors"
	"fmt"

	apperrors "mybank/internal/errors"
	"mybank/internal/ident"
	"mybank/internal/models"
	"mybank/internal/money"
	"mybank/internal/services"
)

// errorCode maps a core sentinel error onto its error code. The core never
// formats user-facing text; this translation is the driver's job.
func errorCode(err error) apperrors.ErrorCode {
	switch {
	case errors.Is(err, services.ErrUnknownCustomer):
		return apperrors.UnknownCustomer
	case errors.Is(err, services.ErrUnknownAccount),
		errors.Is(err, models.ErrAccountNotFound):
		return apperrors.UnknownAccount
	case errors.Is(err, services.ErrSameAccount):
		return apperrors.SameAccount
	case errors.Is(err, models.ErrInvalidIdentifier):
		return apperrors.InvalidIdentifier
	case errors.Is(err, models.ErrInvalidAmount),
		errors.Is(err, money.ErrInvalidAmount):
		return apperrors.InvalidAmount
	case errors.Is(err, models.ErrInsufficientFunds),
		errors.Is(err, money.ErrNegativeResult):
		return apperrors.InsufficientFunds
	case errors.Is(err, models.ErrAccountNotActive):
		return apperrors.AccountNotActive
	case errors.Is(err, models.ErrInvalidStatusTransition):
		return apperrors.InvalidStatusTransition
	case errors.Is(err, models.ErrNonzeroClose):
		return apperrors.NonzeroClose
	case errors.Is(err, models.ErrOwnershipMismatch):
		return apperrors.OwnershipMismatch
	case errors.Is(err, money.ErrOverflow),
		errors.Is(err, ident.ErrExhausted):
		return apperrors.Overflow
	default:
		return apperrors.Unexpected
	}
}

func (m *Menu) printError(err error) {
	code := errorCode(err)
	if code == apperrors.Unexpected {
		m.logger.Error("unexpected error", "error", err.Error())
	}
	fmt.Fprintln(m.out, "Error:", apperrors.GetErrorMessage(code))
}
