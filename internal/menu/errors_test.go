package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "mybank/internal/errors"
	"mybank/internal/ident"
	"mybank/internal/models"
	"mybank/internal/money"
	"mybank/internal/services"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.ErrorCode
	}{
		{name: "unknown customer", err: services.ErrUnknownCustomer, want: apperrors.UnknownCustomer},
		{name: "unknown account", err: services.ErrUnknownAccount, want: apperrors.UnknownAccount},
		{name: "account not found", err: models.ErrAccountNotFound, want: apperrors.UnknownAccount},
		{name: "same account", err: services.ErrSameAccount, want: apperrors.SameAccount},
		{name: "invalid identifier", err: models.ErrInvalidIdentifier, want: apperrors.InvalidIdentifier},
		{name: "invalid amount", err: models.ErrInvalidAmount, want: apperrors.InvalidAmount},
		{name: "unparseable amount", err: money.ErrInvalidAmount, want: apperrors.InvalidAmount},
		{name: "insufficient funds", err: models.ErrInsufficientFunds, want: apperrors.InsufficientFunds},
		{name: "not active", err: models.ErrAccountNotActive, want: apperrors.AccountNotActive},
		{name: "bad transition", err: models.ErrInvalidStatusTransition, want: apperrors.InvalidStatusTransition},
		{name: "nonzero close", err: models.ErrNonzeroClose, want: apperrors.NonzeroClose},
		{name: "ownership mismatch", err: models.ErrOwnershipMismatch, want: apperrors.OwnershipMismatch},
		{name: "overflow", err: money.ErrOverflow, want: apperrors.Overflow},
		{name: "identifier exhaustion", err: ident.ErrExhausted, want: apperrors.Overflow},
		{name: "anything else", err: errors.New("boom"), want: apperrors.Unexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}
