package ident

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

const (
	CustomerPrefix    = "C-"
	AccountPrefix     = "A-"
	TransactionPrefix = "T-"
	TransferPrefix    = "TFR-"

	// maxAttempts bounds the collision-retry loop for registry-checked
	// identifiers.
	maxAttempts = 10
)

// ErrExhausted is returned when a unique identifier could not be produced
// within maxAttempts retries.
var ErrExhausted = errors.New("identifier space exhausted")

// Generator produces opaque, prefixed identifiers whose uniqueness is
// checked against a caller-supplied registry predicate. Callers must treat
// the token after the prefix as opaque.
type Generator struct{}

// NewGenerator creates an identifier generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// NextCustomerID returns a fresh C- identifier that the taken predicate
// rejects, retrying on collisions.
func (g *Generator) NextCustomerID(taken func(string) bool) (string, error) {
	return next(CustomerPrefix, 8, taken)
}

// NextAccountNumber returns a fresh A- identifier that the taken predicate
// rejects, retrying on collisions.
func (g *Generator) NextAccountNumber(taken func(string) bool) (string, error) {
	return next(AccountPrefix, 8, taken)
}

// NewTransactionID returns a fresh T- identifier. The longer token makes a
// collision within a single account's log vanishingly unlikely, so no
// registry check is needed.
func NewTransactionID() string {
	return TransactionPrefix + token(12)
}

// NewTransferID returns a TFR- correlation identifier shared by the two legs
// of a transfer.
func NewTransferID() string {
	return TransferPrefix + token(12)
}

func next(prefix string, length int, taken func(string) bool) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id := prefix + token(length)
		if taken == nil || !taken(id) {
			return id, nil
		}
	}
	return "", ErrExhausted
}

// token returns an uppercase hex token of the given length derived from a
// random UUID.
func token(length int) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	if length > len(raw) {
		length = len(raw)
	}
	return strings.ToUpper(raw[:length])
}
