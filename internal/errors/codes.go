package errors

// ErrorCode identifies one kind of rejected operation. The driver translates
// codes into user-visible text; the core never prints them.
type ErrorCode string

// Lookup error codes
const (
	UnknownCustomer   ErrorCode = "UNKNOWN_CUSTOMER"
	UnknownAccount    ErrorCode = "UNKNOWN_ACCOUNT"
	InvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
)

// Balance-mutation error codes
const (
	InvalidAmount     ErrorCode = "INVALID_AMOUNT"
	InsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	AccountNotActive  ErrorCode = "ACCOUNT_NOT_ACTIVE"
	Overflow          ErrorCode = "OVERFLOW"
)

// Lifecycle and routing error codes
const (
	InvalidStatusTransition ErrorCode = "INVALID_STATUS_TRANSITION"
	NonzeroClose            ErrorCode = "NONZERO_CLOSE"
	OwnershipMismatch       ErrorCode = "OWNERSHIP_MISMATCH"
	SameAccount             ErrorCode = "SAME_ACCOUNT"
)

// Unexpected is the fallback for errors outside the ledger taxonomy.
const Unexpected ErrorCode = "UNEXPECTED"

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	UnknownCustomer:   "No customer exists with that ID",
	UnknownAccount:    "No account exists with that number",
	InvalidIdentifier: "Identifier must not be empty",

	InvalidAmount:     "Amount must be a positive value with at most two decimal places",
	InsufficientFunds: "Insufficient balance for this operation",
	AccountNotActive:  "Account is frozen or closed",
	Overflow:          "Amount exceeds the supported balance range",

	InvalidStatusTransition: "Account status change is not allowed",
	NonzeroClose:            "Account balance must be zero before closing",
	OwnershipMismatch:       "Account does not belong to this customer",
	SameAccount:             "Source and destination accounts must differ",

	Unexpected: "An unexpected error occurred",
}

// GetErrorMessage returns the default message for a given error code.
// Unknown codes fall back to a generic message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
