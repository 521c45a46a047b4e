package validation

import (
	"github.com/shopspring/decimal"

	"lifetrack/internal/domain"
)

// TransactionValidator provides validation for ledger operations
type TransactionValidator struct {
	validator *Validator
}

// NewTransactionValidator creates a new transaction validator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{validator: NewValidator()}
}

// ValidateForCreation validates the fields of a transaction about to be
// created. Amounts must be strictly positive; zero and negative magnitudes
// are rejected.
func (tv *TransactionValidator) ValidateForCreation(kind domain.EntryType, amount decimal.Decimal, description string) error {
	validationError := NewValidationError()

	if !kind.IsValid() {
		validationError.AddInvalidValueError("type", string(kind), "must be pemasukan or pengeluaran")
	}

	if !tv.validator.IsPositiveAmount(amount) {
		validationError.AddInvalidValueError("amount", amount.String(), "must be greater than zero")
	}

	trimmed := tv.validator.TrimText(description)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
	} else if !tv.validator.IsValidTextLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed, 1, 255)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateID validates a transaction identifier
func (tv *TransactionValidator) ValidateID(id string) error {
	validationError := NewValidationError()
	if !tv.validator.IsNonEmptyID(id) {
		validationError.AddRequiredError("id")
	}
	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// CleanDescription returns the description as it will be stored
func (tv *TransactionValidator) CleanDescription(description string) string {
	return tv.validator.TrimText(description)
}
