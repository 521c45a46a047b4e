// Package validation guards entity creation and mutation. A rejected
// operation never leaves a partially-created entity behind.
package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Validator provides common validation utilities
type Validator struct {
	textMaxLength int
}

// NewValidator creates a new validator instance with default limits
func NewValidator() *Validator {
	return &Validator{textMaxLength: 255}
}

// TrimText returns the string with surrounding whitespace removed
func (v *Validator) TrimText(s string) string {
	return strings.TrimSpace(s)
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTextLength checks if a trimmed string fits the configured maximum
func (v *Validator) IsValidTextLength(s string) bool {
	return len(strings.TrimSpace(s)) <= v.textMaxLength
}

// IsPositiveAmount checks if an amount is strictly greater than zero
func (v *Validator) IsPositiveAmount(amount decimal.Decimal) bool {
	return amount.IsPositive()
}

// IsNonEmptyID checks if an identifier is present
func (v *Validator) IsNonEmptyID(id string) bool {
	return id != ""
}
