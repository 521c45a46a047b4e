package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatAmount renders an amount in the original app's id-ID style:
// "Rp 100.000" with dots for thousands and a comma before any fraction.
func formatAmount(prefix string, amount decimal.Decimal) string {
	negative := amount.IsNegative()
	abs := amount.Abs()

	intPart := abs.Floor()
	grouped := groupThousands(intPart.String())

	out := prefix + " " + grouped
	if frac := abs.Sub(intPart); !frac.IsZero() {
		digits := strings.TrimPrefix(frac.String(), "0.")
		out += "," + digits
	}
	if negative {
		out = "-" + out
	}
	return out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	return strings.Join(groups, ".")
}
