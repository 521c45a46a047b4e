package cli

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "Rp 0"},
		{"500", "Rp 500"},
		{"1000", "Rp 1.000"},
		{"100000", "Rp 100.000"},
		{"1234567", "Rp 1.234.567"},
		{"-40000", "-Rp 40.000"},
		{"1500.5", "Rp 1.500,5"},
	}
	for _, tc := range cases {
		got := formatAmount("Rp", decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "formatAmount(%s)", tc.in)
	}
}
