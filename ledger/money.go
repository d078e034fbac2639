package ledger

import (
	"fmt"
	"strings"
)

// PaymentEpsilon absorbs float rounding when deciding whether a tab is
// settled. Every "paid in full" / "partially paid" comparison in the system
// goes through this one constant.
const PaymentEpsilon = 0.01

// FormatBRL renders a monetary value the Brazilian way: two decimals, comma
// separator, "R$ " prefix. 1234.5 -> "R$ 1234,50". This is the only currency
// formatter in the system.
func FormatBRL(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// NormalizeName is the shared normalization for every client-name comparison
// (balance lookup, dedup): trim then uppercase.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
