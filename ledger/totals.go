package ledger

// TabTotals holds the money facts of a single tab.
type TabTotals struct {
	Subtotal  float64 `json:"subtotal"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
}

// Totals sums a tab's ungrouped lines and payments. Grouping is a display
// concern only; duplicated lines must still count here. Remaining is not
// clamped: an overpaid tab yields a negative remainder and the caller decides
// what to do with it.
func Totals(tab TabSnapshot) TabTotals {
	var t TabTotals
	for _, l := range tab.Lines {
		if l.Item == nil {
			continue
		}
		t.Subtotal += l.Item.Price * float64(l.Quantity)
	}
	for _, p := range tab.Payments {
		t.Paid += p.Amount
	}
	t.Remaining = t.Subtotal - t.Paid
	return t
}

// PartiallyPaid reports whether something was paid but a real remainder is
// still open (beyond rounding noise).
func PartiallyPaid(t TabTotals) bool {
	return t.Paid > 0 && t.Remaining > PaymentEpsilon
}

// SettledInFull reports whether the tab's remainder is within rounding noise.
func SettledInFull(t TabTotals) bool {
	return t.Remaining <= PaymentEpsilon
}
