package ledger

// CreditEntry is a manual credit (positive) or debit (negative) recorded
// against a named client.
type CreditEntry struct {
	ClientName string
	Amount     float64
}

// CarriedBalance computes the net balance a named client carries into a tab:
// the sum of their manual credit entries minus what is still outstanding on
// their other unpaid by-name tabs. Negative means the client owes money.
//
// The lookup is case-insensitive through NormalizeName. When no known client
// matches the name the result is 0: an anonymous tab carries nothing.
// excludeTabID keeps the tab being reconciled out of its own balance.
//
// O(tabs x credits) per call; fine at comanda scale, deliberately unindexed.
func CarriedBalance(clientName string, clients []string, credits []CreditEntry, tabs []TabSnapshot, excludeTabID uint) float64 {
	name := NormalizeName(clientName)
	if name == "" {
		return 0
	}

	known := false
	for _, c := range clients {
		if NormalizeName(c) == name {
			known = true
			break
		}
	}
	if !known {
		return 0
	}

	var creditSum float64
	for _, e := range credits {
		if NormalizeName(e.ClientName) == name {
			creditSum += e.Amount
		}
	}

	var otherOutstanding float64
	for _, tab := range tabs {
		if tab.ID == excludeTabID || tab.Kind != KindName || tab.Status == StatusPaid {
			continue
		}
		if NormalizeName(tab.Identifier) != name {
			continue
		}
		t := Totals(tab)
		otherOutstanding += t.Subtotal - t.Paid
	}

	return creditSum - otherOutstanding
}
