package ledger

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Receipts target 40-column thermal printers.
const receiptWidth = 40

// DisplayIdentifier is the header form of a tab identifier: "MESA 3" for
// table tabs, the client name uppercased for name tabs.
func DisplayIdentifier(kind, identifier string) string {
	if kind == KindTable {
		return "MESA " + identifier
	}
	return NormalizeName(identifier)
}

// KitchenTicket renders the lines newly queued for the kitchen. An empty
// item set yields "": nothing to print is a normal outcome, not an error.
func KitchenTicket(identifier, kind string, newItems []Line) string {
	if len(newItems) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(center("*** COZINHA ***") + "\n")
	b.WriteString(center(DisplayIdentifier(kind, identifier)) + "\n")
	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")
	for _, l := range newItems {
		if l.Item == nil {
			continue
		}
		fmt.Fprintf(&b, "%dx %s\n", l.Quantity, l.Item.Name)
		if l.Comment != "" {
			b.WriteString("  Obs: " + l.Comment + "\n")
		}
	}
	return b.String()
}

// CustomerReceipt renders the fixed-width customer copy: centered header,
// QTD|ITEM / VALOR columns, one row per grouped line with the name truncated
// to fit, then the totals block. PAGO and PAGAMENTO only show up once
// something was paid.
func CustomerReceipt(tab TabSnapshot, grouped []Line, totals TabTotals, methods []string) string {
	var b strings.Builder
	b.WriteString(center("COMANDA") + "\n")
	b.WriteString(center(DisplayIdentifier(tab.Kind, tab.Identifier)) + "\n")
	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")
	b.WriteString(twoCols("QTD | ITEM", "VALOR") + "\n")
	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")

	for _, l := range grouped {
		if l.Item == nil {
			continue
		}
		left := fmt.Sprintf("%dx %s", l.Quantity, l.Item.Name)
		b.WriteString(twoCols(left, FormatBRL(l.Item.Price*float64(l.Quantity))) + "\n")
		if l.Comment != "" {
			b.WriteString("  Obs: " + l.Comment + "\n")
		}
	}

	b.WriteString(strings.Repeat("-", receiptWidth) + "\n")
	b.WriteString(twoCols("TOTAL", FormatBRL(totals.Subtotal)) + "\n")
	if totals.Paid > 0 {
		b.WriteString(twoCols("PAGO", FormatBRL(totals.Paid)) + "\n")
	}
	if len(methods) > 0 {
		b.WriteString(twoCols("PAGAMENTO", strings.Join(methods, ", ")) + "\n")
	}
	return b.String()
}

// ShareMessage renders the plain-text version of a tab for sharing over
// messaging apps: no column alignment, one line per grouped item, then the
// reconciled figures.
func ShareMessage(tab TabSnapshot, grouped []Line, totals TabTotals, rec Reconciliation) string {
	var b strings.Builder
	b.WriteString("Comanda " + DisplayIdentifier(tab.Kind, tab.Identifier) + "\n")
	for _, l := range grouped {
		if l.Item == nil {
			continue
		}
		fmt.Fprintf(&b, "%dx %s - %s\n", l.Quantity, l.Item.Name, FormatBRL(l.Item.Price*float64(l.Quantity)))
		if l.Comment != "" {
			b.WriteString("  Obs: " + l.Comment + "\n")
		}
	}
	b.WriteString("Total: " + FormatBRL(totals.Subtotal) + "\n")
	if rec.PreviousDebt < 0 {
		b.WriteString("Saldo anterior: " + FormatBRL(rec.PreviousDebt) + "\n")
	}
	if totals.Paid > 0 {
		b.WriteString("Pago: " + FormatBRL(totals.Paid) + "\n")
	}
	b.WriteString("Total a pagar: " + FormatBRL(rec.TotalToPay) + "\n")
	return b.String()
}

// Widths are measured in runes: thermal printers advance one column per
// character, not per byte, and item names carry accents.
func center(s string) string {
	pad := receiptWidth - utf8.RuneCountInString(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}

// twoCols left-aligns and right-aligns into the receipt width, truncating
// the left column so at least one space separates the two. A right column
// wider than the receipt keeps the line intact and merely overflows it.
func twoCols(left, right string) string {
	rightW := utf8.RuneCountInString(right)
	max := receiptWidth - rightW - 1
	if max < 0 {
		max = 0
	}
	if utf8.RuneCountInString(left) > max {
		left = string([]rune(left)[:max])
	}
	gap := receiptWidth - utf8.RuneCountInString(left) - rightW
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
