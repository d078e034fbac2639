// Package ledger computes everything a comanda screen or printer needs from
// raw rows: grouped display lines, totals, carried client balances, the
// amount left to pay and receipt text. Every function is pure; callers fetch
// a consistent snapshot, call in, and persist or render the result themselves.
package ledger

// Tab kinds.
const (
	KindTable = "table"
	KindName  = "name"
)

// Tab lifecycle. Transitions are monotonic: open -> paying -> paid.
const (
	StatusOpen   = "open"
	StatusPaying = "paying"
	StatusPaid   = "paid"
)

// Item is the menu data a line needs: identity, display name, unit price.
type Item struct {
	ID    uint
	Name  string
	Price float64
}

// Line is one tab line. Lines with the same item and comment are merged for
// display by Group; a nil Item marks an incomplete row and is skipped
// everywhere.
type Line struct {
	Item     *Item
	Quantity int
	Comment  string
}

// PaymentInfo is a recorded payment against a tab.
type PaymentInfo struct {
	Amount float64
	Method string
}

// TabSnapshot is the read-only view of a tab the engine works on.
type TabSnapshot struct {
	ID         uint
	Kind       string
	Identifier string
	Status     string
	Lines      []Line
	Payments   []PaymentInfo
}

type lineKey struct {
	itemID  uint
	comment string
}

func keyOf(l Line) lineKey {
	return lineKey{itemID: l.Item.ID, comment: l.Comment}
}
