package ledger

// NewItemsToPrint diffs the tab's grouped lines against what was already sent
// to the kitchen and returns only the positive remainders, in the grouped
// lines' order. Both inputs are expected grouped (one line per key); the
// baseline is summed per key regardless. Must be recomputed whenever the tab
// or the printed baseline changes.
func NewItemsToPrint(grouped, printed []Line) []Line {
	already := make(map[lineKey]int, len(printed))
	for _, l := range printed {
		if l.Item == nil {
			continue
		}
		already[keyOf(l)] += l.Quantity
	}

	var pending []Line
	for _, l := range grouped {
		if l.Item == nil {
			continue
		}
		rest := l.Quantity - already[keyOf(l)]
		if rest > 0 {
			pending = append(pending, Line{Item: l.Item, Quantity: rest, Comment: l.Comment})
		}
	}
	return pending
}
