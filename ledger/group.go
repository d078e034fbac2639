package ledger

// Group merges lines that share the same menu item and comment into a single
// aggregate line. Output keeps the insertion order of each key's first
// occurrence. Lines without a menu item are skipped. The input is never
// mutated; aggregates are fresh copies.
func Group(lines []Line) []Line {
	grouped := make([]Line, 0, len(lines))
	index := make(map[lineKey]int, len(lines))

	for _, l := range lines {
		if l.Item == nil {
			continue
		}
		k := keyOf(l)
		if i, ok := index[k]; ok {
			grouped[i].Quantity += l.Quantity
			continue
		}
		index[k] = len(grouped)
		grouped = append(grouped, Line{Item: l.Item, Quantity: l.Quantity, Comment: l.Comment})
	}

	return grouped
}
