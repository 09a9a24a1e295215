package catalog

// Where keeps the rows for which keep returns true, preserving order.
func (t Table) Where(keep func(Entry) bool) Table {
	var out []Entry
	for _, e := range t.rows {
		if keep(e) {
			out = append(out, e)
		}
	}
	return Table{rows: out}
}

// IDs returns the ID column as a set.
func (t Table) IDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(t.rows))
	for _, e := range t.rows {
		ids[e.ID] = struct{}{}
	}
	return ids
}

// Join is an inner join on ID: rows of t whose ID also appears in other,
// in t's order. Only t's columns are kept.
func (t Table) Join(other Table) Table {
	ids := other.IDs()
	return t.Where(func(e Entry) bool {
		_, ok := ids[e.ID]
		return ok
	})
}

// Magnitudes returns the magnitude column.
func (t Table) Magnitudes() []float64 {
	out := make([]float64, len(t.rows))
	for i, e := range t.rows {
		out[i] = e.Mag
	}
	return out
}
