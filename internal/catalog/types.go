package catalog

// Entry holds one star from the reference catalogue.
type Entry struct {
	ID  string  // unique key, e.g. an SAO number
	RA  float64 // right ascension, degrees
	De  float64 // declination, degrees
	Mag float64 // apparent visual magnitude (lower = brighter)
}

// Table is an ordered, immutable set of catalogue rows.
// Operations return new tables and never modify the receiver's rows.
type Table struct {
	rows []Entry
}

// NewTable copies rows into a table.
func NewTable(rows []Entry) Table {
	return Table{rows: append([]Entry(nil), rows...)}
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Row returns row i.
func (t Table) Row(i int) Entry { return t.rows[i] }

// Rows returns a copy of all rows.
func (t Table) Rows() []Entry {
	return append([]Entry(nil), t.rows...)
}
