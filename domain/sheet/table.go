package sheet

// Row is one ordered sequence of cell values. Cells are strings as
// decoded from the source, or ints for derived mark columns; an empty
// string is an empty cell.
type Row []any

// Table is a rectangular table with a synthesized header row.
type Table struct {
	Header []string
	Rows   []Row
}

// ColumnCount returns the width of the table including the header.
func (t *Table) ColumnCount() int {
	return len(t.Header)
}
