package render

import "math"

// Dataset is a category-indexed table of optional values. Rows are
// series, columns are categories. A false ok from Value marks a gap:
// the renderer skips the cell without treating it as an error.
type Dataset interface {
	RowCount() int
	ColumnCount() int
	Value(row, column int) (v float64, ok bool)
	SeriesKey(row int) string
	Category(column int) string
}

// Absent marks a gap when building a Table from literal values.
var Absent = math.NaN()

// Table is an in-memory Dataset.
type Table struct {
	categories []string
	keys       []string
	cells      [][]float64
}

func NewTable(categories ...string) *Table {
	return &Table{categories: categories}
}

// AddSeries appends a series and returns its row index. NaN values are
// stored as absent cells. Shorter value lists leave the trailing cells
// absent.
func (t *Table) AddSeries(key string, values ...float64) int {
	row := make([]float64, len(t.categories))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		} else {
			row[i] = Absent
		}
	}
	t.keys = append(t.keys, key)
	t.cells = append(t.cells, row)
	return len(t.cells) - 1
}

// Set overwrites one cell. Rows and columns outside the table are
// ignored.
func (t *Table) Set(row, column int, v float64) {
	if row < 0 || row >= len(t.cells) || column < 0 || column >= len(t.categories) {
		return
	}
	t.cells[row][column] = v
}

func (t *Table) RowCount() int    { return len(t.cells) }
func (t *Table) ColumnCount() int { return len(t.categories) }

func (t *Table) Value(row, column int) (float64, bool) {
	if row < 0 || row >= len(t.cells) || column < 0 || column >= len(t.categories) {
		return 0, false
	}
	v := t.cells[row][column]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (t *Table) SeriesKey(row int) string {
	if row < 0 || row >= len(t.keys) {
		return ""
	}
	return t.keys[row]
}

func (t *Table) Category(column int) string {
	if column < 0 || column >= len(t.categories) {
		return ""
	}
	return t.categories[column]
}
