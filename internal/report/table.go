// Package report carries query results to whatever renders them. A Table is
// a title, a fixed header row and an ordered list of row tuples whose width
// always matches the header.
package report

// Row is implemented by every result type the query engine returns.
type Row interface {
	Headers() []string
	Values() []any
}

// Table is a rendered-agnostic tabular result.
type Table struct {
	Title   string   `json:"title"`
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// New builds a Table from typed rows. headers is used when rows is empty so
// callers still get the column layout for a "no data" report.
func New[R Row](title string, headers []string, rows []R) Table {
	t := Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]any, 0, len(rows)),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.Values())
	}
	return t
}

// Len returns the number of data rows.
func (t Table) Len() int { return len(t.Rows) }

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool { return len(t.Rows) == 0 }
