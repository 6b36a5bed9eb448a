// Package labels holds task-label tables and validates their shape.
//
// A Table is a row-indexed set of named columns. Each column carries an
// explicit Kind rather than a dynamic type, and values are kept in their
// textual form as read from disk.
package labels

// Kind is the declared value kind of a label column.
type Kind uint8

const (
	// String columns hold free text.
	String Kind = iota
	// Categorical columns draw values from a finite set of levels.
	Categorical
	// Numeric columns hold numbers.
	Numeric
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Categorical:
		return "categorical"
	case Numeric:
		return "numeric"
	}
	return "unknown"
}

// Column is one named label column.
type Column struct {
	Name string
	Kind Kind
	// Levels lists the category set of a Categorical column, in first-seen
	// order. It is empty for other kinds.
	Levels []string
	// Values has one entry per table row.
	Values []string
}

// Table is a label table: a row index plus zero or more columns, each with
// len(Index) values.
type Table struct {
	Index   []string
	Columns []Column
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.Index) }

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// IsValidMulticlass reports whether t can serve as a multiclass target: it
// must have exactly one column, of kind String or Categorical. It never
// fails; a nil table is simply not valid.
func IsValidMulticlass(t *Table) bool {
	if t == nil || len(t.Columns) != 1 {
		return false
	}
	switch t.Columns[0].Kind {
	case String, Categorical:
		return true
	}
	return false
}
