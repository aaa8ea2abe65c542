package dataset

import (
	"fmt"
	"sort"
)

// Row maps column names to cell values.
type Row map[string]Value

// Dataset is a named table: an ordered column set and an ordered row
// sequence. Every row carries a value (possibly null) for every declared
// column. Datasets are treated as immutable once built; filter and
// aggregate operations derive results without touching the source.
type Dataset struct {
	Name    string
	Columns []string
	Rows    []Row
}

// New builds a Dataset and pads every row with nulls for declared
// columns it lacks, keeping the row invariant without mutating input.
func New(name string, columns []string, rows []Row) *Dataset {
	out := make([]Row, len(rows))
	for i, r := range rows {
		nr := make(Row, len(columns))
		for _, c := range columns {
			if v, ok := r[c]; ok {
				nr[c] = v
			} else {
				nr[c] = Null
			}
		}
		out[i] = nr
	}
	return &Dataset{Name: name, Columns: columns, Rows: out}
}

// FromMaps builds a Dataset from decoded JSON records. The column set is
// the sorted union of all record keys (decoded JSON objects carry no key
// order); missing cells become null so ragged input still satisfies the
// row invariant.
func FromMaps(name string, records []map[string]any) (*Dataset, error) {
	var columns []string
	seen := make(map[string]bool)
	rows := make([]Row, 0, len(records))
	for i, rec := range records {
		row := make(Row, len(rec))
		for k, raw := range rec {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
			v, err := FromAny(raw)
			if err != nil {
				return nil, &ValidationError{Reason: fmt.Sprintf("row %d, column %q: %v", i, k, err)}
			}
			row[k] = v
		}
		rows = append(rows, row)
	}
	sort.Strings(columns)
	return New(name, columns, rows), nil
}

// HasColumn reports whether name is a declared column.
func (d *Dataset) HasColumn(name string) bool {
	for _, c := range d.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns all values of a column in row order.
func (d *Dataset) Column(name string) ([]Value, error) {
	if !d.HasColumn(name) {
		return nil, &NotFoundError{Kind: "column", Name: name}
	}
	vals := make([]Value, len(d.Rows))
	for i, r := range d.Rows {
		vals[i] = r[name]
	}
	return vals, nil
}

// Kinds infers a display kind per column: "number" when every non-null
// value coerces to a number, otherwise the predominant raw kind, "null"
// for all-null columns.
func (d *Dataset) Kinds() map[string]string {
	kinds := make(map[string]string, len(d.Columns))
	for _, c := range d.Columns {
		kinds[c] = d.columnKind(c)
	}
	return kinds
}

func (d *Dataset) columnKind(col string) string {
	counts := make(map[Kind]int)
	numeric := true
	nonNull := 0
	for _, r := range d.Rows {
		v := r[col]
		if v.IsNull() {
			continue
		}
		nonNull++
		counts[v.Kind()]++
		if _, ok := v.Number(); !ok {
			numeric = false
		}
	}
	if nonNull == 0 {
		return KindNull.String()
	}
	if numeric {
		return KindNumber.String()
	}
	best := KindText
	for k, n := range counts {
		if n > counts[best] {
			best = k
		}
	}
	return best.String()
}
