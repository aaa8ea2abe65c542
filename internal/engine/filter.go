// Package engine implements row filtering, single-column aggregation,
// and per-column summary statistics over in-memory datasets.
package engine

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/tabled/internal/dataset"
)

// FilterOp is a single-column row predicate operator.
type FilterOp string

const (
	OpEq       FilterOp = "eq"
	OpGt       FilterOp = "gt"
	OpLt       FilterOp = "lt"
	OpContains FilterOp = "contains"
)

// ParseFilterOp validates a wire operator name.
func ParseFilterOp(s string) (FilterOp, error) {
	switch op := FilterOp(strings.ToLower(strings.TrimSpace(s))); op {
	case OpEq, OpGt, OpLt, OpContains:
		return op, nil
	default:
		return "", &dataset.ValidationError{Reason: fmt.Sprintf("invalid filter operation %q", s)}
	}
}

// Filter returns the rows of ds whose column matches op against value,
// preserving row order. The source dataset is not modified.
//
// eq compares as strings unless both sides parse as numbers, in which
// case it compares numerically. gt/lt require a numeric comparison value
// and numeric cells; a non-null cell that does not coerce is a
// validation error. contains is a case-sensitive substring match over
// the cell's string form. Null cells never match eq/contains and are
// skipped by gt/lt.
func Filter(ds *dataset.Dataset, column string, op FilterOp, value dataset.Value) ([]dataset.Row, error) {
	if !ds.HasColumn(column) {
		return nil, &dataset.NotFoundError{Kind: "column", Name: column}
	}

	match, err := predicate(column, op, value)
	if err != nil {
		return nil, err
	}

	out := make([]dataset.Row, 0)
	for _, row := range ds.Rows {
		ok, err := match(row[column])
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func predicate(column string, op FilterOp, value dataset.Value) (func(dataset.Value) (bool, error), error) {
	switch op {
	case OpEq:
		want := value.String()
		wantNum, wantIsNum := value.Number()
		return func(cell dataset.Value) (bool, error) {
			if cell.IsNull() {
				return value.IsNull(), nil
			}
			if cellNum, ok := cell.Number(); ok && wantIsNum {
				return cellNum == wantNum, nil
			}
			return cell.String() == want, nil
		}, nil

	case OpGt, OpLt:
		want, ok := value.Number()
		if !ok {
			return nil, &dataset.ValidationError{
				Reason: fmt.Sprintf("operation %q needs a numeric value, got %q", op, value.String()),
			}
		}
		return func(cell dataset.Value) (bool, error) {
			if cell.IsNull() {
				return false, nil
			}
			n, ok := cell.Number()
			if !ok {
				return false, &dataset.ValidationError{
					Reason: fmt.Sprintf("column %q has non-numeric value %q", column, cell.String()),
				}
			}
			if op == OpGt {
				return n > want, nil
			}
			return n < want, nil
		}, nil

	case OpContains:
		want := value.String()
		return func(cell dataset.Value) (bool, error) {
			if cell.IsNull() {
				return false, nil
			}
			return strings.Contains(cell.String(), want), nil
		}, nil

	default:
		return nil, &dataset.ValidationError{Reason: fmt.Sprintf("invalid filter operation %q", op)}
	}
}
