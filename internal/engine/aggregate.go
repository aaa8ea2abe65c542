package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/tabled/internal/dataset"
)

// AggregateOp is a single-column reduction operator.
type AggregateOp string

const (
	OpSum    AggregateOp = "sum"
	OpMean   AggregateOp = "mean"
	OpMedian AggregateOp = "median"
	OpCount  AggregateOp = "count"
	OpMin    AggregateOp = "min"
	OpMax    AggregateOp = "max"
)

// ParseAggregateOp validates a wire operator name.
func ParseAggregateOp(s string) (AggregateOp, error) {
	switch op := AggregateOp(strings.ToLower(strings.TrimSpace(s))); op {
	case OpSum, OpMean, OpMedian, OpCount, OpMin, OpMax:
		return op, nil
	default:
		return "", &dataset.ValidationError{Reason: fmt.Sprintf("invalid aggregate operation %q", s)}
	}
}

// Aggregate reduces one column of ds to a scalar. Null cells are
// excluded from the computation set. count accepts values of any kind;
// the numeric operations require every non-null cell to coerce to a
// number. sum over zero values is 0; mean, median, min, and max over
// zero non-null values fail with EmptyError.
func Aggregate(ds *dataset.Dataset, column string, op AggregateOp) (float64, error) {
	vals, err := ds.Column(column)
	if err != nil {
		return 0, err
	}

	if op == OpCount {
		n := 0
		for _, v := range vals {
			if !v.IsNull() {
				n++
			}
		}
		return float64(n), nil
	}

	nums := make([]float64, 0, len(vals))
	for _, v := range vals {
		if v.IsNull() {
			continue
		}
		n, ok := v.Number()
		if !ok {
			return 0, &dataset.ValidationError{
				Reason: fmt.Sprintf("%s of column %q: non-numeric value %q", op, column, v.String()),
			}
		}
		nums = append(nums, n)
	}

	switch op {
	case OpSum:
		var total float64
		for _, n := range nums {
			total += n
		}
		return total, nil
	case OpMean:
		if len(nums) == 0 {
			return 0, &dataset.EmptyError{Column: column, Operation: string(op)}
		}
		var total float64
		for _, n := range nums {
			total += n
		}
		return total / float64(len(nums)), nil
	case OpMedian:
		if len(nums) == 0 {
			return 0, &dataset.EmptyError{Column: column, Operation: string(op)}
		}
		return median(nums), nil
	case OpMin:
		if len(nums) == 0 {
			return 0, &dataset.EmptyError{Column: column, Operation: string(op)}
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n < m {
				m = n
			}
		}
		return m, nil
	case OpMax:
		if len(nums) == 0 {
			return 0, &dataset.EmptyError{Column: column, Operation: string(op)}
		}
		m := nums[0]
		for _, n := range nums[1:] {
			if n > m {
				m = n
			}
		}
		return m, nil
	default:
		return 0, &dataset.ValidationError{Reason: fmt.Sprintf("invalid aggregate operation %q", op)}
	}
}

// median sorts a copy; the middle pair is averaged for even counts.
func median(vals []float64) float64 {
	cp := append([]float64(nil), vals...)
	sort.Float64s(cp)
	mid := len(cp) / 2
	if len(cp)%2 == 1 {
		return cp[mid]
	}
	return (cp[mid-1] + cp[mid]) / 2
}
