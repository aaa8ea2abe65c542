package engine

import (
	"math"

	"github.com/KaramelBytes/tabled/internal/dataset"
)

// Summary is the per-column statistics record. Mean, Min, and Max are
// present only for numeric columns with at least one non-null value.
type Summary struct {
	Count int      `json:"count"`
	Mean  *float64 `json:"mean,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// Statistics computes a Summary per column and the per-column null
// counts. A column is numeric when every non-null value coerces to a
// number; non-numeric columns report the non-null count only.
func Statistics(ds *dataset.Dataset) (map[string]Summary, map[string]int) {
	stats := make(map[string]Summary, len(ds.Columns))
	nulls := make(map[string]int, len(ds.Columns))

	for _, col := range ds.Columns {
		var (
			count   int
			nullCnt int
			numeric = true
			sum     float64
			min     = math.Inf(1)
			max     = math.Inf(-1)
		)
		for _, row := range ds.Rows {
			v := row[col]
			if v.IsNull() {
				nullCnt++
				continue
			}
			count++
			n, ok := v.Number()
			if !ok {
				numeric = false
				continue
			}
			sum += n
			if n < min {
				min = n
			}
			if n > max {
				max = n
			}
		}

		s := Summary{Count: count}
		if numeric && count > 0 {
			mean := sum / float64(count)
			s.Mean = &mean
			s.Min = &min
			s.Max = &max
		}
		stats[col] = s
		nulls[col] = nullCnt
	}
	return stats, nulls
}
