package engine

import (
	"errors"
	"testing"

	"github.com/KaramelBytes/tabled/internal/dataset"
)

func salesDataset() *dataset.Dataset {
	return dataset.New("sales", []string{"region", "amt"}, []dataset.Row{
		{"region": dataset.Text("east"), "amt": dataset.Number(10)},
		{"region": dataset.Text("west"), "amt": dataset.Null},
		{"region": dataset.Text("east"), "amt": dataset.Number(5)},
	})
}

func TestFilterEquals(t *testing.T) {
	ds := salesDataset()
	rows, err := Filter(ds, "region", OpEq, dataset.Text("east"))
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	// order preserved: first match is the amt=10 row
	if n, _ := rows[0]["amt"].Number(); n != 10 {
		t.Fatalf("first match amt = %v, want 10", rows[0]["amt"])
	}
	if n, _ := rows[1]["amt"].Number(); n != 5 {
		t.Fatalf("second match amt = %v, want 5", rows[1]["amt"])
	}
	if len(ds.Rows) != 3 {
		t.Fatalf("source dataset mutated: %d rows", len(ds.Rows))
	}
}

func TestFilterEqualsNumericCoercion(t *testing.T) {
	ds := dataset.New("t", []string{"v"}, []dataset.Row{
		{"v": dataset.Number(10)},
		{"v": dataset.Text("10.0")},
		{"v": dataset.Text("ten")},
		{"v": dataset.Null},
	})
	// "10" parses on both sides, so the number 10 and the text "10.0"
	// both match numerically; "ten" and null do not.
	rows, err := Filter(ds, "v", OpEq, dataset.Text("10"))
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	// A non-numeric comparison value falls back to string equality.
	rows, err = Filter(ds, "v", OpEq, dataset.Text("ten"))
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
}

func TestFilterGreaterLess(t *testing.T) {
	ds := salesDataset()
	rows, err := Filter(ds, "amt", OpGt, dataset.Text("6"))
	if err != nil {
		t.Fatalf("gt: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("gt rows = %d, want 1 (null excluded)", len(rows))
	}
	rows, err = Filter(ds, "amt", OpLt, dataset.Number(6))
	if err != nil {
		t.Fatalf("lt: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("lt rows = %d, want 1", len(rows))
	}
}

func TestFilterGreaterThanValidation(t *testing.T) {
	ds := salesDataset()

	// Non-numeric comparison value
	_, err := Filter(ds, "amt", OpGt, dataset.Text("abc"))
	var verr *dataset.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}

	// Non-numeric cell in a numeric comparison
	_, err = Filter(ds, "region", OpGt, dataset.Number(1))
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestFilterContains(t *testing.T) {
	ds := salesDataset()
	rows, err := Filter(ds, "region", OpContains, dataset.Text("as"))
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	// case-sensitive
	rows, err = Filter(ds, "region", OpContains, dataset.Text("EAST"))
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(rows))
	}
	// string form of numbers is searchable
	rows, err = Filter(ds, "amt", OpContains, dataset.Text("1"))
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (null never matches)", len(rows))
	}
}

func TestFilterUnknownColumn(t *testing.T) {
	_, err := Filter(salesDataset(), "nope", OpEq, dataset.Text("x"))
	if !dataset.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestParseFilterOp(t *testing.T) {
	for _, good := range []string{"eq", "GT", " lt ", "contains"} {
		if _, err := ParseFilterOp(good); err != nil {
			t.Fatalf("ParseFilterOp(%q): %v", good, err)
		}
	}
	if _, err := ParseFilterOp("between"); err == nil {
		t.Fatalf("ParseFilterOp accepted unknown operator")
	}
}
