package dataset

import (
	"encoding/json"
	"testing"
)

func TestFromAny(t *testing.T) {
	cases := []struct {
		in   any
		kind Kind
	}{
		{nil, KindNull},
		{3.5, KindNumber},
		{"hi", KindText},
		{true, KindBool},
	}
	for _, c := range cases {
		v, err := FromAny(c.in)
		if err != nil {
			t.Fatalf("FromAny(%v): %v", c.in, err)
		}
		if v.Kind() != c.kind {
			t.Fatalf("FromAny(%v) kind = %s, want %s", c.in, v.Kind(), c.kind)
		}
	}
	if _, err := FromAny([]any{1}); err == nil {
		t.Fatalf("FromAny accepted a nested array")
	}
}

func TestValueNumberCoercion(t *testing.T) {
	if n, ok := Number(2.5).Number(); !ok || n != 2.5 {
		t.Fatalf("number = %v, %v", n, ok)
	}
	if n, ok := Text(" 42 ").Number(); !ok || n != 42 {
		t.Fatalf("text coercion = %v, %v", n, ok)
	}
	if _, ok := Text("forty-two").Number(); ok {
		t.Fatalf("non-numeric text coerced")
	}
	if _, ok := Bool(true).Number(); ok {
		t.Fatalf("bool coerced to number")
	}
	if _, ok := Null.Number(); ok {
		t.Fatalf("null coerced to number")
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Number(10), "10"},
		{Number(7.5), "7.5"},
		{Text("east"), "east"},
		{Bool(false), "false"},
		{Null, ""},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("String(%v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestValueJSON(t *testing.T) {
	var row Row
	if err := json.Unmarshal([]byte(`{"a": 1, "b": "x", "c": null, "d": true}`), &row); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if row["a"].Kind() != KindNumber || row["b"].Kind() != KindText || !row["c"].IsNull() || row["d"].Kind() != KindBool {
		t.Fatalf("row kinds wrong: %#v", row)
	}

	b, err := json.Marshal(row["c"])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("null renders %s", b)
	}

	var v Value
	if err := json.Unmarshal([]byte(`{"nested": 1}`), &v); err == nil {
		t.Fatalf("object accepted as cell value")
	}
}
