package value

import (
	"testing"

	"jsonlens/types"
)

func TestGetFlatNested(t *testing.T) {
	v := map[string]any{"user": map[string]any{"name": "A"}}
	got, ok := GetFlat(v, "user_name")
	if !ok || got != "A" {
		t.Fatalf("GetFlat(user_name) = %v, %v", got, ok)
	}
}

func TestGetFlatMissing(t *testing.T) {
	v := map[string]any{"user": map[string]any{"name": "A"}}
	if _, ok := GetFlat(v, "user_age"); ok {
		t.Fatalf("expected missing key to fail resolution")
	}
	if _, ok := GetFlat(v, "name_x"); ok {
		t.Fatalf("expected non-object intermediate to fail resolution")
	}
}

func TestSmartFormatArrayOfObjectsProjectsName(t *testing.T) {
	v := []any{
		map[string]any{"name": "a", "id": float64(1)},
		map[string]any{"name": "b", "id": float64(2)},
	}
	f := SmartFormat(v)
	if !f.IsComplex {
		t.Fatalf("expected IsComplex=true")
	}
	if f.Text != "a, b" {
		t.Fatalf("got %q", f.Text)
	}
}

func TestSmartFormatNull(t *testing.T) {
	f := SmartFormat(nil)
	if f.Text != "" || f.IsComplex {
		t.Fatalf("expected empty non-complex, got %+v", f)
	}
}

func TestToSortKeyPrecedence(t *testing.T) {
	if k := ToSortKey(nil); k.Kind != types.KindNull {
		t.Fatalf("expected Null")
	}
	if k := ToSortKey(float64(3.5)); k.Kind != types.KindNumber || k.Number != 3.5 {
		t.Fatalf("expected Number 3.5, got %+v", k)
	}
	if k := ToSortKey("42"); k.Kind != types.KindNumber {
		t.Fatalf("expected numeric string to coerce to Number")
	}
	if k := ToSortKey("2024-01-15T10:30:00Z"); k.Kind != types.KindDate {
		t.Fatalf("expected RFC3339 to coerce to Date")
	}
	if k := ToSortKey("2024-01-15"); k.Kind != types.KindDate {
		t.Fatalf("expected date-only to coerce to Date")
	}
	if k := ToSortKey("hello"); k.Kind != types.KindText {
		t.Fatalf("expected plain text to stay Text")
	}
	if k := ToSortKey(true); k.Kind != types.KindNumber || k.Number != 1 {
		t.Fatalf("expected bool true to coerce to Number(1)")
	}
}

func TestCompareKeysNullAlwaysLast(t *testing.T) {
	n := types.NullKey()
	x := types.NumberKey(1)
	if !CompareKeys(x, n, false) {
		t.Fatalf("expected non-null < null ascending")
	}
	if !CompareKeys(x, n, true) {
		t.Fatalf("expected non-null < null even descending")
	}
}

func TestHeterogeneousDetection(t *testing.T) {
	keys := []types.SortKey{types.NumberKey(1), types.TextKey("x"), types.NullKey()}
	if !Heterogeneous(keys) {
		t.Fatalf("expected heterogeneous detection across Number/Text")
	}
	keys2 := []types.SortKey{types.NumberKey(1), types.NumberKey(2), types.NullKey()}
	if Heterogeneous(keys2) {
		t.Fatalf("expected homogeneous Number+Null to not be heterogeneous")
	}
}
