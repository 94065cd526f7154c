package schema

import (
	"reflect"
	"testing"
)

func TestInferOrdersByPriorityThenCount(t *testing.T) {
	records := []any{
		map[string]any{"id": float64(1), "user": map[string]any{"name": "a", "id": float64(10)}},
		map[string]any{"id": float64(2), "user": map[string]any{"name": "b"}},
		map[string]any{"id": float64(3), "msg": "hi"},
	}

	cols := Infer(records)
	got := make([]string, len(cols))
	for i, c := range cols {
		got[i] = c.Path
	}

	want := []string{"id", "msg", "user_id", "user_name"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInferMarksComplexColumnsUnsortable(t *testing.T) {
	records := []any{
		map[string]any{"tags": []any{"a", "b"}},
	}
	cols := Infer(records)
	if len(cols) != 1 {
		t.Fatalf("expected 1 column, got %d", len(cols))
	}
	if cols[0].IsSortable {
		t.Fatalf("expected array column to be unsortable")
	}
}

func TestInferTruncatesToMaxColumns(t *testing.T) {
	obj := map[string]any{}
	for i := 0; i < MaxColumns+20; i++ {
		obj[string(rune('a'+i%26))+string(rune('0'+i/26))] = i
	}
	cols := Infer([]any{obj})
	if len(cols) != MaxColumns {
		t.Fatalf("expected %d columns, got %d", MaxColumns, len(cols))
	}
}
