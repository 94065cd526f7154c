package header

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCollectAndGroup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.jsonl")
	content := "{\"id\":1,\"user\":{\"name\":\"a\"}}\n{\"id\":2,\"user\":{\"age\":9}}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := Collect(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"id", "user_age", "user_name"}
	if !reflect.DeepEqual(paths, want) {
		t.Fatalf("got %v, want %v", paths, want)
	}

	groups := Group(paths)
	wantGroups := [][]string{{"id"}, {"user_age", "user_name"}}
	if !reflect.DeepEqual(groups, wantGroups) {
		t.Fatalf("got groups %v, want %v", groups, wantGroups)
	}
}
