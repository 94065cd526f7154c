package format

import (
	"os"
	"path/filepath"
	"testing"

	"jsonlens/types"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestStripCompressionSuffix(t *testing.T) {
	cases := []struct {
		path     string
		wantBase string
		wantC    types.Compression
	}{
		{"events.jsonl.gz", "events.jsonl", types.CompressionGzip},
		{"events.json.bz2", "events.json", types.CompressionBzip2},
		{"events.ndjson.xz", "events.ndjson", types.CompressionXz},
		{"events.jsonl", "events.jsonl", types.CompressionNone},
	}
	for _, c := range cases {
		base, comp := StripCompressionSuffix(c.path)
		if base != c.wantBase || comp != c.wantC {
			t.Errorf("StripCompressionSuffix(%q) = (%q, %v), want (%q, %v)", c.path, base, comp, c.wantBase, c.wantC)
		}
	}
}

func TestDetectJsonLByExtension(t *testing.T) {
	path := writeTemp(t, "events.jsonl", `{"a":1}`+"\n")
	format, comp, err := Detect(path)
	if err != nil {
		t.Fatal(err)
	}
	if format != types.JsonL {
		t.Fatalf("format = %v, want JsonL", format)
	}
	if comp != types.CompressionNone {
		t.Fatalf("compression = %v, want none", comp)
	}
}

func TestDetectJsonArrayByFirstByte(t *testing.T) {
	path := writeTemp(t, "events.json", "  \n[\n"+`{"a":1}`+"\n]\n")
	format, _, err := Detect(path)
	if err != nil {
		t.Fatal(err)
	}
	if format != types.JsonArray {
		t.Fatalf("format = %v, want JsonArray", format)
	}
}

func TestDetectFallsBackToJsonL(t *testing.T) {
	path := writeTemp(t, "events.txt", `{"a":1}`+"\n"+`{"a":2}`+"\n")
	format, _, err := Detect(path)
	if err != nil {
		t.Fatal(err)
	}
	if format != types.JsonL {
		t.Fatalf("format = %v, want JsonL", format)
	}
}
