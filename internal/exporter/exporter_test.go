package exporter

import (
	"bytes"
	"strings"
	"testing"
)

func TestCSVWriterWritesHeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := CSVWriter{}
	err := w.Write([]string{"id", "user_name"}, [][]string{{"1", "alice"}, {"2", "bob"}}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "id,user_name\r\n") {
		t.Fatalf("unexpected CSV header line: %q", out)
	}
	if !strings.Contains(out, "1,alice") || !strings.Contains(out, "2,bob") {
		t.Fatalf("missing expected rows: %q", out)
	}
}

func TestXLSXWriterProducesNonEmptyWorkbook(t *testing.T) {
	var buf bytes.Buffer
	w := XLSXWriter{}
	err := w.Write([]string{"id", "user_name", "user_age"}, [][]string{{"1", "alice", "30"}}, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty XLSX output")
	}
	// XLSX files are zip archives; the local file header magic confirms a
	// real archive was written rather than an empty/garbage buffer.
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Fatal("expected ZIP (xlsx) magic bytes at start of output")
	}
}

func TestFirstDashOrFull(t *testing.T) {
	if got := firstDashOrFull("user_name"); got != 4 {
		t.Fatalf("firstDashOrFull(%q) = %d, want 4", "user_name", got)
	}
	if got := firstDashOrFull("id"); got != 2 {
		t.Fatalf("firstDashOrFull(%q) = %d, want 2", "id", got)
	}
}
