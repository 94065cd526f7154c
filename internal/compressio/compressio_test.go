package compressio

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"jsonlens/types"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDetectByMagicGzip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	gw.Write([]byte(`{"a":1}`))
	gw.Close()

	path := writeTemp(t, "events.jsonl.gz", buf.Bytes())
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := DetectByMagic(f)
	if err != nil {
		t.Fatal(err)
	}
	if got != types.CompressionGzip {
		t.Fatalf("DetectByMagic = %v, want gzip", got)
	}

	// Seek back to start must have happened so a subsequent read sees the
	// full stream again.
	var probe [2]byte
	if _, err := f.Read(probe[:]); err != nil {
		t.Fatal(err)
	}
	if probe != [2]byte{0x1f, 0x8b} {
		t.Fatalf("file position not reset after DetectByMagic, read %v", probe)
	}
}

func TestDetectByMagicNone(t *testing.T) {
	path := writeTemp(t, "events.jsonl", []byte(`{"a":1}`))
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := DetectByMagic(f)
	if err != nil {
		t.Fatal(err)
	}
	if got != types.CompressionNone {
		t.Fatalf("DetectByMagic = %v, want none", got)
	}
}

func TestOpenGzipRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	gw.Write([]byte(`{"a":1}` + "\n"))
	gw.Close()

	path := writeTemp(t, "events.jsonl.gz", buf.Bytes())
	rc, size, err := Open(path, types.CompressionGzip)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()

	if size <= 0 {
		t.Fatalf("size = %d, want > 0 (on-disk compressed size)", size)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"a":1}`+"\n" {
		t.Fatalf("decompressed content = %q", data)
	}
}

func TestOpenNoneReturnsRawFile(t *testing.T) {
	path := writeTemp(t, "events.jsonl", []byte("plain"))
	rc, _, err := Open(path, types.CompressionNone)
	if err != nil {
		t.Fatal(err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "plain" {
		t.Fatalf("content = %q, want %q", data, "plain")
	}
}

func TestOpenUnsupportedCompression(t *testing.T) {
	path := writeTemp(t, "events.jsonl", []byte("plain"))
	_, _, err := Open(path, types.Compression("unknown"))
	if err == nil {
		t.Fatal("expected error for unsupported compression")
	}
}
