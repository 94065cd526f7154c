// Package format implements C2: deciding JsonL vs JsonArray from a file's
// extension and first non-whitespace byte, plus the compression-extension
// stripping the teacher uses in app/fileloader/detection.go so
// "events.jsonl.gz" still detects correctly once decompressed.
package format

import (
	"bufio"
	"os"
	"strings"

	"jsonlens/internal/compressio"
	"jsonlens/types"
)

var compressionExt = map[string]types.Compression{
	".gz":  types.CompressionGzip,
	".bz2": types.CompressionBzip2,
	".xz":  types.CompressionXz,
}

// StripCompressionSuffix returns path with a trailing compression
// extension removed, and the compression it implies (CompressionNone if
// the extension doesn't name one).
func StripCompressionSuffix(path string) (string, types.Compression) {
	lower := strings.ToLower(path)
	for ext, ct := range compressionExt {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)], ct
		}
	}
	return path, types.CompressionNone
}

// Detect opens path, determines its compression (by extension, falling
// back to magic bytes), and its logical format per spec.md §4.2: extension
// .jsonl/.ndjson → JsonL; else first non-whitespace byte '[' → JsonArray;
// else JsonL.
func Detect(path string) (types.FileFormat, types.Compression, error) {
	innerPath, compression := StripCompressionSuffix(path)

	f, err := os.Open(path)
	if err != nil {
		return "", types.CompressionNone, err
	}
	defer f.Close()

	if compression == types.CompressionNone {
		if magic, err := compressio.DetectByMagic(f); err == nil {
			compression = magic
		}
	}

	lower := strings.ToLower(innerPath)
	if strings.HasSuffix(lower, ".jsonl") || strings.HasSuffix(lower, ".ndjson") {
		return types.JsonL, compression, nil
	}

	first, err := firstNonWhitespaceByte(path, compression)
	if err != nil {
		return "", types.CompressionNone, err
	}
	if first == '[' {
		return types.JsonArray, compression, nil
	}
	return types.JsonL, compression, nil
}

func firstNonWhitespaceByte(path string, compression types.Compression) (byte, error) {
	rc, _, err := compressio.Open(path, compression)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	r := bufio.NewReader(rc)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, nil
		}
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b, nil
		}
	}
}
