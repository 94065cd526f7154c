// Package hashutil derives cache keys from file content. Grounded on the
// teacher's CalculateFileHash/CalculateFileHashWithKey in app/app.go: a
// fixed 32-byte key so the same file always hashes the same way regardless
// of process or session state.
package hashutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/minio/highwayhash"
)

// fileHashKey is a fixed 32-byte HighwayHash key. It does not need to be
// secret — it only needs to be stable across runs so cache keys are
// reproducible.
var fileHashKey = []byte("jsonlens cache hash key\x00\x00\x00\x00\x00\x00\x00\x00\x00")

// FileHash returns a hex-encoded HighwayHash of path's content.
func FileHash(path string) (string, error) {
	if len(fileHashKey) != 32 {
		return "", fmt.Errorf("hash key must be exactly 32 bytes, got %d", len(fileHashKey))
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := highwayhash.New(fileHashKey)
	if err != nil {
		return "", fmt.Errorf("creating hash: %w", err)
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
