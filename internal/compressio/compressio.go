// Package compressio provides transparent decompression ahead of C2/C3/C8,
// grounded on the teacher's app/fileloader/compression.go: magic-byte
// sniffing plus a streaming reader per compression kind.
package compressio

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"jsonlens/types"
)

var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// DetectByMagic reads the first bytes of f and identifies any of the
// supported compression envelopes.
func DetectByMagic(f *os.File) (types.Compression, error) {
	header := make([]byte, 6)
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return types.CompressionNone, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return types.CompressionNone, err
	}
	switch {
	case n >= 2 && bytes.HasPrefix(header, gzipMagic):
		return types.CompressionGzip, nil
	case n >= 3 && bytes.HasPrefix(header, bzip2Magic):
		return types.CompressionBzip2, nil
	case n >= 6 && bytes.HasPrefix(header, xzMagic):
		return types.CompressionXz, nil
	default:
		return types.CompressionNone, nil
	}
}

// Open returns a ReadCloser over path that transparently decompresses it
// according to compression, and the underlying file size (compressed size
// on disk, not the inflated size — the same on-disk size that
// FileMetadata.FileSize reports, as the teacher does).
func Open(path string, compression types.Compression) (io.ReadCloser, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, err
	}
	size := info.Size()

	switch compression {
	case types.CompressionNone:
		return f, size, nil
	case types.CompressionGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("gzip: %w", err)
		}
		return &wrapped{reader: gz, file: f}, size, nil
	case types.CompressionBzip2:
		return &wrapped{reader: bzip2.NewReader(f), file: f}, size, nil
	case types.CompressionXz:
		xr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, 0, fmt.Errorf("xz: %w", err)
		}
		return &wrapped{reader: xr, file: f}, size, nil
	default:
		f.Close()
		return nil, 0, fmt.Errorf("unsupported compression: %v", compression)
	}
}

type wrapped struct {
	reader io.Reader
	file   *os.File
}

func (w *wrapped) Read(p []byte) (int, error) { return w.reader.Read(p) }

func (w *wrapped) Close() error {
	if c, ok := w.reader.(io.Closer); ok {
		c.Close()
	}
	return w.file.Close()
}
