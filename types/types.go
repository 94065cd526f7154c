// Package types holds the wire and domain types shared across jsonlens's
// internal packages and its command layer. Kept separate from those
// packages to avoid import cycles, the same way the teacher keeps
// shared shapes in their own interfaces package.
package types

import "strings"

// FileFormat is the detected shape of a source file.
type FileFormat string

const (
	JsonL     FileFormat = "JsonL"
	JsonArray FileFormat = "JsonArray"
)

// Compression is the detected transparent compression wrapping a file.
type Compression string

const (
	CompressionNone  Compression = "none"
	CompressionGzip  Compression = "gzip"
	CompressionBzip2 Compression = "bzip2"
	CompressionXz    Compression = "xz"
)

// Record is one logical unit of source data: a JSONL line or a JSON-Array
// element.
type Record struct {
	ID         int64  `json:"id"`
	Content    string `json:"content"`
	Parsed     any    `json:"parsed"`
	ByteOffset int64  `json:"byte_offset"`
}

// FileMetadata summarizes a parsed file.
type FileMetadata struct {
	Path       string     `json:"path"`
	TotalLines int64      `json:"total_lines"`
	FileSize   int64      `json:"file_size"`
	Format     FileFormat `json:"format"`
}

// SearchQuery describes a search request against a file.
type SearchQuery struct {
	Text          string `json:"text,omitempty"`
	JSONPath      string `json:"json_path,omitempty"`
	CaseSensitive bool   `json:"case_sensitive"`
	Regex         bool   `json:"regex"`
}

// SearchResult is one matched record.
type SearchResult struct {
	LineID  int64    `json:"line_id"`
	Matches []string `json:"matches"`
	Context string   `json:"context"`
}

// SearchStats summarizes a completed search.
type SearchStats struct {
	TotalMatches  int64 `json:"total_matches"`
	LinesSearched int64 `json:"lines_searched"`
}

// SortDirection is the direction of a sort.
type SortDirection string

const (
	Asc  SortDirection = "asc"
	Desc SortDirection = "desc"
)

// SortColumn identifies the flat path to sort by and the direction.
type SortColumn struct {
	Column    string        `json:"column"`
	Direction SortDirection `json:"direction"`
}

// ColumnInfo describes one inferred schema column.
type ColumnInfo struct {
	Path        string `json:"path"`
	IsSortable  bool   `json:"is_sortable"`
	DisplayName string `json:"display_name"`
}

// SortKeyKind tags the variant held by a SortKey.
type SortKeyKind int

const (
	KindNull SortKeyKind = iota
	KindNumber
	KindDate
	KindText
)

// SortKey is the tagged union used for ordering: Null | Number | Date | Text.
// Number holds a float64, Date holds epoch milliseconds, Text holds a string
// plus its lowercased collation form.
type SortKey struct {
	Kind   SortKeyKind
	Number float64
	DateMs int64
	Text   string
	// TextLower is the case-insensitive collation form of Text; original
	// Text is the tie-break per spec.md §4.1 rule 5.
	TextLower string
}

func NullKey() SortKey { return SortKey{Kind: KindNull} }

func NumberKey(v float64) SortKey { return SortKey{Kind: KindNumber, Number: v} }

func DateKey(ms int64) SortKey { return SortKey{Kind: KindDate, DateMs: ms} }

func TextKey(s string) SortKey {
	return SortKey{Kind: KindText, Text: s, TextLower: strings.ToLower(s)}
}
