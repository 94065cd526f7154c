// Package header implements C8: the union of flat paths across a sample of
// records, for downstream export. Uses the same depth-bounded walk as C5
// (internal/schema), grounded on the teacher's alphabetical header behavior
// in app/fileloader/json_path.go's sortHeadersAndRemapRows.
package header

import (
	"context"
	"sort"

	"jsonlens/internal/recordstream"
	"jsonlens/internal/schema"
	"jsonlens/types"
)

// SampleSize is HEADER_SAMPLE from spec.md §6.
const SampleSize = 1000

// Collect parses path and returns the alphabetically sorted union of flat
// paths (depth ≤ 2) seen across the first SampleSize records.
func Collect(ctx context.Context, path string) ([]string, error) {
	ch := recordstream.NewChannel[types.Record]()
	parseCtx, cancelParse := context.WithCancel(ctx)
	defer cancelParse()

	var (
		seen          = map[string]struct{}{}
		scanned       int
		sampleReached bool
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		ch.Drain(func(chunk []types.Record) {
			for _, rec := range chunk {
				if scanned >= SampleSize {
					continue
				}
				scanned++
				schema.Flatten(rec.Parsed, schema.MaxDepth, func(p string, _ any) {
					seen[p] = struct{}{}
				})
			}
			if scanned >= SampleSize && !sampleReached {
				sampleReached = true
				cancelParse()
			}
		})
	}()

	_, err := recordstream.ParseFileStreaming(parseCtx, path, ch)
	<-done
	if err != nil && !sampleReached {
		return nil, err
	}

	out := make([]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

// Group groups consecutive paths (already alphabetically sorted) sharing a
// first underscore segment, the way downstream writers are expected to per
// spec.md §4.8. Exposed here since the grouping rule itself — unlike the
// byte-exact cell writing — is in scope.
func Group(paths []string) [][]string {
	groups := [][]string{}
	var current []string
	var currentKey string
	for _, p := range paths {
		key := firstSegment(p)
		if current != nil && key == currentKey {
			current = append(current, p)
			continue
		}
		if current != nil {
			groups = append(groups, current)
		}
		current = []string{p}
		currentKey = key
	}
	if current != nil {
		groups = append(groups, current)
	}
	return groups
}

func firstSegment(path string) string {
	for i, c := range path {
		if c == '_' {
			return path[:i]
		}
	}
	return path
}
