// Package sortengine implements C7: pre-extracted typed sort keys, a
// stable sort, and streamed delivery of the sorted sequence.
//
// REDESIGN: the teacher's app/query/stages.go SortStage sorts with
// sort.Slice, which is not stable. spec.md's stability invariant ("the
// sub-sequence of records with the same sort key is in original order") is
// a testable property, so this implementation uses sort.SliceStable
// throughout — see SPEC_FULL.md's REDESIGN FLAGS.
package sortengine

import (
	"context"
	"sort"

	"github.com/ohler55/ojg/oj"

	"jsonlens/internal/apperr"
	"jsonlens/internal/recordstream"
	"jsonlens/internal/value"
	"jsonlens/types"
)

// SortFileLines reads the whole file via the streaming parser, materializes
// every record, sorts by sortColumn, and streams the sorted sequence in
// chunks of recordstream.ParseChunk.
func SortFileLines(ctx context.Context, path string, sortColumn types.SortColumn, ch *recordstream.Channel[types.Record]) (int64, error) {
	defer ch.Close()

	if err := validateDirection(sortColumn.Direction); err != nil {
		return 0, err
	}

	records := recordstream.NewChannel[types.Record]()
	var all []types.Record
	done := make(chan struct{})
	go func() {
		defer close(done)
		records.Drain(func(chunk []types.Record) { all = append(all, chunk...) })
	}()

	_, err := recordstream.ParseFileStreaming(ctx, path, records)
	<-done
	if err != nil {
		return 0, err
	}

	keys := make([]types.SortKey, len(all))
	for i, rec := range all {
		leaf, _ := value.GetFlat(rec.Parsed, sortColumn.Column)
		keys[i] = value.ToSortKey(leaf)
	}
	keys = normalizeKeys(keys)

	order := stableOrder(keys, sortColumn.Direction == types.Desc)

	sorted := make([]types.Record, len(all))
	for i, idx := range order {
		sorted[i] = all[idx]
	}

	emit(ctx, sorted, recordstream.ParseChunk, ch.Send)
	return int64(len(sorted)), nil
}

// SortSearchResults sorts an already-delivered SearchResult list, extracting
// keys from each result's Context re-parsed as JSON.
func SortSearchResults(ctx context.Context, results []types.SearchResult, sortColumn types.SortColumn, ch *recordstream.Channel[types.SearchResult]) (int64, error) {
	defer ch.Close()

	if err := validateDirection(sortColumn.Direction); err != nil {
		return 0, err
	}

	keys := make([]types.SortKey, len(results))
	for i, r := range results {
		parsed, err := oj.ParseString(r.Context)
		if err != nil {
			keys[i] = types.NullKey()
			continue
		}
		leaf, _ := value.GetFlat(parsed, sortColumn.Column)
		keys[i] = value.ToSortKey(leaf)
	}
	keys = normalizeKeys(keys)

	order := stableOrder(keys, sortColumn.Direction == types.Desc)

	sorted := make([]types.SearchResult, len(results))
	for i, idx := range order {
		sorted[i] = results[idx]
	}

	emit(ctx, sorted, searchResultChunk, ch.Send)
	return int64(len(sorted)), nil
}

// searchResultChunk mirrors internal/search.ResultChunk (SEARCH_CHUNK=100).
// Kept as a local constant rather than importing internal/search, which
// pulls in jp/oj search machinery sortengine has no other need for.
const searchResultChunk = 100

func validateDirection(d types.SortDirection) error {
	if d != types.Asc && d != types.Desc {
		return apperr.New(apperr.ArgumentError, "unknown sort direction %q", d)
	}
	return nil
}

// normalizeKeys applies spec.md §4.7 rule 1: if keys span more than one
// non-Null variant, re-coerce every non-Null key to Text.
func normalizeKeys(keys []types.SortKey) []types.SortKey {
	if value.Heterogeneous(keys) {
		return value.CoerceAllText(keys)
	}
	return keys
}

// stableOrder returns a permutation of [0, len(keys)) sorted by keys using
// value.CompareKeys, breaking ties by original index (stability).
func stableOrder(keys []types.SortKey, desc bool) []int {
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return value.CompareKeys(keys[order[i]], keys[order[j]], desc)
	})
	return order
}

func emit[T any](ctx context.Context, items []T, chunkSize int, send func([]T)) {
	for start := 0; start < len(items); start += chunkSize {
		if ctx.Err() != nil {
			return
		}
		end := start + chunkSize
		if end > len(items) {
			end = len(items)
		}
		send(items[start:end])
	}
}
