// Package search implements C6: a streaming text/JSONPath scan over a file.
// JSONPath evaluation is grounded on the teacher's
// app/fileloader/json_path.go use of github.com/ohler55/ojg/jp; the
// streaming/cancellation shape follows app/app_search.go's searchState, here
// generalized from literal cell matching to JSONPath-aware matching.
package search

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"jsonlens/internal/apperr"
	"jsonlens/internal/recordstream"
	"jsonlens/types"
)

// ResultChunk is SEARCH_CHUNK from spec.md §6.
const ResultChunk = 100

// SearchInFile streams matching SearchResult chunks to ch and returns the
// final SearchStats.
func SearchInFile(ctx context.Context, path string, query types.SearchQuery, ch *recordstream.Channel[types.SearchResult]) (types.SearchStats, error) {
	defer ch.Close()

	var expr jp.Expr
	if query.JSONPath != "" {
		x, err := jp.ParseString(query.JSONPath)
		if err != nil {
			return types.SearchStats{}, apperr.Wrap(apperr.QueryError, err, "invalid JSONPath %q", query.JSONPath)
		}
		expr = x
	}

	noOp := query.Text == "" && query.JSONPath == ""

	records := recordstream.NewChannel[types.Record]()
	var (
		totalMatches  int64
		linesSearched int64
		chunk         = make([]types.SearchResult, 0, ResultChunk)
	)
	flush := func() {
		if len(chunk) == 0 {
			return
		}
		ch.Send(chunk)
		chunk = make([]types.SearchResult, 0, ResultChunk)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		records.Drain(func(recs []types.Record) {
			for _, rec := range recs {
				if ctx.Err() != nil {
					return
				}
				linesSearched++
				if noOp {
					continue
				}
				if result, ok := evaluate(rec, query, expr); ok {
					totalMatches++
					chunk = append(chunk, result)
					if len(chunk) >= ResultChunk {
						flush()
					}
				}
			}
		})
	}()

	_, err := recordstream.ParseFileStreaming(ctx, path, records)
	<-done
	flush()
	if err != nil {
		return types.SearchStats{}, err
	}

	return types.SearchStats{TotalMatches: totalMatches, LinesSearched: linesSearched}, nil
}

func evaluate(rec types.Record, query types.SearchQuery, expr jp.Expr) (types.SearchResult, bool) {
	switch {
	case query.Text != "" && query.JSONPath == "":
		return textOnly(rec, query)
	case query.Text == "" && query.JSONPath != "":
		return pathOnly(rec, expr)
	default:
		return combined(rec, query, expr)
	}
}

func textOnly(rec types.Record, query types.SearchQuery) (types.SearchResult, bool) {
	haystack, needle := rec.Content, query.Text
	if !query.CaseSensitive {
		haystack = strings.ToLower(haystack)
		needle = strings.ToLower(needle)
	}
	if !strings.Contains(haystack, needle) {
		return types.SearchResult{}, false
	}
	return types.SearchResult{LineID: rec.ID, Matches: []string{query.Text}, Context: rec.Content}, true
}

func pathOnly(rec types.Record, expr jp.Expr) (types.SearchResult, bool) {
	results := expr.Get(rec.Parsed)
	if len(results) == 0 {
		return types.SearchResult{}, false
	}
	matches := make([]string, 0, len(results))
	for _, r := range results {
		matches = append(matches, stringify(r))
	}
	return types.SearchResult{LineID: rec.ID, Matches: matches, Context: rec.Content}, true
}

func combined(rec types.Record, query types.SearchQuery, expr jp.Expr) (types.SearchResult, bool) {
	results := expr.Get(rec.Parsed)
	if len(results) == 0 {
		return types.SearchResult{}, false
	}
	needle := query.Text
	if !query.CaseSensitive {
		needle = strings.ToLower(needle)
	}
	var matches []string
	for _, r := range results {
		projection := stringify(r)
		haystack := projection
		if !query.CaseSensitive {
			haystack = strings.ToLower(haystack)
		}
		if strings.Contains(haystack, needle) {
			matches = append(matches, projection)
		}
	}
	if len(matches) == 0 {
		return types.SearchResult{}, false
	}
	return types.SearchResult{LineID: rec.ID, Matches: matches, Context: rec.Content}, true
}

// stringify coerces a JSONPath hit to its canonical string form: primitives
// render directly, containers serialize as compact JSON.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	case map[string]any, []any:
		if b, err := oj.Marshal(t); err == nil {
			return string(b)
		}
		b, _ := json.Marshal(t)
		return string(b)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
