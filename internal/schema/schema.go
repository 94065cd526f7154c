// Package schema implements C5: flattening sampled records into an ordered,
// prioritized, bounded column list with per-column sortability. The
// recursive depth-bounded walk follows the same shape as the teacher's
// app/fileloader/json_path.go flatten helpers; the priority-key ordering
// rule itself is original to spec.md §4.5 (the teacher has no equivalent
// priority list).
package schema

import (
	"sort"
	"strings"

	"jsonlens/internal/value"
	"jsonlens/types"
)

const (
	SampleSize = 50
	MaxDepth   = 2
	MaxColumns = 100
)

var priority = []string{"id", "timestamp", "time", "date", "level", "severity", "message", "msg", "name", "type", "status", "user", "meta"}

var priorityIndex = func() map[string]int {
	m := make(map[string]int, len(priority))
	for i, k := range priority {
		m[k] = i
	}
	return m
}()

type column struct {
	path      string
	count     int
	allScalar bool
}

// Flatten walks v (expected to be a JSON object) to depth maxDepth, calling
// visit(flatPath, leafValue) for every scalar/array/null leaf or every key
// reached at the max depth. Arrays are never descended into.
func Flatten(v any, maxDepth int, visit func(path string, leaf any)) {
	obj, ok := v.(map[string]any)
	if !ok {
		return
	}
	flattenObject(obj, nil, 0, maxDepth, visit)
}

func flattenObject(obj map[string]any, ancestors []string, depth, maxDepth int, visit func(string, any)) {
	for k, v := range obj {
		path := append(append([]string{}, ancestors...), k)
		flatPath := strings.Join(path, "_")

		if depth >= maxDepth {
			visit(flatPath, v)
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			flattenObject(nested, path, depth+1, maxDepth, visit)
			continue
		}
		visit(flatPath, v)
	}
}

// Infer implements the full C5 algorithm over records (already-parsed JSON
// values), sampling up to SampleSize of them.
func Infer(records []any) []types.ColumnInfo {
	sampled := records
	if len(sampled) > SampleSize {
		sampled = sampled[:SampleSize]
	}

	cols := map[string]*column{}
	order := []string{}

	for _, rec := range sampled {
		Flatten(rec, MaxDepth, func(path string, leaf any) {
			c, ok := cols[path]
			if !ok {
				c = &column{path: path, allScalar: true}
				cols[path] = c
				order = append(order, path)
			}
			c.count++
			if value.SmartFormat(leaf).IsComplex {
				c.allScalar = false
			}
		})
	}

	sort.SliceStable(order, func(i, j int) bool {
		return lessPath(cols[order[i]], cols[order[j]])
	})

	if len(order) > MaxColumns {
		order = order[:MaxColumns]
	}

	out := make([]types.ColumnInfo, 0, len(order))
	for _, path := range order {
		c := cols[path]
		out = append(out, types.ColumnInfo{
			Path:        path,
			IsSortable:  c.allScalar,
			DisplayName: displayName(path),
		})
	}
	return out
}

func firstSegment(path string) string {
	if i := strings.IndexByte(path, '_'); i >= 0 {
		return path[:i]
	}
	return path
}

func lessPath(a, b *column) bool {
	ai, aok := priorityIndex[firstSegment(a.path)]
	bi, bok := priorityIndex[firstSegment(b.path)]

	switch {
	case aok && bok:
		if ai != bi {
			return ai < bi
		}
		return a.path < b.path
	case aok:
		return true
	case bok:
		return false
	default:
		if a.count != b.count {
			return a.count > b.count
		}
		return a.path < b.path
	}
}

func displayName(path string) string {
	segments := strings.Split(path, "_")
	if len(segments) >= 2 {
		return strings.Join(segments[1:], "_")
	}
	return path
}
