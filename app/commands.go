package app

import (
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"jsonlens/internal/apperr"
	"jsonlens/internal/hashutil"
	"jsonlens/internal/header"
	"jsonlens/internal/recordstream"
	"jsonlens/internal/schema"
	"jsonlens/internal/search"
	"jsonlens/internal/sortengine"
	"jsonlens/types"
)

// Event names emitted over the Wails runtime. Each payload is wrapped with
// the invocation id that produced it so a stale invocation's chunks can be
// dropped client-side per spec.md §5's ordering guarantee.
const (
	eventParseChunk  = "jsonlens:parse:chunk"
	eventSearchChunk = "jsonlens:search:chunk"
	eventSortChunk   = "jsonlens:sort:chunk"
)

// taggedChunk is the wire envelope for a streamed chunk.
type taggedChunk[T any] struct {
	InvocationID int64 `json:"invocation_id"`
	Items        []T   `json:"items"`
}

func (a *App) emit(event string, payload any) {
	if a.ctx == nil {
		return
	}
	wailsruntime.EventsEmit(a.ctx, event, payload)
}

// ParseFileStreaming implements external interface 1.
func (a *App) ParseFileStreaming(path string) (types.FileMetadata, error) {
	ctx, invokeID := a.beginInvocation()
	ch := recordstream.NewChannel[types.Record]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ch.Drain(func(chunk []types.Record) {
			a.emit(eventParseChunk, taggedChunk[types.Record]{InvocationID: invokeID, Items: chunk})
		})
	}()

	meta, err := recordstream.ParseFileStreaming(ctx, path, ch)
	<-done
	if err != nil {
		a.logError("parse %s: %v", path, err)
		return types.FileMetadata{}, err
	}
	return meta, nil
}

// SearchInFile implements external interface 2. fileFormat is accepted for
// wire compatibility with the UI (which already knows the format from an
// earlier ParseFileStreaming call) and validated; the engine itself
// re-detects the format cheaply rather than trusting a stale caller value.
func (a *App) SearchInFile(path string, query types.SearchQuery, fileFormat types.FileFormat) (types.SearchStats, error) {
	if fileFormat != types.JsonL && fileFormat != types.JsonArray {
		return types.SearchStats{}, apperr.New(apperr.ArgumentError, "unknown file_format %q", fileFormat)
	}

	ctx, invokeID := a.beginInvocation()
	ch := recordstream.NewChannel[types.SearchResult]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ch.Drain(func(chunk []types.SearchResult) {
			a.emit(eventSearchChunk, taggedChunk[types.SearchResult]{InvocationID: invokeID, Items: chunk})
		})
	}()

	stats, err := search.SearchInFile(ctx, path, query, ch)
	<-done
	if err != nil {
		a.logError("search %s: %v", path, err)
		return types.SearchStats{}, err
	}
	return stats, nil
}

// SortFileLines implements external interface 3.
func (a *App) SortFileLines(path string, sortColumn types.SortColumn, fileFormat types.FileFormat) (int64, error) {
	if fileFormat != types.JsonL && fileFormat != types.JsonArray {
		return 0, apperr.New(apperr.ArgumentError, "unknown file_format %q", fileFormat)
	}

	ctx, invokeID := a.beginInvocation()
	ch := recordstream.NewChannel[types.Record]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ch.Drain(func(chunk []types.Record) {
			a.emit(eventSortChunk, taggedChunk[types.Record]{InvocationID: invokeID, Items: chunk})
		})
	}()

	count, err := sortengine.SortFileLines(ctx, path, sortColumn, ch)
	<-done
	if err != nil {
		a.logError("sort %s: %v", path, err)
		return 0, err
	}
	return count, nil
}

// SortSearchResults implements external interface 4.
func (a *App) SortSearchResults(results []types.SearchResult, sortColumn types.SortColumn) (int64, error) {
	ctx, invokeID := a.beginInvocation()
	ch := recordstream.NewChannel[types.SearchResult]()

	done := make(chan struct{})
	go func() {
		defer close(done)
		ch.Drain(func(chunk []types.SearchResult) {
			a.emit(eventSortChunk, taggedChunk[types.SearchResult]{InvocationID: invokeID, Items: chunk})
		})
	}()

	count, err := sortengine.SortSearchResults(ctx, results, sortColumn, ch)
	<-done
	if err != nil {
		a.logError("sort results: %v", err)
		return 0, err
	}
	return count, nil
}

// CollectHeaders implements external interface 5, backing the delegated
// exporter. Caches its result per file content hash so repeated export
// attempts against the same file don't re-walk HEADER_SAMPLE records.
func (a *App) CollectHeaders(path string) ([]string, error) {
	if path == "" {
		return nil, apperr.New(apperr.ArgumentError, "path must not be empty")
	}

	if fileHash, err := hashutil.FileHash(path); err == nil {
		if cached, ok := a.cache.GetHeaders(fileHash); ok {
			return cached, nil
		}
		ctx, _ := a.beginInvocation()
		paths, err := header.Collect(ctx, path)
		if err != nil {
			a.logError("collect headers %s: %v", path, err)
			return nil, err
		}
		a.cache.StoreHeaders(fileHash, paths)
		return paths, nil
	}

	ctx, _ := a.beginInvocation()
	paths, err := header.Collect(ctx, path)
	if err != nil {
		a.logError("collect headers %s: %v", path, err)
		return nil, err
	}
	return paths, nil
}

// InferSchema is not one of the five external interfaces (spec.md says C5
// is invoked by the UI consumer over chunks it already received from
// ParseFileStreaming), but is exposed here for the cases where the
// consumer wants the engine to do the sampling itself against a freshly
// materialized set of parsed values, with the same per-file-hash cache
// CollectHeaders uses.
func (a *App) InferSchema(path string, sample []any) ([]types.ColumnInfo, error) {
	if fileHash, err := hashutil.FileHash(path); err == nil {
		if cached, ok := a.cache.GetColumns(fileHash); ok {
			return cached, nil
		}
		cols := schema.Infer(sample)
		a.cache.StoreColumns(fileHash, cols)
		return cols, nil
	}
	return schema.Infer(sample), nil
}
