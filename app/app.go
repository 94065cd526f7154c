// Package app is the command layer: a Wails-bound App struct exposing the
// five external interfaces from spec.md §6, plus invocation tagging,
// cancellation, and logging. Shaped after the teacher's app/app.go (struct
// fields, NewApp, Startup) and app/app_search.go's per-invocation
// cancellation idiom, generalized from per-tab to the single-session model
// spec.md §5 requires.
package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"jsonlens/internal/cache"
	"jsonlens/internal/config"
)

// App is the Wails-bound backend. Bind an *App to wails.Run's
// options.App.Bind to expose ParseFileStreaming, SearchInFile,
// SortFileLines, SortSearchResults, and CollectHeaders to the frontend.
type App struct {
	ctx context.Context

	// sessionID correlates every log line with one process lifetime
	// (emitted chunk events carry only the invocation id) (spec.md §5's Session: one open file at a time).
	sessionID string

	mu         sync.Mutex
	nextInvoke int64
	cancelFn   context.CancelFunc

	cache *cache.Cache
}

// estimatedEntryBytes approximates the footprint of one cache.entry: up to
// SCHEMA_MAX_COLUMNS (100) ColumnInfo values plus up to HEADER_SAMPLE (1000)
// header strings, each a short path string with map/slice overhead. Used
// only to translate the user-tunable cache_max_bytes setting into an entry
// count; it is deliberately generous rather than exact.
const estimatedEntryBytes = 64 * 1024

// cacheEntriesFor derives an LRU entry count from a configured byte budget,
// so cache_max_bytes actually governs the cache's size instead of being
// read only as a boolean "caching on/off" switch.
func cacheEntriesFor(maxBytes int64) int {
	entries := int(maxBytes / estimatedEntryBytes)
	if entries < 1 {
		entries = 1
	}
	return entries
}

func NewApp() *App {
	settings := config.Effective()
	return &App{cache: cache.New(cacheEntriesFor(settings.CacheMaxBytes)), sessionID: uuid.NewString()}
}

// SessionID identifies this App's process lifetime, for log correlation.
func (a *App) SessionID() string {
	return a.sessionID
}

// Startup is called by Wails once the runtime context is ready.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
}

// Ctx returns the Wails runtime context, for use by main's menu callbacks
// that need to emit events directly (e.g. "open file" menu clicks, which
// aren't one of the five bound command methods).
func (a *App) Ctx() context.Context {
	return a.ctx
}

// beginInvocation cancels any in-flight command (single file-open session
// at a time, per spec.md §5), tags the new one with a monotonically
// increasing id, and returns a context the new command should observe for
// cancellation plus that id.
func (a *App) beginInvocation() (context.Context, int64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancelFn != nil {
		a.cancelFn()
	}
	base := a.ctx
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithCancel(base)
	a.cancelFn = cancel
	a.nextInvoke++
	return ctx, a.nextInvoke
}

// CancelCurrent cancels whatever command is in flight. Exposed to the
// frontend so a restarted command (e.g. the user edits a search box) can
// explicitly discard the previous one rather than waiting for
// beginInvocation's implicit supersede-on-next-call behavior.
func (a *App) CancelCurrent() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancelFn != nil {
		a.cancelFn()
	}
}

// logInfo/logError mirror the teacher's ad hoc leveled logging callback; no
// structured-logging library appears anywhere in the retrieved pack, so
// this stays a simple call into Wails' own logger, which
// forwards to the frontend as a log event.
func (a *App) logInfo(format string, args ...any) {
	if a.ctx == nil {
		return
	}
	wailsruntime.LogInfof(a.ctx, "[%s] "+format, append([]any{a.sessionID}, args...)...)
}

func (a *App) logError(format string, args ...any) {
	if a.ctx == nil {
		return
	}
	wailsruntime.LogErrorf(a.ctx, "[%s] "+format, append([]any{a.sessionID}, args...)...)
}
