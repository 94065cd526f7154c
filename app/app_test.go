package app

import (
	"context"
	"testing"
)

func TestNewAppHasUsableCache(t *testing.T) {
	a := NewApp()
	if a.cache == nil {
		t.Fatal("expected NewApp to initialize a cache")
	}
}

func TestCacheEntriesForScalesWithByteBudget(t *testing.T) {
	small := cacheEntriesFor(1024)
	large := cacheEntriesFor(100 * 1024 * 1024)
	if small != 1 {
		t.Fatalf("cacheEntriesFor(1024) = %d, want 1 (floored)", small)
	}
	if large <= small {
		t.Fatalf("cacheEntriesFor(100MiB) = %d, want more entries than cacheEntriesFor(1KiB) = %d", large, small)
	}
	if got := cacheEntriesFor(0); got != 1 {
		t.Fatalf("cacheEntriesFor(0) = %d, want 1 (floored, never zero)", got)
	}
}

func TestNewAppAssignsDistinctSessionIDs(t *testing.T) {
	a1 := NewApp()
	a2 := NewApp()
	if a1.SessionID() == "" {
		t.Fatal("expected a non-empty session id")
	}
	if a1.SessionID() == a2.SessionID() {
		t.Fatal("expected distinct session ids across App instances")
	}
}

func TestBeginInvocationIncrementsAndCancelsPrior(t *testing.T) {
	a := NewApp()
	ctx1, id1 := a.beginInvocation()
	ctx2, id2 := a.beginInvocation()

	if id2 != id1+1 {
		t.Fatalf("invocation ids = %d, %d; want strictly increasing by 1", id1, id2)
	}
	select {
	case <-ctx1.Done():
	default:
		t.Fatal("starting a second invocation should cancel the first's context")
	}
	select {
	case <-ctx2.Done():
		t.Fatal("the current invocation's context should not be cancelled yet")
	default:
	}
}

func TestCancelCurrentCancelsInFlightInvocation(t *testing.T) {
	a := NewApp()
	ctx, _ := a.beginInvocation()
	a.CancelCurrent()
	select {
	case <-ctx.Done():
	default:
		t.Fatal("CancelCurrent should cancel the in-flight invocation's context")
	}
}

func TestLogHelpersNoOpWithoutStartup(t *testing.T) {
	a := NewApp()
	// a.ctx is nil until Startup is called; logInfo/logError must not panic.
	a.logInfo("test %d", 1)
	a.logError("test %d", 2)
}

func TestCtxReflectsStartup(t *testing.T) {
	a := NewApp()
	if a.Ctx() != nil {
		t.Fatal("Ctx() should be nil before Startup")
	}
	ctx := context.Background()
	a.Startup(ctx)
	if a.Ctx() != ctx {
		t.Fatal("Ctx() should return the context passed to Startup")
	}
}
