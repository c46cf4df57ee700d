package observability

import (
	"context"
	"testing"
	"time"
)

type recordingCacheHooks struct {
	hits, misses, sets int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)      { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string)     { r.misses++ }
func (r *recordingCacheHooks) OnCacheSet(context.Context, string, int) { r.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()

	// Should not panic
	ctx := context.Background()
	Pipeline().OnConfigureStart(ctx, "six-state", 2)
	Pipeline().OnSolveComplete(ctx, 36, time.Second, nil)
	Cache().OnCacheHit(ctx, "tour")
	Solver().OnInvoke(ctx, "/usr/bin/solver", 36)
}

func TestSetCacheHooks(t *testing.T) {
	t.Cleanup(Reset)

	rec := &recordingCacheHooks{}
	SetCacheHooks(rec)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "tour")
	Cache().OnCacheMiss(ctx, "tour")
	Cache().OnCacheMiss(ctx, "tour")
	Cache().OnCacheSet(ctx, "tour", 128)

	if rec.hits != 1 || rec.misses != 2 || rec.sets != 1 {
		t.Errorf("hits=%d misses=%d sets=%d, want 1/2/1", rec.hits, rec.misses, rec.sets)
	}
}

func TestSetNilHooksIgnored(t *testing.T) {
	t.Cleanup(Reset)

	SetCacheHooks(nil)
	if Cache() == nil {
		t.Fatal("nil registration should keep previous hooks")
	}
}

func TestReset(t *testing.T) {
	SetCacheHooks(&recordingCacheHooks{})
	Reset()

	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore no-op cache hooks")
	}
}
