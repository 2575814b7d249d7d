package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/JaimeStill/promptlab/pkg/lifecycle"
)

func TestReadyAfterStartup(t *testing.T) {
	lc := lifecycle.New()
	if lc.Ready() {
		t.Error("should not be ready before WaitForStartup")
	}

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}
	lc.WaitForStartup()

	if got := count.Load(); got != 3 {
		t.Errorf("startup hooks: got %d, want 3", got)
	}
	if !lc.Ready() {
		t.Error("should be ready after WaitForStartup")
	}
}

func TestReadinessChecks(t *testing.T) {
	lc := lifecycle.New()

	var storeReady atomic.Bool
	lc.Check("store", lifecycle.ReadyFunc(storeReady.Load))
	lc.Check("cache", lifecycle.ReadyFunc(func() bool { return false }))
	lc.WaitForStartup()

	if lc.Ready() {
		t.Error("should not be ready while checks are pending")
	}
	pending := lc.Pending()
	if len(pending) != 2 || pending[0] != "cache" || pending[1] != "store" {
		t.Errorf("pending: got %v, want [cache store]", pending)
	}

	storeReady.Store(true)
	lc.Check("cache", lifecycle.ReadyFunc(func() bool { return true }))

	if !lc.Ready() {
		t.Errorf("should be ready, pending %v", lc.Pending())
	}
}

func TestShutdownHooksExecute(t *testing.T) {
	lc := lifecycle.New()

	var cleaned atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		cleaned.Store(true)
	})
	lc.WaitForStartup()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("shutdown failed: %v", err)
	}
	if !cleaned.Load() {
		t.Error("shutdown hook did not execute")
	}
	if lc.Ready() {
		t.Error("should not report ready after shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	lc := lifecycle.New()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
	})
	lc.WaitForStartup()

	if err := lc.Shutdown(50 * time.Millisecond); err == nil {
		t.Error("expected timeout error, got nil")
	}
}
