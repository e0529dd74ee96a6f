package docindex

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/corpuslab/vsmsearch/internal/errors"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	corpusDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(corpusDir, "a.txt"), []byte("cats and dogs"), 0o644); err != nil {
		t.Fatal(err)
	}
	dataDir := filepath.Join(t.TempDir(), "data")
	return NewService(corpusDir, dataDir, textnorm.NewDefaultNormalizer())
}

func TestServiceNotReadyBeforeLoad(t *testing.T) {
	svc := newTestService(t)
	if svc.Ready() {
		t.Error("expected service to not be ready before Rebuild/Load")
	}
}

func TestServiceRebuildPublishesSnapshot(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Rebuild(nil); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	if !svc.Ready() {
		t.Error("expected service to be ready after Rebuild")
	}
	if svc.Current().NumDocs() != 1 {
		t.Errorf("expected 1 doc, got %d", svc.Current().NumDocs())
	}
}

func TestServiceRebuildThenLoadRoundTrips(t *testing.T) {
	svc := newTestService(t)
	if err := svc.Rebuild(nil); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	fresh := NewService("", svc.dataDir, textnorm.NewDefaultNormalizer())
	if err := fresh.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if fresh.Current().NumDocs() != 1 {
		t.Errorf("expected 1 doc after Load, got %d", fresh.Current().NumDocs())
	}
}

func TestServiceConcurrentRebuildIsBusy(t *testing.T) {
	svc := newTestService(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.Rebuild(nil)
		}(i)
	}
	wg.Wait()

	busyCount := 0
	for _, err := range errs {
		if err == errors.ErrBusy {
			busyCount++
		}
	}
	if busyCount == 0 {
		t.Error("expected at least one concurrent Rebuild call to observe ErrBusy")
	}
}
