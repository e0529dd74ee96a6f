package docindex

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/corpuslab/vsmsearch/internal/errors"
	"github.com/corpuslab/vsmsearch/internal/textnorm"
)

// Service owns the currently-published snapshot and serializes rebuilds
// against it. Reads are lock-free: a caller acquires a handle with
// Current() and holds it for the life of its request, so an in-flight
// rebuild never mutates state a live query is looking at.
type Service struct {
	corpusDir string
	dataDir   string
	norm      *textnorm.Normalizer

	current atomic.Pointer[Snapshot]
	busy    atomic.Bool
}

// NewService constructs a Service for the given corpus/data directories.
// It does not load anything; call Load or Rebuild before serving
// queries.
func NewService(corpusDir, dataDir string, norm *textnorm.Normalizer) *Service {
	return &Service{corpusDir: corpusDir, dataDir: dataDir, norm: norm}
}

// Current returns the currently published snapshot, or nil if none has
// been loaded yet.
func (s *Service) Current() *Snapshot {
	return s.current.Load()
}

// Ready reports whether a snapshot is currently published.
func (s *Service) Ready() bool {
	return s.current.Load() != nil
}

// Load reads a previously persisted snapshot from the data directory
// and publishes it, without rebuilding from the corpus.
func (s *Service) Load() error {
	snap, err := Load(s.dataDir)
	if err != nil {
		return err
	}
	s.current.Store(snap)
	return nil
}

// Rebuild runs a full build from the corpus directory and atomically
// publishes the result, persisting it to a fresh directory and
// swapping it into place so a crash mid-write never corrupts the
// previously-good data directory. Concurrent calls beyond the first
// fail fast with errors.ErrBusy; the previously published snapshot, if
// any, remains intact on any failure.
func (s *Service) Rebuild(logger BuildLogger) error {
	if !s.busy.CompareAndSwap(false, true) {
		return errors.ErrBusy
	}
	defer s.busy.Store(false)

	snap, err := Build(s.corpusDir, s.norm, logger)
	if err != nil {
		return err
	}

	stagingDir := s.dataDir + ".rebuild-tmp"
	if err := os.RemoveAll(stagingDir); err != nil {
		return errors.NewInternalError("Rebuild", err)
	}
	if err := Save(stagingDir, snap); err != nil {
		return errors.NewInternalError("Rebuild", err)
	}

	if err := os.RemoveAll(s.dataDir); err != nil {
		return errors.NewInternalError("Rebuild", fmt.Errorf("clearing previous data dir: %w", err))
	}
	if err := os.Rename(stagingDir, s.dataDir); err != nil {
		return errors.NewInternalError("Rebuild", fmt.Errorf("publishing new data dir: %w", err))
	}

	s.current.Store(snap)
	return nil
}

// Busy reports whether a rebuild is currently in flight.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// DataPath joins the service's data directory with a relative name, a
// small convenience for callers that want to locate an artifact file
// directly (e.g. to print diagnostics).
func (s *Service) DataPath(name string) string {
	return filepath.Join(s.dataDir, name)
}
