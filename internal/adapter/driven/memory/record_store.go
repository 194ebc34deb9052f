package memory

import (
	"maps"
	"sync"

	"github.com/diillson/payments-dashboard-go/internal/domain/entity"
	"github.com/diillson/payments-dashboard-go/internal/domain/repository"
	"github.com/diillson/payments-dashboard-go/internal/shared/types"
)

// RecordStoreImpl keeps the loaded dataset in memory. It is written once and read
// concurrently by the HTTP handlers.
type RecordStoreImpl struct {
	mu      sync.RWMutex
	dataset entity.Dataset
	loaded  bool
}

// NewRecordStore cria um Record Store vazio.
func NewRecordStore() repository.RecordStore {
	return &RecordStoreImpl{}
}

// Install stores a copy of ds. A second call fails with ErrDatasetAlreadyLoaded and
// leaves the first dataset in place.
func (s *RecordStoreImpl) Install(ds entity.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return types.ErrDatasetAlreadyLoaded
	}

	records := make([]entity.Record, len(ds.Records))
	for i, r := range ds.Records {
		r.Metrics = maps.Clone(r.Metrics)
		records[i] = r
	}
	s.dataset = entity.Dataset{Records: records}
	s.loaded = true
	return nil
}

// Dataset returns the installed dataset or ErrDatasetNotLoaded. The records are shared
// between readers and must not be modified.
func (s *RecordStoreImpl) Dataset() (entity.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return entity.Dataset{}, types.ErrDatasetNotLoaded
	}
	return s.dataset, nil
}

// Loaded reports whether a dataset has been installed.
func (s *RecordStoreImpl) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}
