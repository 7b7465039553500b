package tracking

import (
	"context"
	"sync"

	"storefront_checkout/internal/domain/entities"
)

// MemoryTier is an in-process Tier. It backs tests and serves as the fallback
// when a tier's external backend is not configured.
type MemoryTier struct {
	mu      sync.RWMutex
	records map[string]entities.TrackingParameters
}

var _ Tier = (*MemoryTier)(nil)

func NewMemoryTier() *MemoryTier {
	return &MemoryTier{records: make(map[string]entities.TrackingParameters)}
}

func (m *MemoryTier) Get(_ context.Context, key string) (entities.TrackingParameters, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	params, ok := m.records[key]
	if !ok {
		return entities.TrackingParameters{}, false, nil
	}
	return params.Clone(), true, nil
}

func (m *MemoryTier) Put(_ context.Context, key string, params entities.TrackingParameters) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = params.Clone()
	return nil
}
