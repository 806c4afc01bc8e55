// Package snapshot defines the health history collaborator consumed by the
// analytics engine and an in-memory implementation used by tests and the
// demo CLI.
package snapshot

import (
	"context"
	"sort"
	"sync"

	"github.com/voltpath/rangekit/core/model"
)

// Provider supplies time-ascending health histories keyed by vehicle id.
// Implementations own persistence; the engine only reads.
type Provider interface {
	// History returns the snapshots for the vehicle ordered by timestamp
	// ascending. An unknown vehicle yields an empty slice, not an error.
	History(ctx context.Context, vehicleID string) ([]model.VehicleHealthSnapshot, error)
	// Append records one snapshot. Histories are append-only.
	Append(ctx context.Context, snap model.VehicleHealthSnapshot) error
}

// MemoryStore is a Provider backed by an in-memory map.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]model.VehicleHealthSnapshot
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string][]model.VehicleHealthSnapshot{}}
}

// Append records the snapshot under its vehicle id.
func (s *MemoryStore) Append(_ context.Context, snap model.VehicleHealthSnapshot) error {
	s.mu.Lock()
	s.data[snap.VehicleID] = append(s.data[snap.VehicleID], snap)
	s.mu.Unlock()
	return nil
}

// History returns a sorted copy of the vehicle's snapshots so callers can
// never mutate the stored history.
func (s *MemoryStore) History(_ context.Context, vehicleID string) ([]model.VehicleHealthSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.data[vehicleID]
	res := make([]model.VehicleHealthSnapshot, len(src))
	copy(res, src)
	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp.Before(res[j].Timestamp) })
	return res, nil
}
