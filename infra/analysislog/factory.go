package analysislog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewRecord builds a Record for the given analysis payload with a fresh id
// and the current UTC time.
func NewRecord(kind Kind, vehicleID string, analysis any) (Record, error) {
	b, err := json.Marshal(analysis)
	if err != nil {
		return Record{}, fmt.Errorf("marshal analysis: %w", err)
	}
	return Record{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		VehicleID: vehicleID,
		Kind:      kind,
		Analysis:  b,
	}, nil
}

// Open returns the store for the configured backend.
func Open(backend, path string, maxSizeMB, maxBackups, maxAgeDays int) (Store, error) {
	switch backend {
	case "jsonl":
		return NewJSONLStore(path, maxSizeMB, maxBackups, maxAgeDays)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown backend %s", backend)
	}
}
