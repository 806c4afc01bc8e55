// Package analysislog persists computed analyses for audit and debugging.
// Records are append-only; the engine itself never reads them back.
package analysislog

import (
	"context"
	"encoding/json"
	"time"
)

// Kind tags which analysis produced a record.
type Kind string

const (
	KindTrip        Kind = "trip"
	KindDegradation Kind = "degradation"
	KindAlerts      Kind = "alerts"
	KindRange       Kind = "range"
)

// Record captures one computed analysis.
type Record struct {
	ID        string          `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	VehicleID string          `json:"vehicle_id,omitempty"`
	Kind      Kind            `json:"kind"`
	Analysis  json.RawMessage `json:"analysis"`
}

// Query defines filters for retrieving records.
type Query struct {
	Start     time.Time
	End       time.Time
	VehicleID string
	Kind      Kind
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// matches reports whether rec passes every filter of q.
func matches(rec Record, q Query) bool {
	if !q.Start.IsZero() && rec.Timestamp.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && rec.Timestamp.After(q.End) {
		return false
	}
	if q.VehicleID != "" && rec.VehicleID != q.VehicleID {
		return false
	}
	if q.Kind != "" && rec.Kind != q.Kind {
		return false
	}
	return true
}
