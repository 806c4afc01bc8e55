package model

// SnapshotTrigger records what caused a health snapshot to be taken.
type SnapshotTrigger int

const (
	TriggerManual SnapshotTrigger = iota
	TriggerFullCharge
	TriggerTripStart
	TriggerTripEnd
)

// String returns a human-readable representation of the trigger.
func (t SnapshotTrigger) String() string {
	switch t {
	case TriggerFullCharge:
		return "full_charge"
	case TriggerTripStart:
		return "trip_start"
	case TriggerTripEnd:
		return "trip_end"
	case TriggerManual:
		return "manual"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t SnapshotTrigger) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values map to
// TriggerManual.
func (t *SnapshotTrigger) UnmarshalText(b []byte) error {
	switch string(b) {
	case "full_charge":
		*t = TriggerFullCharge
	case "trip_start":
		*t = TriggerTripStart
	case "trip_end":
		*t = TriggerTripEnd
	default:
		*t = TriggerManual
	}
	return nil
}

// VehicleHealthSnapshot is one append-only entry of a vehicle's health
// history. Histories are ordered by timestamp ascending and never mutated
// after creation.
type VehicleHealthSnapshot struct {
	VehicleID string          `json:"vehicle_id"`
	Trigger   SnapshotTrigger `json:"trigger"`
	VehicleState
}

// TrendDirection classifies the battery capacity trajectory.
type TrendDirection int

const (
	TrendInsufficientData TrendDirection = iota
	TrendStable
	TrendDegrading
	TrendImproving
)

// String returns a human-readable representation of the trend.
func (d TrendDirection) String() string {
	switch d {
	case TrendStable:
		return "stable"
	case TrendDegrading:
		return "degrading"
	case TrendImproving:
		return "improving"
	case TrendInsufficientData:
		return "insufficient_data"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d TrendDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// VehicleHealthTrend is the derived degradation summary for a snapshot
// history. It is recomputed on demand and never persisted.
type VehicleHealthTrend struct {
	CurrentCapacityKWh  float64        `json:"current_capacity_kwh"`
	BaselineCapacityKWh float64        `json:"baseline_capacity_kwh"`
	DegradationPercent  float64        `json:"degradation_percent"` // one decimal
	Trend               TrendDirection `json:"trend"`
	SampleCount         int            `json:"sample_count"`
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values map to
// TrendInsufficientData.
func (d *TrendDirection) UnmarshalText(b []byte) error {
	switch string(b) {
	case "stable":
		*d = TrendStable
	case "degrading":
		*d = TrendDegrading
	case "improving":
		*d = TrendImproving
	default:
		*d = TrendInsufficientData
	}
	return nil
}
