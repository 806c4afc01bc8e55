package model

import (
	"fmt"
	"time"
)

// ChargeState describes the charging session state reported by the vehicle.
type ChargeState int

const (
	ChargeDisconnected ChargeState = iota
	ChargeCharging
	ChargeComplete
	ChargeStopped
)

// String returns a human-readable representation of the charge state.
func (s ChargeState) String() string {
	switch s {
	case ChargeCharging:
		return "charging"
	case ChargeComplete:
		return "complete"
	case ChargeStopped:
		return "stopped"
	case ChargeDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// ParseChargeState maps the wire string back to a ChargeState. Unknown values
// map to ChargeDisconnected.
func ParseChargeState(s string) ChargeState {
	switch s {
	case "charging":
		return ChargeCharging
	case "complete":
		return ChargeComplete
	case "stopped":
		return ChargeStopped
	default:
		return ChargeDisconnected
	}
}

// MarshalText implements encoding.TextMarshaler so the enum serializes as its
// wire string in JSON payloads.
func (s ChargeState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ChargeState) UnmarshalText(b []byte) error {
	*s = ParseChargeState(string(b))
	return nil
}

// TirePressures holds the four corner pressures in psi.
type TirePressures struct {
	FrontLeft  float64 `json:"front_left"`
	FrontRight float64 `json:"front_right"`
	RearLeft   float64 `json:"rear_left"`
	RearRight  float64 `json:"rear_right"`
}

// VehicleState is an immutable snapshot of the vehicle "now": charge level,
// remaining range, tires, odometer and the nominal full-pack capacity used as
// a battery health proxy.
type VehicleState struct {
	BatteryPercent     float64       `json:"battery_percent"` // 0-100
	RangeMiles         float64       `json:"range_miles"`     // estimated range at current charge
	ChargeState        ChargeState   `json:"charge_state"`
	ChargeLimitPercent float64       `json:"charge_limit_percent"`
	Tires              TirePressures `json:"tires"`
	OdometerMiles      float64       `json:"odometer_miles"`
	SoftwareVersion    string        `json:"software_version"`
	CapacityKWh        float64       `json:"capacity_kwh"` // nominal full-pack energy, decreases with age
	Timestamp          time.Time     `json:"timestamp"`
}

// Validate checks that the state is structurally sound.
func (v VehicleState) Validate() error {
	if v.CapacityKWh <= 0 {
		return fmt.Errorf("pack capacity must be positive")
	}
	if v.BatteryPercent < 0 || v.BatteryPercent > 100 {
		return fmt.Errorf("battery percent %v out of range", v.BatteryPercent)
	}
	return nil
}
