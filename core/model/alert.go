package model

import "time"

// AlertType identifies the subsystem an alert concerns.
type AlertType int

const (
	AlertTirePressure AlertType = iota
	AlertBattery
	AlertSoftware
	AlertServiceDue
	AlertRecall
)

// String returns a human-readable representation of the alert type.
func (t AlertType) String() string {
	switch t {
	case AlertTirePressure:
		return "tire_pressure"
	case AlertBattery:
		return "battery"
	case AlertSoftware:
		return "software"
	case AlertServiceDue:
		return "service_due"
	case AlertRecall:
		return "recall"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t AlertType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// AlertSeverity grades how urgent an alert is.
type AlertSeverity int

const (
	SeverityInfo AlertSeverity = iota
	SeverityWarning
	SeverityCritical
)

// String returns a human-readable representation of the severity.
func (s AlertSeverity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s AlertSeverity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// VehicleServiceAlert is a derived maintenance or safety notice. Alerts are
// regenerated on every call and never persisted; identical input yields the
// same IDs in the same order.
type VehicleServiceAlert struct {
	ID          string        `json:"id"`
	Type        AlertType     `json:"type"`
	Severity    AlertSeverity `json:"severity"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Timestamp   time.Time     `json:"timestamp"`
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values map to
// AlertRecall.
func (t *AlertType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "tire_pressure":
		*t = AlertTirePressure
	case "battery":
		*t = AlertBattery
	case "software":
		*t = AlertSoftware
	case "service_due":
		*t = AlertServiceDue
	default:
		*t = AlertRecall
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values map to
// SeverityInfo.
func (s *AlertSeverity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "warning":
		*s = SeverityWarning
	case "critical":
		*s = SeverityCritical
	default:
		*s = SeverityInfo
	}
	return nil
}
