// Package alerts derives maintenance and safety notices from a single
// vehicle state snapshot.
package alerts

import (
	"fmt"
	"math"
	"strings"

	"github.com/voltpath/rangekit/core/model"
)

// batteryHealthFloor is the health percentage below which a battery warning
// is raised.
const batteryHealthFloor = 85.0

// serviceDueFraction of the interval after which the upcoming service is
// surfaced.
const serviceDueFraction = 0.88

// Generator grades a VehicleState against a Spec. The zero value with a
// defaulted Spec is usable.
type Generator struct {
	Spec Spec
}

// NewGenerator returns a Generator for the given spec constants.
func NewGenerator(spec Spec) Generator {
	spec.SetDefaults()
	return Generator{Spec: spec}
}

type tire struct {
	id     string
	label  string
	target float64
	actual float64
}

// Generate returns the alerts for the state, possibly empty. Output order is
// fixed (tires FL/FR/RL/RR, battery, software, service) and alert IDs are
// deterministic, so identical input yields identical output. Alerts carry the
// state's timestamp, never wall-clock time.
func (g Generator) Generate(state model.VehicleState) []model.VehicleServiceAlert {
	var out []model.VehicleServiceAlert

	tires := []tire{
		{"tire-front-left", "front left", g.Spec.FrontTirePSI, state.Tires.FrontLeft},
		{"tire-front-right", "front right", g.Spec.FrontTirePSI, state.Tires.FrontRight},
		{"tire-rear-left", "rear left", g.Spec.RearTirePSI, state.Tires.RearLeft},
		{"tire-rear-right", "rear right", g.Spec.RearTirePSI, state.Tires.RearRight},
	}
	for _, t := range tires {
		if a, ok := g.tireAlert(t, state); ok {
			out = append(out, a)
		}
	}

	if a, ok := g.batteryAlert(state); ok {
		out = append(out, a)
	}
	if a, ok := g.softwareAlert(state); ok {
		out = append(out, a)
	}
	if a, ok := g.serviceAlert(state); ok {
		out = append(out, a)
	}
	return out
}

func (g Generator) tireAlert(t tire, state model.VehicleState) (model.VehicleServiceAlert, bool) {
	diff := math.Abs(t.actual - t.target)
	if diff <= 1 {
		return model.VehicleServiceAlert{}, false
	}
	severity := model.SeverityWarning
	if diff > g.Spec.TireTolerancePSI {
		severity = model.SeverityCritical
	}
	direction := "above"
	if t.actual < t.target {
		direction = "below"
	}
	return model.VehicleServiceAlert{
		ID:       t.id,
		Type:     model.AlertTirePressure,
		Severity: severity,
		Title:    fmt.Sprintf("%s tire pressure", capitalize(t.label)),
		Description: fmt.Sprintf("%s tire is %.1f psi, %.1f psi %s the %.1f psi spec",
			capitalize(t.label), t.actual, diff, direction, t.target),
		Timestamp: state.Timestamp,
	}, true
}

func (g Generator) batteryAlert(state model.VehicleState) (model.VehicleServiceAlert, bool) {
	if g.Spec.DesignCapacityKWh <= 0 {
		return model.VehicleServiceAlert{}, false
	}
	health := state.CapacityKWh / g.Spec.DesignCapacityKWh * 100
	if health >= batteryHealthFloor {
		return model.VehicleServiceAlert{}, false
	}
	return model.VehicleServiceAlert{
		ID:       "battery-health",
		Type:     model.AlertBattery,
		Severity: model.SeverityWarning,
		Title:    "Battery health reduced",
		Description: fmt.Sprintf("Pack holds %.1f%% of its design capacity (%.1f of %.1f kWh)",
			health, state.CapacityKWh, g.Spec.DesignCapacityKWh),
		Timestamp: state.Timestamp,
	}, true
}

func (g Generator) softwareAlert(state model.VehicleState) (model.VehicleServiceAlert, bool) {
	latest := g.Spec.LatestSoftwareVersion
	if latest == "" || state.SoftwareVersion == latest {
		return model.VehicleServiceAlert{}, false
	}
	return model.VehicleServiceAlert{
		ID:       "software-update",
		Type:     model.AlertSoftware,
		Severity: model.SeverityInfo,
		Title:    "Software update available",
		Description: fmt.Sprintf("Version %s is available, vehicle runs %s",
			latest, state.SoftwareVersion),
		Timestamp: state.Timestamp,
	}, true
}

func (g Generator) serviceAlert(state model.VehicleState) (model.VehicleServiceAlert, bool) {
	interval := g.Spec.ServiceIntervalMiles
	if interval <= 0 {
		return model.VehicleServiceAlert{}, false
	}
	sinceService := math.Mod(state.OdometerMiles, interval)
	if sinceService <= serviceDueFraction*interval {
		return model.VehicleServiceAlert{}, false
	}
	remaining := interval - sinceService
	return model.VehicleServiceAlert{
		ID:          "service-due",
		Type:        model.AlertServiceDue,
		Severity:    model.SeverityInfo,
		Title:       "Service due soon",
		Description: fmt.Sprintf("Next scheduled service in %.0f miles", remaining),
		Timestamp:   state.Timestamp,
	}, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
