package alerts

import (
	"reflect"
	"testing"
	"time"

	"github.com/voltpath/rangekit/core/model"
)

func healthyState() model.VehicleState {
	return model.VehicleState{
		BatteryPercent:     80,
		RangeMiles:         250,
		ChargeState:        model.ChargeDisconnected,
		ChargeLimitPercent: 90,
		Tires:              model.TirePressures{FrontLeft: 42, FrontRight: 42, RearLeft: 42, RearRight: 42},
		OdometerMiles:      5000,
		SoftwareVersion:    "2026.8.3",
		CapacityKWh:        74,
		Timestamp:          time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_NoAlertsWhenHealthy(t *testing.T) {
	g := NewGenerator(Spec{})
	if got := g.Generate(healthyState()); len(got) != 0 {
		t.Fatalf("expected no alerts, got %d: %+v", len(got), got)
	}
}

func TestGenerate_TireCriticalBeyondTolerance(t *testing.T) {
	g := NewGenerator(Spec{TireTolerancePSI: 4})
	state := healthyState()
	state.Tires.FrontLeft = 47 // target+5 with tolerance 4

	got := g.Generate(state)
	if len(got) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(got))
	}
	a := got[0]
	if a.Type != model.AlertTirePressure || a.Severity != model.SeverityCritical {
		t.Errorf("expected critical tire alert, got %s/%s", a.Type, a.Severity)
	}
	if a.ID != "tire-front-left" {
		t.Errorf("alert should name the front left tire, got id %q", a.ID)
	}
}

func TestGenerate_TireWithinDeadBand(t *testing.T) {
	g := NewGenerator(Spec{})
	state := healthyState()
	state.Tires.RearRight = 41.2 // within 1 psi of target

	if got := g.Generate(state); len(got) != 0 {
		t.Fatalf("tire within 1 psi of target must not alert, got %+v", got)
	}
}

func TestGenerate_TireWarningInsideTolerance(t *testing.T) {
	g := NewGenerator(Spec{TireTolerancePSI: 4})
	state := healthyState()
	state.Tires.RearLeft = 39 // 3 psi below target

	got := g.Generate(state)
	if len(got) != 1 || got[0].Severity != model.SeverityWarning {
		t.Fatalf("expected one warning alert, got %+v", got)
	}
	if got[0].ID != "tire-rear-left" {
		t.Errorf("alert should name the rear left tire, got %q", got[0].ID)
	}
}

func TestGenerate_BatteryHealthWarning(t *testing.T) {
	g := NewGenerator(Spec{DesignCapacityKWh: 75})
	state := healthyState()
	state.CapacityKWh = 60 // 80% of design

	got := g.Generate(state)
	if len(got) != 1 {
		t.Fatalf("expected one alert, got %d", len(got))
	}
	if got[0].Type != model.AlertBattery || got[0].Severity != model.SeverityWarning {
		t.Errorf("expected battery warning, got %s/%s", got[0].Type, got[0].Severity)
	}
}

func TestGenerate_ServiceDue(t *testing.T) {
	g := NewGenerator(Spec{ServiceIntervalMiles: 12500})
	state := healthyState()
	state.OdometerMiles = 12000 // 96% through the interval

	got := g.Generate(state)
	if len(got) != 1 {
		t.Fatalf("expected one alert, got %d", len(got))
	}
	if got[0].Type != model.AlertServiceDue || got[0].Severity != model.SeverityInfo {
		t.Errorf("expected service_due info alert, got %s/%s", got[0].Type, got[0].Severity)
	}
}

func TestGenerate_SoftwareUpdateNotice(t *testing.T) {
	g := NewGenerator(Spec{LatestSoftwareVersion: "2026.12.1"})
	state := healthyState()

	got := g.Generate(state)
	if len(got) != 1 || got[0].Type != model.AlertSoftware {
		t.Fatalf("expected software notice, got %+v", got)
	}
}

func TestGenerate_StableOrderAndIDs(t *testing.T) {
	g := NewGenerator(Spec{TireTolerancePSI: 4, DesignCapacityKWh: 75, ServiceIntervalMiles: 12500})
	state := healthyState()
	state.Tires.FrontLeft = 48
	state.Tires.RearRight = 36
	state.CapacityKWh = 55
	state.OdometerMiles = 12400

	first := g.Generate(state)
	second := g.Generate(state)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("alert generation must be idempotent")
	}
	wantOrder := []string{"tire-front-left", "tire-rear-right", "battery-health", "service-due"}
	if len(first) != len(wantOrder) {
		t.Fatalf("expected %d alerts, got %d", len(wantOrder), len(first))
	}
	for i, id := range wantOrder {
		if first[i].ID != id {
			t.Errorf("alert %d: expected id %q, got %q", i, id, first[i].ID)
		}
	}
}
