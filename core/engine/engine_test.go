package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/voltpath/rangekit/core/model"
	"github.com/voltpath/rangekit/core/snapshot"
)

func newEngine(t *testing.T, provider snapshot.Provider) *Engine {
	t.Helper()
	e, err := New(Config{}, provider)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestEngine_AnalyzeVehicleUsesProvider(t *testing.T) {
	store := snapshot.NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, kwh := range []float64{75, 70} {
		err := store.Append(ctx, model.VehicleHealthSnapshot{
			VehicleID:    "veh-1",
			VehicleState: model.VehicleState{CapacityKWh: kwh, Timestamp: base.Add(time.Duration(i) * time.Hour)},
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	e := newEngine(t, store)
	trend, err := e.AnalyzeVehicle(ctx, "veh-1")
	if err != nil {
		t.Fatalf("analyze vehicle: %v", err)
	}
	if trend.DegradationPercent != 6.7 {
		t.Errorf("expected 6.7%% degradation, got %v", trend.DegradationPercent)
	}
	if trend.SampleCount != 2 {
		t.Errorf("expected 2 samples, got %d", trend.SampleCount)
	}
}

type failingProvider struct{}

func (failingProvider) History(context.Context, string) ([]model.VehicleHealthSnapshot, error) {
	return nil, errors.New("backend down")
}
func (failingProvider) Append(context.Context, model.VehicleHealthSnapshot) error { return nil }

func TestEngine_ProviderErrorPassesThrough(t *testing.T) {
	e := newEngine(t, failingProvider{})
	if _, err := e.AnalyzeVehicle(context.Background(), "veh-1"); err == nil {
		t.Fatal("expected provider error to surface")
	}
}

func TestEngine_AnalyzeVehicleWithoutProvider(t *testing.T) {
	e := newEngine(t, nil)
	if _, err := e.AnalyzeVehicle(context.Background(), "veh-1"); err == nil {
		t.Fatal("expected an error without a provider")
	}
}

func TestEngine_AnalyzeTripFeedsEstimator(t *testing.T) {
	e := newEngine(t, nil)
	state := model.VehicleState{BatteryPercent: 90, RangeMiles: 270, CapacityKWh: 75}
	// Two ~69 mile legs, ~138 total: ratio 270/138 is comfortably over 1.5.
	report := e.AnalyzeTrip(state, []model.RouteWaypoint{
		{Seq: 1, Lat: 40, Lon: -105}, {Seq: 2, Lat: 41, Lon: -105}, {Seq: 3, Lat: 42, Lon: -105},
	})
	if report == nil {
		t.Fatal("expected a report")
	}
	if report.Range.RiskTier != model.TierComfortable {
		t.Errorf("expected comfortable, got %s", report.Range.RiskTier)
	}
	if report.Range.RouteDistanceMiles != report.Route.TotalDistanceMiles {
		t.Errorf("estimator must consume the modeled distance")
	}
	if report.Range.AvailableRangeMiles != 270 {
		t.Errorf("estimator must consume the pre-stop range, got %v", report.Range.AvailableRangeMiles)
	}
}

func TestEngine_AnalyzeTripDegenerateRoute(t *testing.T) {
	e := newEngine(t, nil)
	state := model.VehicleState{BatteryPercent: 90, RangeMiles: 270, CapacityKWh: 75}
	if report := e.AnalyzeTrip(state, []model.RouteWaypoint{{Seq: 1, Lat: 40, Lon: -105}}); report != nil {
		t.Fatalf("single waypoint: expected nil report, got %+v", report)
	}
}

func TestEngine_ConfigValidation(t *testing.T) {
	bad := Config{}
	bad.SetDefaults()
	bad.Energy.ChargeTargetPercent = 5
	if _, err := New(bad, nil); err == nil {
		t.Fatal("expected config validation to fail")
	}
}
