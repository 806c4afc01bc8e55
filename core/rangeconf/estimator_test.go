package rangeconf

import (
	"reflect"
	"testing"

	"github.com/voltpath/rangekit/core/model"
)

func TestEstimate_Tiers(t *testing.T) {
	cases := []struct {
		name      string
		available float64
		route     float64
		tier      model.RiskTier
		score     int
		complete  bool
	}{
		{"ratio exactly 1.5", 450, 300, model.TierComfortable, 95, true},
		{"very large ratio caps at 100", 3000, 300, model.TierComfortable, 100, true},
		{"upper comfortable band", 420, 300, model.TierComfortable, 88, true}, // ratio 1.4
		{"ratio exactly 1.2", 360, 300, model.TierComfortable, 75, true},
		{"ratio exactly 1.0", 300, 300, model.TierTight, 50, true},
		{"tight band midpoint", 330, 300, model.TierTight, 63, true}, // ratio 1.1
		{"ratio exactly 0.8", 240, 300, model.TierRisky, 20, false},
		{"risky band", 270, 300, model.TierRisky, 35, false}, // ratio 0.9
		{"insufficient", 150, 300, model.TierInsufficient, 13, false}, // ratio 0.5
		{"zero range", 0, 300, model.TierInsufficient, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Estimate(tc.available, tc.route)
			if got.RiskTier != tc.tier {
				t.Errorf("tier: expected %s, got %s", tc.tier, got.RiskTier)
			}
			if got.ConfidenceScore != tc.score {
				t.Errorf("score: expected %d, got %d", tc.score, got.ConfidenceScore)
			}
			if got.CanCompleteTrip != tc.complete {
				t.Errorf("canCompleteTrip: expected %v, got %v", tc.complete, got.CanCompleteTrip)
			}
		})
	}
}

func TestEstimate_TightScenario(t *testing.T) {
	got := Estimate(280, 300) // ratio 0.933

	if got.RiskTier != model.TierRisky {
		// ratio 0.933 sits in [0.8, 1.0)
		t.Errorf("expected risky tier, got %s", got.RiskTier)
	}
	if got.CanCompleteTrip {
		t.Error("trip must not be completable at ratio < 1")
	}
	if got.BufferDistanceMiles != -20 {
		t.Errorf("expected -20 buffer, got %v", got.BufferDistanceMiles)
	}
	if got.ConfidenceScore < 20 || got.ConfidenceScore >= 50 {
		t.Errorf("score %d outside the risky band", got.ConfidenceScore)
	}
}

func TestEstimate_ZeroRouteDistance(t *testing.T) {
	got := Estimate(100, 0)
	if got.ConfidenceScore != 100 || got.RiskTier != model.TierComfortable {
		t.Fatalf("zero-length route should be trivially comfortable, got %+v", got)
	}
	if got.RouteDistanceMiles != 0 {
		t.Errorf("reported route distance must echo the input, got %v", got.RouteDistanceMiles)
	}
}

func TestEstimate_ScoreAlwaysBounded(t *testing.T) {
	for _, avail := range []float64{0, 1, 50, 299, 300, 301, 450, 10000} {
		for _, route := range []float64{0, 1, 100, 300, 5000} {
			got := Estimate(avail, route)
			if got.ConfidenceScore < 0 || got.ConfidenceScore > 100 {
				t.Fatalf("score %d out of bounds for %v/%v", got.ConfidenceScore, avail, route)
			}
		}
	}
}

func TestEstimate_Idempotent(t *testing.T) {
	a := Estimate(280, 300)
	b := Estimate(280, 300)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical results, got %+v vs %+v", a, b)
	}
}
