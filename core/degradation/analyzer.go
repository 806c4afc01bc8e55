// Package degradation infers a battery health trend from an ordered history
// of vehicle health snapshots.
package degradation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/voltpath/rangekit/core/model"
)

// DefaultDesignCapacityKWh is the factory full-pack energy assumed when a
// history is empty and no design capacity was configured.
const DefaultDesignCapacityKWh = 75.0

// recentWindow is the number of trailing snapshots used for the short-term
// drop average.
const recentWindow = 3

// Analyzer derives a VehicleHealthTrend from snapshot history. The zero value
// is usable; DesignCapacityKWh falls back to DefaultDesignCapacityKWh.
type Analyzer struct {
	// DesignCapacityKWh is the factory capacity used as baseline when the
	// history holds no snapshots.
	DesignCapacityKWh float64

	// AccelerationFactor is the multiple of the overall average drop the
	// recent drop must exceed to classify as degrading.
	AccelerationFactor float64
}

// NewAnalyzer returns an Analyzer with default tuning.
func NewAnalyzer() Analyzer {
	return Analyzer{
		DesignCapacityKWh:  DefaultDesignCapacityKWh,
		AccelerationFactor: 2,
	}
}

// Analyze computes the degradation trend for a time-ascending history. It is
// a pure function of its input: an empty or single-entry history yields
// insufficient_data with zero degradation, never an error.
func (a Analyzer) Analyze(history []model.VehicleHealthSnapshot) model.VehicleHealthTrend {
	design := a.DesignCapacityKWh
	if design <= 0 {
		design = DefaultDesignCapacityKWh
	}

	if len(history) < 2 {
		baseline := design
		if len(history) == 1 {
			baseline = history[0].CapacityKWh
		}
		return model.VehicleHealthTrend{
			CurrentCapacityKWh:  baseline,
			BaselineCapacityKWh: baseline,
			DegradationPercent:  0,
			Trend:               model.TrendInsufficientData,
			SampleCount:         len(history),
		}
	}

	baseline := history[0].CapacityKWh
	current := history[len(history)-1].CapacityKWh
	var degradation float64
	if baseline > 0 {
		degradation = round1((baseline - current) / baseline * 100)
	}

	return model.VehicleHealthTrend{
		CurrentCapacityKWh:  current,
		BaselineCapacityKWh: baseline,
		DegradationPercent:  degradation,
		Trend:               a.classify(history),
		SampleCount:         len(history),
	}
}

// classify compares the average per-step capacity drop over the trailing
// window against the full-history average. Requires at least recentWindow
// snapshots, otherwise the trend defaults to stable.
func (a Analyzer) classify(history []model.VehicleHealthSnapshot) model.TrendDirection {
	if len(history) < recentWindow {
		return model.TrendStable
	}

	drops := stepDrops(history)
	overall := stat.Mean(drops, nil)
	recent := stat.Mean(stepDrops(history[len(history)-recentWindow:]), nil)

	factor := a.AccelerationFactor
	if factor <= 0 {
		factor = 2
	}
	switch {
	case recent < 0:
		// Capacity appeared to increase, e.g. after a BMS recalibration.
		return model.TrendImproving
	case recent > factor*overall:
		return model.TrendDegrading
	default:
		return model.TrendStable
	}
}

// stepDrops returns the capacity lost between each consecutive snapshot pair.
// Positive values mean the pack shrank.
func stepDrops(history []model.VehicleHealthSnapshot) []float64 {
	drops := make([]float64, 0, len(history)-1)
	for i := 1; i < len(history); i++ {
		drops = append(drops, history[i-1].CapacityKWh-history[i].CapacityKWh)
	}
	return drops
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
