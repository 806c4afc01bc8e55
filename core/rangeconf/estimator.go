// Package rangeconf scores whether the available range covers a candidate
// route and classifies the result into a risk tier.
package rangeconf

import (
	"math"

	"github.com/voltpath/rangekit/core/model"
)

// Tier breakpoints on the range ratio. The exact values are a preserved
// product contract, tune with care.
const (
	ratioComfortableHigh = 1.5
	ratioComfortableLow  = 1.2
	ratioTightLow        = 1.0
	ratioRiskyLow        = 0.8
)

// Estimate scores trip feasibility from the available range and the total
// route distance, both in miles. It is total over non-negative inputs: the
// route distance is floored at one mile and the score is clamped to [0,100].
func Estimate(availableRange, routeDistance float64) model.TripRangeAnalysis {
	dist := routeDistance
	if dist < 1 {
		dist = 1
	}
	ratio := availableRange / dist

	var score float64
	var tier model.RiskTier
	switch {
	case ratio >= ratioComfortableHigh:
		score = math.Min(100, 95+(ratio-ratioComfortableHigh)*10)
		tier = model.TierComfortable
	case ratio >= ratioComfortableLow:
		score = 75 + (ratio-ratioComfortableLow)/0.3*20
		tier = model.TierComfortable
	case ratio >= ratioTightLow:
		score = 50 + (ratio-ratioTightLow)/0.2*25
		tier = model.TierTight
	case ratio >= ratioRiskyLow:
		score = 20 + (ratio-ratioRiskyLow)/0.2*30
		tier = model.TierRisky
	default:
		score = math.Max(0, ratio*25)
		tier = model.TierInsufficient
	}

	return model.TripRangeAnalysis{
		ConfidenceScore:     clampScore(score),
		CanCompleteTrip:     ratio >= 1.0,
		BufferDistanceMiles: availableRange - routeDistance,
		RouteDistanceMiles:  routeDistance,
		AvailableRangeMiles: availableRange,
		RiskTier:            tier,
	}
}

func clampScore(s float64) int {
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return int(math.Round(s))
}
