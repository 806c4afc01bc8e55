package model

import "math"

// RouteWaypoint is one ordered stop of a planned route. Waypoints without a
// known position carry NaN coordinates and are skipped by the energy model.
type RouteWaypoint struct {
	Seq int     `json:"seq"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HasCoord reports whether the waypoint carries a usable position.
func (w RouteWaypoint) HasCoord() bool {
	return !math.IsNaN(w.Lat) && !math.IsNaN(w.Lon)
}

// RouteSegment is the derived traversal between two consecutive waypoints.
type RouteSegment struct {
	FromSeq          int     `json:"from_seq"`
	ToSeq            int     `json:"to_seq"`
	DistanceMiles    float64 `json:"distance_miles"`
	PercentUsed      float64 `json:"percent_used"`
	BatteryAtArrival float64 `json:"battery_at_arrival"`
}

// SuggestedChargingStop marks a modeled charging stop after the given
// segment index, charging up to the configured target.
type SuggestedChargingStop struct {
	AfterSegmentIndex   int     `json:"after_segment_index"`
	TargetChargePercent float64 `json:"target_charge_percent"`
}

// RouteEnergyResult is the segment-by-segment energy walk of a route.
type RouteEnergyResult struct {
	TotalDistanceMiles  float64                 `json:"total_distance_miles"`
	FinalBatteryPercent float64                 `json:"final_battery_percent"`
	Segments            []RouteSegment          `json:"segments"`
	Stops               []SuggestedChargingStop `json:"stops"`
	NeedsCharging       bool                    `json:"needs_charging"`
	RangeAnxiety        bool                    `json:"range_anxiety"`
}

// RiskTier is the coarse classification of the range ratio.
type RiskTier int

const (
	TierInsufficient RiskTier = iota
	TierRisky
	TierTight
	TierComfortable
)

// String returns a human-readable representation of the tier.
func (t RiskTier) String() string {
	switch t {
	case TierComfortable:
		return "comfortable"
	case TierTight:
		return "tight"
	case TierRisky:
		return "risky"
	case TierInsufficient:
		return "insufficient"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// TripRangeAnalysis is the feasibility verdict for a candidate route.
type TripRangeAnalysis struct {
	ConfidenceScore     int      `json:"confidence_score"` // 0-100
	CanCompleteTrip     bool     `json:"can_complete_trip"`
	BufferDistanceMiles float64  `json:"buffer_distance_miles"` // negative when range falls short
	RouteDistanceMiles  float64  `json:"route_distance_miles"`
	AvailableRangeMiles float64  `json:"available_range_miles"`
	RiskTier            RiskTier `json:"risk_tier"`
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values map to
// TierInsufficient.
func (t *RiskTier) UnmarshalText(b []byte) error {
	switch string(b) {
	case "comfortable":
		*t = TierComfortable
	case "tight":
		*t = TierTight
	case "risky":
		*t = TierRisky
	default:
		*t = TierInsufficient
	}
	return nil
}
