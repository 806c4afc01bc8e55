// Package routeenergy walks an ordered route segment by segment, modeling
// battery draw and the charging stops needed to keep the pack above a safety
// margin.
package routeenergy

import (
	"math"

	"github.com/voltpath/rangekit/core/model"
)

// earthRadiusMiles is the mean Earth radius used by the haversine distance.
const earthRadiusMiles = 3958.8

// Planner runs the energy walk for a configured consumption profile.
type Planner struct {
	cfg Config
}

// NewPlanner returns a Planner, defaulting any unset Config field.
func NewPlanner(cfg Config) Planner {
	cfg.SetDefaults()
	return Planner{cfg: cfg}
}

// Config returns the effective configuration.
func (p Planner) Config() Config { return p.cfg }

// Model traverses consecutive waypoint pairs, draining the battery by the
// configured consumption rate and inserting a charging stop at the previous
// waypoint whenever the pack would fall under the safety margin. Segments
// with a missing coordinate on either endpoint contribute zero distance and
// leave the battery untouched. Routes with fewer than two coordinate-bearing
// waypoints have nothing to compute and yield nil.
func (p Planner) Model(state model.VehicleState, waypoints []model.RouteWaypoint) *model.RouteEnergyResult {
	usable := 0
	for _, w := range waypoints {
		if w.HasCoord() {
			usable++
		}
	}
	if usable < 2 {
		return nil
	}

	res := &model.RouteEnergyResult{
		Segments: make([]model.RouteSegment, 0, len(waypoints)-1),
		Stops:    []model.SuggestedChargingStop{},
	}
	battery := state.BatteryPercent
	totalDraw := 0.0

	for i := 1; i < len(waypoints); i++ {
		from, to := waypoints[i-1], waypoints[i]
		seg := model.RouteSegment{FromSeq: from.Seq, ToSeq: to.Seq}
		if !from.HasCoord() || !to.HasCoord() {
			seg.BatteryAtArrival = battery
			res.Segments = append(res.Segments, seg)
			continue
		}

		seg.DistanceMiles = haversineMiles(from.Lat, from.Lon, to.Lat, to.Lon)
		seg.PercentUsed = seg.DistanceMiles / p.cfg.MilesPerPercent
		totalDraw += seg.PercentUsed
		res.TotalDistanceMiles += seg.DistanceMiles

		if battery-seg.PercentUsed < p.cfg.SafetyMarginPercent {
			// Charge at the segment's start, then run the whole leg on the
			// replenished pack.
			res.Stops = append(res.Stops, model.SuggestedChargingStop{
				AfterSegmentIndex:   from.Seq,
				TargetChargePercent: p.cfg.ChargeTargetPercent,
			})
			battery = p.cfg.ChargeTargetPercent
		}
		battery -= seg.PercentUsed
		if battery < 0 {
			battery = 0
		}
		seg.BatteryAtArrival = battery
		res.Segments = append(res.Segments, seg)
	}

	res.FinalBatteryPercent = battery
	noStopFinal := state.BatteryPercent - totalDraw
	res.NeedsCharging = noStopFinal < p.cfg.LowBatteryPercent
	res.RangeAnxiety = battery < p.cfg.AnxietyPercent
	return res
}

// haversineMiles returns the great-circle distance between two coordinates.
func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMiles * c
}
