// Package engine bundles the range and health analytics behind one facade:
// degradation trend, service alerts, route energy modeling and trip range
// confidence. Every analysis is a pure function of its inputs; the engine
// holds configuration and collaborator handles, never mutable state.
package engine

import (
	"context"
	"fmt"

	"github.com/voltpath/rangekit/core/alerts"
	"github.com/voltpath/rangekit/core/degradation"
	"github.com/voltpath/rangekit/core/model"
	"github.com/voltpath/rangekit/core/rangeconf"
	"github.com/voltpath/rangekit/core/routeenergy"
	"github.com/voltpath/rangekit/core/snapshot"
)

// Config aggregates the engine's tuning constants.
type Config struct {
	Alerts alerts.Spec        `json:"alerts"`
	Energy routeenergy.Config `json:"energy"`
}

// SetDefaults applies sane defaults to every section.
func (c *Config) SetDefaults() {
	c.Alerts.SetDefaults()
	c.Energy.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Alerts.Validate(); err != nil {
		return fmt.Errorf("alerts: %w", err)
	}
	if err := c.Energy.Validate(); err != nil {
		return fmt.Errorf("energy: %w", err)
	}
	return nil
}

// TripReport pairs the segment-level energy walk with the aggregate range
// confidence verdict for the same route.
type TripReport struct {
	Route *model.RouteEnergyResult `json:"route"`
	Range model.TripRangeAnalysis  `json:"range"`
}

// Engine is the analytics facade. Construct with New; the zero value is not
// usable.
type Engine struct {
	analyzer  degradation.Analyzer
	generator alerts.Generator
	planner   routeenergy.Planner
	provider  snapshot.Provider
}

// New builds an Engine from cfg. The provider may be nil when callers supply
// histories themselves.
func New(cfg Config, provider snapshot.Provider) (*Engine, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	analyzer := degradation.NewAnalyzer()
	analyzer.DesignCapacityKWh = cfg.Alerts.DesignCapacityKWh
	return &Engine{
		analyzer:  analyzer,
		generator: alerts.NewGenerator(cfg.Alerts),
		planner:   routeenergy.NewPlanner(cfg.Energy),
		provider:  provider,
	}, nil
}

// AnalyzeDegradation derives the capacity trend for a time-ascending history.
func (e *Engine) AnalyzeDegradation(history []model.VehicleHealthSnapshot) model.VehicleHealthTrend {
	return e.analyzer.Analyze(history)
}

// AnalyzeVehicle loads the vehicle's history from the snapshot provider and
// analyzes it. Provider errors pass through untouched.
func (e *Engine) AnalyzeVehicle(ctx context.Context, vehicleID string) (model.VehicleHealthTrend, error) {
	if e.provider == nil {
		return model.VehicleHealthTrend{}, fmt.Errorf("no snapshot provider configured")
	}
	history, err := e.provider.History(ctx, vehicleID)
	if err != nil {
		return model.VehicleHealthTrend{}, fmt.Errorf("load history: %w", err)
	}
	return e.analyzer.Analyze(history), nil
}

// GenerateAlerts grades the state against the configured vehicle spec.
func (e *Engine) GenerateAlerts(state model.VehicleState) []model.VehicleServiceAlert {
	return e.generator.Generate(state)
}

// EstimateRangeConfidence scores a route distance against available range.
func (e *Engine) EstimateRangeConfidence(availableRange, routeDistance float64) model.TripRangeAnalysis {
	return rangeconf.Estimate(availableRange, routeDistance)
}

// ModelRouteEnergy walks the route against the current state. Routes with
// fewer than two usable waypoints yield nil.
func (e *Engine) ModelRouteEnergy(state model.VehicleState, waypoints []model.RouteWaypoint) *model.RouteEnergyResult {
	return e.planner.Model(state, waypoints)
}

// AnalyzeTrip runs the energy model and feeds its aggregate distance into the
// confidence estimator, using the state's range before any modeled stops as
// the available range. Returns nil when the route is not computable.
func (e *Engine) AnalyzeTrip(state model.VehicleState, waypoints []model.RouteWaypoint) *TripReport {
	route := e.planner.Model(state, waypoints)
	if route == nil {
		return nil
	}
	return &TripReport{
		Route: route,
		Range: rangeconf.Estimate(state.RangeMiles, route.TotalDistanceMiles),
	}
}
