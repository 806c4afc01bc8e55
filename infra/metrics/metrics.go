// Package metrics records analysis outcomes in observability sinks.
package metrics

import (
	"github.com/voltpath/rangekit/core/model"
)

// Sink records engine outputs for observability purposes.
type Sink interface {
	RecordTripAnalysis(a model.TripRangeAnalysis) error
	RecordAlerts(alerts []model.VehicleServiceAlert) error
	RecordSnapshot(snap model.VehicleHealthSnapshot) error
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) RecordTripAnalysis(model.TripRangeAnalysis) error { return nil }
func (NopSink) RecordAlerts([]model.VehicleServiceAlert) error   { return nil }
func (NopSink) RecordSnapshot(model.VehicleHealthSnapshot) error { return nil }

// MultiSink fans out to several sinks, returning the first error.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink combines sinks into one.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordTripAnalysis(a model.TripRangeAnalysis) error {
	for _, s := range m.sinks {
		if err := s.RecordTripAnalysis(a); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordAlerts(alerts []model.VehicleServiceAlert) error {
	for _, s := range m.sinks {
		if err := s.RecordAlerts(alerts); err != nil {
			return err
		}
	}
	return nil
}

func (m *MultiSink) RecordSnapshot(snap model.VehicleHealthSnapshot) error {
	for _, s := range m.sinks {
		if err := s.RecordSnapshot(snap); err != nil {
			return err
		}
	}
	return nil
}
