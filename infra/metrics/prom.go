package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/voltpath/rangekit/core/model"
)

// PromSink records analysis events in Prometheus metrics.
type PromSink struct {
	trips      *prometheus.CounterVec
	confidence prometheus.Histogram
	alerts     *prometheus.CounterVec
	snapshots  *prometheus.CounterVec
}

// NewPromSink registers analysis metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	trips := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_analyses_total",
		Help: "Total number of trip range analyses",
	}, []string{"risk_tier", "can_complete"})
	confidence := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "trip_confidence_score",
		Help:    "Distribution of trip confidence scores",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
	alerts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "service_alerts_total",
		Help: "Total number of service alerts generated",
	}, []string{"type", "severity"})
	snapshots := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "health_snapshots_total",
		Help: "Total number of health snapshots recorded",
	}, []string{"trigger"})

	s := &PromSink{trips: trips, confidence: confidence, alerts: alerts, snapshots: snapshots}
	for _, c := range []prometheus.Collector{trips, confidence, alerts, snapshots} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch existing := are.ExistingCollector.(type) {
			case *prometheus.CounterVec:
				switch c {
				case trips:
					s.trips = existing
				case alerts:
					s.alerts = existing
				case snapshots:
					s.snapshots = existing
				}
			case prometheus.Histogram:
				s.confidence = existing
			}
		}
	}
	return s, nil
}

// RecordTripAnalysis increments the tier counter and observes the score.
func (s *PromSink) RecordTripAnalysis(a model.TripRangeAnalysis) error {
	complete := "false"
	if a.CanCompleteTrip {
		complete = "true"
	}
	s.trips.WithLabelValues(a.RiskTier.String(), complete).Inc()
	s.confidence.Observe(float64(a.ConfidenceScore))
	return nil
}

// RecordAlerts increments the alert counter per type and severity.
func (s *PromSink) RecordAlerts(alerts []model.VehicleServiceAlert) error {
	for _, a := range alerts {
		s.alerts.WithLabelValues(a.Type.String(), a.Severity.String()).Inc()
	}
	return nil
}

// RecordSnapshot increments the snapshot counter per trigger.
func (s *PromSink) RecordSnapshot(snap model.VehicleHealthSnapshot) error {
	s.snapshots.WithLabelValues(snap.Trigger.String()).Inc()
	return nil
}
