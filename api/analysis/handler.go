// Package analysis exposes the analytics engine over a small JSON API.
package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/voltpath/rangekit/core/engine"
	"github.com/voltpath/rangekit/core/logger"
	"github.com/voltpath/rangekit/core/model"
	"github.com/voltpath/rangekit/infra/analysislog"
	infralogger "github.com/voltpath/rangekit/infra/logger"
	"github.com/voltpath/rangekit/infra/metrics"
)

// Handler serves the analysis endpoints. The sink and store are optional;
// recording failures are logged and never fail a request.
type Handler struct {
	engine   *engine.Engine
	sink     metrics.Sink
	store    analysislog.Store
	log      logger.Logger
	stations engine.StationDirectory
	recalls  engine.RecallRegistry
}

// New builds a Handler. Pass nil sink or store to disable recording.
func New(eng *engine.Engine, sink metrics.Sink, store analysislog.Store, log logger.Logger) *Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	if log == nil {
		log = infralogger.NopLogger{}
	}
	return &Handler{engine: eng, sink: sink, store: store, log: log}
}

// WithStations enables charging stop resolution against the directory.
func (h *Handler) WithStations(dir engine.StationDirectory) *Handler {
	h.stations = dir
	return h
}

// WithRecalls enables the recall lookup endpoint.
func (h *Handler) WithRecalls(reg engine.RecallRegistry) *Handler {
	h.recalls = reg
	return h
}

// Register mounts the endpoints on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/analysis/trip", h.handleTrip)
	mux.HandleFunc("/api/analysis/alerts", h.handleAlerts)
	mux.HandleFunc("/api/analysis/range", h.handleRange)
	mux.HandleFunc("/api/vehicles/degradation", h.handleDegradation)
	mux.HandleFunc("/api/vehicles/recalls", h.handleRecalls)
}

type tripRequest struct {
	VehicleID string                `json:"vehicle_id,omitempty"`
	State     model.VehicleState    `json:"state"`
	Waypoints []model.RouteWaypoint `json:"waypoints"`
}

func (h *Handler) handleTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req tripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	report := h.engine.AnalyzeTrip(req.State, req.Waypoints)
	if report == nil {
		writeJSON(w, nil)
		return
	}
	h.record(r.Context(), analysislog.KindTrip, req.VehicleID, report)
	if err := h.sink.RecordTripAnalysis(report.Range); err != nil {
		h.log.Warnf("record trip analysis: %v", err)
	}
	writeJSON(w, tripResponse{
		TripReport: report,
		Stations:   h.resolveStops(r.Context(), req.Waypoints, report.Route.Stops),
	})
}

type tripResponse struct {
	*engine.TripReport
	// Stations maps each suggested stop to nearby charging stations, in stop
	// order. Only populated when a station directory is configured.
	Stations [][]engine.ChargingStation `json:"stations,omitempty"`
}

// resolveStops turns suggested stops into named stations using the optional
// directory. Lookup failures degrade to an empty list for that stop.
func (h *Handler) resolveStops(ctx context.Context, waypoints []model.RouteWaypoint, stops []model.SuggestedChargingStop) [][]engine.ChargingStation {
	if h.stations == nil || len(stops) == 0 {
		return nil
	}
	bySeq := make(map[int]model.RouteWaypoint, len(waypoints))
	for _, wp := range waypoints {
		bySeq[wp.Seq] = wp
	}
	out := make([][]engine.ChargingStation, len(stops))
	for i, stop := range stops {
		wp, ok := bySeq[stop.AfterSegmentIndex]
		if !ok || !wp.HasCoord() {
			continue
		}
		nearby, err := h.stations.Nearby(ctx, wp.Lat, wp.Lon, 3)
		if err != nil {
			h.log.Warnf("station lookup at waypoint %d: %v", stop.AfterSegmentIndex, err)
			continue
		}
		out[i] = nearby
	}
	return out
}

func (h *Handler) handleRecalls(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.recalls == nil {
		http.Error(w, "recall registry not configured", http.StatusServiceUnavailable)
		return
	}
	vin := r.URL.Query().Get("vin")
	if vin == "" {
		http.Error(w, "vin is required", http.StatusBadRequest)
		return
	}
	recalls, err := h.recalls.Recalls(r.Context(), vin)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	if recalls == nil {
		recalls = []engine.VehicleRecall{}
	}
	writeJSON(w, recalls)
}

type alertsRequest struct {
	VehicleID string             `json:"vehicle_id,omitempty"`
	State     model.VehicleState `json:"state"`
}

func (h *Handler) handleAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req alertsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	alerts := h.engine.GenerateAlerts(req.State)
	if alerts == nil {
		alerts = []model.VehicleServiceAlert{}
	}
	h.record(r.Context(), analysislog.KindAlerts, req.VehicleID, alerts)
	if err := h.sink.RecordAlerts(alerts); err != nil {
		h.log.Warnf("record alerts: %v", err)
	}
	writeJSON(w, alerts)
}

func (h *Handler) handleRange(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	available, err := strconv.ParseFloat(r.URL.Query().Get("available"), 64)
	if err != nil || available < 0 {
		http.Error(w, "invalid available range", http.StatusBadRequest)
		return
	}
	route, err := strconv.ParseFloat(r.URL.Query().Get("route"), 64)
	if err != nil || route < 0 {
		http.Error(w, "invalid route distance", http.StatusBadRequest)
		return
	}
	a := h.engine.EstimateRangeConfidence(available, route)
	h.record(r.Context(), analysislog.KindRange, r.URL.Query().Get("vehicle_id"), a)
	if err := h.sink.RecordTripAnalysis(a); err != nil {
		h.log.Warnf("record range analysis: %v", err)
	}
	writeJSON(w, a)
}

func (h *Handler) handleDegradation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	vehicleID := r.URL.Query().Get("vehicle_id")
	if vehicleID == "" {
		http.Error(w, "vehicle_id is required", http.StatusBadRequest)
		return
	}
	trend, err := h.engine.AnalyzeVehicle(r.Context(), vehicleID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	h.record(r.Context(), analysislog.KindDegradation, vehicleID, trend)
	writeJSON(w, trend)
}

func (h *Handler) record(ctx context.Context, kind analysislog.Kind, vehicleID string, analysis any) {
	if h.store == nil {
		return
	}
	rec, err := analysislog.NewRecord(kind, vehicleID, analysis)
	if err != nil {
		h.log.Warnf("build %s record: %v", kind, err)
		return
	}
	if err := h.store.Append(ctx, rec); err != nil {
		h.log.Warnf("append %s record: %v", kind, err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
