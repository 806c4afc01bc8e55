package engine

import (
	"context"
	"time"
)

// ChargingStation is a named charging location returned by a directory
// lookup. Callers use it to turn a SuggestedChargingStop into a real place.
type ChargingStation struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	PowerKW float64 `json:"power_kw"`
}

// StationDirectory looks up charging stations near a coordinate. The engine
// never calls it during analysis; it is wired through for callers that want
// to resolve suggested stops.
type StationDirectory interface {
	Nearby(ctx context.Context, lat, lon float64, limit int) ([]ChargingStation, error)
}

// VehicleRecall is one entry from a recall registry.
type VehicleRecall struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Issued      time.Time `json:"issued"`
}

// RecallRegistry queries an external recall database by VIN. Surfaced
// alongside alerts in caller UIs but computed independently of the engine.
type RecallRegistry interface {
	Recalls(ctx context.Context, vin string) ([]VehicleRecall, error)
}
