package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/voltpath/rangekit/core/model"
)

func TestMemoryStore_HistoryOrderedAscending(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Append out of order, History must still come back time-ascending.
	for _, offset := range []int{2, 0, 1} {
		snap := model.VehicleHealthSnapshot{
			VehicleID: "veh-1",
			Trigger:   model.TriggerTripEnd,
			VehicleState: model.VehicleState{
				CapacityKWh: 75 - float64(offset),
				Timestamp:   base.Add(time.Duration(offset) * time.Hour),
			},
		}
		if err := s.Append(ctx, snap); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.History(ctx, "veh-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Timestamp.Before(got[i-1].Timestamp) {
			t.Fatalf("history not time-ascending at %d", i)
		}
	}
}

func TestMemoryStore_UnknownVehicle(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.History(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unknown vehicle must not error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty history, got %d", len(got))
	}
}

func TestMemoryStore_HistoryReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	snap := model.VehicleHealthSnapshot{
		VehicleID:    "veh-1",
		VehicleState: model.VehicleState{CapacityKWh: 75, Timestamp: time.Now()},
	}
	if err := s.Append(ctx, snap); err != nil {
		t.Fatalf("append: %v", err)
	}

	first, _ := s.History(ctx, "veh-1")
	first[0].CapacityKWh = 1

	second, _ := s.History(ctx, "veh-1")
	if second[0].CapacityKWh != 75 {
		t.Fatal("mutating a returned history must not affect the store")
	}
}
