package analysislog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltpath/rangekit/core/model"
)

func tripRecord(t *testing.T, vehicleID string) Record {
	t.Helper()
	rec, err := NewRecord(KindTrip, vehicleID, model.TripRangeAnalysis{
		ConfidenceScore: 88, CanCompleteTrip: true, RiskTier: model.TierComfortable,
	})
	require.NoError(t, err)
	return rec
}

func TestSQLiteStore_AppendQuery(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "analysis.db"))
	require.NoError(t, err)
	defer func() { assert.NoError(t, store.Close()) }()

	ctx := context.Background()
	require.NoError(t, store.Append(ctx, tripRecord(t, "veh-1")))
	require.NoError(t, store.Append(ctx, tripRecord(t, "veh-2")))

	out, err := store.Query(ctx, Query{VehicleID: "veh-1"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, KindTrip, out[0].Kind)
	assert.Equal(t, "veh-1", out[0].VehicleID)
	assert.NotEmpty(t, out[0].ID)
}

func TestSQLiteStore_KindAndTimeFilters(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "analysis.db"))
	require.NoError(t, err)
	defer func() { assert.NoError(t, store.Close()) }()

	ctx := context.Background()
	old := tripRecord(t, "veh-1")
	old.Timestamp = time.Now().UTC().Add(-48 * time.Hour)
	require.NoError(t, store.Append(ctx, old))

	alert, err := NewRecord(KindAlerts, "veh-1", []model.VehicleServiceAlert{})
	require.NoError(t, err)
	require.NoError(t, store.Append(ctx, alert))

	out, err := store.Query(ctx, Query{Kind: KindAlerts})
	require.NoError(t, err)
	require.Len(t, out, 1)

	out, err = store.Query(ctx, Query{Start: time.Now().UTC().Add(-time.Hour)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, KindAlerts, out[0].Kind)
}

func TestJSONLStore_AppendQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analysis.jsonl")
	store, err := NewJSONLStore(path, 5, 2, 7)
	require.NoError(t, err)
	defer func() { assert.NoError(t, store.Close()) }()

	ctx := context.Background()
	require.NoError(t, store.Append(ctx, tripRecord(t, "veh-1")))
	require.NoError(t, store.Append(ctx, tripRecord(t, "veh-1")))

	out, err := store.Query(ctx, Query{VehicleID: "veh-1"})
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = store.Query(ctx, Query{Kind: KindDegradation})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("csv", "x", 0, 0, 0)
	assert.Error(t, err)
}
