// Package export writes health snapshot histories to external formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"github.com/voltpath/rangekit/core/model"
)

// WriteJSON writes the snapshot history to w in JSON format.
func WriteJSON(w io.Writer, snaps []model.VehicleHealthSnapshot) error {
	enc := json.NewEncoder(w)
	return enc.Encode(snaps)
}

// WriteCSV writes the snapshot history to w as CSV.
func WriteCSV(w io.Writer, snaps []model.VehicleHealthSnapshot) error {
	cw := csv.NewWriter(w)
	header := []string{
		"vehicle_id", "timestamp", "trigger", "battery_percent",
		"range_miles", "capacity_kwh", "odometer_miles",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range snaps {
		rec := []string{
			s.VehicleID,
			s.Timestamp.Format(time.RFC3339),
			s.Trigger.String(),
			strconv.FormatFloat(s.BatteryPercent, 'f', -1, 64),
			strconv.FormatFloat(s.RangeMiles, 'f', -1, 64),
			strconv.FormatFloat(s.CapacityKWh, 'f', -1, 64),
			strconv.FormatFloat(s.OdometerMiles, 'f', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
