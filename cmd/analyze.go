package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltpath/rangekit/config"
	"github.com/voltpath/rangekit/core/engine"
	"github.com/voltpath/rangekit/core/model"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input.json]",
	Short: "Run a one-shot analysis over a JSON fixture",
	Long: `Reads a JSON file holding a vehicle state, an optional snapshot history
and an optional waypoint list, runs every applicable analysis and prints the
results as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

type analyzeInput struct {
	State     model.VehicleState            `json:"state"`
	History   []model.VehicleHealthSnapshot `json:"history,omitempty"`
	Waypoints []model.RouteWaypoint         `json:"waypoints,omitempty"`
}

type analyzeOutput struct {
	Trend  *model.VehicleHealthTrend   `json:"trend,omitempty"`
	Alerts []model.VehicleServiceAlert `json:"alerts"`
	Trip   *engine.TripReport          `json:"trip,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	var in analyzeInput
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	eng, err := engine.New(cfg.Engine, nil)
	if err != nil {
		return err
	}

	out := analyzeOutput{Alerts: eng.GenerateAlerts(in.State)}
	if in.History != nil {
		trend := eng.AnalyzeDegradation(in.History)
		out.Trend = &trend
	}
	if len(in.Waypoints) > 0 {
		out.Trip = eng.AnalyzeTrip(in.State, in.Waypoints)
	}
	if out.Alerts == nil {
		out.Alerts = []model.VehicleServiceAlert{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
