package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltpath/rangekit/core/model"
	"github.com/voltpath/rangekit/pkg/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export [history.json]",
	Short: "Export a snapshot history as CSV or JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "output format: csv or json")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	var snaps []model.VehicleHealthSnapshot
	if err := json.Unmarshal(data, &snaps); err != nil {
		return fmt.Errorf("parse history: %w", err)
	}
	switch exportFormat {
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), snaps)
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), snaps)
	default:
		return fmt.Errorf("unknown format %s", exportFormat)
	}
}
