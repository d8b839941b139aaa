package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/config"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/directions"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/exporter"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stop's upcoming departures to an ICS file",
	Long:  "Fetch one configured stop and write its upcoming departures as calendar events, so the commute shows up next to your meetings.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stopName, _ := cmd.Flags().GetString("stop")
		output, _ := cmd.Flags().GetString("output")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		stop, ok := cfg.StopByName(stopName)
		if !ok {
			return fmt.Errorf("no configured stop named %q", stopName)
		}
		if !stop.Mode.IsTransit() {
			return fmt.Errorf("stop %q is a %s stop; only timetabled stops can be exported", stopName, stop.Mode)
		}

		zone, err := engine.LoadCanonicalZone(cfg.CanonicalZone)
		if err != nil {
			return err
		}

		proc := engine.NewProcessor(
			directions.NewFallback(directions.NewClient(config.LoadAPIKey())), zone)

		now := time.Now()
		var result engine.StopResult

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting departures for %s to %s...", stopName, output)).
			Action(func() {
				result = proc.Process(context.Background(), *stop, now)
			}).
			Run()

		if result.Err != nil {
			return fmt.Errorf("failed to fetch departures: %w", result.Err)
		}
		if len(result.Candidates) == 0 {
			return fmt.Errorf("no departures found for stop %q", stopName)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(result, now, zone, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d departures to %s\n", len(result.Candidates), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("stop", "s", "", "Name of the configured stop to export")
	exportCmd.Flags().StringP("output", "o", "commute.ics", "Output file path")
	exportCmd.MarkFlagRequired("stop")
}
