package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dreedsanders/EggyCommutes-sub000/pkg/config"
	"github.com/dreedsanders/EggyCommutes-sub000/pkg/engine"
)

var ferryCmd = &cobra.Command{
	Use:   "ferry",
	Short: "Print the upcoming ferry sailings",
	Long:  "Generate the next occurrence of every timetabled sailing for a direction, in the canonical display zone.",
	RunE: func(cmd *cobra.Command, args []string) error {
		directionFlag, _ := cmd.Flags().GetString("direction")

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		zone, err := engine.LoadCanonicalZone(cfg.CanonicalZone)
		if err != nil {
			return err
		}

		now := time.Now()
		times, err := engine.GenerateSchedule(engine.FerryDirection(directionFlag), now, zone)
		if err != nil {
			return fmt.Errorf("could not generate ferry schedule: %w", err)
		}

		fmt.Printf("--- ⛴️ Upcoming Sailings (%s) ---\n", directionFlag)
		for _, t := range times {
			day := "today"
			if t.In(zone).Day() != now.In(zone).Day() {
				day = "tomorrow"
			}
			fmt.Printf("  • %s (%s)\n", t.In(zone).Format("3:04 PM"), day)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(ferryCmd)
	ferryCmd.Flags().StringP("direction", "d", string(engine.DirectionAnacortes), "Ferry direction (anacortes, fridayharbor)")
}
